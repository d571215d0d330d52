package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

const (
	ParserRegex  = "regex"
	ParserGofeed = "gofeed"
)

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// HTTP server
	Port      string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	PublicURL string `long:"public-url" env:"PUBLIC_URL" default:"https://sources-worker.torarnehave.workers.dev" description:"Public base URL advertised to tool-calling clients"`

	// Sources
	SourcesFile  string `long:"sources-file" env:"SOURCES_FILE" description:"YAML file with source definitions (embedded registry when empty)"`
	UserAgent    string `long:"user-agent" env:"USER_AGENT" default:"Vegvisr-Sources-Worker/1.0 (https://vegvisr.org)" description:"User agent string for feed requests"`
	FetchTimeout int    `long:"fetch-timeout" env:"FETCH_TIMEOUT" default:"10" description:"Per-feed fetch timeout in seconds"`
	Parser       string `long:"parser" env:"FEED_PARSER" default:"regex" choice:"regex" choice:"gofeed" description:"Feed parser implementation"`

	// Application metadata
	Timezone string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, Europe/Oslo)"`
	Debug    bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

// Load parses command-line flags and environment variables. It returns nil
// without an error when help was requested.
func Load() (*Cfg, error) {
	return parse(nil)
}

func parse(args []string) (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	var err error
	if args == nil {
		_, err = parser.Parse()
	} else {
		_, err = parser.ParseArgs(args)
	}
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if raw.FetchTimeout <= 0 {
		return nil, fmt.Errorf("fetch timeout must be positive, got %d", raw.FetchTimeout)
	}

	cfg := &Cfg{
		Port:         raw.Port,
		PublicURL:    raw.PublicURL,
		SourcesFile:  raw.SourcesFile,
		UserAgent:    raw.UserAgent,
		FetchTimeout: time.Duration(raw.FetchTimeout) * time.Second,
		Parser:       raw.Parser,
		Timezone:     raw.Timezone,
		Debug:        raw.Debug,
		Version:      GetVersion(),
	}

	return cfg, nil
}

// ApplyTimezone sets time.Local; an empty name keeps the system default.
func ApplyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}
