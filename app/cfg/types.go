package cfg

import "time"

type Cfg struct {
	// HTTP server
	Port      string
	PublicURL string

	// Sources
	SourcesFile  string
	UserAgent    string
	FetchTimeout time.Duration
	Parser       string

	// Application metadata
	Timezone string
	Debug    bool
	Version  string
}
