package browserdump

import (
	"fmt"
	"time"

	"github.com/go-ini/ini"
)

// LoadConfig reads an optional INI run configuration and folds it into opts.
// Recognized keys:
//
//	[output]
//	dir       = ./exports
//	delimiter = "|"
//
//	[chrome]
//	profile = Default            ; name, profile dir, or user data dir
//
//	[edge]
//	profile = /path/to/User Data
//
// Flags and explicit Options fields win over the file: only unset fields are
// filled in. The file is purely an override mechanism; without one the tool
// runs argument-free on platform defaults.
func LoadConfig(path string, opts Options) (Options, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return opts, fmt.Errorf("browserdump: load config %s: %w", path, err)
	}

	out := cfg.Section("output")
	if opts.OutputDir == "" {
		opts.OutputDir = out.Key("dir").String()
	}
	if opts.Delimiter == 0 {
		if d := out.Key("delimiter").String(); d != "" {
			runes := []rune(d)
			if len(runes) != 1 {
				return opts, fmt.Errorf("browserdump: config %s: delimiter must be a single character, got %q", path, d)
			}
			opts.Delimiter = runes[0]
		}
	}
	if opts.Timeout == 0 {
		if v, err := out.Key("timeout").Duration(); err == nil && v > 0 {
			opts.Timeout = v
		}
	}

	for _, b := range []Browser{BrowserChrome, BrowserEdge} {
		prof := cfg.Section(string(b)).Key("profile").String()
		if prof == "" {
			continue
		}
		if opts.Profiles == nil {
			opts.Profiles = make(map[Browser]string, 2)
		}
		if _, ok := opts.Profiles[b]; !ok {
			opts.Profiles[b] = prof
		}
	}

	return opts, nil
}

// withDefaults fills the remaining zero fields.
func (o Options) withDefaults() Options {
	if len(o.Browsers) == 0 {
		o.Browsers = DefaultBrowsers()
	}
	if o.OutputDir == "" {
		o.OutputDir = "."
	}
	if o.Delimiter == 0 {
		o.Delimiter = ','
	}
	if o.Timeout <= 0 {
		o.Timeout = 3 * time.Second
	}
	return o
}
