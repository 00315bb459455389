package config

import "flag"

// Flags holds the command-line overrides shared by every objtool command.
// Zero values leave the loaded configuration untouched.
type Flags struct {
	Config      string
	Debug       bool
	Encoding    string
	Probe       string
	MaxErrors   int
	MaxWarnings int
	Format      string
}

// Register adds the override flags to fs.
func (f *Flags) Register(fs *flag.FlagSet) {
	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.Encoding, "encoding", "", "Character set of the source files (e.g. latin1, euc-kr)")
	fs.StringVar(&f.Probe, "probe", "", "Texture probe: open, decode or none")
	fs.IntVar(&f.MaxErrors, "max-errors", -1, "Maximum errors to print (0 = all)")
	fs.IntVar(&f.MaxWarnings, "max-warnings", -1, "Maximum warnings to print (0 = all)")
	fs.StringVar(&f.Format, "format", "", "Output format: text or yaml")
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config, f *Flags) {
	if f == nil {
		return
	}
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Encoding != "" {
		cfg.Parse.Encoding = f.Encoding
	}
	if f.Probe != "" {
		cfg.Parse.TextureProbe = f.Probe
	}
	if f.MaxErrors >= 0 {
		cfg.Output.MaxErrors = f.MaxErrors
	}
	if f.MaxWarnings >= 0 {
		cfg.Output.MaxWarnings = f.MaxWarnings
	}
	if f.Format != "" {
		cfg.Output.Format = f.Format
	}
}
