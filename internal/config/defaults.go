package config

const (
	defaultDataDir    = "~/.local/share/coresheet"
	defaultLogDir     = "~/.local/share/coresheet/logs"
	defaultOutputDir  = "~/.local/share/coresheet/output"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
	defaultSheetTitle = "Personal Core Sheet"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:   defaultDataDir,
			LogDir:    defaultLogDir,
			OutputDir: defaultOutputDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Print: Print{
			SheetTitle: defaultSheetTitle,
		},
	}
}
