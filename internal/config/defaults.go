package config

const (
	defaultDataDir      = "~/.local/share/scormd/data"
	defaultLogDir       = "~/.local/share/scormd/logs"
	defaultAPIBind      = "127.0.0.1:8081"
	defaultMaxUploadMiB = 200
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
			APIBind: defaultAPIBind,
		},
		Server: Server{
			MaxUploadMiB: defaultMaxUploadMiB,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
