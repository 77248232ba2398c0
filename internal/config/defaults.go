package config

const (
	defaultProfilePath  = "~/.config/padhost/Profiles.xml"
	defaultLogDir       = "~/.local/share/padhost/logs"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	defaultBackupOnSave = true
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ProfilePath: defaultProfilePath,
			LogDir:      defaultLogDir,
		},
		Profile: Profile{
			BackupOnSave: defaultBackupOnSave,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
