package hearth

const (
	// ConfigAppName is the base directory name used for hearth configuration.
	// Helpers use this value to construct platform-specific config paths such as:
	//   $XDG_CONFIG_HOME/hearth (or ~/.config/hearth) on Unix-like systems
	//   %APPDATA%\hearth on Windows
	ConfigAppName = "hearth"

	// ConfigFileName is the configuration file name inside the config
	// directory.
	ConfigFileName = "hearth.yml"
)
