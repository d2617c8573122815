package config

const (
	defaultDataDir          = "~/.local/share/hexctl"
	defaultBackupDir        = "~/.local/share/hexctl/backups"
	defaultLogDir           = "~/.local/share/hexctl/logs"
	defaultRequestTimeout   = 10
	defaultKeepShards       = 1
	defaultMerakiBaseURL    = "https://cdn.merakianalytics.com/riot/lol/resources/latest/en-US"
	defaultCacheMaxAgeHours = 24
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

// defaultInstallDirs are the well-known client install locations searched for a
// lockfile when no explicit path is configured.
var defaultInstallDirs = []string{
	"/Applications/League of Legends.app/Contents/LoL",
	"C:/Riot Games/League of Legends",
	"~/.local/share/leagueoflegends",
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:   defaultDataDir,
			BackupDir: defaultBackupDir,
			LogDir:    defaultLogDir,
		},
		Client: Client{
			InstallDirs:    append([]string(nil), defaultInstallDirs...),
			RequestTimeout: defaultRequestTimeout,
		},
		Loot: Loot{
			KeepShards: defaultKeepShards,
		},
		Meraki: Meraki{
			BaseURL:          defaultMerakiBaseURL,
			CacheMaxAgeHours: defaultCacheMaxAgeHours,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
