package config

const (
	defaultDatabasePath       = "~/.local/share/booki/booki.db"
	defaultOpenLibraryBaseURL = "https://openlibrary.org"
	defaultOpenLibraryTimeout = 15
	defaultLogFormat          = "console"
	defaultLogLevel           = "warn"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Database: Database{
			Path: defaultDatabasePath,
		},
		OpenLibrary: OpenLibrary{
			BaseURL:        defaultOpenLibraryBaseURL,
			RequestTimeout: defaultOpenLibraryTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
