package config

const (
	defaultCatalogFormat         = "auto"
	defaultCatalogTimeoutSeconds = 30
	defaultSQLiteQuery           = "SELECT name, file FROM images ORDER BY rowid"
	defaultMinScore              = 4
	defaultImagesRoot            = "images/"
	defaultPlaceholder           = "placeholder.svg"
	defaultMaxHops               = 6
	defaultMaxChars              = 480
	defaultLogFormat             = "console"
	defaultLogLevel              = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Catalog: Catalog{
			Format:         defaultCatalogFormat,
			HasHeader:      true,
			SQLiteQuery:    defaultSQLiteQuery,
			TimeoutSeconds: defaultCatalogTimeoutSeconds,
		},
		Matching: Matching{
			MinScore: defaultMinScore,
		},
		Page: Page{
			ImagesRoot:   defaultImagesRoot,
			Placeholders: []string{defaultPlaceholder},
			MaxHops:      defaultMaxHops,
			MaxChars:     defaultMaxChars,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
