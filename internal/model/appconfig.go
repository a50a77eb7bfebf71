package model

// AppConfig holds application-wide preferences. Tool parameters are never
// stored here; every session starts from DefaultToolProfile.
type AppConfig struct {
	// Stroke and fill settings for every renderer
	Style Style `json:"style"`

	// Application preferences
	ExportDir string `json:"export_dir"` // Last directory used for exports, "" = home
	LogLevel  string `json:"log_level"`  // "debug", "info", "warn", "error"
	Theme     string `json:"theme"`      // "light", "dark", "system"
	PNGDPI    int    `json:"png_dpi"`    // Raster export resolution
}

// DefaultAppConfig returns an AppConfig with the default drawing style.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Style:    DefaultStyle(),
		LogLevel: "info",
		Theme:    "system",
		PNGDPI:   150,
	}
}
