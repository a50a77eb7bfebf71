package model

import "testing"

func TestDefaultAppConfigMatchesDefaults(t *testing.T) {
	cfg := DefaultAppConfig()

	if cfg.Style != DefaultStyle() {
		t.Errorf("Style mismatch: got %+v", cfg.Style)
	}
	if cfg.Theme != "system" {
		t.Errorf("expected default theme=system, got %s", cfg.Theme)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level=info, got %s", cfg.LogLevel)
	}
	if cfg.PNGDPI != 150 {
		t.Errorf("expected default PNG resolution 150, got %d", cfg.PNGDPI)
	}
	if cfg.ExportDir != "" {
		t.Errorf("expected empty export dir, got %q", cfg.ExportDir)
	}
}
