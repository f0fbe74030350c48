package update

import "testing"

func TestRuntimeConfigDefaults(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	if cfg.DatabasePath != ".dashd.db" {
		t.Fatalf("unexpected database default: %+v", cfg)
	}
	if cfg.ProbeAddr != "1.1.1.1:443" || cfg.ProbeIntervalSec != 30 {
		t.Fatalf("unexpected probe defaults: %+v", cfg)
	}
	if cfg.CompactWidth != 80 || cfg.RefreshBuffer != 16 {
		t.Fatalf("unexpected layout/refresh defaults: %+v", cfg)
	}
	if cfg.DesktopNotifications {
		t.Fatal("expected desktop notifications off by default")
	}
}

func TestRuntimeConfigFromEnv(t *testing.T) {
	t.Setenv("DASHD_DB", "state/dash.db")
	t.Setenv("DASHD_NAME", "Ada")
	t.Setenv("DASHD_EMOJI_STYLE", "apple")
	t.Setenv("DASHD_DESKTOP_NOTIFICATIONS", "true")
	t.Setenv("DASHD_PROBE_ADDR", "example.com:80")
	t.Setenv("DASHD_PROBE_INTERVAL_SECONDS", "10")
	t.Setenv("DASHD_COMPACT_WIDTH", "60")
	t.Setenv("DASHD_REFRESH_BUFFER", "64")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.DatabasePath != "state/dash.db" || cfg.UserName != "Ada" || cfg.EmojiStyle != "apple" {
		t.Fatalf("unexpected identity overrides: %+v", cfg)
	}
	if !cfg.DesktopNotifications {
		t.Fatal("expected desktop notifications true from env")
	}
	if cfg.ProbeAddr != "example.com:80" || cfg.ProbeIntervalSec != 10 {
		t.Fatalf("unexpected probe overrides: %+v", cfg)
	}
	if cfg.CompactWidth != 60 || cfg.RefreshBuffer != 64 {
		t.Fatalf("unexpected layout/refresh overrides: %+v", cfg)
	}
}

func TestRuntimeConfigIgnoresInvalidEnv(t *testing.T) {
	t.Setenv("DASHD_PROBE_INTERVAL_SECONDS", "soon")
	t.Setenv("DASHD_COMPACT_WIDTH", "-3")
	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.ProbeIntervalSec != 30 || cfg.CompactWidth != 80 {
		t.Fatalf("expected invalid env ignored: %+v", cfg)
	}
}
