package update

import (
	"os"
	"strconv"
	"strings"
)

type RuntimeConfig struct {
	DatabasePath         string
	UserName             string
	EmojiStyle           string
	DesktopNotifications bool
	ProbeAddr            string
	ProbeIntervalSec     int
	CompactWidth         int
	RefreshBuffer        int
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DatabasePath:         ".dashd.db",
		EmojiStyle:           "native",
		DesktopNotifications: false,
		ProbeAddr:            "1.1.1.1:443",
		ProbeIntervalSec:     30,
		CompactWidth:         80,
		RefreshBuffer:        16,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("DASHD_DB")); v != "" {
		cfg.DatabasePath = v
	}
	if v := strings.TrimSpace(os.Getenv("DASHD_NAME")); v != "" {
		cfg.UserName = v
	}
	if v := strings.TrimSpace(os.Getenv("DASHD_EMOJI_STYLE")); v != "" {
		cfg.EmojiStyle = v
	}
	if v, ok := getEnvBool("DASHD_DESKTOP_NOTIFICATIONS"); ok {
		cfg.DesktopNotifications = v
	}
	if v := strings.TrimSpace(os.Getenv("DASHD_PROBE_ADDR")); v != "" {
		cfg.ProbeAddr = v
	}
	if v, ok := getEnvInt("DASHD_PROBE_INTERVAL_SECONDS"); ok && v > 0 {
		cfg.ProbeIntervalSec = v
	}
	if v, ok := getEnvInt("DASHD_COMPACT_WIDTH"); ok && v > 0 {
		cfg.CompactWidth = v
	}
	if v, ok := getEnvInt("DASHD_REFRESH_BUFFER"); ok && v > 0 {
		cfg.RefreshBuffer = v
	}
	return cfg
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
