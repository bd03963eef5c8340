package logcfg

import (
	"os"

	logs "github.com/danmuck/smplog"
)

const envConfigPath = "SMPLOG_CONFIG"

var candidates = []string{
	"./smplog.config.toml",
	"./local/smplog.config.toml",
}

// Load returns file-backed logging configuration when available, otherwise
// defaults. The SMPLOG_CONFIG env var takes priority over candidate paths.
func Load() logs.Config {
	paths := candidates
	if env := os.Getenv(envConfigPath); env != "" {
		paths = append([]string{env}, candidates...)
	}

	for _, path := range paths {
		if cfg, err := logs.ConfigFromFile(path); err == nil {
			return cfg
		}
	}

	return logs.DefaultConfig()
}
