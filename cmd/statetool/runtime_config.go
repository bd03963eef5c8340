package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

type MenuAction string

const (
	ActionView     MenuAction = "view"
	ActionEpochs   MenuAction = "epochs"
	ActionConfig   MenuAction = "config"
	ActionSnapshot MenuAction = "snapshot"
	ActionLog      MenuAction = "log"
	ActionFresh    MenuAction = "fresh"
)

const defaultDataDir = "./local/state"

// RuntimeConfig controls what the tool inspects. Values come from the
// config file when present, overridden by CLI arguments.
type RuntimeConfig struct {
	DataDir        string `toml:"data_dir"`
	Action         MenuAction
	ActionProvided bool
}

func defaultConfig() RuntimeConfig {
	return RuntimeConfig{
		DataDir: defaultDataDir,
		Action:  ActionView,
	}
}

const CONFIG_FLAG = "--config"
const DATA_DIR_FLAG = "--data-dir"

var configCandidates = []string{
	"./statetool.config.toml",
	"./local/statetool.config.toml",
}

// loadFileConfig merges the first readable TOML config file into cfg.
func loadFileConfig(path string, cfg RuntimeConfig) (RuntimeConfig, error) {
	paths := configCandidates
	if path != "" {
		paths = []string{path}
	}

	for _, candidate := range paths {
		if _, err := os.Stat(candidate); err != nil {
			if path == "" {
				continue
			}
			return cfg, fmt.Errorf("config file %q not readable: %w", candidate, err)
		}
		if _, err := toml.DecodeFile(candidate, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to decode config file %q: %w", candidate, err)
		}
		return cfg, nil
	}
	return cfg, nil
}

func parseCLI(args []string, cfg RuntimeConfig) (RuntimeConfig, string, error) {
	runtimeCfg := cfg
	configPath := ""
	actionProvided := false

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == CONFIG_FLAG {
			if i+1 >= len(args) {
				return runtimeCfg, configPath, fmt.Errorf("missing value after %q", CONFIG_FLAG)
			}
			i++
			configPath = strings.TrimSpace(args[i])
			continue
		}

		if after, ok := strings.CutPrefix(arg, CONFIG_FLAG+"="); ok {
			configPath = strings.TrimSpace(after)
			continue
		}

		if arg == DATA_DIR_FLAG {
			if i+1 >= len(args) {
				return runtimeCfg, configPath, fmt.Errorf("missing value after %q", DATA_DIR_FLAG)
			}
			i++
			runtimeCfg.DataDir = strings.TrimSpace(args[i])
			continue
		}

		if after, ok := strings.CutPrefix(arg, DATA_DIR_FLAG+"="); ok {
			runtimeCfg.DataDir = strings.TrimSpace(after)
			continue
		}

		normalized := MenuAction(strings.ToLower(strings.TrimSpace(arg)))
		switch normalized {
		case ActionView, ActionEpochs, ActionConfig, ActionSnapshot, ActionLog, ActionFresh:
			if actionProvided {
				return runtimeCfg, configPath, fmt.Errorf("multiple actions provided: %q", arg)
			}
			runtimeCfg.Action = normalized
			runtimeCfg.ActionProvided = true
			actionProvided = true
		default:
			return runtimeCfg, configPath, fmt.Errorf("unsupported argument %q", arg)
		}
	}

	return runtimeCfg, configPath, nil
}

func printUsage(cfg RuntimeConfig) {
	fmt.Printf("Usage: statetool [view|epochs|config|snapshot|log|fresh] [%s PATH] [%s PATH]\n",
		DATA_DIR_FLAG,
		CONFIG_FLAG,
	)
	fmt.Printf("No action defaults to %q.\n", cfg.Action)
	fmt.Printf("Data directory defaults to %q; override with %q or the config file.\n", cfg.DataDir, DATA_DIR_FLAG)
	fmt.Println("Actions: view (full state report), epochs (acknowledged + proposed), config (last-seen cluster config), snapshot (latest snapshot zxid), log (dump transaction log), fresh (fresh-node check).")
}
