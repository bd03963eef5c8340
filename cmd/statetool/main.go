package main

import (
	"os"

	logs "github.com/danmuck/smplog"

	"github.com/danmuck/zab_state/cmd/internal/logcfg"
	"github.com/danmuck/zab_state/src/persistence"
)

func main() {
	logs.Configure(logcfg.Load())

	cfg, configPath, err := parseCLI(os.Args[1:], defaultConfig())
	if err != nil {
		logs.Errorf(err, "invalid arguments")
		printUsage(defaultConfig())
		os.Exit(1)
	}

	cfg, err = loadFileConfig(configPath, cfg)
	if err != nil {
		logs.Errorf(err, "failed to load config file")
		os.Exit(1)
	}

	// CLI arguments win over file values, so re-apply them.
	cfg, _, err = parseCLI(os.Args[1:], cfg)
	if err != nil {
		logs.Errorf(err, "invalid arguments")
		os.Exit(1)
	}

	ps, err := persistence.Open(cfg.DataDir)
	if err != nil {
		logs.Errorf(err, "failed to open state directory")
		os.Exit(1)
	}
	defer ps.Close()

	var run func(*persistence.PersistentState) error
	switch cfg.Action {
	case ActionEpochs:
		run = runEpochs
	case ActionConfig:
		run = runConfig
	case ActionSnapshot:
		run = runSnapshot
	case ActionLog:
		run = runLog
	case ActionFresh:
		run = runFresh
	default:
		run = runView
	}

	if err := run(ps); err != nil {
		logs.Errorf(err, "action failed")
		os.Exit(1)
	}
}
