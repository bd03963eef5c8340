package persistence

import (
	logs "github.com/danmuck/smplog"

	"github.com/danmuck/zab_state/src/zab"
)

// ConfigStore tracks the last-seen cluster configuration. The contents are
// opaque to the broadcast core; it only guarantees the round trip.
type ConfigStore struct {
	file scalarFile
}

func newConfigStore(dir string) *ConfigStore {
	return &ConfigStore{file: newScalarFile(dir, clusterConfigFile)}
}

// LastSeenConfig returns the stored configuration, or nil if none has ever
// been persisted (a fresh node).
func (c *ConfigStore) LastSeenConfig() (zab.ClusterConfiguration, error) {
	conf, ok, err := c.file.readConfig()
	if err != nil {
		return nil, err
	}
	if !ok {
		logs.Debugf("cluster config file not found, probably first boot")
		return nil, nil
	}
	return conf, nil
}

// SetLastSeenConfig overwrites the stored configuration.
func (c *ConfigStore) SetLastSeenConfig(conf zab.ClusterConfiguration) error {
	return c.file.writeConfig(conf)
}
