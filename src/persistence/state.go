package persistence

import (
	"fmt"
	"os"
	"path/filepath"

	logs "github.com/danmuck/smplog"

	"github.com/danmuck/zab_state/src/txnlog"
	"github.com/danmuck/zab_state/src/zab"
)

// Well-known file names inside the state directory. These are part of the
// on-disk contract and must not change.
const (
	ackEpochFile      = "ack_epoch"
	proposedEpochFile = "proposed_epoch"
	clusterConfigFile = "cluster_config"

	// LogFileName is where the bound transaction log keeps its storage.
	LogFileName = "transaction.log"
)

// PersistentState owns the durable state a node needs to rejoin the
// ensemble after a crash: the acknowledged and proposed epochs, the
// last-seen cluster configuration, the snapshots, and a handle to the
// transaction log rooted in the same directory.
//
// It is written for a single control goroutine; calls block until the
// underlying storage operation completes or fails and no internal locking
// is provided.
type PersistentState struct {
	dir       string
	epochs    *EpochStore
	config    *ConfigStore
	snapshots *SnapshotManager
	log       txnlog.Log
	ownsLog   bool
}

// Open binds a PersistentState to dir, creating the directory if needed,
// and opens the transaction log at its well-known file name.
func Open(dir string) (*PersistentState, error) {
	return OpenWithLog(dir, nil)
}

// OpenWithLog is Open with an externally supplied transaction log, used for
// injection in tests. When log is nil the default file-backed log is opened
// and owned (closed by Close).
func OpenWithLog(dir string, log txnlog.Log) (*PersistentState, error) {
	logs.Debugf("opening state directory %s", dir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create state directory %s: %w", dir, err)
	}

	ps := &PersistentState{
		dir:       dir,
		epochs:    newEpochStore(dir),
		config:    newConfigStore(dir),
		snapshots: newSnapshotManager(dir),
		log:       log,
	}
	if ps.log == nil {
		opened, err := txnlog.OpenSimpleLog(filepath.Join(dir, LogFileName))
		if err != nil {
			return nil, fmt.Errorf("failed to open transaction log: %w", err)
		}
		ps.log = opened
		ps.ownsLog = true
	}
	return ps, nil
}

// Dir returns the state directory path.
func (ps *PersistentState) Dir() string {
	return ps.dir
}

// Log returns the bound transaction log for the replication logic.
func (ps *PersistentState) Log() txnlog.Log {
	return ps.log
}

// IsEmpty reports whether the node has no prior state: the state directory
// holds nothing but the transaction log's own storage. Bootstrap uses this
// to tell a brand-new node from one recovering existing state.
func (ps *PersistentState) IsEmpty() (bool, error) {
	entries, err := os.ReadDir(ps.dir)
	if err != nil {
		return false, fmt.Errorf("failed to read state directory %s: %w", ps.dir, err)
	}
	for _, entry := range entries {
		if entry.Name() != LogFileName {
			return false, nil
		}
	}
	return true, nil
}

// Close releases the transaction log if this PersistentState opened it.
func (ps *PersistentState) Close() error {
	if !ps.ownsLog {
		return nil
	}
	return ps.log.Close()
}

// Epoch store delegation.

func (ps *PersistentState) AckEpoch() (int64, error) {
	return ps.epochs.AckEpoch()
}

func (ps *PersistentState) SetAckEpoch(epoch int64) error {
	return ps.epochs.SetAckEpoch(epoch)
}

func (ps *PersistentState) ProposedEpoch() (int64, error) {
	return ps.epochs.ProposedEpoch()
}

func (ps *PersistentState) SetProposedEpoch(epoch int64) error {
	return ps.epochs.SetProposedEpoch(epoch)
}

// Config store delegation.

func (ps *PersistentState) LastSeenConfig() (zab.ClusterConfiguration, error) {
	return ps.config.LastSeenConfig()
}

func (ps *PersistentState) SetLastSeenConfig(conf zab.ClusterConfiguration) error {
	return ps.config.SetLastSeenConfig(conf)
}

// Snapshot manager delegation.

func (ps *PersistentState) SnapshotFile() (string, error) {
	return ps.snapshots.SnapshotFile()
}

func (ps *PersistentState) SnapshotZxid() (zab.Zxid, error) {
	return ps.snapshots.SnapshotZxid()
}

func (ps *PersistentState) CreateTempFile(prefix string) (*os.File, error) {
	return ps.snapshots.CreateTempFile(prefix)
}

func (ps *PersistentState) InstallSnapshot(stagingPath string, zxid zab.Zxid) error {
	return ps.snapshots.InstallSnapshot(stagingPath, zxid)
}

func (ps *PersistentState) SnapshotData() ([]byte, error) {
	return ps.snapshots.SnapshotData()
}

func (ps *PersistentState) SetSnapshotData(data []byte, zxid zab.Zxid) error {
	return ps.snapshots.SetSnapshotData(data, zxid)
}
