package persistence

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logs "github.com/danmuck/smplog"

	"github.com/danmuck/zab_state/src/zab"
)

// ErrNoSnapshot is returned when snapshot data is requested but no snapshot
// has ever been installed. This indicates a caller bug, not a disk fault.
var ErrNoSnapshot = errors.New("no snapshot file found")

// snapshotNamePattern matches installed snapshot files. Staging files never
// match, so a crash mid-write can only leave an ignored orphan behind.
var snapshotNamePattern = regexp.MustCompile(`^snapshot\.(\d+)_(\d+)$`)

// SnapshotManager owns the snapshot files inside the state directory:
// staging, atomic installation, and discovery of the current snapshot.
//
// The current snapshot is the one with the numerically greatest zxid parsed
// from its file name. Older implementations picked the lexicographically
// greatest name instead, which diverges once a component reaches double
// digits ("snapshot.1_10" sorts before "snapshot.1_2"); file names are kept
// unpadded and compatible, only the selection rule differs.
type SnapshotManager struct {
	dir string
}

func newSnapshotManager(dir string) *SnapshotManager {
	return &SnapshotManager{dir: dir}
}

// SnapshotFile returns the path of the current snapshot, or "" if no
// snapshot has been installed.
func (m *SnapshotManager) SnapshotFile() (string, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return "", fmt.Errorf("failed to read state directory %s: %w", m.dir, err)
	}

	best := ""
	bestZxid := zab.ZxidNotExist
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		match := snapshotNamePattern.FindStringSubmatch(entry.Name())
		if match == nil {
			continue
		}
		zxid, err := zab.ZxidFromSimpleString(match[1] + "_" + match[2])
		if err != nil {
			// Unparseable components cannot happen for names the pattern
			// accepted, short of overflow. Skip rather than guess.
			logs.Warnf("ignoring snapshot file %s: %v", entry.Name(), err)
			continue
		}
		if zxid.Compare(bestZxid) > 0 {
			best = filepath.Join(m.dir, entry.Name())
			bestZxid = zxid
		}
	}
	return best, nil
}

// SnapshotZxid returns the zxid the current snapshot is valid through, or
// zab.ZxidNotExist if no snapshot has been installed.
func (m *SnapshotManager) SnapshotZxid() (zab.Zxid, error) {
	snapshot, err := m.SnapshotFile()
	if err != nil {
		return zab.Zxid{}, err
	}
	if snapshot == "" {
		return zab.ZxidNotExist, nil
	}
	name := filepath.Base(snapshot)
	match := snapshotNamePattern.FindStringSubmatch(name)
	return zab.ZxidFromSimpleString(match[1] + "_" + match[2])
}

// CreateTempFile creates a uniquely named staging file in the state
// directory. The file is invisible to snapshot discovery until it is
// published via InstallSnapshot.
func (m *SnapshotManager) CreateTempFile(prefix string) (*os.File, error) {
	f, err := os.CreateTemp(m.dir, prefix+"-*.tmp")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file in %s: %w", m.dir, err)
	}
	return f, nil
}

// InstallSnapshot publishes a fully written staging file as the snapshot
// valid through zxid. The rename is atomic: under a crash the snapshot name
// either does not exist or holds the complete contents, never a torn write.
func (m *SnapshotManager) InstallSnapshot(stagingPath string, zxid zab.Zxid) error {
	snapshot := filepath.Join(m.dir, fmt.Sprintf("snapshot.%s", zxid.SimpleString()))
	logs.Debugf("atomically moving snapshot file to %s", snapshot)
	if err := os.Rename(stagingPath, snapshot); err != nil {
		return fmt.Errorf("failed to install snapshot %s: %w", snapshot, err)
	}
	return nil
}

// SnapshotData reads and returns the full contents of the current snapshot.
// It returns ErrNoSnapshot if none has ever been installed.
func (m *SnapshotManager) SnapshotData() ([]byte, error) {
	snapshot, err := m.SnapshotFile()
	if err != nil {
		return nil, err
	}
	if snapshot == "" {
		return nil, ErrNoSnapshot
	}
	data, err := os.ReadFile(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", snapshot, err)
	}
	return data, nil
}

// SetSnapshotData writes data to a staging file, syncs it, and installs it
// as the snapshot valid through zxid.
func (m *SnapshotManager) SetSnapshotData(data []byte, zxid zab.Zxid) error {
	tmpFile, err := m.CreateTempFile("snapshot")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	cleanupTmp := true
	defer func() {
		if cleanupTmp {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("failed to write snapshot data: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("failed to sync snapshot data: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close snapshot staging file: %w", err)
	}

	if err := m.InstallSnapshot(tmpPath, zxid); err != nil {
		return err
	}
	cleanupTmp = false
	return nil
}
