package persistence

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/danmuck/zab_state/src/zab"
)

// scalarFile is a single small durable value stored under a well-known name
// in the state directory. A file that has never been written reads back as
// absent; every other failure is a storage fault and is propagated as-is.
type scalarFile struct {
	path string
}

func newScalarFile(dir, name string) scalarFile {
	return scalarFile{path: filepath.Join(dir, name)}
}

// readInt64 returns the stored integer, or ok=false if the file has never
// been written.
func (s scalarFile) readInt64() (value int64, ok bool, err error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	value, err = strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("corrupt integer file %s: %w", s.path, err)
	}
	return value, true, nil
}

func (s scalarFile) writeInt64(value int64) error {
	return s.writeAtomic([]byte(strconv.FormatInt(value, 10)))
}

// readConfig returns the stored key/value bag, or ok=false if the file has
// never been written. A file that exists but does not parse is a storage
// fault, not an absent value.
func (s scalarFile) readConfig() (conf zab.ClusterConfiguration, ok bool, err error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	conf, err = zab.ReadProperties(bytes.NewReader(data))
	if err != nil {
		return nil, false, fmt.Errorf("corrupt config file %s: %w", s.path, err)
	}
	return conf, true, nil
}

func (s scalarFile) writeConfig(conf zab.ClusterConfiguration) error {
	var buf bytes.Buffer
	if err := conf.WriteProperties(&buf); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return s.writeAtomic(buf.Bytes())
}

// writeAtomic replaces the file contents through a staging file and a
// rename, so a crash mid-write leaves either the old value or the new one.
func (s scalarFile) writeAtomic(data []byte) error {
	dir := filepath.Dir(s.path)
	tmpFile, err := os.CreateTemp(dir, filepath.Base(s.path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", s.path, err)
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
		return fmt.Errorf("failed to write temp file for %s: %w", s.path, err)
	}
	if err := tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("failed to sync temp file for %s: %w", s.path, err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file for %s: %w", s.path, err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("failed to atomically publish %s: %w", s.path, err)
	}
	cleanupTmp = false
	return nil
}
