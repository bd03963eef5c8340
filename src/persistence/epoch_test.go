package persistence

import (
	"os"
	"path/filepath"
	"testing"
)

// newTestState opens a PersistentState in a fresh temp directory.
func newTestState(t *testing.T) *PersistentState {
	t.Helper()
	ps, err := Open(filepath.Join(t.TempDir(), "state"))
	if err != nil {
		t.Fatalf("failed to open state directory: %v", err)
	}
	t.Cleanup(func() { ps.Close() })
	return ps
}

func TestEpochsUnsetOnFreshDirectory(t *testing.T) {
	ps := newTestState(t)

	ack, err := ps.AckEpoch()
	if err != nil {
		t.Fatalf("failed to read ack epoch: %v", err)
	}
	if ack != EpochUnset {
		t.Errorf("fresh ack epoch = %d, want %d", ack, EpochUnset)
	}

	proposed, err := ps.ProposedEpoch()
	if err != nil {
		t.Fatalf("failed to read proposed epoch: %v", err)
	}
	if proposed != EpochUnset {
		t.Errorf("fresh proposed epoch = %d, want %d", proposed, EpochUnset)
	}
}

func TestEpochRoundTrip(t *testing.T) {
	ps := newTestState(t)

	for _, epoch := range []int64{0, 1, 7, 1 << 40} {
		if err := ps.SetAckEpoch(epoch); err != nil {
			t.Fatalf("failed to set ack epoch %d: %v", epoch, err)
		}
		got, err := ps.AckEpoch()
		if err != nil {
			t.Fatalf("failed to read ack epoch: %v", err)
		}
		if got != epoch {
			t.Errorf("ack epoch round trip = %d, want %d", got, epoch)
		}
	}

	if err := ps.SetProposedEpoch(9); err != nil {
		t.Fatalf("failed to set proposed epoch: %v", err)
	}
	got, err := ps.ProposedEpoch()
	if err != nil {
		t.Fatalf("failed to read proposed epoch: %v", err)
	}
	if got != 9 {
		t.Errorf("proposed epoch round trip = %d, want 9", got)
	}
}

func TestEpochsAreIndependent(t *testing.T) {
	ps := newTestState(t)

	if err := ps.SetAckEpoch(3); err != nil {
		t.Fatalf("failed to set ack epoch: %v", err)
	}
	proposed, err := ps.ProposedEpoch()
	if err != nil {
		t.Fatalf("failed to read proposed epoch: %v", err)
	}
	if proposed != EpochUnset {
		t.Errorf("proposed epoch = %d after setting ack epoch only, want %d", proposed, EpochUnset)
	}
}

func TestEpochSurvivesReopen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")
	ps, err := Open(dir)
	if err != nil {
		t.Fatalf("failed to open state directory: %v", err)
	}
	if err := ps.SetAckEpoch(12); err != nil {
		t.Fatalf("failed to set ack epoch: %v", err)
	}
	if err := ps.Close(); err != nil {
		t.Fatalf("failed to close state: %v", err)
	}

	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("failed to reopen state directory: %v", err)
	}
	defer reopened.Close()

	ack, err := reopened.AckEpoch()
	if err != nil {
		t.Fatalf("failed to read ack epoch after reopen: %v", err)
	}
	if ack != 12 {
		t.Errorf("ack epoch after reopen = %d, want 12", ack)
	}
}

func TestCorruptEpochFileIsAFault(t *testing.T) {
	ps := newTestState(t)

	path := filepath.Join(ps.Dir(), "ack_epoch")
	if err := os.WriteFile(path, []byte("not a number"), 0644); err != nil {
		t.Fatalf("failed to corrupt epoch file: %v", err)
	}

	if _, err := ps.AckEpoch(); err == nil {
		t.Error("corrupt epoch file must surface a storage fault, not a default value")
	}
}

func TestEpochOnDiskEncoding(t *testing.T) {
	ps := newTestState(t)

	if err := ps.SetAckEpoch(42); err != nil {
		t.Fatalf("failed to set ack epoch: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(ps.Dir(), "ack_epoch"))
	if err != nil {
		t.Fatalf("failed to read epoch file: %v", err)
	}
	if string(data) != "42" {
		t.Errorf("epoch file contents = %q, want %q", data, "42")
	}
}
