package txnlog

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/danmuck/zab_state/src/zab"
)

func newTestLog(t *testing.T) *SimpleLog {
	t.Helper()
	log, err := OpenSimpleLog(filepath.Join(t.TempDir(), "transaction.log"))
	if err != nil {
		t.Fatalf("failed to open log: %v", err)
	}
	t.Cleanup(func() { log.Close() })
	return log
}

func appendTxn(t *testing.T, log *SimpleLog, epoch, counter int64, body string) {
	t.Helper()
	err := log.Append(Transaction{
		Zxid: zab.Zxid{Epoch: epoch, Counter: counter},
		Type: 1,
		Body: []byte(body),
	})
	if err != nil {
		t.Fatalf("failed to append %d_%d: %v", epoch, counter, err)
	}
}

func TestEmptyLogHasNoZxid(t *testing.T) {
	log := newTestLog(t)
	if got := log.LatestZxid(); got != zab.ZxidNotExist {
		t.Errorf("empty log latest zxid = %v, want not-exist", got)
	}
}

func TestAppendAndIterate(t *testing.T) {
	log := newTestLog(t)
	appendTxn(t, log, 1, 1, "first")
	appendTxn(t, log, 1, 2, "second")
	appendTxn(t, log, 2, 1, "third")

	if got := log.LatestZxid(); got != (zab.Zxid{Epoch: 2, Counter: 1}) {
		t.Errorf("latest zxid = %v, want 2_1", got)
	}

	it, err := log.Iterator(zab.Zxid{Epoch: 0, Counter: 0})
	if err != nil {
		t.Fatalf("failed to open iterator: %v", err)
	}
	defer it.Close()

	var bodies []string
	for {
		txn, err := it.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("iterator failed: %v", err)
		}
		bodies = append(bodies, string(txn.Body))
	}
	want := []string{"first", "second", "third"}
	if len(bodies) != len(want) {
		t.Fatalf("iterated %d records, want %d", len(bodies), len(want))
	}
	for i := range want {
		if bodies[i] != want[i] {
			t.Errorf("record %d = %q, want %q", i, bodies[i], want[i])
		}
	}
}

func TestIteratorStartsAtRequestedZxid(t *testing.T) {
	log := newTestLog(t)
	appendTxn(t, log, 1, 1, "a")
	appendTxn(t, log, 1, 2, "b")
	appendTxn(t, log, 1, 3, "c")

	it, err := log.Iterator(zab.Zxid{Epoch: 1, Counter: 2})
	if err != nil {
		t.Fatalf("failed to open iterator: %v", err)
	}
	defer it.Close()

	txn, err := it.Next()
	if err != nil {
		t.Fatalf("iterator failed: %v", err)
	}
	if string(txn.Body) != "b" {
		t.Errorf("first record from 1_2 = %q, want %q", txn.Body, "b")
	}
}

func TestBodyRoundTrip(t *testing.T) {
	log := newTestLog(t)
	body := []byte{0x00, 0xff, 0x10, 0x00}
	if err := log.Append(Transaction{Zxid: zab.Zxid{Epoch: 1, Counter: 1}, Type: 2, Body: body}); err != nil {
		t.Fatalf("failed to append: %v", err)
	}

	it, err := log.Iterator(zab.Zxid{Epoch: 1, Counter: 1})
	if err != nil {
		t.Fatalf("failed to open iterator: %v", err)
	}
	defer it.Close()

	txn, err := it.Next()
	if err != nil {
		t.Fatalf("iterator failed: %v", err)
	}
	if !bytes.Equal(txn.Body, body) || txn.Type != 2 {
		t.Errorf("round trip = type %d body %v, want type 2 body %v", txn.Type, txn.Body, body)
	}
}

func TestReopenRecoversLatestZxid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transaction.log")
	log, err := OpenSimpleLog(path)
	if err != nil {
		t.Fatalf("failed to open log: %v", err)
	}
	appendTxn(t, log, 1, 1, "a")
	appendTxn(t, log, 1, 2, "b")
	if err := log.Close(); err != nil {
		t.Fatalf("failed to close log: %v", err)
	}

	reopened, err := OpenSimpleLog(path)
	if err != nil {
		t.Fatalf("failed to reopen log: %v", err)
	}
	defer reopened.Close()

	if got := reopened.LatestZxid(); got != (zab.Zxid{Epoch: 1, Counter: 2}) {
		t.Errorf("latest zxid after reopen = %v, want 1_2", got)
	}
}

// A crash mid-append leaves a torn frame at the tail. Reopening must cut the
// log back to the last whole record instead of failing.
func TestTornTailFrameIsTruncatedOnOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transaction.log")
	log, err := OpenSimpleLog(path)
	if err != nil {
		t.Fatalf("failed to open log: %v", err)
	}
	appendTxn(t, log, 1, 1, "whole record")
	if err := log.Close(); err != nil {
		t.Fatalf("failed to close log: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("failed to stat log: %v", err)
	}
	goodSize := info.Size()

	// Append a frame header that claims more bytes than follow.
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatalf("failed to open log for corruption: %v", err)
	}
	torn := make([]byte, 4)
	binary.BigEndian.PutUint32(torn, 100)
	if _, err := f.Write(append(torn, []byte("short")...)); err != nil {
		t.Fatalf("failed to write torn frame: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("failed to close corrupted log: %v", err)
	}

	reopened, err := OpenSimpleLog(path)
	if err != nil {
		t.Fatalf("reopening a log with a torn tail must succeed: %v", err)
	}
	defer reopened.Close()

	if got := reopened.LatestZxid(); got != (zab.Zxid{Epoch: 1, Counter: 1}) {
		t.Errorf("latest zxid after torn-tail recovery = %v, want 1_1", got)
	}
	info, err = os.Stat(path)
	if err != nil {
		t.Fatalf("failed to stat recovered log: %v", err)
	}
	if info.Size() != goodSize {
		t.Errorf("recovered log size = %d, want %d", info.Size(), goodSize)
	}
}

func TestTruncateDropsLaterTransactions(t *testing.T) {
	log := newTestLog(t)
	appendTxn(t, log, 1, 1, "keep")
	appendTxn(t, log, 1, 2, "keep too")
	appendTxn(t, log, 2, 1, "drop")
	appendTxn(t, log, 2, 2, "drop too")

	if err := log.Truncate(zab.Zxid{Epoch: 1, Counter: 2}); err != nil {
		t.Fatalf("failed to truncate: %v", err)
	}

	if got := log.LatestZxid(); got != (zab.Zxid{Epoch: 1, Counter: 2}) {
		t.Errorf("latest zxid after truncate = %v, want 1_2", got)
	}

	it, err := log.Iterator(zab.Zxid{Epoch: 0, Counter: 0})
	if err != nil {
		t.Fatalf("failed to open iterator: %v", err)
	}
	defer it.Close()

	count := 0
	for {
		_, err := it.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("iterator failed: %v", err)
		}
		count++
	}
	if count != 2 {
		t.Errorf("record count after truncate = %d, want 2", count)
	}
}

func TestAppendAfterTruncate(t *testing.T) {
	log := newTestLog(t)
	appendTxn(t, log, 1, 1, "a")
	appendTxn(t, log, 1, 2, "b")
	if err := log.Truncate(zab.Zxid{Epoch: 1, Counter: 1}); err != nil {
		t.Fatalf("failed to truncate: %v", err)
	}
	appendTxn(t, log, 1, 2, "b2")

	it, err := log.Iterator(zab.Zxid{Epoch: 1, Counter: 2})
	if err != nil {
		t.Fatalf("failed to open iterator: %v", err)
	}
	defer it.Close()

	txn, err := it.Next()
	if err != nil {
		t.Fatalf("iterator failed: %v", err)
	}
	if string(txn.Body) != "b2" {
		t.Errorf("record after re-append = %q, want %q", txn.Body, "b2")
	}
}
