package txnlog

import (
	"bufio"
	"fmt"
	"io"
	"os"

	logs "github.com/danmuck/smplog"

	"github.com/danmuck/zab_state/src/zab"
)

// Transaction is one accepted transaction: its identifier, a protocol type
// tag, and the opaque payload the state machine will apply.
type Transaction struct {
	Zxid zab.Zxid
	Type int32
	Body []byte
}

// Log is the append-only durable transaction record the broadcast protocol
// replays after a crash. Implementations serve a single writer goroutine.
type Log interface {
	// Append adds txn at the tail of the log.
	Append(txn Transaction) error
	// LatestZxid returns the identifier of the last appended transaction,
	// or zab.ZxidNotExist when the log is empty.
	LatestZxid() zab.Zxid
	// Iterator returns a forward iterator positioned at the first
	// transaction whose zxid is >= start.
	Iterator(start zab.Zxid) (Iterator, error)
	// Truncate drops every transaction after zxid.
	Truncate(zxid zab.Zxid) error
	// Sync flushes appended transactions to stable storage.
	Sync() error
	// Close releases the underlying storage.
	Close() error
}

// Iterator walks log transactions in append order.
type Iterator interface {
	// Next returns the next transaction, or io.EOF past the end.
	Next() (Transaction, error)
	Close() error
}

// SimpleLog stores framed transaction records in a single file. On open it
// scans the file to find the latest zxid; a torn tail frame left by a crash
// mid-append is cut off so the log ends at the last whole record.
type SimpleLog struct {
	path       string
	file       *os.File
	latestZxid zab.Zxid
}

// OpenSimpleLog opens (creating if absent) the log file at path and
// recovers its tail position.
func OpenSimpleLog(path string) (*SimpleLog, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	log := &SimpleLog{
		path:       path,
		file:       file,
		latestZxid: zab.ZxidNotExist,
	}
	if err := log.recover(); err != nil {
		_ = file.Close()
		return nil, err
	}
	return log, nil
}

// recover scans from the start, remembering the offset after the last whole
// record, and truncates anything past it.
func (l *SimpleLog) recover() error {
	if _, err := l.file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek log file %s: %w", l.path, err)
	}

	reader := bufio.NewReader(l.file)
	var goodOffset int64
	for {
		txn, n, err := decodeRecord(reader)
		if err == io.EOF {
			break
		}
		if err == io.ErrUnexpectedEOF {
			logs.Warnf("log %s has a torn tail frame, truncating at offset %d", l.path, goodOffset)
			break
		}
		if err != nil {
			return fmt.Errorf("corrupt log file %s at offset %d: %w", l.path, goodOffset, err)
		}
		goodOffset += n
		l.latestZxid = txn.Zxid
	}

	if err := l.file.Truncate(goodOffset); err != nil {
		return fmt.Errorf("failed to truncate log file %s: %w", l.path, err)
	}
	if _, err := l.file.Seek(goodOffset, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek log file %s: %w", l.path, err)
	}
	return nil
}

// Append adds txn at the tail of the log.
func (l *SimpleLog) Append(txn Transaction) error {
	frame, err := encodeRecord(txn)
	if err != nil {
		return err
	}
	if _, err := l.file.Write(frame); err != nil {
		return fmt.Errorf("failed to append to log file %s: %w", l.path, err)
	}
	l.latestZxid = txn.Zxid
	return nil
}

// LatestZxid returns the identifier of the last appended transaction, or
// zab.ZxidNotExist when the log is empty.
func (l *SimpleLog) LatestZxid() zab.Zxid {
	return l.latestZxid
}

// Iterator returns a forward iterator positioned at the first transaction
// whose zxid is >= start. It reads through a separate handle so iteration
// does not disturb the append position.
func (l *SimpleLog) Iterator(start zab.Zxid) (Iterator, error) {
	if err := l.Sync(); err != nil {
		return nil, err
	}
	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s for iteration: %w", l.path, err)
	}
	it := &simpleLogIterator{
		file:   file,
		reader: bufio.NewReader(file),
	}
	if err := it.skipTo(start); err != nil {
		_ = file.Close()
		return nil, err
	}
	return it, nil
}

// Truncate drops every transaction after zxid by rewinding the file to the
// end of the last record at or before it.
func (l *SimpleLog) Truncate(zxid zab.Zxid) error {
	if _, err := l.file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek log file %s: %w", l.path, err)
	}

	reader := bufio.NewReader(l.file)
	var keepOffset int64
	keepZxid := zab.ZxidNotExist
	for {
		txn, n, err := decodeRecord(reader)
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("corrupt log file %s during truncate: %w", l.path, err)
		}
		if txn.Zxid.Compare(zxid) > 0 {
			break
		}
		keepOffset += n
		keepZxid = txn.Zxid
	}

	if err := l.file.Truncate(keepOffset); err != nil {
		return fmt.Errorf("failed to truncate log file %s: %w", l.path, err)
	}
	if _, err := l.file.Seek(keepOffset, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek log file %s: %w", l.path, err)
	}
	l.latestZxid = keepZxid
	return nil
}

// Sync flushes appended transactions to stable storage.
func (l *SimpleLog) Sync() error {
	if err := l.file.Sync(); err != nil {
		return fmt.Errorf("failed to sync log file %s: %w", l.path, err)
	}
	return nil
}

// Close releases the log file handle.
func (l *SimpleLog) Close() error {
	return l.file.Close()
}

type simpleLogIterator struct {
	file   *os.File
	reader *bufio.Reader
	peeked *Transaction
}

func (it *simpleLogIterator) skipTo(start zab.Zxid) error {
	for {
		txn, _, err := decodeRecord(it.reader)
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil
		}
		if err != nil {
			return err
		}
		if txn.Zxid.Compare(start) >= 0 {
			it.peeked = &txn
			return nil
		}
	}
}

func (it *simpleLogIterator) Next() (Transaction, error) {
	if it.peeked != nil {
		txn := *it.peeked
		it.peeked = nil
		return txn, nil
	}
	txn, _, err := decodeRecord(it.reader)
	if err == io.ErrUnexpectedEOF {
		return Transaction{}, io.EOF
	}
	return txn, err
}

func (it *simpleLogIterator) Close() error {
	return it.file.Close()
}
