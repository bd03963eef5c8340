package txnlog

import (
	"encoding/binary"
	"fmt"
	"io"

	"google.golang.org/protobuf/proto"

	"github.com/danmuck/zab_state/src/txnlog/txnlogpb"
	"github.com/danmuck/zab_state/src/zab"
)

// maxRecordSize caps a single log record frame. Anything larger than this on
// disk is treated as corruption rather than an allocation request.
const maxRecordSize = 64 << 20

// frameHeaderSize is the length prefix in front of every encoded record.
const frameHeaderSize = 4

// encodeRecord frames txn as a big-endian length header followed by the
// protobuf record bytes.
func encodeRecord(txn Transaction) ([]byte, error) {
	record := &txnlogpb.Transaction{
		Epoch:   uint64(txn.Zxid.Epoch),
		Counter: uint64(txn.Zxid.Counter),
		Type:    txn.Type,
		Body:    txn.Body,
	}
	out, err := proto.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to encode transaction record: %w", err)
	}
	hdr := make([]byte, frameHeaderSize)
	binary.BigEndian.PutUint32(hdr, uint32(len(out)))
	return append(hdr, out...), nil
}

// decodeRecord reads one framed record from r and reports the number of
// bytes the frame occupies. It returns io.EOF cleanly at end of stream and
// io.ErrUnexpectedEOF on a torn frame.
func decodeRecord(r io.Reader) (Transaction, int64, error) {
	hdr := make([]byte, frameHeaderSize)
	if _, err := io.ReadFull(r, hdr); err != nil {
		switch err {
		case io.EOF:
			return Transaction{}, 0, io.EOF
		case io.ErrUnexpectedEOF:
			// A partial header is a torn frame, not a fault.
			return Transaction{}, 0, io.ErrUnexpectedEOF
		default:
			return Transaction{}, 0, fmt.Errorf("failed to read record header: %w", err)
		}
	}

	msgLength := binary.BigEndian.Uint32(hdr)
	if msgLength > maxRecordSize {
		return Transaction{}, 0, fmt.Errorf("record frame of %d bytes exceeds limit", msgLength)
	}
	msgBuf := make([]byte, int(msgLength))
	if _, err := io.ReadFull(r, msgBuf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return Transaction{}, 0, io.ErrUnexpectedEOF
		}
		return Transaction{}, 0, fmt.Errorf("failed to read record body: %w", err)
	}

	record := &txnlogpb.Transaction{}
	if err := proto.Unmarshal(msgBuf, record); err != nil {
		return Transaction{}, 0, fmt.Errorf("failed to decode transaction record: %w", err)
	}
	txn := Transaction{
		Zxid: zab.Zxid{Epoch: int64(record.Epoch), Counter: int64(record.Counter)},
		Type: record.Type,
		Body: record.Body,
	}
	return txn, frameHeaderSize + int64(msgLength), nil
}
