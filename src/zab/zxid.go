package zab

import (
	"fmt"
	"strconv"
	"strings"
)

// Zxid identifies a transaction accepted by the broadcast protocol.
// It is ordered by epoch first, then by the counter within that epoch.
type Zxid struct {
	Epoch   int64
	Counter int64
}

// ZxidNotExist sorts before every real transaction identifier. It is the
// zxid reported when no snapshot (or no transaction) exists yet.
var ZxidNotExist = Zxid{Epoch: -1, Counter: -1}

// Compare returns -1, 0 or 1 as z is ordered before, equal to or after o.
func (z Zxid) Compare(o Zxid) int {
	if z.Epoch != o.Epoch {
		if z.Epoch < o.Epoch {
			return -1
		}
		return 1
	}
	if z.Counter != o.Counter {
		if z.Counter < o.Counter {
			return -1
		}
		return 1
	}
	return 0
}

// Exists reports whether z is a real transaction identifier.
func (z Zxid) Exists() bool {
	return z != ZxidNotExist
}

// SimpleString renders z in the on-disk "epoch_counter" form used by
// snapshot file names.
func (z Zxid) SimpleString() string {
	return fmt.Sprintf("%d_%d", z.Epoch, z.Counter)
}

func (z Zxid) String() string {
	return fmt.Sprintf("Zxid [epoch: %d, counter: %d]", z.Epoch, z.Counter)
}

// ZxidFromSimpleString parses the "epoch_counter" form.
func ZxidFromSimpleString(s string) (Zxid, error) {
	epochStr, counterStr, ok := strings.Cut(s, "_")
	if !ok {
		return Zxid{}, fmt.Errorf("invalid zxid string %q", s)
	}
	epoch, err := strconv.ParseInt(epochStr, 10, 64)
	if err != nil {
		return Zxid{}, fmt.Errorf("invalid zxid epoch in %q: %w", s, err)
	}
	counter, err := strconv.ParseInt(counterStr, 10, 64)
	if err != nil {
		return Zxid{}, fmt.Errorf("invalid zxid counter in %q: %w", s, err)
	}
	return Zxid{Epoch: epoch, Counter: counter}, nil
}
