package persistence

import (
	logs "github.com/danmuck/smplog"
)

// EpochUnset is the epoch reported before the node has ever acknowledged or
// proposed one. The value never hits disk; an unset epoch is an absent file.
const EpochUnset int64 = -1

// EpochStore tracks the acknowledged epoch (highest epoch this node promised
// to follow) and the proposed epoch (highest epoch this node put forward as
// a candidate). It stores whatever the election logic hands it; monotonicity
// is the caller's contract.
type EpochStore struct {
	ack      scalarFile
	proposed scalarFile
}

func newEpochStore(dir string) *EpochStore {
	return &EpochStore{
		ack:      newScalarFile(dir, ackEpochFile),
		proposed: newScalarFile(dir, proposedEpochFile),
	}
}

// AckEpoch returns the last acknowledged epoch, or EpochUnset if it has
// never been recorded.
func (e *EpochStore) AckEpoch() (int64, error) {
	epoch, ok, err := e.ack.readInt64()
	if err != nil {
		return 0, err
	}
	if !ok {
		logs.Debugf("ack epoch file not found, initializing to %d", EpochUnset)
		return EpochUnset, nil
	}
	return epoch, nil
}

// SetAckEpoch records epoch as the new acknowledged epoch.
func (e *EpochStore) SetAckEpoch(epoch int64) error {
	return e.ack.writeInt64(epoch)
}

// ProposedEpoch returns the last proposed epoch, or EpochUnset if it has
// never been recorded.
func (e *EpochStore) ProposedEpoch() (int64, error) {
	epoch, ok, err := e.proposed.readInt64()
	if err != nil {
		return 0, err
	}
	if !ok {
		logs.Debugf("proposed epoch file not found, initializing to %d", EpochUnset)
		return EpochUnset, nil
	}
	return epoch, nil
}

// SetProposedEpoch records epoch as the new proposed epoch.
func (e *EpochStore) SetProposedEpoch(epoch int64) error {
	return e.proposed.writeInt64(epoch)
}
