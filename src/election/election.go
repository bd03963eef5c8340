package election

import (
	"github.com/danmuck/zab_state/src/persistence"
)

// Election is one round of leader election. Implementations decide using
// the persisted epochs, configuration and snapshot position, and store back
// whatever they decide; the durable-state core takes no part in the
// decision itself.
type Election interface {
	// ElectLeader runs one election round and returns the elected leader's
	// server identifier.
	ElectLeader(state *persistence.PersistentState) (string, error)

	// ProcessMessage handles an inbound election message. The message
	// format is not defined yet.
	ProcessMessage()
}
