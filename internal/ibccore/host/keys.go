// Package host reproduces the slice of ibc-go's 24-host package that
// builds the canonical store paths a client keeper reads and writes.
package host

import (
	"fmt"

	"github.com/octopus-network/ics06-solomachine/internal/ibccore/exported"
)

// FullClientStatePath takes a client identifier and returns a Path
// under which the client state is stored globally.
func FullClientStatePath(clientID string) string {
	return fmt.Sprintf("clients/%s/clientState", clientID)
}

// FullConsensusStatePath takes a client identifier and height and
// returns a Path under which the consensus state at that height is
// stored globally.
func FullConsensusStatePath(clientID string, height exported.Height) string {
	return fmt.Sprintf("clients/%s/%s", clientID, ConsensusStateKey(height))
}

// ClientStateKey returns the store key under which a client's own
// scoped client-store keeps its client state.
func ClientStateKey() []byte {
	return []byte("clientState")
}

// ConsensusStateKey returns the store key, relative to a client's own
// scoped client-store, for the consensus state at the given height.
func ConsensusStateKey(height exported.Height) []byte {
	return []byte(fmt.Sprintf("consensusStates/%d-%d", height.GetRevisionNumber(), height.GetRevisionHeight()))
}

func ConsensusStatePath(height exported.Height) string {
	return string(ConsensusStateKey(height))
}
