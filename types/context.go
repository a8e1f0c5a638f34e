package types

import "github.com/octopus-network/ics06-solomachine/internal/ibccore/exported"

// ValidationContext is the read-only capability set the light client
// requires from its host: looking up the consensus state trusted at a
// given sequence. Any storage backend implementing it composes with
// the verifier (§4.G).
type ValidationContext interface {
	GetConsensusState(clientID string, height exported.Height) (*ConsensusState, error)
}

// ExecutionContext is the capability set the light client requires to
// persist state transitions: overwriting the client state, and
// recording a new consensus state at the sequence it becomes trusted.
type ExecutionContext interface {
	ValidationContext

	SetClientState(clientID string, clientState *ClientState)
	SetConsensusState(clientID string, height exported.Height, consensusState *ConsensusState)
}
