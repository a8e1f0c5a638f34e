package types

import (
	"fmt"

	"github.com/octopus-network/ics06-solomachine/internal/ibccore/exported"
)

const (
	// ModuleName is both the error codespace and the client type
	// identifier registered with the IBC client router.
	ModuleName = exported.Solomachine

	// SentinelHeaderPath is the logical path signed over by a
	// key-rotation header. It is never prefixed by a commitment
	// prefix, unlike membership/non-membership paths.
	SentinelHeaderPath = "solomachine:header"
)

// Type URLs fixed by the IBC specification. An Any with any other type
// URL is rejected on decode: UnpackPubKey fails with
// ErrUnsupportedKeyType, and the interface registry rejects the four
// client types with its own error. Neither path returns ErrInvalidWire.
const (
	ClientStateTypeURL    = "/ibc.lightclients.solomachine.v3.ClientState"
	ConsensusStateTypeURL = "/ibc.lightclients.solomachine.v3.ConsensusState"
	HeaderTypeURL         = "/ibc.lightclients.solomachine.v3.Header"
	MisbehaviourTypeURL   = "/ibc.lightclients.solomachine.v3.Misbehaviour"

	Ed25519PubKeyTypeURL   = "/cosmos.crypto.ed25519.PubKey"
	Secp256k1PubKeyTypeURL = "/cosmos.crypto.secp256k1.PubKey"
)

// ClientStatePath returns the global path under which a client's state
// is stored, keyed by client identifier.
func ClientStatePath(clientID string) string {
	return fmt.Sprintf("clients/%s/clientState", clientID)
}

// ConsensusStatePath returns the global path under which a client's
// consensus state is stored at a given sequence.
func ConsensusStatePath(clientID string, sequence uint64) string {
	return fmt.Sprintf("clients/%s/consensusStates/0-%d", clientID, sequence)
}

// DefaultCommitmentPrefix is the commitment prefix IBC chains use by
// convention; solo machine clients have no chain-specific prefix of
// their own, so verification defaults to this one.
var DefaultCommitmentPrefix = []byte("ibc")
