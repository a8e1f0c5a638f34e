// Package exported reproduces the slice of ibc-go's core/exported
// interfaces that a light-client module is written against. A
// light-client module cannot import the ibc-go module containing it, so
// this package mirrors the upstream types field-for-field and
// signature-for-signature.
package exported

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/gogoproto/proto"

	"github.com/octopus-network/ics06-solomachine/internal/ibccore/commitmenttypes"
)

// Solomachine is the client type identifier for this light-client module.
const Solomachine string = "06-solomachine"

// Status defines the status of a client.
type Status string

const (
	Active  Status = "Active"
	Frozen  Status = "Frozen"
	Expired Status = "Expired"
	Unknown Status = "Unknown"
)

// Height defines a revision-qualified monotonic counter used as the
// light-client's notion of "height".
type Height interface {
	GetRevisionNumber() uint64
	GetRevisionHeight() uint64
	IsZero() bool
	LT(Height) bool
	EQ(Height) bool
	GT(Height) bool
	String() string
}

// Path defines the interface a membership/non-membership path must
// implement: a deterministic string representation used to build the
// commitment path bytes.
type Path interface {
	String() string
	Empty() bool
}

// Prefix defines an additional prefix applied to a Path before it is
// committed to.
type Prefix interface {
	Bytes() []byte
	String() string
	Empty() bool
}

// ClientMessage is implemented by the concrete Header and Misbehaviour
// types a light-client module is asked to verify.
type ClientMessage interface {
	proto.Message
	ClientType() string
	ValidateBasic() error
}

// ClientState is the minimal marker interface a light client's persisted
// state must satisfy.
type ClientState interface {
	proto.Message
	ClientType() string
	Validate() error
}

// ConsensusState is the minimal marker interface a light client's
// per-height trusted state must satisfy.
type ConsensusState interface {
	proto.Message
	ClientType() string
	GetRoot() commitmenttypes.MerkleRoot
	GetTimestamp() uint64
	ValidateBasic() error
}

// LightClientModule is the interface the IBC client router invokes
// against a registered light-client implementation.
type LightClientModule interface {
	Initialize(ctx sdk.Context, clientID string, clientStateBz, consensusStateBz []byte) error

	VerifyClientMessage(ctx sdk.Context, clientID string, clientMsg ClientMessage) error
	CheckForMisbehaviour(ctx sdk.Context, clientID string, clientMsg ClientMessage) bool
	UpdateStateOnMisbehaviour(ctx sdk.Context, clientID string, clientMsg ClientMessage)
	UpdateState(ctx sdk.Context, clientID string, clientMsg ClientMessage) []Height

	VerifyMembership(
		ctx sdk.Context, clientID string, height Height,
		delayTimePeriod, delayBlockPeriod uint64,
		proof []byte, path Path, value []byte,
	) error
	VerifyNonMembership(
		ctx sdk.Context, clientID string, height Height,
		delayTimePeriod, delayBlockPeriod uint64,
		proof []byte, path Path,
	) error

	Status(ctx sdk.Context, clientID string) Status
	TimestampAtHeight(ctx sdk.Context, clientID string, height Height) (uint64, error)

	// VerifyUpgradeClient and UpdateStateOnUpgrade are retained, unlike
	// in newer ibc-go vintages, as the pair of entry points the solo-machine source this
	// module was distilled from exposes for upgrade proposals: a solo
	// machine client never upgrades, so the verification half is a
	// no-op success and the state-transition half always fails.
	VerifyUpgradeClient(ctx sdk.Context, clientID string, newClient ClientState, newConsState ConsensusState, upgradeClientProof, upgradeConsensusStateProof []byte) error
	UpdateStateOnUpgrade(ctx sdk.Context, clientID string, newClient ClientState, newConsState ConsensusState) (Height, error)
}
