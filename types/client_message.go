package types

import (
	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/codec"

	"github.com/octopus-network/ics06-solomachine/internal/ibccore/exported"
)

// VerifyClientMessage dispatches on the concrete type of clientMsg: a
// Header is checked against the key-rotation signature rule, a
// Misbehaviour against the double-sign rule. Any other concrete type
// is rejected as malformed wire input.
func (cs ClientState) VerifyClientMessage(cdc codec.BinaryCodec, clientMsg exported.ClientMessage) error {
	if cs.IsFrozen {
		return errorsmod.Wrap(ErrClientFrozen, "cannot verify client message on frozen client")
	}

	switch msg := clientMsg.(type) {
	case *Header:
		return cs.verifyHeader(cdc, msg)
	case *Misbehaviour:
		return cs.verifyMisbehaviour(cdc, msg)
	default:
		return errorsmod.Wrapf(ErrInvalidWire, "unsupported client message type %T", clientMsg)
	}
}

// CheckForMisbehaviour reports whether clientMsg is itself evidence
// that should freeze the client. A Header never triggers a freeze:
// this module accepts any signature-valid rotation, leaving
// same-sequence conflict detection as a documented extension point
// (§4.F). A Misbehaviour that has already passed VerifyClientMessage
// is exactly the condition the host is expected to react to, so this
// always reports true for it; the freeze itself is applied only by
// UpdateStateOnMisbehaviour, a separate call.
func (cs ClientState) CheckForMisbehaviour(clientMsg exported.ClientMessage) bool {
	switch clientMsg.(type) {
	case *Misbehaviour:
		return true
	default:
		return false
	}
}

// UpdateStateOnMisbehaviour freezes the client. It is idempotent and
// is the only path by which IsFrozen ever becomes true.
func (cs ClientState) UpdateStateOnMisbehaviour(ctx ExecutionContext, clientID string) {
	frozen := cs.Frozen()
	ctx.SetClientState(clientID, frozen)
}
