// Package solomachine implements the ICS-06 solo machine light client:
// a counterparty identity represented by a single signing key that
// proves state to an IBC host by signing monotonically-sequenced
// assertions. LightClientModule is the public contract the IBC client
// router invokes; the verification and state-transition logic it
// delegates to lives in the types package.
package solomachine

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/octopus-network/ics06-solomachine/internal/ibccore/clienttypes"
	"github.com/octopus-network/ics06-solomachine/internal/ibccore/commitmenttypes"
	"github.com/octopus-network/ics06-solomachine/internal/ibccore/exported"
	"github.com/octopus-network/ics06-solomachine/keeper"
	"github.com/octopus-network/ics06-solomachine/types"
)

// LightClientModule implements the exported.LightClientModule
// interface for solo-machine clients.
type LightClientModule struct {
	keeper keeper.Keeper
}

// NewLightClientModule creates a new LightClientModule.
func NewLightClientModule(k keeper.Keeper) LightClientModule {
	return LightClientModule{keeper: k}
}

var _ exported.LightClientModule = (*LightClientModule)(nil)

// Initialize unmarshals the client and consensus state bytes a create-
// client message carries, validates them, and stores the client at
// the sequence it was created with.
func (l *LightClientModule) Initialize(ctx sdk.Context, clientID string, clientStateBz, consensusStateBz []byte) error {
	if err := validateClientID(clientID); err != nil {
		return err
	}

	var clientState types.ClientState
	if err := l.keeper.Codec().Unmarshal(clientStateBz, &clientState); err != nil {
		return errorsmod.Wrapf(types.ErrInvalidWire, "failed to unmarshal client state: %v", err)
	}

	var consensusState types.ConsensusState
	if err := l.keeper.Codec().Unmarshal(consensusStateBz, &consensusState); err != nil {
		return errorsmod.Wrapf(types.ErrInvalidWire, "failed to unmarshal consensus state: %v", err)
	}

	clientState.ConsensusState = &consensusState

	if err := clientState.Validate(); err != nil {
		return err
	}

	l.keeper.SetClientState(clientID, &clientState)
	l.keeper.SetConsensusState(clientID, clientState.GetLatestHeight(), &consensusState)

	return nil
}

// VerifyClientMessage checks a header or misbehaviour message against
// the client's currently-trusted key. It does not mutate state.
func (l *LightClientModule) VerifyClientMessage(ctx sdk.Context, clientID string, clientMsg exported.ClientMessage) error {
	clientState, err := l.getClientState(clientID)
	if err != nil {
		return err
	}

	return clientState.VerifyClientMessage(l.keeper.Codec(), clientMsg)
}

// CheckForMisbehaviour reports whether clientMsg is itself evidence
// that should freeze the client.
func (l *LightClientModule) CheckForMisbehaviour(ctx sdk.Context, clientID string, clientMsg exported.ClientMessage) bool {
	clientState, err := l.getClientState(clientID)
	if err != nil {
		return false
	}

	return clientState.CheckForMisbehaviour(clientMsg)
}

// UpdateStateOnMisbehaviour freezes the client.
func (l *LightClientModule) UpdateStateOnMisbehaviour(ctx sdk.Context, clientID string, clientMsg exported.ClientMessage) {
	clientState, err := l.getClientState(clientID)
	if err != nil {
		panic(err)
	}

	clientState.UpdateStateOnMisbehaviour(l.keeper, clientID)
}

// UpdateState rotates the client to the identity a verified header
// proposes. clientMsg must already have passed VerifyClientMessage;
// like the rest of the exported.LightClientModule contract, this
// method has no error return, so a decode or storage failure panics.
func (l *LightClientModule) UpdateState(ctx sdk.Context, clientID string, clientMsg exported.ClientMessage) []exported.Height {
	clientState, err := l.getClientState(clientID)
	if err != nil {
		panic(err)
	}

	header, ok := clientMsg.(*types.Header)
	if !ok {
		panic(errorsmod.Wrapf(types.ErrInvalidWire, "expected *types.Header, got %T", clientMsg))
	}

	heights, err := clientState.UpdateState(l.keeper, l.keeper.Codec(), clientID, header)
	if err != nil {
		panic(err)
	}

	return heights
}

// VerifyMembership checks that value is bound to path at the client's
// current sequence (height must not exceed the client's latest height),
// applying the host's default commitment prefix in front of the
// caller's logical path before rebuilding the signed pre-image.
func (l *LightClientModule) VerifyMembership(
	ctx sdk.Context, clientID string, height exported.Height,
	delayTimePeriod, delayBlockPeriod uint64,
	proof []byte, path exported.Path, value []byte,
) error {
	clientState, err := l.getClientState(clientID)
	if err != nil {
		return err
	}

	logicalPath, err := logicalPathOf(path)
	if err != nil {
		return err
	}

	prefix := commitmenttypes.NewMerklePrefix(types.DefaultCommitmentPrefix)
	return clientState.VerifyMembership(l.keeper.Codec(), height, prefix, proof, logicalPath, value)
}

// VerifyNonMembership is VerifyMembership with an empty value.
func (l *LightClientModule) VerifyNonMembership(
	ctx sdk.Context, clientID string, height exported.Height,
	delayTimePeriod, delayBlockPeriod uint64,
	proof []byte, path exported.Path,
) error {
	clientState, err := l.getClientState(clientID)
	if err != nil {
		return err
	}

	logicalPath, err := logicalPathOf(path)
	if err != nil {
		return err
	}

	prefix := commitmenttypes.NewMerklePrefix(types.DefaultCommitmentPrefix)
	return clientState.VerifyNonMembership(l.keeper.Codec(), height, prefix, proof, logicalPath)
}

// Status returns Frozen if the client has observed misbehaviour, else
// Active; Unknown if the client does not exist.
func (l *LightClientModule) Status(ctx sdk.Context, clientID string) exported.Status {
	clientState, err := l.getClientState(clientID)
	if err != nil {
		return exported.Unknown
	}

	return clientState.Status()
}

// TimestampAtHeight returns the timestamp of the consensus state at
// the given height.
func (l *LightClientModule) TimestampAtHeight(ctx sdk.Context, clientID string, height exported.Height) (uint64, error) {
	consensusState, err := l.keeper.GetConsensusState(clientID, height)
	if err != nil {
		return 0, err
	}

	return consensusState.GetTimestamp(), nil
}

// VerifyUpgradeClient is a no-op: solo-machine clients never upgrade,
// so any upgrade proposal is trivially accepted (§4.F, §9.3).
func (l *LightClientModule) VerifyUpgradeClient(
	ctx sdk.Context, clientID string,
	newClient exported.ClientState, newConsState exported.ConsensusState,
	upgradeClientProof, upgradeConsensusStateProof []byte,
) error {
	return nil
}

// UpdateStateOnUpgrade always fails: a solo-machine client has no
// upgrade path to apply (§4.F, §9.3). This asymmetry with
// VerifyUpgradeClient's success-stub is intentional, not an oversight.
func (l *LightClientModule) UpdateStateOnUpgrade(
	ctx sdk.Context, clientID string,
	newClient exported.ClientState, newConsState exported.ConsensusState,
) (exported.Height, error) {
	return clienttypes.ZeroHeight(), errorsmod.Wrap(types.ErrNotSupported, "cannot upgrade a solo machine client")
}

func (l *LightClientModule) getClientState(clientID string) (types.ClientState, error) {
	clientState, ok := l.keeper.GetClientState(clientID)
	if !ok {
		return types.ClientState{}, errorsmod.Wrapf(types.ErrStorageError, "client state not found for client %s", clientID)
	}
	return *clientState, nil
}

// logicalPathOf extracts the single logical path element a caller
// supplies through the exported.Path interface, ahead of this module
// applying the host's commitment prefix.
func logicalPathOf(path exported.Path) (string, error) {
	if path == nil || path.Empty() {
		return "", errorsmod.Wrap(types.ErrInvalidProof, "path cannot be empty")
	}
	return path.String(), nil
}

// validateClientID checks that clientID was generated for this
// module's client type.
func validateClientID(clientID string) error {
	clientType, err := clienttypes.ParseClientIdentifier(clientID)
	if err != nil {
		return err
	}

	if clientType != exported.Solomachine {
		return errorsmod.Wrapf(types.ErrInvalidWire, "client identifier does not contain %s prefix", exported.Solomachine)
	}

	return nil
}
