package keeper

import (
	"errors"

	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/codec"

	"github.com/octopus-network/ics06-solomachine/internal/ibccore/exported"
	"github.com/octopus-network/ics06-solomachine/types"
)

// Keeper is the 06-solomachine module's host storage glue: it
// implements types.ValidationContext/types.ExecutionContext (§4.G) on
// top of a map keyed by the §6 storage paths (types.ClientStatePath/
// types.ConsensusStatePath), the way a real host's KV store would key
// client and consensus state.
type Keeper struct {
	cdc codec.BinaryCodec

	clientStates    map[string]*types.ClientState
	consensusStates map[string]*types.ConsensusState
}

var _ types.ExecutionContext = Keeper{}

// NewKeeper creates a new Keeper instance.
func NewKeeper(cdc codec.BinaryCodec) Keeper {
	if cdc == nil {
		panic(errors.New("codec must not be nil"))
	}

	return Keeper{
		cdc:             cdc,
		clientStates:    make(map[string]*types.ClientState),
		consensusStates: make(map[string]*types.ConsensusState),
	}
}

// Codec returns the keeper's binary codec.
func (k Keeper) Codec() codec.BinaryCodec {
	return k.cdc
}

// GetClientState returns the client state for the given client
// identifier, if one has been initialized.
func (k Keeper) GetClientState(clientID string) (*types.ClientState, bool) {
	clientState, ok := k.clientStates[types.ClientStatePath(clientID)]
	return clientState, ok
}

// SetClientState overwrites the client state for the given client
// identifier.
func (k Keeper) SetClientState(clientID string, clientState *types.ClientState) {
	k.clientStates[types.ClientStatePath(clientID)] = clientState
}

// GetConsensusState returns the consensus state trusted at the given
// height for the given client identifier.
func (k Keeper) GetConsensusState(clientID string, height exported.Height) (*types.ConsensusState, error) {
	path := types.ConsensusStatePath(clientID, height.GetRevisionHeight())

	consensusState, ok := k.consensusStates[path]
	if !ok {
		return nil, errorsmod.Wrapf(types.ErrStorageError, "no consensus state for client %s at height %s", clientID, height)
	}

	return consensusState, nil
}

// SetConsensusState records a consensus state at the given height for
// the given client identifier.
func (k Keeper) SetConsensusState(clientID string, height exported.Height, consensusState *types.ConsensusState) {
	k.consensusStates[types.ConsensusStatePath(clientID, height.GetRevisionHeight())] = consensusState
}
