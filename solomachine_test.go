package solomachine_test

import (
	"testing"

	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	solomachine "github.com/octopus-network/ics06-solomachine"
	"github.com/octopus-network/ics06-solomachine/internal/ibccore/clienttypes"
	"github.com/octopus-network/ics06-solomachine/internal/ibccore/commitmenttypes"
	"github.com/octopus-network/ics06-solomachine/internal/ibccore/exported"
	"github.com/octopus-network/ics06-solomachine/keeper"
	ibctesting "github.com/octopus-network/ics06-solomachine/testing"
	"github.com/octopus-network/ics06-solomachine/types"
)

const clientID = "06-solomachine-0"

func newTestModule() (solomachine.LightClientModule, keeper.Keeper, codec.BinaryCodec) {
	registry := codectypes.NewInterfaceRegistry()
	types.RegisterInterfaces(registry)
	cdc := codec.NewProtoCodec(registry)

	k := keeper.NewKeeper(cdc)
	return solomachine.NewLightClientModule(k), k, cdc
}

func TestInitializeAndLatestHeight(t *testing.T) {
	lcm, k, cdc := newTestModule()
	solo := ibctesting.NewSolomachine(t, cdc, clientID, "diversifier", 1)

	clientStateBz, err := solo.ClientState().Marshal()
	require.NoError(t, err)
	consStateBz, err := solo.ConsensusState().Marshal()
	require.NoError(t, err)

	ctx := sdk.Context{}
	require.NoError(t, lcm.Initialize(ctx, clientID, clientStateBz, consStateBz))

	stored, ok := k.GetClientState(clientID)
	require.True(t, ok)
	require.Equal(t, uint64(1), stored.Sequence)
	require.Equal(t, exported.Active, lcm.Status(ctx, clientID))
}

func TestInitializeRejectsWrongClientIDPrefix(t *testing.T) {
	lcm, _, cdc := newTestModule()
	solo := ibctesting.NewSolomachine(t, cdc, clientID, "diversifier", 1)

	clientStateBz, err := solo.ClientState().Marshal()
	require.NoError(t, err)
	consStateBz, err := solo.ConsensusState().Marshal()
	require.NoError(t, err)

	err = lcm.Initialize(sdk.Context{}, "07-tendermint-0", clientStateBz, consStateBz)
	require.Error(t, err)
}

func TestUpdateStateEndToEnd(t *testing.T) {
	lcm, k, cdc := newTestModule()
	solo := ibctesting.NewSolomachine(t, cdc, clientID, "diversifier", 1)

	clientStateBz, err := solo.ClientState().Marshal()
	require.NoError(t, err)
	consStateBz, err := solo.ConsensusState().Marshal()
	require.NoError(t, err)

	ctx := sdk.Context{}
	require.NoError(t, lcm.Initialize(ctx, clientID, clientStateBz, consStateBz))

	header := solo.CreateHeader("rotated-diversifier")
	require.NoError(t, lcm.VerifyClientMessage(ctx, clientID, header))
	require.False(t, lcm.CheckForMisbehaviour(ctx, clientID, header))

	heights := lcm.UpdateState(ctx, clientID, header)
	require.Len(t, heights, 1)

	stored, ok := k.GetClientState(clientID)
	require.True(t, ok)
	require.Equal(t, uint64(2), stored.Sequence)
}

func TestMembershipEndToEnd(t *testing.T) {
	lcm, k, cdc := newTestModule()
	solo := ibctesting.NewSolomachine(t, cdc, clientID, "diversifier", 1)
	k.SetClientState(clientID, solo.ClientState())

	path := commitmenttypes.NewMerklePath("counterparty/clientState")
	value := []byte("committed-value")

	prefix := commitmenttypes.NewMerklePrefix(types.DefaultCommitmentPrefix)
	merklePath, err := commitmenttypes.ApplyPrefix(prefix, path.String())
	require.NoError(t, err)

	signBytes := &types.SignBytes{
		Sequence:    solo.Sequence,
		Timestamp:   solo.Time,
		Diversifier: solo.Diversifier,
		Path:        merklePath,
		Data:        value,
	}
	bz, err := signBytes.Marshal()
	require.NoError(t, err)
	proof := solo.GenerateProof(bz)

	ctx := sdk.Context{}
	height := clienttypes.NewHeight(0, solo.Sequence)

	require.NoError(t, lcm.VerifyMembership(ctx, clientID, height, 0, 0, proof, path, value))

	corrupted := append([]byte(nil), proof...)
	corrupted[len(corrupted)-1] ^= 0xFF
	require.Error(t, lcm.VerifyMembership(ctx, clientID, height, 0, 0, corrupted, path, value))
}

func TestNonMembershipEndToEnd(t *testing.T) {
	lcm, k, cdc := newTestModule()
	solo := ibctesting.NewSolomachine(t, cdc, clientID, "diversifier", 1)
	k.SetClientState(clientID, solo.ClientState())

	path := commitmenttypes.NewMerklePath("counterparty/clientState")

	prefix := commitmenttypes.NewMerklePrefix(types.DefaultCommitmentPrefix)
	merklePath, err := commitmenttypes.ApplyPrefix(prefix, path.String())
	require.NoError(t, err)

	signBytes := &types.SignBytes{
		Sequence:    solo.Sequence,
		Timestamp:   solo.Time,
		Diversifier: solo.Diversifier,
		Path:        merklePath,
		Data:        []byte{},
	}
	bz, err := signBytes.Marshal()
	require.NoError(t, err)
	proof := solo.GenerateProof(bz)

	ctx := sdk.Context{}
	height := clienttypes.NewHeight(0, solo.Sequence)

	require.NoError(t, lcm.VerifyNonMembership(ctx, clientID, height, 0, 0, proof, path))
}

func TestMisbehaviourFreezesClientEndToEnd(t *testing.T) {
	lcm, k, cdc := newTestModule()
	solo := ibctesting.NewSolomachine(t, cdc, clientID, "diversifier", 1)
	k.SetClientState(clientID, solo.ClientState())

	misbehaviour := solo.CreateMisbehaviour()
	ctx := sdk.Context{}

	require.NoError(t, lcm.VerifyClientMessage(ctx, clientID, misbehaviour))
	require.True(t, lcm.CheckForMisbehaviour(ctx, clientID, misbehaviour))

	lcm.UpdateStateOnMisbehaviour(ctx, clientID, misbehaviour)

	require.Equal(t, exported.Frozen, lcm.Status(ctx, clientID))
}

func TestUpgradeStubs(t *testing.T) {
	lcm, k, cdc := newTestModule()
	solo := ibctesting.NewSolomachine(t, cdc, clientID, "diversifier", 1)
	k.SetClientState(clientID, solo.ClientState())

	ctx := sdk.Context{}
	newClientState := solo.ClientState()
	newConsState := solo.ConsensusState()

	require.NoError(t, lcm.VerifyUpgradeClient(ctx, clientID, newClientState, newConsState, nil, nil))

	_, err := lcm.UpdateStateOnUpgrade(ctx, clientID, newClientState, newConsState)
	require.ErrorIs(t, err, types.ErrNotSupported)
}
