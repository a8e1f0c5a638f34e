package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/octopus-network/ics06-solomachine/internal/ibccore/exported"
	"github.com/octopus-network/ics06-solomachine/keeper"
	ibctesting "github.com/octopus-network/ics06-solomachine/testing"
	"github.com/octopus-network/ics06-solomachine/types"
)

const testClientID = "06-solomachine-0"

func TestUpdateStateAdvancesSequenceAndRotatesKey(t *testing.T) {
	cdc := newTestCodec()
	solo := ibctesting.NewSolomachine(t, cdc, testClientID, "diversifier", 1)

	clientState := solo.ClientState()
	header := solo.CreateHeader("new-diversifier")

	require.NoError(t, clientState.VerifyClientMessage(cdc, header))
	require.False(t, clientState.CheckForMisbehaviour(header))

	k := keeper.NewKeeper(cdc)
	heights, err := clientState.UpdateState(k, cdc, testClientID, header)
	require.NoError(t, err)
	require.Len(t, heights, 1)
	require.Equal(t, uint64(2), heights[0].GetRevisionHeight())

	newClientState, ok := k.GetClientState(testClientID)
	require.True(t, ok)
	require.Equal(t, uint64(2), newClientState.Sequence)
	require.False(t, newClientState.IsFrozen)

	newConsState, err := k.GetConsensusState(testClientID, heights[0])
	require.NoError(t, err)

	newPubKey, err := newConsState.GetPubKey()
	require.NoError(t, err)
	require.True(t, solo.PublicKey.Equals(newPubKey))
	require.Equal(t, "new-diversifier", newConsState.Diversifier)
}

func TestVerifyClientMessageRejectsStaleHeader(t *testing.T) {
	cdc := newTestCodec()
	solo := ibctesting.NewSolomachine(t, cdc, testClientID, "diversifier", 1)

	clientState := solo.ClientState()
	header := solo.CreateHeader("rotated")

	// a header timestamped before the trusted consensus state is
	// rejected outright, regardless of its signature.
	header.Timestamp = clientState.ConsensusState.Timestamp - 1

	err := clientState.VerifyClientMessage(cdc, header)
	require.ErrorIs(t, err, types.ErrHeaderRejected)
}

func TestVerifyClientMessageRejectsFrozenClient(t *testing.T) {
	cdc := newTestCodec()
	solo := ibctesting.NewSolomachine(t, cdc, testClientID, "diversifier", 1)

	clientState := solo.ClientState()
	frozen := clientState.Frozen()

	header := solo.CreateHeader("new-diversifier")
	err := frozen.VerifyClientMessage(cdc, header)
	require.ErrorIs(t, err, types.ErrClientFrozen)
}

func TestUpdateStateEd25519(t *testing.T) {
	cdc := newTestCodec()
	solo := ibctesting.NewSolomachineWithEd25519(t, cdc, testClientID, "diversifier")

	clientState := solo.ClientState()
	header := solo.CreateHeader("rotated")

	require.NoError(t, clientState.VerifyClientMessage(cdc, header))

	k := keeper.NewKeeper(cdc)
	heights, err := clientState.UpdateState(k, cdc, testClientID, header)
	require.NoError(t, err)
	require.Equal(t, []exported.Height{heights[0]}, heights)
}
