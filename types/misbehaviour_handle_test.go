package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/octopus-network/ics06-solomachine/keeper"
	ibctesting "github.com/octopus-network/ics06-solomachine/testing"
	"github.com/octopus-network/ics06-solomachine/types"
)

func TestMisbehaviourFreezesClient(t *testing.T) {
	cdc := newTestCodec()
	solo := ibctesting.NewSolomachine(t, cdc, testClientID, "diversifier", 1)

	clientState := solo.ClientState()
	misbehaviour := solo.CreateMisbehaviour()

	require.NoError(t, clientState.VerifyClientMessage(cdc, misbehaviour))
	require.True(t, clientState.CheckForMisbehaviour(misbehaviour))

	k := keeper.NewKeeper(cdc)
	clientState.UpdateStateOnMisbehaviour(k, testClientID)

	frozen, ok := k.GetClientState(testClientID)
	require.True(t, ok)
	require.True(t, frozen.IsFrozen)
}

func TestMisbehaviourRejectsSingleSignature(t *testing.T) {
	cdc := newTestCodec()
	solo := ibctesting.NewSolomachine(t, cdc, testClientID, "diversifier", 1)

	clientState := solo.ClientState()
	misbehaviour := solo.CreateMisbehaviour()

	// flip a single bit in the second signature: both assertions must
	// independently verify under the current key for misbehaviour to
	// be accepted as evidence.
	corrupted := *misbehaviour
	corruptedSig := *misbehaviour.SignatureTwo
	corruptedBytes := append([]byte(nil), corruptedSig.Signature...)
	corruptedBytes[0] ^= 0xFF
	corruptedSig.Signature = corruptedBytes
	corrupted.SignatureTwo = &corruptedSig

	err := clientState.VerifyClientMessage(cdc, &corrupted)
	require.Error(t, err)
}

func TestMisbehaviourValidateBasic(t *testing.T) {
	cdc := newTestCodec()
	solo := ibctesting.NewSolomachine(t, cdc, testClientID, "diversifier", 1)
	misbehaviour := solo.CreateMisbehaviour()

	require.NoError(t, misbehaviour.ValidateBasic())

	missing := *misbehaviour
	missing.SignatureOne = nil
	require.Error(t, missing.ValidateBasic())

	zeroSeq := *misbehaviour
	zeroSeq.Sequence = 0
	require.ErrorIs(t, zeroSeq.ValidateBasic(), types.ErrInvalidMisbehaviour)
}
