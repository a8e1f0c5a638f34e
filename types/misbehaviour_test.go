package types_test

import (
	"testing"

	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/stretchr/testify/require"

	"github.com/octopus-network/ics06-solomachine/internal/ibccore/exported"
	ibctesting "github.com/octopus-network/ics06-solomachine/testing"
	"github.com/octopus-network/ics06-solomachine/types"
)

func TestMisbehaviourAnyRoundTrip(t *testing.T) {
	cdc := newTestCodec()
	solo := ibctesting.NewSolomachine(t, cdc, testClientID, "diversifier", 1)
	misbehaviour := solo.CreateMisbehaviour()

	any, err := codectypes.NewAnyWithValue(misbehaviour)
	require.NoError(t, err)
	require.Equal(t, types.MisbehaviourTypeURL, any.TypeUrl)

	bz, err := cdc.MarshalInterface(misbehaviour)
	require.NoError(t, err)

	var decoded exported.ClientMessage
	require.NoError(t, cdc.UnmarshalInterface(bz, &decoded))

	decodedMisbehaviour, ok := decoded.(*types.Misbehaviour)
	require.True(t, ok)
	require.Equal(t, misbehaviour.Sequence, decodedMisbehaviour.Sequence)
}

func TestMisbehaviourAnyRejectsUnknownTypeURL(t *testing.T) {
	cdc := newTestCodec()

	any := &codectypes.Any{TypeUrl: "/ibc.lightclients.solomachine.v3.Unknown", Value: []byte{0x1}}
	bz, err := any.Marshal()
	require.NoError(t, err)

	var decoded exported.ClientMessage
	require.Error(t, cdc.UnmarshalInterface(bz, &decoded))
}
