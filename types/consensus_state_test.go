package types_test

import (
	"testing"

	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/crypto/keys/ed25519"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	"github.com/stretchr/testify/require"

	"github.com/octopus-network/ics06-solomachine/internal/ibccore/exported"
	"github.com/octopus-network/ics06-solomachine/types"
)

func TestNewConsensusState(t *testing.T) {
	pubKey := secp256k1.GenPrivKey().PubKey()

	cs, err := types.NewConsensusState(pubKey, "diversifier", 10)
	require.NoError(t, err)
	require.Equal(t, "diversifier", cs.Diversifier)
	require.Equal(t, uint64(10), cs.Timestamp)

	got, err := cs.GetPubKey()
	require.NoError(t, err)
	require.True(t, pubKey.Equals(got))
}

func TestConsensusStateGetPubKeyCaches(t *testing.T) {
	pubKey := ed25519.GenPrivKey().PubKey()
	cs, err := types.NewConsensusState(pubKey, "", 1)
	require.NoError(t, err)

	first, err := cs.GetPubKey()
	require.NoError(t, err)

	// corrupting the Any after the first resolve must not affect the
	// cached result.
	cs.PublicKey.Value = nil

	second, err := cs.GetPubKey()
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestConsensusStateValidateBasic(t *testing.T) {
	validPubKey, err := types.PackPubKey(secp256k1.GenPrivKey().PubKey())
	require.NoError(t, err)

	testCases := []struct {
		name  string
		cs    types.ConsensusState
		valid bool
	}{
		{
			name:  "valid",
			cs:    types.ConsensusState{PublicKey: validPubKey, Diversifier: "diversifier", Timestamp: 10},
			valid: true,
		},
		{
			name:  "empty public key",
			cs:    types.ConsensusState{PublicKey: nil, Diversifier: "diversifier", Timestamp: 10},
			valid: false,
		},
		{
			name:  "blank diversifier",
			cs:    types.ConsensusState{PublicKey: validPubKey, Diversifier: "   ", Timestamp: 10},
			valid: false,
		},
		{
			name:  "zero timestamp",
			cs:    types.ConsensusState{PublicKey: validPubKey, Diversifier: "diversifier", Timestamp: 0},
			valid: false,
		},
	}

	for _, tc := range testCases {
		err := tc.cs.ValidateBasic()
		if tc.valid {
			require.NoError(t, err, tc.name)
		} else {
			require.Error(t, err, tc.name)
		}
	}
}

func TestConsensusStateGetRoot(t *testing.T) {
	pubKey, err := types.PackPubKey(secp256k1.GenPrivKey().PubKey())
	require.NoError(t, err)

	cs := types.ConsensusState{PublicKey: pubKey}
	require.False(t, cs.GetRoot().Empty())

	empty := types.ConsensusState{}
	require.True(t, empty.GetRoot().Empty())
}

func TestConsensusStateMarshalUnmarshalRoundTrip(t *testing.T) {
	cdc := newTestCodec()

	cs, err := types.NewConsensusState(ed25519.GenPrivKey().PubKey(), "div", 42)
	require.NoError(t, err)

	bz, err := cdc.Marshal(cs)
	require.NoError(t, err)

	var decoded types.ConsensusState
	require.NoError(t, cdc.Unmarshal(bz, &decoded))

	require.Equal(t, cs.Diversifier, decoded.Diversifier)
	require.Equal(t, cs.Timestamp, decoded.Timestamp)
	require.Equal(t, cs.PublicKey.TypeUrl, decoded.PublicKey.TypeUrl)
	require.Equal(t, cs.PublicKey.Value, decoded.PublicKey.Value)
}

func TestConsensusStateAnyRoundTrip(t *testing.T) {
	cdc := newTestCodec()

	cs, err := types.NewConsensusState(secp256k1.GenPrivKey().PubKey(), "div", 42)
	require.NoError(t, err)

	any, err := codectypes.NewAnyWithValue(cs)
	require.NoError(t, err)
	require.Equal(t, types.ConsensusStateTypeURL, any.TypeUrl)

	bz, err := cdc.MarshalInterface(cs)
	require.NoError(t, err)

	var decoded exported.ConsensusState
	require.NoError(t, cdc.UnmarshalInterface(bz, &decoded))
	require.Equal(t, cs.Timestamp, decoded.(*types.ConsensusState).Timestamp)
}

func TestConsensusStateAnyRejectsUnknownTypeURL(t *testing.T) {
	cdc := newTestCodec()

	any := &codectypes.Any{TypeUrl: "/ibc.lightclients.solomachine.v3.Unknown", Value: []byte{0x1}}
	bz, err := any.Marshal()
	require.NoError(t, err)

	var decoded exported.ConsensusState
	require.Error(t, cdc.UnmarshalInterface(bz, &decoded))
}
