package types_test

import (
	"testing"

	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/octopus-network/ics06-solomachine/internal/ibccore/exported"
	"github.com/octopus-network/ics06-solomachine/types"
)

func newTestCodec() codec.BinaryCodec {
	registry := codectypes.NewInterfaceRegistry()
	types.RegisterInterfaces(registry)
	return codec.NewProtoCodec(registry)
}

func newTestConsensusState(t *testing.T) *types.ConsensusState {
	cs, err := types.NewConsensusState(secp256k1.GenPrivKey().PubKey(), "diversifier", 10)
	require.NoError(t, err)
	return cs
}

type ClientStateTestSuite struct {
	suite.Suite

	cdc codec.BinaryCodec
}

func (s *ClientStateTestSuite) SetupTest() {
	s.cdc = newTestCodec()
}

func TestClientStateTestSuite(t *testing.T) {
	suite.Run(t, new(ClientStateTestSuite))
}

func (s *ClientStateTestSuite) TestNewClientState() {
	consState := newTestConsensusState(s.T())
	clientState := types.NewClientState(1, consState)

	s.Require().Equal(uint64(1), clientState.Sequence)
	s.Require().False(clientState.IsFrozen)
	s.Require().Equal(exported.Solomachine, clientState.ClientType())
	s.Require().Equal(exported.Active, clientState.Status())
}

func (s *ClientStateTestSuite) TestGetLatestHeight() {
	clientState := types.NewClientState(5, newTestConsensusState(s.T()))
	height := clientState.GetLatestHeight()

	s.Require().Equal(uint64(0), height.GetRevisionNumber())
	s.Require().Equal(uint64(5), height.GetRevisionHeight())
}

func (s *ClientStateTestSuite) TestValidate() {
	testCases := []struct {
		name        string
		clientState *types.ClientState
		expPass     bool
	}{
		{"valid client state", types.NewClientState(1, newTestConsensusState(s.T())), true},
		{"sequence is zero", types.NewClientState(0, newTestConsensusState(s.T())), false},
		{"consensus state is nil", types.NewClientState(1, nil), false},
	}

	for _, tc := range testCases {
		err := tc.clientState.Validate()
		if tc.expPass {
			s.Require().NoError(err, tc.name)
		} else {
			s.Require().Error(err, tc.name)
		}
	}
}

func (s *ClientStateTestSuite) TestFrozen() {
	clientState := types.NewClientState(6, newTestConsensusState(s.T()))
	frozen := clientState.Frozen()

	s.Require().True(frozen.IsFrozen)
	s.Require().Equal(exported.Frozen, frozen.Status())
	s.Require().Equal(uint64(0), frozen.Sequence)

	// the receiver itself is untouched; Frozen returns a copy
	s.Require().False(clientState.IsFrozen)
	s.Require().Equal(uint64(6), clientState.Sequence)
}

func (s *ClientStateTestSuite) TestZeroCustomFields() {
	clientState := types.NewClientState(3, newTestConsensusState(s.T()))
	zeroed := clientState.ZeroCustomFields()

	s.Require().Equal(clientState.Sequence, zeroed.Sequence)
	s.Require().Equal(clientState.IsFrozen, zeroed.IsFrozen)
}

func (s *ClientStateTestSuite) TestMarshalUnmarshalRoundTrip() {
	clientState := types.NewClientState(9, newTestConsensusState(s.T()))

	bz, err := s.cdc.Marshal(clientState)
	s.Require().NoError(err)

	var decoded types.ClientState
	s.Require().NoError(s.cdc.Unmarshal(bz, &decoded))

	s.Require().Equal(clientState.Sequence, decoded.Sequence)
	s.Require().Equal(clientState.IsFrozen, decoded.IsFrozen)
	s.Require().Equal(clientState.ConsensusState.Diversifier, decoded.ConsensusState.Diversifier)
	s.Require().Equal(clientState.ConsensusState.Timestamp, decoded.ConsensusState.Timestamp)
}

func (s *ClientStateTestSuite) TestAnyRoundTrip() {
	clientState := types.NewClientState(7, newTestConsensusState(s.T()))

	any, err := codectypes.NewAnyWithValue(clientState)
	s.Require().NoError(err)
	s.Require().Equal(types.ClientStateTypeURL, any.TypeUrl)

	bz, err := s.cdc.MarshalInterface(clientState)
	s.Require().NoError(err)

	var decoded exported.ClientState
	s.Require().NoError(s.cdc.UnmarshalInterface(bz, &decoded))
	s.Require().Equal(clientState.Sequence, decoded.(*types.ClientState).Sequence)
}

func (s *ClientStateTestSuite) TestAnyRejectsUnknownTypeURL() {
	any := &codectypes.Any{TypeUrl: "/ibc.lightclients.solomachine.v3.Unknown", Value: []byte{0x1}}
	bz, err := any.Marshal()
	s.Require().NoError(err)

	var decoded exported.ClientState
	s.Require().Error(s.cdc.UnmarshalInterface(bz, &decoded))
}
