package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"

	"github.com/octopus-network/ics06-solomachine/internal/ibccore/exported"
)

// RegisterInterfaces registers the solo-machine concrete types against
// the interfaces an Any envelope may unpack into.
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations(
		(*exported.ClientState)(nil),
		&ClientState{},
	)
	registry.RegisterImplementations(
		(*exported.ConsensusState)(nil),
		&ConsensusState{},
	)
	registry.RegisterImplementations(
		(*exported.ClientMessage)(nil),
		&Header{},
		&Misbehaviour{},
	)
}

// RegisterLegacyAminoCodec registers the solo-machine types for amino
// JSON, matching the pattern every other IBC module registers its
// types with for CLI/genesis compatibility.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&ClientState{}, "ibc/lightclients/solomachine/ClientState", nil)
	cdc.RegisterConcrete(&ConsensusState{}, "ibc/lightclients/solomachine/ConsensusState", nil)
	cdc.RegisterConcrete(&Header{}, "ibc/lightclients/solomachine/Header", nil)
	cdc.RegisterConcrete(&Misbehaviour{}, "ibc/lightclients/solomachine/Misbehaviour", nil)
}
