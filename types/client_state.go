package types

import (
	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/codec"
	signingtypes "github.com/cosmos/cosmos-sdk/types/tx/signing"
	"github.com/cosmos/gogoproto/proto"

	"github.com/octopus-network/ics06-solomachine/internal/ibccore/clienttypes"
	"github.com/octopus-network/ics06-solomachine/internal/ibccore/exported"
	"github.com/octopus-network/ics06-solomachine/internal/ibccore/wireutil"
)

// ClientState is the mutable root of a single solo-machine client: a
// monotonic sequence counter (the client's "height"; the revision
// number is always 0), a frozen flag, and the currently-trusted
// consensus state.
type ClientState struct {
	Sequence       uint64
	IsFrozen       bool
	ConsensusState *ConsensusState
}

var (
	_ exported.ClientState = (*ClientState)(nil)
	_ proto.Message        = (*ClientState)(nil)
)

func init() {
	proto.RegisterType((*ClientState)(nil), "ibc.lightclients.solomachine.v3.ClientState")
}

// NewClientState creates a new ClientState instance.
func NewClientState(sequence uint64, consensusState *ConsensusState) *ClientState {
	return &ClientState{
		Sequence:       sequence,
		IsFrozen:       false,
		ConsensusState: consensusState,
	}
}

func (ClientState) ClientType() string {
	return exported.Solomachine
}

// GetLatestHeight returns the client's sequence as a Height with
// revision number 0, per the spec's single-revision model.
func (cs ClientState) GetLatestHeight() exported.Height {
	return clienttypes.NewHeight(0, cs.Sequence)
}

// Status returns Frozen if the client has observed misbehaviour, else
// Active. Expiry is not implemented (§9): a solo machine's trust never
// lapses on its own.
func (cs ClientState) Status() exported.Status {
	if cs.IsFrozen {
		return exported.Frozen
	}
	return exported.Active
}

// Frozen returns a copy of the client state with IsFrozen set and the
// sequence reset to the zero height, mirroring the conceptual
// with_frozen_height(Height::min(0)) the reference implementation
// uses to mark a client permanently stuck.
func (cs ClientState) Frozen() *ClientState {
	cs.IsFrozen = true
	cs.Sequence = 0
	return &cs
}

// Validate checks the invariants a ClientState must satisfy
// independent of any host context: a non-zero sequence and a valid
// embedded consensus state.
func (cs ClientState) Validate() error {
	if cs.Sequence == 0 {
		return errorsmod.Wrap(ErrInvalidHeight, "sequence cannot be 0")
	}
	if cs.ConsensusState == nil {
		return errorsmod.Wrap(ErrInvalidClientState, "consensus state cannot be nil")
	}
	return cs.ConsensusState.ValidateBasic()
}

// ZeroCustomFields returns a copy of the client state with all
// verification-relevant fields unchanged: solo machines carry no
// counterparty chain parameters for a governance upgrade to zero out.
func (cs ClientState) ZeroCustomFields() *ClientState {
	return &cs
}

// produceVerificationArgs decodes a membership/non-membership proof
// into the signature and signing metadata required to verify it
// against the client's currently-trusted public key. It enforces the
// proof non-emptiness and freshness checks common to every
// membership-family verification.
func (cs ClientState) produceVerificationArgs(cdc codec.BinaryCodec, height exported.Height, proof []byte) (signingtypes.SignatureData, uint64, error) {
	if cs.IsFrozen {
		return nil, 0, errorsmod.Wrap(ErrClientFrozen, "cannot verify proof on frozen client")
	}

	if len(proof) == 0 {
		return nil, 0, errorsmod.Wrap(ErrInvalidProof, "proof cannot be empty")
	}

	if cs.GetLatestHeight().LT(height) {
		return nil, 0, errorsmod.Wrapf(ErrInvalidHeight, "client state height < proof height (%s < %s)", cs.GetLatestHeight(), height)
	}

	timestampedSigData := &TimestampedSignatureData{}
	if err := cdc.Unmarshal(proof, timestampedSigData); err != nil {
		return nil, 0, errorsmod.Wrapf(ErrInvalidWire, "failed to unmarshal proof into timestamped signature data: %v", err)
	}

	if len(timestampedSigData.SignatureData) == 0 {
		return nil, 0, errorsmod.Wrap(ErrInvalidProof, "signature data cannot be empty")
	}

	timestamp := timestampedSigData.Timestamp
	if timestamp < cs.ConsensusState.GetTimestamp() {
		return nil, 0, errorsmod.Wrapf(ErrInvalidProof, "the consensus state timestamp is greater than the signature timestamp (%d > %d)", cs.ConsensusState.GetTimestamp(), timestamp)
	}

	sigData, err := UnmarshalSignatureData(cdc, timestampedSigData.SignatureData)
	if err != nil {
		return nil, 0, err
	}

	return sigData, timestamp, nil
}

func (cs *ClientState) Reset()         { *cs = ClientState{} }
func (cs *ClientState) String() string { return proto.CompactTextString(cs) }
func (*ClientState) ProtoMessage()     {}

func (cs *ClientState) Size() int                                   { return wireutil.Size(cs) }
func (cs *ClientState) MarshalTo(data []byte) (int, error)          { return wireutil.MarshalTo(cs, data) }
func (cs *ClientState) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireutil.MarshalToSizedBuffer(cs, dAtA) }

func (cs *ClientState) Marshal() ([]byte, error) {
	var buf []byte
	buf = wireutil.EncodeUint64Field(buf, 1, cs.Sequence)
	buf = wireutil.EncodeBoolField(buf, 2, cs.IsFrozen)
	if cs.ConsensusState != nil {
		buf = wireutil.EncodeMessageField(buf, 3, cs.ConsensusState)
	}
	return buf, nil
}

func (cs *ClientState) Unmarshal(data []byte) error {
	*cs = ClientState{}
	for len(data) > 0 {
		fieldNum, wireType, n, err := wireutil.DecodeTag(data)
		if err != nil {
			return err
		}
		data = data[n:]
		switch fieldNum {
		case 1:
			if wireType != wireutil.WireVarint {
				return wireutil.ErrInvalidWire
			}
			var v uint64
			v, n, err = wireutil.DecodeVarint(data)
			if err != nil {
				return err
			}
			data = data[n:]
			cs.Sequence = v
		case 2:
			if wireType != wireutil.WireVarint {
				return wireutil.ErrInvalidWire
			}
			var v uint64
			v, n, err = wireutil.DecodeVarint(data)
			if err != nil {
				return err
			}
			data = data[n:]
			cs.IsFrozen = v != 0
		case 3:
			if wireType != wireutil.WireBytes {
				return wireutil.ErrInvalidWire
			}
			var value []byte
			value, data, err = wireutil.DecodeLengthDelimited(data)
			if err != nil {
				return err
			}
			cs.ConsensusState = &ConsensusState{}
			if err := cs.ConsensusState.Unmarshal(value); err != nil {
				return err
			}
		default:
			data, err = wireutil.SkipField(data, wireType)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
