package types

import (
	"strings"

	errorsmod "cosmossdk.io/errors"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	"github.com/cosmos/gogoproto/proto"

	"github.com/octopus-network/ics06-solomachine/internal/ibccore/commitmenttypes"
	"github.com/octopus-network/ics06-solomachine/internal/ibccore/exported"
	"github.com/octopus-network/ics06-solomachine/internal/ibccore/wireutil"
)

// ConsensusState holds the currently-trusted identity of a solo
// machine: its public key, a diversifier distinguishing re-use of the
// same key across unrelated clients, and the timestamp at which the
// identity became current.
type ConsensusState struct {
	PublicKey   *codectypes.Any
	Diversifier string
	Timestamp   uint64

	pubKeyCache cryptotypes.PubKey
}

var (
	_ exported.ConsensusState = (*ConsensusState)(nil)
	_ proto.Message           = (*ConsensusState)(nil)
)

func init() {
	proto.RegisterType((*ConsensusState)(nil), "ibc.lightclients.solomachine.v3.ConsensusState")
}

// NewConsensusState creates a new ConsensusState instance.
func NewConsensusState(pubKey cryptotypes.PubKey, diversifier string, timestamp uint64) (*ConsensusState, error) {
	any, err := PackPubKey(pubKey)
	if err != nil {
		return nil, err
	}
	return &ConsensusState{
		PublicKey:   any,
		Diversifier: diversifier,
		Timestamp:   timestamp,
		pubKeyCache: pubKey,
	}, nil
}

func (ConsensusState) ClientType() string {
	return exported.Solomachine
}

// GetRoot returns a commitment root holding the encoded public key
// bytes (the Any's value), or an empty root when no public key is set.
// Solo-machine clients verify with signatures, not Merkle proofs, so
// the root is never used in verification; the slot is populated purely
// to satisfy the ConsensusState interface shape.
func (cs ConsensusState) GetRoot() commitmenttypes.MerkleRoot {
	if cs.PublicKey == nil {
		return commitmenttypes.NewMerkleRoot([]byte{})
	}
	return commitmenttypes.NewMerkleRoot(cs.PublicKey.Value)
}

func (cs ConsensusState) GetTimestamp() uint64 {
	return cs.Timestamp
}

// GetPubKey unpacks and caches the public key carried in the Any
// envelope.
func (cs *ConsensusState) GetPubKey() (cryptotypes.PubKey, error) {
	if cs.pubKeyCache != nil {
		return cs.pubKeyCache, nil
	}

	pubKey, err := UnpackPubKey(cs.PublicKey)
	if err != nil {
		return nil, err
	}

	cs.pubKeyCache = pubKey
	return pubKey, nil
}

// ValidateBasic checks the invariants a ConsensusState must satisfy
// independent of any host context: a non-zero timestamp and a
// diversifier that is either empty or contains a non-space character.
func (cs ConsensusState) ValidateBasic() error {
	if cs.PublicKey == nil || cs.PublicKey.Value == nil {
		return errorsmod.Wrap(ErrInvalidConsensusState, "public key cannot be empty")
	}

	if cs.Diversifier != "" && strings.TrimSpace(cs.Diversifier) == "" {
		return errorsmod.Wrap(ErrInvalidConsensusState, "diversifier cannot contain only spaces")
	}

	if cs.Timestamp == 0 {
		return errorsmod.Wrap(ErrInvalidConsensusState, "timestamp cannot be 0")
	}

	return nil
}

func (cs *ConsensusState) Reset()         { *cs = ConsensusState{} }
func (cs *ConsensusState) String() string { return proto.CompactTextString(cs) }
func (*ConsensusState) ProtoMessage()     {}

func (cs *ConsensusState) Size() int                                   { return wireutil.Size(cs) }
func (cs *ConsensusState) MarshalTo(data []byte) (int, error)          { return wireutil.MarshalTo(cs, data) }
func (cs *ConsensusState) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireutil.MarshalToSizedBuffer(cs, dAtA) }

func (cs *ConsensusState) Marshal() ([]byte, error) {
	var buf []byte
	if cs.PublicKey != nil {
		buf = wireutil.EncodeMessageField(buf, 1, cs.PublicKey)
	}
	buf = wireutil.EncodeStringField(buf, 2, cs.Diversifier)
	buf = wireutil.EncodeUint64Field(buf, 3, cs.Timestamp)
	return buf, nil
}

func (cs *ConsensusState) Unmarshal(data []byte) error {
	*cs = ConsensusState{}
	for len(data) > 0 {
		fieldNum, wireType, n, err := wireutil.DecodeTag(data)
		if err != nil {
			return err
		}
		data = data[n:]
		switch fieldNum {
		case 1:
			if wireType != wireutil.WireBytes {
				return wireutil.ErrInvalidWire
			}
			var value []byte
			value, data, err = wireutil.DecodeLengthDelimited(data)
			if err != nil {
				return err
			}
			cs.PublicKey = &codectypes.Any{}
			if err := cs.PublicKey.Unmarshal(value); err != nil {
				return err
			}
		case 2:
			if wireType != wireutil.WireBytes {
				return wireutil.ErrInvalidWire
			}
			var value []byte
			value, data, err = wireutil.DecodeLengthDelimited(data)
			if err != nil {
				return err
			}
			cs.Diversifier = string(value)
		case 3:
			if wireType != wireutil.WireVarint {
				return wireutil.ErrInvalidWire
			}
			var v uint64
			v, n, err = wireutil.DecodeVarint(data)
			if err != nil {
				return err
			}
			data = data[n:]
			cs.Timestamp = v
		default:
			data, err = wireutil.SkipField(data, wireType)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
