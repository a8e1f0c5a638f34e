package types

import (
	errorsmod "cosmossdk.io/errors"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	"github.com/cosmos/gogoproto/proto"

	"github.com/octopus-network/ics06-solomachine/internal/ibccore/exported"
	"github.com/octopus-network/ics06-solomachine/internal/ibccore/wireutil"
)

// Header proposes a new identity for a solo-machine client: a new
// public key and diversifier, signed by the currently-trusted key. It
// is ephemeral, consumed entirely by UpdateState.
type Header struct {
	Timestamp      uint64
	Signature      []byte
	NewPublicKey   *codectypes.Any
	NewDiversifier string
}

var (
	_ exported.ClientMessage = (*Header)(nil)
	_ proto.Message          = (*Header)(nil)
)

func init() {
	proto.RegisterType((*Header)(nil), "ibc.lightclients.solomachine.v3.Header")
}

func (Header) ClientType() string {
	return exported.Solomachine
}

// GetNewPubKey unpacks the proposed public key.
func (h Header) GetNewPubKey() (cryptotypes.PubKey, error) {
	return UnpackPubKey(h.NewPublicKey)
}

// ValidateBasic checks the invariants a Header must satisfy
// independent of any host context.
func (h Header) ValidateBasic() error {
	if h.Timestamp == 0 {
		return errorsmod.Wrap(ErrInvalidHeader, "timestamp cannot be 0")
	}
	if len(h.Signature) == 0 {
		return errorsmod.Wrap(ErrInvalidHeader, "signature cannot be empty")
	}
	if h.NewPublicKey == nil || h.NewPublicKey.Value == nil {
		return errorsmod.Wrap(ErrInvalidHeader, "new public key cannot be empty")
	}
	return nil
}

func (h *Header) Reset()         { *h = Header{} }
func (h *Header) String() string { return proto.CompactTextString(h) }
func (*Header) ProtoMessage()    {}

func (h *Header) Size() int                                   { return wireutil.Size(h) }
func (h *Header) MarshalTo(data []byte) (int, error)          { return wireutil.MarshalTo(h, data) }
func (h *Header) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireutil.MarshalToSizedBuffer(h, dAtA) }

func (h *Header) Marshal() ([]byte, error) {
	var buf []byte
	buf = wireutil.EncodeUint64Field(buf, 1, h.Timestamp)
	buf = wireutil.EncodeBytesField(buf, 2, h.Signature)
	if h.NewPublicKey != nil {
		buf = wireutil.EncodeMessageField(buf, 3, h.NewPublicKey)
	}
	buf = wireutil.EncodeStringField(buf, 4, h.NewDiversifier)
	return buf, nil
}

func (h *Header) Unmarshal(data []byte) error {
	*h = Header{}
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
			h.Timestamp = v
		case 2:
			if wireType != wireutil.WireBytes {
				return wireutil.ErrInvalidWire
			}
			var value []byte
			value, data, err = wireutil.DecodeLengthDelimited(data)
			if err != nil {
				return err
			}
			h.Signature = value
		case 3:
			if wireType != wireutil.WireBytes {
				return wireutil.ErrInvalidWire
			}
			var value []byte
			value, data, err = wireutil.DecodeLengthDelimited(data)
			if err != nil {
				return err
			}
			h.NewPublicKey = &codectypes.Any{}
			if err := h.NewPublicKey.Unmarshal(value); err != nil {
				return err
			}
		case 4:
			if wireType != wireutil.WireBytes {
				return wireutil.ErrInvalidWire
			}
			var value []byte
			value, data, err = wireutil.DecodeLengthDelimited(data)
			if err != nil {
				return err
			}
			h.NewDiversifier = string(value)
		default:
			data, err = wireutil.SkipField(data, wireType)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
