package types

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/gogoproto/proto"

	"github.com/octopus-network/ics06-solomachine/internal/ibccore/exported"
	"github.com/octopus-network/ics06-solomachine/internal/ibccore/wireutil"
)

// Misbehaviour is evidence that the solo machine's key signed two
// conflicting assertions at the same sequence. It is ephemeral,
// consumed entirely by the misbehaviour-verification path.
type Misbehaviour struct {
	Sequence     uint64
	SignatureOne *SignatureAndData
	SignatureTwo *SignatureAndData
}

var (
	_ exported.ClientMessage = (*Misbehaviour)(nil)
	_ proto.Message          = (*Misbehaviour)(nil)
)

func init() {
	proto.RegisterType((*Misbehaviour)(nil), "ibc.lightclients.solomachine.v3.Misbehaviour")
}

func (Misbehaviour) ClientType() string {
	return exported.Solomachine
}

func (m Misbehaviour) String() string {
	return fmt.Sprintf("Misbehaviour{Sequence: %d, SignatureOne: %s, SignatureTwo: %s}",
		m.Sequence, m.SignatureOne.String(), m.SignatureTwo.String())
}

// ValidateBasic checks the invariants a Misbehaviour must satisfy
// independent of any host context: both signatures must be present
// and the sequence non-zero. The two assertions differing in
// path-or-data is a host precondition, not re-checked here (§4.E.4).
func (m Misbehaviour) ValidateBasic() error {
	if m.Sequence == 0 {
		return errorsmod.Wrap(ErrInvalidMisbehaviour, "sequence cannot be 0")
	}
	if m.SignatureOne == nil || m.SignatureTwo == nil {
		return errorsmod.Wrap(ErrInvalidMisbehaviour, "both signatures must be present")
	}
	if len(m.SignatureOne.Signature) == 0 || len(m.SignatureTwo.Signature) == 0 {
		return errorsmod.Wrap(ErrInvalidMisbehaviour, "signatures cannot be empty")
	}
	return nil
}

func (m *Misbehaviour) Reset()         { *m = Misbehaviour{} }
func (*Misbehaviour) ProtoMessage()    {}

func (m *Misbehaviour) Size() int                                   { return wireutil.Size(m) }
func (m *Misbehaviour) MarshalTo(data []byte) (int, error)          { return wireutil.MarshalTo(m, data) }
func (m *Misbehaviour) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireutil.MarshalToSizedBuffer(m, dAtA) }

func (m *Misbehaviour) Marshal() ([]byte, error) {
	var buf []byte
	buf = wireutil.EncodeUint64Field(buf, 1, m.Sequence)
	buf = wireutil.EncodeMessageField(buf, 2, m.SignatureOne)
	buf = wireutil.EncodeMessageField(buf, 3, m.SignatureTwo)
	return buf, nil
}

func (m *Misbehaviour) Unmarshal(data []byte) error {
	*m = Misbehaviour{}
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
			m.Sequence = v
		case 2, 3:
			if wireType != wireutil.WireBytes {
				return wireutil.ErrInvalidWire
			}
			var value []byte
			value, data, err = wireutil.DecodeLengthDelimited(data)
			if err != nil {
				return err
			}
			sigAndData := &SignatureAndData{}
			if err := sigAndData.Unmarshal(value); err != nil {
				return err
			}
			if fieldNum == 2 {
				m.SignatureOne = sigAndData
			} else {
				m.SignatureTwo = sigAndData
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
