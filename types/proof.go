package types

import (
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/gogoproto/proto"

	"github.com/octopus-network/ics06-solomachine/internal/ibccore/commitmenttypes"
	"github.com/octopus-network/ics06-solomachine/internal/ibccore/wireutil"
)

// SignatureAndData is a signature and the data it signs over, together
// with the timestamp at which the signature was produced. It is the
// unit of evidence carried both inside a membership/non-membership
// proof (wrapped in TimestampedSignatureData) and inside a
// Misbehaviour (one per conflicting assertion).
type SignatureAndData struct {
	Signature []byte
	Path      []byte // the encoded MerklePath the signature covers
	Data      []byte
	Timestamp uint64
}

var _ proto.Message = (*SignatureAndData)(nil)

func (s *SignatureAndData) Reset()        { *s = SignatureAndData{} }
func (s *SignatureAndData) String() string { return proto.CompactTextString(s) }
func (*SignatureAndData) ProtoMessage()   {}

func (s *SignatureAndData) Size() int                                   { return wireutil.Size(s) }
func (s *SignatureAndData) MarshalTo(data []byte) (int, error)          { return wireutil.MarshalTo(s, data) }
func (s *SignatureAndData) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireutil.MarshalToSizedBuffer(s, dAtA) }

func (s *SignatureAndData) Marshal() ([]byte, error) {
	var buf []byte
	buf = wireutil.EncodeBytesField(buf, 1, s.Signature)
	buf = wireutil.EncodeBytesField(buf, 2, s.Path)
	buf = wireutil.EncodeBytesField(buf, 3, s.Data)
	buf = wireutil.EncodeUint64Field(buf, 4, s.Timestamp)
	return buf, nil
}

func (s *SignatureAndData) Unmarshal(data []byte) error {
	*s = SignatureAndData{}
	for len(data) > 0 {
		fieldNum, wireType, n, err := wireutil.DecodeTag(data)
		if err != nil {
			return err
		}
		data = data[n:]
		switch fieldNum {
		case 1, 2, 3:
			if wireType != wireutil.WireBytes {
				return wireutil.ErrInvalidWire
			}
			var value []byte
			value, data, err = wireutil.DecodeLengthDelimited(data)
			if err != nil {
				return err
			}
			switch fieldNum {
			case 1:
				s.Signature = value
			case 2:
				s.Path = value
			case 3:
				s.Data = value
			}
		case 4:
			if wireType != wireutil.WireVarint {
				return wireutil.ErrInvalidWire
			}
			var v uint64
			v, n, err = wireutil.DecodeVarint(data)
			if err != nil {
				return err
			}
			data = data[n:]
			s.Timestamp = v
		default:
			data, err = wireutil.SkipField(data, wireType)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// TimestampedSignatureData is the wire shape of a commitment proof as
// supplied by the host: the gogoproto-encoded tx-signing
// SignatureDescriptor_Data bytes, plus the timestamp at which the
// signature was produced.
type TimestampedSignatureData struct {
	SignatureData []byte
	Timestamp     uint64
}

var _ proto.Message = (*TimestampedSignatureData)(nil)

func (t *TimestampedSignatureData) Reset()         { *t = TimestampedSignatureData{} }
func (t *TimestampedSignatureData) String() string { return proto.CompactTextString(t) }
func (*TimestampedSignatureData) ProtoMessage()    {}

func (t *TimestampedSignatureData) Size() int                                   { return wireutil.Size(t) }
func (t *TimestampedSignatureData) MarshalTo(data []byte) (int, error)          { return wireutil.MarshalTo(t, data) }
func (t *TimestampedSignatureData) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireutil.MarshalToSizedBuffer(t, dAtA) }

func (t *TimestampedSignatureData) Marshal() ([]byte, error) {
	var buf []byte
	buf = wireutil.EncodeBytesField(buf, 1, t.SignatureData)
	buf = wireutil.EncodeUint64Field(buf, 2, t.Timestamp)
	return buf, nil
}

func (t *TimestampedSignatureData) Unmarshal(data []byte) error {
	*t = TimestampedSignatureData{}
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
			t.SignatureData = value
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
			t.Timestamp = v
		default:
			data, err = wireutil.SkipField(data, wireType)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// SignBytes is the canonical pre-image a solo machine's key signs for
// every assertion: a membership/non-membership claim, a key-rotation
// header, or a piece of misbehaviour evidence. Any difference in any
// field, including the order of the key path's elements, changes the
// resulting bytes.
type SignBytes struct {
	Sequence    uint64
	Timestamp   uint64
	Diversifier string
	Path        commitmenttypes.MerklePath
	Data        []byte
}

var _ proto.Message = (*SignBytes)(nil)

func (s *SignBytes) Reset()         { *s = SignBytes{} }
func (s *SignBytes) String() string { return proto.CompactTextString(s) }
func (*SignBytes) ProtoMessage()    {}

func (s *SignBytes) Size() int                                   { return wireutil.Size(s) }
func (s *SignBytes) MarshalTo(data []byte) (int, error)          { return wireutil.MarshalTo(s, data) }
func (s *SignBytes) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireutil.MarshalToSizedBuffer(s, dAtA) }

func (s *SignBytes) Marshal() ([]byte, error) {
	var buf []byte
	buf = wireutil.EncodeUint64Field(buf, 1, s.Sequence)
	buf = wireutil.EncodeUint64Field(buf, 2, s.Timestamp)
	buf = wireutil.EncodeStringField(buf, 3, s.Diversifier)
	buf = wireutil.EncodeMessageField(buf, 4, &s.Path)
	buf = wireutil.EncodeBytesField(buf, 5, s.Data)
	return buf, nil
}

func (s *SignBytes) Unmarshal(data []byte) error {
	*s = SignBytes{}
	for len(data) > 0 {
		fieldNum, wireType, n, err := wireutil.DecodeTag(data)
		if err != nil {
			return err
		}
		data = data[n:]
		switch fieldNum {
		case 1, 2:
			if wireType != wireutil.WireVarint {
				return wireutil.ErrInvalidWire
			}
			var v uint64
			v, n, err = wireutil.DecodeVarint(data)
			if err != nil {
				return err
			}
			data = data[n:]
			if fieldNum == 1 {
				s.Sequence = v
			} else {
				s.Timestamp = v
			}
		case 3:
			if wireType != wireutil.WireBytes {
				return wireutil.ErrInvalidWire
			}
			var value []byte
			value, data, err = wireutil.DecodeLengthDelimited(data)
			if err != nil {
				return err
			}
			s.Diversifier = string(value)
		case 4:
			if wireType != wireutil.WireBytes {
				return wireutil.ErrInvalidWire
			}
			var value []byte
			value, data, err = wireutil.DecodeLengthDelimited(data)
			if err != nil {
				return err
			}
			if err := s.Path.Unmarshal(value); err != nil {
				return err
			}
		case 5:
			if wireType != wireutil.WireBytes {
				return wireutil.ErrInvalidWire
			}
			var value []byte
			value, data, err = wireutil.DecodeLengthDelimited(data)
			if err != nil {
				return err
			}
			s.Data = value
		default:
			data, err = wireutil.SkipField(data, wireType)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// HeaderData is the inner message a key-rotation header signs over:
// the proposed new public key and diversifier.
type HeaderData struct {
	NewPubKey    *codectypes.Any
	NewDiversifier string
}

var _ proto.Message = (*HeaderData)(nil)

func (h *HeaderData) Reset()         { *h = HeaderData{} }
func (h *HeaderData) String() string { return proto.CompactTextString(h) }
func (*HeaderData) ProtoMessage()    {}

func (h *HeaderData) Size() int                                   { return wireutil.Size(h) }
func (h *HeaderData) MarshalTo(data []byte) (int, error)          { return wireutil.MarshalTo(h, data) }
func (h *HeaderData) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireutil.MarshalToSizedBuffer(h, dAtA) }

func (h *HeaderData) Marshal() ([]byte, error) {
	var buf []byte
	if h.NewPubKey != nil {
		buf = wireutil.EncodeMessageField(buf, 1, h.NewPubKey)
	}
	buf = wireutil.EncodeStringField(buf, 2, h.NewDiversifier)
	return buf, nil
}

func (h *HeaderData) Unmarshal(data []byte) error {
	*h = HeaderData{}
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
			h.NewPubKey = &codectypes.Any{}
			if err := h.NewPubKey.Unmarshal(value); err != nil {
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
