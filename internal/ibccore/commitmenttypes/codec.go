package commitmenttypes

import (
	"github.com/cosmos/gogoproto/proto"

	"github.com/octopus-network/ics06-solomachine/internal/ibccore/wireutil"
)

var (
	_ proto.Message = (*MerklePath)(nil)
	_ proto.Message = (*MerklePrefix)(nil)
)

func (path MerklePath) Marshal() ([]byte, error) {
	var buf []byte
	for _, key := range path.KeyPath {
		buf = wireutil.EncodeStringField(buf, 1, key)
	}
	return buf, nil
}

func (path *MerklePath) Unmarshal(data []byte) error {
	*path = MerklePath{}
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
			path.KeyPath = append(path.KeyPath, string(value))
		default:
			data, err = wireutil.SkipField(data, wireType)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (path *MerklePath) Reset()        { *path = MerklePath{} }
func (path *MerklePath) ProtoMessage() {}

func (path *MerklePath) Size() int                                   { return wireutil.Size(path) }
func (path *MerklePath) MarshalTo(data []byte) (int, error)          { return wireutil.MarshalTo(path, data) }
func (path *MerklePath) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireutil.MarshalToSizedBuffer(path, dAtA) }

func (prefix MerklePrefix) Marshal() ([]byte, error) {
	var buf []byte
	buf = wireutil.EncodeBytesField(buf, 1, prefix.KeyPrefix)
	return buf, nil
}

func (prefix *MerklePrefix) Unmarshal(data []byte) error {
	*prefix = MerklePrefix{}
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
			prefix.KeyPrefix = value
		default:
			data, err = wireutil.SkipField(data, wireType)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (prefix *MerklePrefix) Reset()        { *prefix = MerklePrefix{} }
func (prefix *MerklePrefix) ProtoMessage() {}

func (prefix *MerklePrefix) Size() int                                   { return wireutil.Size(prefix) }
func (prefix *MerklePrefix) MarshalTo(data []byte) (int, error)          { return wireutil.MarshalTo(prefix, data) }
func (prefix *MerklePrefix) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireutil.MarshalToSizedBuffer(prefix, dAtA) }
