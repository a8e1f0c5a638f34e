package types

import (
	errorsmod "cosmossdk.io/errors"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/crypto/keys/ed25519"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
)

// UnpackPubKey dispatches on the Any envelope's type URL to decode one
// of the two recognized public-key schemes (§4.B). Any other type URL
// fails with ErrUnsupportedKeyType.
func UnpackPubKey(any *codectypes.Any) (cryptotypes.PubKey, error) {
	if any == nil || len(any.Value) == 0 {
		return nil, errorsmod.Wrap(ErrInvalidKey, "public key cannot be empty")
	}

	switch any.TypeUrl {
	case Ed25519PubKeyTypeURL:
		pk := &ed25519.PubKey{}
		if err := pk.Unmarshal(any.Value); err != nil {
			return nil, errorsmod.Wrapf(ErrInvalidKey, "failed to unmarshal ed25519 public key: %v", err)
		}
		return pk, nil
	case Secp256k1PubKeyTypeURL:
		pk := &secp256k1.PubKey{}
		if err := pk.Unmarshal(any.Value); err != nil {
			return nil, errorsmod.Wrapf(ErrInvalidKey, "failed to unmarshal secp256k1 public key: %v", err)
		}
		return pk, nil
	default:
		return nil, errorsmod.Wrapf(ErrUnsupportedKeyType, "unrecognized public key type URL %s", any.TypeUrl)
	}
}

// PackPubKey wraps a recognized public key in its canonical Any
// envelope, setting the type URL from the registry in §6 directly
// rather than relying on the global interface registry's own type
// naming (which may differ from the exact IBC-fixed strings).
func PackPubKey(pubKey cryptotypes.PubKey) (*codectypes.Any, error) {
	var typeURL string
	switch pubKey.(type) {
	case *ed25519.PubKey:
		typeURL = Ed25519PubKeyTypeURL
	case *secp256k1.PubKey:
		typeURL = Secp256k1PubKeyTypeURL
	default:
		return nil, errorsmod.Wrapf(ErrUnsupportedKeyType, "unrecognized public key type %T", pubKey)
	}

	bz, err := pubKey.(interface{ Marshal() ([]byte, error) }).Marshal()
	if err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidKey, "failed to marshal public key: %v", err)
	}

	return &codectypes.Any{
		TypeUrl: typeURL,
		Value:   bz,
	}, nil
}
