package types

import (
	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/codec"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	signingtypes "github.com/cosmos/cosmos-sdk/types/tx/signing"
)

// UnmarshalSignatureData decodes the raw gogoproto-encoded
// SignatureDescriptor_Data bytes a TimestampedSignatureData or a
// Header carries into a signing.SignatureData value.
func UnmarshalSignatureData(cdc codec.BinaryCodec, data []byte) (signingtypes.SignatureData, error) {
	if len(data) == 0 {
		return nil, errorsmod.Wrap(ErrInvalidSignature, "signature data cannot be empty")
	}

	protoSigData := &signingtypes.SignatureDescriptor_Data{}
	if err := cdc.Unmarshal(data, protoSigData); err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidWire, "failed to unmarshal signature descriptor: %v", err)
	}

	sigData := signingtypes.SignatureDataFromProto(protoSigData)
	return sigData, nil
}

// VerifySignature verifies that signBytes is signed by the given
// public key. Only single signatures are accepted. The key's scheme is
// not checked here: keys reach this function through UnpackPubKey or
// PackPubKey, which reject unrecognized types with
// ErrUnsupportedKeyType; a key whose own VerifySignature returns false
// fails with ErrInvalidSignature.
func VerifySignature(pubKey cryptotypes.PubKey, signBytes []byte, sigData signingtypes.SignatureData) error {
	singleSigData, ok := sigData.(*signingtypes.SingleSignatureData)
	if !ok {
		return errorsmod.Wrapf(ErrInvalidSignature, "expected SingleSignatureData, got %T", sigData)
	}

	if len(singleSigData.Signature) == 0 {
		return errorsmod.Wrap(ErrInvalidSignature, "signature cannot be empty")
	}

	if pubKey == nil {
		return errorsmod.Wrap(ErrInvalidKey, "public key cannot be nil")
	}

	if !pubKey.VerifySignature(signBytes, singleSigData.Signature) {
		return errorsmod.Wrap(ErrInvalidSignature, "signature verification failed")
	}

	return nil
}
