package types

import (
	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/codec"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"

	"github.com/octopus-network/ics06-solomachine/internal/ibccore/commitmenttypes"
)

// verifyMisbehaviour checks that both signatures carried by a
// Misbehaviour were produced by the client's currently-trusted key,
// over the SignBytes built from each assertion's own timestamp,
// path, and data, at the misbehaviour's claimed sequence. Both must
// verify for the evidence to be accepted; that the two assertions
// actually conflict (same sequence, different path-or-data) is a
// host precondition, not re-checked here (§4.E.4).
func (cs ClientState) verifyMisbehaviour(cdc codec.BinaryCodec, misbehaviour *Misbehaviour) error {
	currentPubKey, err := cs.ConsensusState.GetPubKey()
	if err != nil {
		return err
	}

	if err := cs.verifySignatureAndData(cdc, currentPubKey, misbehaviour.Sequence, misbehaviour.SignatureOne); err != nil {
		return errorsmod.Wrap(err, "failed to verify signature one")
	}

	if err := cs.verifySignatureAndData(cdc, currentPubKey, misbehaviour.Sequence, misbehaviour.SignatureTwo); err != nil {
		return errorsmod.Wrap(err, "failed to verify signature two")
	}

	return nil
}

// verifySignatureAndData rebuilds the SignBytes a single conflicting
// assertion must have been signed over and verifies it under the
// given public key.
func (cs ClientState) verifySignatureAndData(cdc codec.BinaryCodec, pubKey cryptotypes.PubKey, sequence uint64, sigAndData *SignatureAndData) error {
	var path commitmenttypes.MerklePath
	if err := path.Unmarshal(sigAndData.Path); err != nil {
		return errorsmod.Wrapf(ErrInvalidWire, "failed to unmarshal signature path: %v", err)
	}

	signBytes := &SignBytes{
		Sequence:    sequence,
		Timestamp:   sigAndData.Timestamp,
		Diversifier: cs.ConsensusState.Diversifier,
		Path:        path,
		Data:        sigAndData.Data,
	}

	signBz, err := signBytes.Marshal()
	if err != nil {
		return errorsmod.Wrapf(ErrInvalidWire, "failed to marshal sign bytes: %v", err)
	}

	sigData, err := UnmarshalSignatureData(cdc, sigAndData.Signature)
	if err != nil {
		return err
	}

	return VerifySignature(pubKey, signBz, sigData)
}
