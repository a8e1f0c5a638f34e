package types

import (
	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/codec"

	"github.com/octopus-network/ics06-solomachine/internal/ibccore/commitmenttypes"
	"github.com/octopus-network/ics06-solomachine/internal/ibccore/exported"
)

// VerifyMembership checks that value is bound to path at the client's
// currently-trusted sequence, per the canonical SignBytes the current
// key must have signed (§4.E.1).
func (cs ClientState) VerifyMembership(
	cdc codec.BinaryCodec,
	height exported.Height,
	prefix commitmenttypes.MerklePrefix,
	proof []byte,
	path string,
	value []byte,
) error {
	sigData, timestamp, err := cs.produceVerificationArgs(cdc, height, proof)
	if err != nil {
		return err
	}

	merklePath, err := commitmenttypes.ApplyPrefix(prefix, path)
	if err != nil {
		return err
	}

	if merklePath.Empty() {
		return errorsmod.Wrap(ErrInvalidProof, "prefixed path cannot be empty")
	}

	pubKey, err := cs.ConsensusState.GetPubKey()
	if err != nil {
		return err
	}

	signBytes := &SignBytes{
		Sequence:    cs.Sequence,
		Timestamp:   timestamp,
		Diversifier: cs.ConsensusState.Diversifier,
		Path:        merklePath,
		Data:        value,
	}

	signBz, err := signBytes.Marshal()
	if err != nil {
		return errorsmod.Wrapf(ErrInvalidWire, "failed to marshal sign bytes: %v", err)
	}

	return VerifySignature(pubKey, signBz, sigData)
}

// VerifyNonMembership is VerifyMembership with an empty value: the
// solo machine has no distinct "absence" proof, it simply signs the
// same assertion shape with data = [] (§4.E.2).
func (cs ClientState) VerifyNonMembership(
	cdc codec.BinaryCodec,
	height exported.Height,
	prefix commitmenttypes.MerklePrefix,
	proof []byte,
	path string,
) error {
	return cs.VerifyMembership(cdc, height, prefix, proof, path, []byte{})
}
