package types

import (
	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/codec"

	"github.com/octopus-network/ics06-solomachine/internal/ibccore/commitmenttypes"
	"github.com/octopus-network/ics06-solomachine/internal/ibccore/exported"
)

// verifyHeader checks that a proposed key-rotation header was signed
// by the client's currently-trusted key over the canonical SignBytes
// for the sentinel header path. It never mutates state.
func (cs ClientState) verifyHeader(cdc codec.BinaryCodec, header *Header) error {
	if header.Timestamp < cs.ConsensusState.GetTimestamp() {
		return errorsmod.Wrapf(ErrHeaderRejected, "header timestamp is less than the consensus state timestamp (%d < %d)", header.Timestamp, cs.ConsensusState.GetTimestamp())
	}

	headerData := &HeaderData{
		NewPubKey:      header.NewPublicKey,
		NewDiversifier: header.NewDiversifier,
	}

	dataBz, err := headerData.Marshal()
	if err != nil {
		return errorsmod.Wrapf(ErrInvalidWire, "failed to marshal header data: %v", err)
	}

	signBytes := &SignBytes{
		Sequence:    cs.Sequence,
		Timestamp:   header.Timestamp,
		Diversifier: cs.ConsensusState.Diversifier,
		Path:        commitmenttypes.NewMerklePath(SentinelHeaderPath),
		Data:        dataBz,
	}

	signBz, err := signBytes.Marshal()
	if err != nil {
		return errorsmod.Wrapf(ErrInvalidWire, "failed to marshal sign bytes: %v", err)
	}

	sigData, err := UnmarshalSignatureData(cdc, header.Signature)
	if err != nil {
		return err
	}

	currentPubKey, err := cs.ConsensusState.GetPubKey()
	if err != nil {
		return err
	}

	if err := VerifySignature(currentPubKey, signBz, sigData); err != nil {
		return errorsmod.Wrap(ErrInvalidSignature, err.Error())
	}

	return nil
}

// UpdateState advances the client to the new identity a verified
// header proposes: it rotates the public key and diversifier,
// records the header's timestamp as the new consensus state's
// timestamp, increments the sequence, and persists both. The caller
// must have already verified the header via VerifyClientMessage.
func (cs ClientState) UpdateState(ctx ExecutionContext, cdc codec.BinaryCodec, clientID string, header *Header) ([]exported.Height, error) {
	newConsensusState := &ConsensusState{
		PublicKey:   header.NewPublicKey,
		Diversifier: header.NewDiversifier,
		Timestamp:   header.Timestamp,
	}

	newClientState := ClientState{
		Sequence:       cs.Sequence + 1,
		IsFrozen:       false,
		ConsensusState: newConsensusState,
	}

	newHeight := newClientState.GetLatestHeight()

	ctx.SetClientState(clientID, &newClientState)
	ctx.SetConsensusState(clientID, newHeight, newConsensusState)

	return []exported.Height{newHeight}, nil
}
