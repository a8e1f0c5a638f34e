package ibctesting

import (
	"testing"

	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/crypto/keys/ed25519"
	kmultisig "github.com/cosmos/cosmos-sdk/crypto/keys/multisig"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	"github.com/cosmos/cosmos-sdk/crypto/types/multisig"
	"github.com/cosmos/cosmos-sdk/types/tx/signing"
	"github.com/stretchr/testify/require"

	"github.com/octopus-network/ics06-solomachine/internal/ibccore/clienttypes"
	"github.com/octopus-network/ics06-solomachine/internal/ibccore/commitmenttypes"
	"github.com/octopus-network/ics06-solomachine/internal/ibccore/exported"
	"github.com/octopus-network/ics06-solomachine/internal/ibccore/host"
	"github.com/octopus-network/ics06-solomachine/types"
)

// prefix is the commitment prefix every Solomachine test double applies
// in front of a logical path before signing, matching the default the
// host side (solomachine.LightClientModule) uses.
var prefix = commitmenttypes.NewMerklePrefix(types.DefaultCommitmentPrefix)

// Solomachine is a testing helper used to simulate a counterparty
// solo machine client: it owns the private keys, produces headers and
// misbehaviour the way a real solo machine would sign them, and tracks
// the sequence/diversifier/timestamp a corresponding ClientState would
// hold after each step.
type Solomachine struct {
	t *testing.T

	cdc         codec.BinaryCodec
	ClientID    string
	PrivateKeys []cryptotypes.PrivKey // keys used for signing
	PublicKeys  []cryptotypes.PubKey  // keys used for generating solo machine pub key
	PublicKey   cryptotypes.PubKey    // key used for verification
	Sequence    uint64
	Time        uint64
	Diversifier string
}

// NewSolomachine returns a new solomachine instance with an `nKeys` amount of
// generated private/public key pairs and a sequence starting at 1. If nKeys
// is greater than 1 then a multisig public key is generated; types.PackPubKey
// rejects multisig keys, so ConsensusState and ClientState fail the test
// for such an instance.
func NewSolomachine(t *testing.T, cdc codec.BinaryCodec, clientID, diversifier string, nKeys uint64) *Solomachine {
	privKeys, pubKeys, pk := GenerateKeys(t, nKeys)

	return &Solomachine{
		t:           t,
		cdc:         cdc,
		ClientID:    clientID,
		PrivateKeys: privKeys,
		PublicKeys:  pubKeys,
		PublicKey:   pk,
		Sequence:    1,
		Time:        10,
		Diversifier: diversifier,
	}
}

// GenerateKeys generates a new set of secp256k1 private keys and public keys.
// If the number of keys is greater than one then the public key returned
// represents a multisig public key. The private keys are used for signing,
// the public keys are used for generating the public key, and the public
// key is used for solo machine verification. The usage of secp256k1 is
// entirely arbitrary; ed25519 is equally supported by the crypto adapter
// (types.UnpackPubKey/PackPubKey), see NewSolomachineWithEd25519.
func GenerateKeys(t *testing.T, n uint64) ([]cryptotypes.PrivKey, []cryptotypes.PubKey, cryptotypes.PubKey) {
	require.NotEqual(t, uint64(0), n, "generation of zero keys is not allowed")

	privKeys := make([]cryptotypes.PrivKey, n)
	pubKeys := make([]cryptotypes.PubKey, n)
	for i := uint64(0); i < n; i++ {
		privKeys[i] = secp256k1.GenPrivKey()
		pubKeys[i] = privKeys[i].PubKey()
	}

	var pk cryptotypes.PubKey
	if len(privKeys) > 1 {
		// generate multi sig pk
		pk = kmultisig.NewLegacyAminoPubKey(int(n), pubKeys)
	} else {
		pk = privKeys[0].PubKey()
	}

	return privKeys, pubKeys, pk
}

// NewSolomachineWithEd25519 is NewSolomachine using a single Ed25519 key
// pair instead of secp256k1, exercising the other public-key variant the
// crypto adapter recognizes (§4.B).
func NewSolomachineWithEd25519(t *testing.T, cdc codec.BinaryCodec, clientID, diversifier string) *Solomachine {
	privKey := ed25519.GenPrivKey()

	return &Solomachine{
		t:           t,
		cdc:         cdc,
		ClientID:    clientID,
		PrivateKeys: []cryptotypes.PrivKey{privKey},
		PublicKeys:  []cryptotypes.PubKey{privKey.PubKey()},
		PublicKey:   privKey.PubKey(),
		Sequence:    1,
		Time:        10,
		Diversifier: diversifier,
	}
}

// ClientState returns a new solo machine ClientState instance.
func (solo *Solomachine) ClientState() *types.ClientState {
	return types.NewClientState(solo.Sequence, solo.ConsensusState())
}

// ConsensusState returns a new solo machine ConsensusState instance.
func (solo *Solomachine) ConsensusState() *types.ConsensusState {
	publicKey, err := types.PackPubKey(solo.PublicKey)
	require.NoError(solo.t, err)

	return &types.ConsensusState{
		PublicKey:   publicKey,
		Diversifier: solo.Diversifier,
		Timestamp:   solo.Time,
	}
}

// GetHeight returns an exported.Height with Sequence as RevisionHeight.
func (solo *Solomachine) GetHeight() exported.Height {
	return clienttypes.NewHeight(0, solo.Sequence)
}

// CreateHeader generates a new private/public key pair and creates the
// necessary signature to construct a valid solo machine header. A new
// diversifier will be used as well.
func (solo *Solomachine) CreateHeader(newDiversifier string) *types.Header {
	// generate new private keys and signature for header
	newPrivKeys, newPubKeys, newPubKey := GenerateKeys(solo.t, uint64(len(solo.PrivateKeys)))

	publicKey, err := types.PackPubKey(newPubKey)
	require.NoError(solo.t, err)

	data := &types.HeaderData{
		NewPubKey:      publicKey,
		NewDiversifier: newDiversifier,
	}

	dataBz, err := data.Marshal()
	require.NoError(solo.t, err)

	signBytes := &types.SignBytes{
		Sequence:    solo.Sequence,
		Timestamp:   solo.Time,
		Diversifier: solo.Diversifier,
		Path:        commitmenttypes.NewMerklePath(types.SentinelHeaderPath),
		Data:        dataBz,
	}

	bz, err := signBytes.Marshal()
	require.NoError(solo.t, err)

	sig := solo.GenerateSignature(bz)

	header := &types.Header{
		Timestamp:      solo.Time,
		Signature:      sig,
		NewPublicKey:   publicKey,
		NewDiversifier: newDiversifier,
	}

	// assumes successful header update
	solo.Sequence++
	solo.PrivateKeys = newPrivKeys
	solo.PublicKeys = newPubKeys
	solo.PublicKey = newPubKey
	solo.Diversifier = newDiversifier

	return header
}

// CreateMisbehaviour constructs testing misbehaviour for the solo machine
// client by signing over two different data bytes at the same sequence.
func (solo *Solomachine) CreateMisbehaviour() *types.Misbehaviour {
	clientStatePath := solo.GetClientStatePath("counterparty")
	pathOne, err := clientStatePath.Marshal()
	require.NoError(solo.t, err)

	dataOne, err := solo.ClientState().Marshal()
	require.NoError(solo.t, err)

	signBytesOne := &types.SignBytes{
		Sequence:    solo.Sequence,
		Timestamp:   solo.Time,
		Diversifier: solo.Diversifier,
		Path:        clientStatePath,
		Data:        dataOne,
	}

	bzOne, err := signBytesOne.Marshal()
	require.NoError(solo.t, err)

	sigOne := solo.GenerateSignature(bzOne)
	signatureOne := &types.SignatureAndData{
		Signature: sigOne,
		Path:      pathOne,
		Data:      dataOne,
		Timestamp: solo.Time,
	}

	// misbehaviour signatures can have different timestamps
	solo.Time++

	consensusStatePath := solo.GetConsensusStatePath("counterparty", clienttypes.NewHeight(0, 1))
	pathTwo, err := consensusStatePath.Marshal()
	require.NoError(solo.t, err)

	dataTwo, err := solo.ConsensusState().Marshal()
	require.NoError(solo.t, err)

	signBytesTwo := &types.SignBytes{
		Sequence:    solo.Sequence,
		Timestamp:   solo.Time,
		Diversifier: solo.Diversifier,
		Path:        consensusStatePath,
		Data:        dataTwo,
	}

	bzTwo, err := signBytesTwo.Marshal()
	require.NoError(solo.t, err)

	sigTwo := solo.GenerateSignature(bzTwo)
	signatureTwo := &types.SignatureAndData{
		Signature: sigTwo,
		Path:      pathTwo,
		Data:      dataTwo,
		Timestamp: solo.Time,
	}

	return &types.Misbehaviour{
		Sequence:     solo.Sequence,
		SignatureOne: signatureOne,
		SignatureTwo: signatureTwo,
	}
}

// GenerateSignature uses the stored private keys to generate a signature
// over the sign bytes with each key. If the amount of keys is greater than
// 1 then a multisig data type is returned.
func (solo *Solomachine) GenerateSignature(signBytes []byte) []byte {
	sigs := make([]signing.SignatureData, len(solo.PrivateKeys))
	for i, key := range solo.PrivateKeys {
		sig, err := key.Sign(signBytes)
		require.NoError(solo.t, err)

		sigs[i] = &signing.SingleSignatureData{
			Signature: sig,
		}
	}

	var sigData signing.SignatureData
	if len(sigs) == 1 {
		// single public key
		sigData = sigs[0]
	} else {
		// generate multi signature data
		multiSigData := multisig.NewMultisig(len(sigs))
		for i, sig := range sigs {
			multisig.AddSignature(multiSigData, sig, i)
		}

		sigData = multiSigData
	}

	protoSigData := signing.SignatureDataToProto(sigData)
	bz, err := solo.cdc.Marshal(protoSigData)
	require.NoError(solo.t, err)

	return bz
}

// GenerateProof wraps a raw signature over signBytes in the
// TimestampedSignatureData envelope a membership/non-membership proof
// carries on the wire.
func (solo *Solomachine) GenerateProof(signBytes []byte) []byte {
	timestampedSigData := &types.TimestampedSignatureData{
		SignatureData: solo.GenerateSignature(signBytes),
		Timestamp:     solo.Time,
	}

	bz, err := timestampedSigData.Marshal()
	require.NoError(solo.t, err)

	return bz
}

// GetClientStatePath returns the commitment path for the client state.
func (solo *Solomachine) GetClientStatePath(counterpartyClientIdentifier string) commitmenttypes.MerklePath {
	path, err := commitmenttypes.ApplyPrefix(prefix, host.FullClientStatePath(counterpartyClientIdentifier))
	require.NoError(solo.t, err)

	return path
}

// GetConsensusStatePath returns the commitment path for the consensus state.
func (solo *Solomachine) GetConsensusStatePath(counterpartyClientIdentifier string, consensusHeight exported.Height) commitmenttypes.MerklePath {
	path, err := commitmenttypes.ApplyPrefix(prefix, host.FullConsensusStatePath(counterpartyClientIdentifier, consensusHeight))
	require.NoError(solo.t, err)

	return path
}
