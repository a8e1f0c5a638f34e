// Package commitmenttypes reproduces the slice of ibc-go's
// 23-commitment/types package a light-client module builds commitment
// paths with: MerklePrefix, MerklePath, and MerkleRoot.
package commitmenttypes

import (
	"strings"

	errorsmod "cosmossdk.io/errors"
)

// MerklePrefix is the prefix prepended to an application's logical
// path before it is committed to by the host's Merkle tree. For IBC
// chains this is typically the ASCII bytes "ibc".
type MerklePrefix struct {
	KeyPrefix []byte
}

func NewMerklePrefix(keyPrefix []byte) MerklePrefix {
	return MerklePrefix{KeyPrefix: keyPrefix}
}

func (prefix MerklePrefix) Bytes() []byte {
	if len(prefix.KeyPrefix) == 0 {
		return []byte{}
	}
	return prefix.KeyPrefix
}

func (prefix MerklePrefix) Empty() bool {
	return len(prefix.Bytes()) == 0
}

func (prefix MerklePrefix) String() string {
	return string(prefix.KeyPrefix)
}

// MerklePath is an ordered list of keys, each a layer of a proof
// starting from the root of the tree down to the leaf.
type MerklePath struct {
	KeyPath []string
}

// NewMerklePath creates a new MerklePath instance from the given key
// path components.
func NewMerklePath(keyPath ...string) MerklePath {
	return MerklePath{KeyPath: keyPath}
}

func (path MerklePath) Empty() bool {
	return len(path.KeyPath) == 0
}

// LogicalPath returns the last element of the key path: the
// application-level path before any commitment prefix was applied.
// A MerklePath produced by ApplyPrefix always has exactly this shape
// (prefix, logical path).
func (path MerklePath) LogicalPath() string {
	if len(path.KeyPath) == 0 {
		return ""
	}
	return path.KeyPath[len(path.KeyPath)-1]
}

// String joins the key path with "/", matching the representation
// ibc-go uses for logging. Signing covers the encoded key path
// (Marshal), not this string.
func (path MerklePath) String() string {
	return strings.Join(path.KeyPath, "/")
}

// ApplyPrefix constructs a new commitment path from the arguments: a
// two-element key path holding the prefix bytes (as a string) followed
// by the given path. No key lengths are added; the keys stay separate
// elements of the path.
func ApplyPrefix(prefix MerklePrefix, path string) (MerklePath, error) {
	if prefix.Empty() {
		return MerklePath{}, errorsmod.Wrap(ErrInvalidPrefix, "prefix can't be empty")
	}
	return NewMerklePath(string(prefix.Bytes()), path), nil
}

// MerkleRoot is the root commitment returned by the host as part of a
// consensus state. Solo-machine clients verify with signatures rather
// than a Merkle tree, so their root is never used in verification; it
// holds the encoded public key bytes only to fill the slot.
type MerkleRoot struct {
	Hash []byte
}

func NewMerkleRoot(hash []byte) MerkleRoot {
	return MerkleRoot{Hash: hash}
}

func (root MerkleRoot) GetHash() []byte {
	return root.Hash
}

func (root MerkleRoot) Empty() bool {
	return len(root.Hash) == 0
}
