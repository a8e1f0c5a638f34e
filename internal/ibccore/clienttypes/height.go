// Package clienttypes reproduces the slice of ibc-go's
// 02-client/types package that a light-client module depends on: the
// Height type and the client-identifier grammar.
package clienttypes

import (
	"fmt"
	"strconv"
	"strings"

	errorsmod "cosmossdk.io/errors"

	"github.com/octopus-network/ics06-solomachine/internal/ibccore/exported"
)

// Height is a monotonically increasing data type that can be compared
// against another Height for the purposes of updating and freezing
// clients. A solo machine's revision number is always zero; its
// revision height is the signing sequence.
type Height struct {
	RevisionNumber uint64
	RevisionHeight uint64
}

var _ exported.Height = (*Height)(nil)

// NewHeight constructs a new Height instance.
func NewHeight(revisionNumber, revisionHeight uint64) Height {
	return Height{
		RevisionNumber: revisionNumber,
		RevisionHeight: revisionHeight,
	}
}

// ZeroHeight returns an uninitialized height.
func ZeroHeight() Height {
	return Height{}
}

func (h Height) GetRevisionNumber() uint64 { return h.RevisionNumber }
func (h Height) GetRevisionHeight() uint64 { return h.RevisionHeight }

// IsZero returns true if both the revision number and revision height
// are zero.
func (h Height) IsZero() bool {
	return h.RevisionNumber == 0 && h.RevisionHeight == 0
}

// Compare implements a three-way comparison: revision number takes
// precedence, then revision height.
func (h Height) Compare(other exported.Height) int64 {
	oh, ok := other.(Height)
	if !ok {
		oh = NewHeight(other.GetRevisionNumber(), other.GetRevisionHeight())
	}
	switch {
	case h.RevisionNumber != oh.RevisionNumber:
		if h.RevisionNumber < oh.RevisionNumber {
			return -1
		}
		return 1
	case h.RevisionHeight < oh.RevisionHeight:
		return -1
	case h.RevisionHeight > oh.RevisionHeight:
		return 1
	default:
		return 0
	}
}

func (h Height) LT(other exported.Height) bool { return h.Compare(other) == -1 }
func (h Height) EQ(other exported.Height) bool { return h.Compare(other) == 0 }
func (h Height) GT(other exported.Height) bool { return h.Compare(other) == 1 }

// Increment returns a copy of height with the revision height
// incremented.
func (h Height) Increment() Height {
	return NewHeight(h.RevisionNumber, h.RevisionHeight+1)
}

func (h Height) String() string {
	return fmt.Sprintf("%d-%d", h.RevisionNumber, h.RevisionHeight)
}

// ParseClientIdentifier splits a client identifier of the form
// "{client-type}-{sequence}" and returns the client type prefix.
func ParseClientIdentifier(clientID string) (string, error) {
	split := strings.Split(clientID, "-")
	if len(split) < 2 {
		return "", errorsmod.Wrapf(ErrInvalidClientIdentifier, "identifier %s does not contain a sequence", clientID)
	}

	sequence := split[len(split)-1]
	if _, err := strconv.ParseUint(sequence, 10, 64); err != nil {
		return "", errorsmod.Wrapf(ErrInvalidClientIdentifier, "identifier %s does not end in a valid sequence: %v", clientID, err)
	}

	clientType := strings.Join(split[:len(split)-1], "-")
	return clientType, nil
}
