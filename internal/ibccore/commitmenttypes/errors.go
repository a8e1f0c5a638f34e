package commitmenttypes

import errorsmod "cosmossdk.io/errors"

var (
	ErrInvalidPrefix = errorsmod.Register("commitment", 2, "invalid commitment prefix")
	ErrInvalidProof  = errorsmod.Register("commitment", 3, "invalid commitment proof")
)
