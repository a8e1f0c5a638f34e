package clienttypes

import errorsmod "cosmossdk.io/errors"

// ibc-go registers client errors under codespace "client"; this module
// reproduces only the error values its vendored code references.
var (
	ErrInvalidHeight           = errorsmod.Register("client", 2, "invalid height")
	ErrInvalidClientIdentifier = errorsmod.Register("client", 3, "invalid client identifier")
	ErrClientTypeNotFound      = errorsmod.Register("client", 4, "client type not found")
	ErrInvalidClient           = errorsmod.Register("client", 5, "invalid client")
)
