package types

import errorsmod "cosmossdk.io/errors"

// Solo machine client errors, registered under the module's own
// codespace. Each covers one of the failure modes the verifier and
// state machine can return.
var (
	ErrInvalidWire           = errorsmod.Register(ModuleName, 2, "invalid wire encoding")
	ErrInvalidHeight         = errorsmod.Register(ModuleName, 3, "invalid height")
	ErrInvalidKey            = errorsmod.Register(ModuleName, 4, "invalid public key")
	ErrUnsupportedKeyType    = errorsmod.Register(ModuleName, 5, "unsupported public key type")
	ErrInvalidSignature      = errorsmod.Register(ModuleName, 6, "invalid signature")
	ErrInvalidProof          = errorsmod.Register(ModuleName, 7, "invalid proof")
	ErrClientFrozen          = errorsmod.Register(ModuleName, 8, "client is frozen")
	ErrHeaderRejected        = errorsmod.Register(ModuleName, 9, "header rejected")
	ErrNotSupported          = errorsmod.Register(ModuleName, 10, "not supported")
	ErrStorageError          = errorsmod.Register(ModuleName, 11, "host storage error")
	ErrInvalidClientState    = errorsmod.Register(ModuleName, 12, "invalid client state")
	ErrInvalidConsensusState = errorsmod.Register(ModuleName, 13, "invalid consensus state")
	ErrInvalidHeader         = errorsmod.Register(ModuleName, 14, "invalid header")
	ErrInvalidMisbehaviour   = errorsmod.Register(ModuleName, 15, "invalid misbehaviour")
)
