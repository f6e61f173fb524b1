package ledger

import (
	"context"
	"crypto/ed25519"
	"errors"

	"github.com/feevault/feevault-server/pkg/solana/token"
)

var (
	ErrAccountNotFound   = errors.New("token account not found")
	ErrOwnerMismatch     = errors.New("authority is not the account owner")
	ErrMintMismatch      = errors.New("source and destination mints don't match")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// ProgramAuthorization proves that the invoking program controls a derived
// address equal to the debited account's owner. It is constructed per
// invocation from the same seeds and bump used for derivation and is never
// persisted.
type ProgramAuthorization struct {
	Program ed25519.PublicKey
	Seeds   [][]byte
	Bump    uint8
}

// Ledger is the boundary to the external system of record for token
// balances. Implementations must provide all-or-nothing transfer semantics;
// callers never retry a failed invocation.
type Ledger interface {
	// GetTokenAccount returns the current state of a token account.
	GetTokenAccount(ctx context.Context, address ed25519.PublicKey) (*token.Account, error)

	// Transfer debits amount from the source account and credits it to the
	// destination account. The authority must be the source account's owner,
	// or programAuthorization must derive to the source account's owner.
	// programAuthorization may be nil for transfers signed by the user.
	Transfer(ctx context.Context, source, destination ed25519.PublicKey, amount uint64, authority ed25519.PublicKey, programAuthorization *ProgramAuthorization) error
}
