package protocol

import "errors"

var (
	// ErrUnauthorized is returned when the signer isn't the source account's
	// owner, or a claimed vault authority doesn't re-derive from its seeds.
	ErrUnauthorized = errors.New("unauthorized: invalid authority")

	// ErrInvalidMint is returned when the accounts involved in a transfer
	// don't share the same mint.
	ErrInvalidMint = errors.New("invalid token mint")

	// ErrInsufficientBalance is returned when the requested amount exceeds
	// the source account's balance.
	ErrInsufficientBalance = errors.New("insufficient balance for transfer")

	// ErrAlreadyInitialized is returned when initialize is called after the
	// protocol config has been created.
	ErrAlreadyInitialized = errors.New("protocol already initialized")

	// ErrNotInitialized is returned by fee-bearing operations before the
	// protocol config has been created.
	ErrNotInitialized = errors.New("protocol not initialized")
)
