package fee_vault

import "github.com/feevault/feevault-server/pkg/solana"

// Program error codes, offset at 6000 as Anchor custom errors.
const (
	// Unauthorized: invalid authority
	ErrUnauthorized solana.CustomError = iota + 6000

	// Invalid token mint
	ErrInvalidMint

	// Insufficient balance for transfer
	ErrInsufficientBalance

	// Invalid program for the token transfer
	ErrInvalidTransferProgram

	// Arithmetic overflow
	ErrOverflow
)
