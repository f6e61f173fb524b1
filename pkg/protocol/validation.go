package protocol

import (
	"bytes"
	"crypto/ed25519"

	"github.com/feevault/feevault-server/pkg/solana/token"
)

// The checks below run, in order, before any balance-moving invocation.
// They only inspect already-fetched account state and have no side effects.
// The external ledger re-enforces all of them; local failures just surface
// the same outcome without burning an invocation.

func validateOwner(account *token.Account, signer ed25519.PublicKey) error {
	if !bytes.Equal(account.Owner, signer) {
		return ErrUnauthorized
	}
	return nil
}

func validateMint(source, destination *token.Account) error {
	if !bytes.Equal(source.Mint, destination.Mint) {
		return ErrInvalidMint
	}
	return nil
}

func validateBalance(account *token.Account, amount uint64) error {
	if account.Amount < amount {
		return ErrInsufficientBalance
	}
	return nil
}

func validateVaultOwner(vault *token.Account, derivedAuthority ed25519.PublicKey) error {
	if len(derivedAuthority) == 0 || !bytes.Equal(vault.Owner, derivedAuthority) {
		return ErrUnauthorized
	}
	return nil
}
