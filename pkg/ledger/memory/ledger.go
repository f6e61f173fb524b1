package memory

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"math"
	"sync"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"

	"github.com/feevault/feevault-server/pkg/ledger"
	"github.com/feevault/feevault-server/pkg/solana"
	"github.com/feevault/feevault-server/pkg/solana/token"
)

// Ledger is an in memory ledger.Ledger enforcing SPL token transfer
// semantics. Accounts are held as raw 165-byte token account images and
// decoded on every read, so callers observe exactly what they'd observe
// against real account data.
type Ledger struct {
	mu       sync.Mutex
	accounts map[string][]byte
}

func New() *Ledger {
	return &Ledger{
		accounts: make(map[string][]byte),
	}
}

// CreateTokenAccount initializes a token account for the given mint and
// owner with a zero balance.
func (l *Ledger) CreateTokenAccount(address, mint, owner ed25519.PublicKey) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := base58.Encode(address)
	if _, ok := l.accounts[key]; ok {
		return errors.New("token account already exists")
	}

	account := &token.Account{
		Mint:  mint,
		Owner: owner,
		State: token.AccountStateInitialized,
	}
	l.accounts[key] = account.Marshal()
	return nil
}

// MintTo credits new tokens to an account, standing in for the mint
// authority's external issuance path.
func (l *Ledger) MintTo(address ed25519.PublicKey, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	account, err := l.getLocked(address)
	if err != nil {
		return err
	}

	if amount > math.MaxUint64-account.Amount {
		return errors.New("amount overflows account balance")
	}

	account.Amount += amount
	l.accounts[base58.Encode(address)] = account.Marshal()
	return nil
}

// GetTokenAccount implements ledger.Ledger.GetTokenAccount
func (l *Ledger) GetTokenAccount(_ context.Context, address ed25519.PublicKey) (*token.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.getLocked(address)
}

// Transfer implements ledger.Ledger.Transfer
func (l *Ledger) Transfer(_ context.Context, source, destination ed25519.PublicKey, amount uint64, authority ed25519.PublicKey, programAuthorization *ledger.ProgramAuthorization) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	from, err := l.getLocked(source)
	if err != nil {
		return err
	}
	to, err := l.getLocked(destination)
	if err != nil {
		return err
	}

	if !l.isAuthorized(from.Owner, authority, programAuthorization) {
		return ledger.ErrOwnerMismatch
	}
	if !bytes.Equal(from.Mint, to.Mint) {
		return ledger.ErrMintMismatch
	}
	if from.Amount < amount {
		return ledger.ErrInsufficientFunds
	}

	// SPL treats a transfer to the same account as a successful no-op.
	if bytes.Equal(source, destination) {
		return nil
	}

	from.Amount -= amount
	to.Amount += amount

	l.accounts[base58.Encode(source)] = from.Marshal()
	l.accounts[base58.Encode(destination)] = to.Marshal()
	return nil
}

// isAuthorized reports whether the authority may debit an account owned by
// owner. An off-curve owner can only be matched through a program
// authorization whose seeds and bump re-derive to it.
func (l *Ledger) isAuthorized(owner, authority ed25519.PublicKey, programAuthorization *ledger.ProgramAuthorization) bool {
	if programAuthorization == nil {
		// User-signed: the surrounding transaction carries the owner's
		// signature, which the real ledger has verified by the time the
		// transfer executes. An off-curve owner has no keypair and can never
		// have signed.
		return bytes.Equal(owner, authority) && solana.IsOnCurve(authority)
	}

	seeds := append([][]byte{}, programAuthorization.Seeds...)
	seeds = append(seeds, []byte{programAuthorization.Bump})

	derived, err := solana.CreateProgramAddress(programAuthorization.Program, seeds...)
	if err != nil {
		return false
	}
	return bytes.Equal(owner, derived) && bytes.Equal(authority, derived)
}

func (l *Ledger) getLocked(address ed25519.PublicKey) (*token.Account, error) {
	data, ok := l.accounts[base58.Encode(address)]
	if !ok {
		return nil, ledger.ErrAccountNotFound
	}

	var account token.Account
	if !account.Unmarshal(data) {
		return nil, errors.New("invalid token account data")
	}
	return &account, nil
}
