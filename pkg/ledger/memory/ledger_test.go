package memory

import (
	"context"
	"crypto/ed25519"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feevault/feevault-server/pkg/ledger"
	fee_vault "github.com/feevault/feevault-server/pkg/solana/feevault"
)

func TestTransfer_UserSigned(t *testing.T) {
	ctx := context.Background()
	l := New()

	mint := generateKey(t)
	owner := generateKey(t)
	source := generateKey(t)
	destination := generateKey(t)

	require.NoError(t, l.CreateTokenAccount(source, mint, owner))
	require.NoError(t, l.CreateTokenAccount(destination, mint, generateKey(t)))
	require.NoError(t, l.MintTo(source, 1000))

	require.NoError(t, l.Transfer(ctx, source, destination, 400, owner, nil))

	from, err := l.GetTokenAccount(ctx, source)
	require.NoError(t, err)
	assert.EqualValues(t, 600, from.Amount)

	to, err := l.GetTokenAccount(ctx, destination)
	require.NoError(t, err)
	assert.EqualValues(t, 400, to.Amount)

	// Not the owner
	err = l.Transfer(ctx, source, destination, 100, generateKey(t), nil)
	assert.Equal(t, ledger.ErrOwnerMismatch, err)

	// Over the balance
	err = l.Transfer(ctx, source, destination, 601, owner, nil)
	assert.Equal(t, ledger.ErrInsufficientFunds, err)

	// Unknown account
	err = l.Transfer(ctx, generateKey(t), destination, 1, owner, nil)
	assert.Equal(t, ledger.ErrAccountNotFound, err)
}

func TestTransfer_SelfTransfer(t *testing.T) {
	ctx := context.Background()
	l := New()

	mint := generateKey(t)
	owner := generateKey(t)
	source := generateKey(t)

	require.NoError(t, l.CreateTokenAccount(source, mint, owner))
	require.NoError(t, l.MintTo(source, 1000))

	// A transfer to the same account succeeds and leaves the balance alone.
	require.NoError(t, l.Transfer(ctx, source, source, 400, owner, nil))

	account, err := l.GetTokenAccount(ctx, source)
	require.NoError(t, err)
	assert.EqualValues(t, 1000, account.Amount)

	// Authorization and balance checks still apply.
	err = l.Transfer(ctx, source, source, 100, generateKey(t), nil)
	assert.Equal(t, ledger.ErrOwnerMismatch, err)
	err = l.Transfer(ctx, source, source, 1001, owner, nil)
	assert.Equal(t, ledger.ErrInsufficientFunds, err)
}

func TestMintTo_Overflow(t *testing.T) {
	ctx := context.Background()
	l := New()

	source := generateKey(t)
	require.NoError(t, l.CreateTokenAccount(source, generateKey(t), generateKey(t)))
	require.NoError(t, l.MintTo(source, math.MaxUint64-1))

	assert.Error(t, l.MintTo(source, 2))

	account, err := l.GetTokenAccount(ctx, source)
	require.NoError(t, err)
	assert.EqualValues(t, uint64(math.MaxUint64-1), account.Amount)

	require.NoError(t, l.MintTo(source, 1))
	account, err = l.GetTokenAccount(ctx, source)
	require.NoError(t, err)
	assert.EqualValues(t, uint64(math.MaxUint64), account.Amount)
}

func TestTransfer_MintMismatch(t *testing.T) {
	ctx := context.Background()
	l := New()

	owner := generateKey(t)
	source := generateKey(t)
	destination := generateKey(t)

	require.NoError(t, l.CreateTokenAccount(source, generateKey(t), owner))
	require.NoError(t, l.CreateTokenAccount(destination, generateKey(t), owner))
	require.NoError(t, l.MintTo(source, 1000))

	err := l.Transfer(ctx, source, destination, 100, owner, nil)
	assert.Equal(t, ledger.ErrMintMismatch, err)
}

func TestTransfer_ProgramSigned(t *testing.T) {
	ctx := context.Background()
	l := New()

	mint := generateKey(t)
	user := generateKey(t)
	vault := generateKey(t)
	destination := generateKey(t)

	vaultAuthority, bump, err := fee_vault.GetVaultAuthorityAddress(&fee_vault.GetVaultAuthorityAddressArgs{
		Owner: user,
	})
	require.NoError(t, err)

	require.NoError(t, l.CreateTokenAccount(vault, mint, vaultAuthority))
	require.NoError(t, l.CreateTokenAccount(destination, mint, user))
	require.NoError(t, l.MintTo(vault, 500))

	authorization := &ledger.ProgramAuthorization{
		Program: fee_vault.PROGRAM_ID,
		Seeds:   fee_vault.VaultAuthoritySeeds(user),
		Bump:    bump,
	}

	require.NoError(t, l.Transfer(ctx, vault, destination, 200, vaultAuthority, authorization))

	account, err := l.GetTokenAccount(ctx, vault)
	require.NoError(t, err)
	assert.EqualValues(t, 300, account.Amount)

	// Seeds for a different user don't derive to the vault owner.
	badAuthorization := &ledger.ProgramAuthorization{
		Program: fee_vault.PROGRAM_ID,
		Seeds:   fee_vault.VaultAuthoritySeeds(generateKey(t)),
		Bump:    bump,
	}
	err = l.Transfer(ctx, vault, destination, 100, vaultAuthority, badAuthorization)
	assert.Equal(t, ledger.ErrOwnerMismatch, err)

	// A PDA owner can't be debited without a program authorization: the
	// owner is off-curve, so no keypair could have signed as it.
	err = l.Transfer(ctx, vault, destination, 100, vaultAuthority, nil)
	assert.Equal(t, ledger.ErrOwnerMismatch, err)
}

func generateKey(t *testing.T) ed25519.PublicKey {
	pub, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	return pub
}
