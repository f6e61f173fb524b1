package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRoundTrip(t *testing.T) {
	keys := generateKeys(t, 3)

	reserve := uint64(2039280)
	account := Account{
		Mint:            keys[0],
		Owner:           keys[1],
		Amount:          1_000_000_000,
		Delegate:        keys[2],
		State:           AccountStateInitialized,
		IsNative:        &reserve,
		DelegatedAmount: 42,
	}

	b := account.Marshal()
	require.Len(t, b, AccountSize)

	var decoded Account
	require.True(t, decoded.Unmarshal(b))
	assert.Equal(t, account.Mint, decoded.Mint)
	assert.Equal(t, account.Owner, decoded.Owner)
	assert.Equal(t, account.Amount, decoded.Amount)
	assert.Equal(t, account.Delegate, decoded.Delegate)
	assert.Equal(t, account.State, decoded.State)
	require.NotNil(t, decoded.IsNative)
	assert.Equal(t, reserve, *decoded.IsNative)
	assert.Equal(t, account.DelegatedAmount, decoded.DelegatedAmount)
	assert.Empty(t, decoded.CloseAuthority)

	var tooShort Account
	assert.False(t, tooShort.Unmarshal(b[:AccountSize-1]))
}
