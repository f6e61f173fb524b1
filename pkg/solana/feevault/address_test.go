package fee_vault

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVaultAuthorityAddress(t *testing.T) {
	owner, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	address, bump, err := GetVaultAuthorityAddress(&GetVaultAuthorityAddressArgs{
		Owner: owner,
	})
	require.NoError(t, err)

	// Derivation is canonical: the same owner always maps to the same
	// (address, bump) pair.
	again, againBump, err := GetVaultAuthorityAddress(&GetVaultAuthorityAddressArgs{
		Owner: owner,
	})
	require.NoError(t, err)
	assert.EqualValues(t, address, again)
	assert.Equal(t, bump, againBump)

	recreated, err := GetVaultAuthorityAddressWithBump(&GetVaultAuthorityAddressArgs{
		Owner: owner,
	}, bump)
	require.NoError(t, err)
	assert.EqualValues(t, address, recreated)

	other, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	otherAddress, _, err := GetVaultAuthorityAddress(&GetVaultAuthorityAddressArgs{
		Owner: other,
	})
	require.NoError(t, err)
	assert.NotEqualValues(t, address, otherAddress)
}

func TestGetProtocolConfigAddress(t *testing.T) {
	address, bump, err := GetProtocolConfigAddress()
	require.NoError(t, err)
	assert.Len(t, []byte(address), ed25519.PublicKeySize)

	again, againBump, err := GetProtocolConfigAddress()
	require.NoError(t, err)
	assert.EqualValues(t, address, again)
	assert.Equal(t, bump, againBump)
}
