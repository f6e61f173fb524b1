package fee_vault

import (
	"crypto/ed25519"

	"github.com/feevault/feevault-server/pkg/solana"
)

var (
	protocolConfigPrefix = []byte("protocol_config")
	vaultAuthorityPrefix = []byte("vault_authority")
)

func GetProtocolConfigAddress() (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		protocolConfigPrefix,
	)
}

type GetVaultAuthorityAddressArgs struct {
	Owner ed25519.PublicKey
}

func GetVaultAuthorityAddress(args *GetVaultAuthorityAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		vaultAuthorityPrefix,
		args.Owner,
	)
}

// GetVaultAuthorityAddressWithBump re-derives a vault authority with a
// caller-provided bump. Used to verify that a claimed (owner, bump) pair
// actually maps to a vault's owning address.
func GetVaultAuthorityAddressWithBump(args *GetVaultAuthorityAddressArgs, bump uint8) (ed25519.PublicKey, error) {
	return solana.CreateProgramAddress(
		PROGRAM_ID,
		vaultAuthorityPrefix,
		args.Owner,
		[]byte{bump},
	)
}

// VaultAuthoritySeeds returns the seed sequence, without the bump, that a
// program signature for the vault authority is derived from.
func VaultAuthoritySeeds(owner ed25519.PublicKey) [][]byte {
	return [][]byte{
		vaultAuthorityPrefix,
		owner,
	}
}
