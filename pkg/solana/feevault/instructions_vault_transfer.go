package fee_vault

import (
	"crypto/ed25519"

	"github.com/feevault/feevault-server/pkg/solana"
)

var vaultTransferInstructionDiscriminator = anchorDiscriminator("global", "vault_transfer")

const VaultTransferInstructionArgsSize = (8 + // amount
	1) // vault_bump

type VaultTransferInstructionArgs struct {
	Amount    uint64
	VaultBump uint8
}

type VaultTransferInstructionAccounts struct {
	Authority      ed25519.PublicKey
	VaultAuthority ed25519.PublicKey
	Vault          ed25519.PublicKey
	To             ed25519.PublicKey
}

func NewVaultTransferInstruction(
	accounts *VaultTransferInstructionAccounts,
	args *VaultTransferInstructionArgs,
) solana.Instruction {
	var offset int

	data := make([]byte,
		len(vaultTransferInstructionDiscriminator)+
			VaultTransferInstructionArgsSize)

	putDiscriminator(data, vaultTransferInstructionDiscriminator, &offset)
	putUint64(data, args.Amount, &offset)
	putUint8(data, args.VaultBump, &offset)

	return solana.Instruction{
		Program: PROGRAM_ADDRESS,

		Data: data,

		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.Authority,
				IsWritable: false,
				IsSigner:   true,
			},
			{
				PublicKey:  accounts.VaultAuthority,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Vault,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.To,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  SPL_TOKEN_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}
}

func VaultTransferInstructionFromBinary(data []byte) (*VaultTransferInstructionArgs, error) {
	var offset int
	var discriminator []byte

	if len(data) < len(vaultTransferInstructionDiscriminator)+VaultTransferInstructionArgsSize {
		return nil, ErrInvalidInstructionData
	}

	getDiscriminator(data, &discriminator, &offset)

	if string(discriminator) != string(vaultTransferInstructionDiscriminator) {
		return nil, ErrInvalidInstructionData
	}

	var args VaultTransferInstructionArgs
	getUint64(data, &args.Amount, &offset)
	getUint8(data, &args.VaultBump, &offset)

	return &args, nil
}
