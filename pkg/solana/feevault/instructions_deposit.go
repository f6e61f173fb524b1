package fee_vault

import (
	"crypto/ed25519"

	"github.com/feevault/feevault-server/pkg/solana"
)

var depositInstructionDiscriminator = anchorDiscriminator("global", "deposit")

const DepositInstructionArgsSize = 8 // amount

type DepositInstructionArgs struct {
	Amount uint64
}

type DepositInstructionAccounts struct {
	User           ed25519.PublicKey
	From           ed25519.PublicKey
	VaultAuthority ed25519.PublicKey
	Vault          ed25519.PublicKey
}

func NewDepositInstruction(
	accounts *DepositInstructionAccounts,
	args *DepositInstructionArgs,
) solana.Instruction {
	var offset int

	data := make([]byte,
		len(depositInstructionDiscriminator)+
			DepositInstructionArgsSize)

	putDiscriminator(data, depositInstructionDiscriminator, &offset)
	putUint64(data, args.Amount, &offset)

	return solana.Instruction{
		Program: PROGRAM_ADDRESS,

		Data: data,

		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.User,
				IsWritable: false,
				IsSigner:   true,
			},
			{
				PublicKey:  accounts.From,
				IsWritable: true,
				IsSigner:   false,
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
				PublicKey:  SPL_TOKEN_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}
}
