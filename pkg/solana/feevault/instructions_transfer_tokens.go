package fee_vault

import (
	"crypto/ed25519"

	"github.com/feevault/feevault-server/pkg/solana"
)

var transferTokensInstructionDiscriminator = anchorDiscriminator("global", "transfer_tokens")

const TransferTokensInstructionArgsSize = 8 // amount

type TransferTokensInstructionArgs struct {
	Amount uint64
}

type TransferTokensInstructionAccounts struct {
	User ed25519.PublicKey
	From ed25519.PublicKey
	To   ed25519.PublicKey
}

func NewTransferTokensInstruction(
	accounts *TransferTokensInstructionAccounts,
	args *TransferTokensInstructionArgs,
) solana.Instruction {
	var offset int

	data := make([]byte,
		len(transferTokensInstructionDiscriminator)+
			TransferTokensInstructionArgsSize)

	putDiscriminator(data, transferTokensInstructionDiscriminator, &offset)
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
