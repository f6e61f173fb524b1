package fee_vault

import (
	"crypto/ed25519"

	"github.com/feevault/feevault-server/pkg/solana"
)

var transferWithFeeInstructionDiscriminator = anchorDiscriminator("global", "transfer_with_fee")

const TransferWithFeeInstructionArgsSize = 8 // amount

type TransferWithFeeInstructionArgs struct {
	Amount uint64
}

type TransferWithFeeInstructionAccounts struct {
	User               ed25519.PublicKey
	From               ed25519.PublicKey
	To                 ed25519.PublicKey
	ProtocolFeeAccount ed25519.PublicKey
}

func NewTransferWithFeeInstruction(
	accounts *TransferWithFeeInstructionAccounts,
	args *TransferWithFeeInstructionArgs,
) solana.Instruction {
	var offset int

	data := make([]byte,
		len(transferWithFeeInstructionDiscriminator)+
			TransferWithFeeInstructionArgsSize)

	putDiscriminator(data, transferWithFeeInstructionDiscriminator, &offset)
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
				PublicKey:  accounts.ProtocolFeeAccount,
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
