package fee_vault

import (
	"crypto/ed25519"

	"github.com/feevault/feevault-server/pkg/solana"
)

var initializeInstructionDiscriminator = anchorDiscriminator("global", "initialize")

type InitializeInstructionAccounts struct {
	ProtocolConfig ed25519.PublicKey
	FeeRecipient   ed25519.PublicKey
	Authority      ed25519.PublicKey
}

func NewInitializeInstruction(
	accounts *InitializeInstructionAccounts,
) solana.Instruction {
	var offset int

	data := make([]byte, len(initializeInstructionDiscriminator))
	putDiscriminator(data, initializeInstructionDiscriminator, &offset)

	return solana.Instruction{
		Program: PROGRAM_ADDRESS,

		Data: data,

		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.ProtocolConfig,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.FeeRecipient,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Authority,
				IsWritable: true,
				IsSigner:   true,
			},
			{
				PublicKey:  SYSTEM_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}
}
