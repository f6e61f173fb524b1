package fee_vault

import "crypto/ed25519"

var protocolConfigAccountDiscriminator = anchorDiscriminator("account", "ProtocolConfig")

const ProtocolConfigAccountSize = (8 + // discriminator
	32 + // authority
	32 + // fee_recipient
	8 + // fee_bps
	1) // bump

// ProtocolConfig is the singleton configuration account created by the
// initialize instruction.
type ProtocolConfig struct {
	Authority    ed25519.PublicKey
	FeeRecipient ed25519.PublicKey
	FeeBps       uint64
	Bump         uint8
}

func (obj *ProtocolConfig) Marshal() []byte {
	data := make([]byte, ProtocolConfigAccountSize)

	var offset int
	putDiscriminator(data, protocolConfigAccountDiscriminator, &offset)
	putKey(data, obj.Authority, &offset)
	putKey(data, obj.FeeRecipient, &offset)
	putUint64(data, obj.FeeBps, &offset)
	putUint8(data, obj.Bump, &offset)

	return data
}

func (obj *ProtocolConfig) Unmarshal(data []byte) error {
	if len(data) != ProtocolConfigAccountSize {
		return ErrInvalidAccountData
	}

	var offset int
	var discriminator []byte
	getDiscriminator(data, &discriminator, &offset)

	if string(discriminator) != string(protocolConfigAccountDiscriminator) {
		return ErrInvalidAccountData
	}

	getKey(data, &obj.Authority, &offset)
	getKey(data, &obj.FeeRecipient, &offset)
	getUint64(data, &obj.FeeBps, &offset)
	getUint8(data, &obj.Bump, &offset)

	return nil
}
