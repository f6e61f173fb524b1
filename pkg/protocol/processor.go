package protocol

import (
	"context"
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"github.com/sirupsen/logrus"

	"github.com/feevault/feevault-server/pkg/ledger"
	"github.com/feevault/feevault-server/pkg/metrics"
	"github.com/feevault/feevault-server/pkg/protocol/data/protocolconfig"
	fee_vault "github.com/feevault/feevault-server/pkg/solana/feevault"
)

const (
	metricsStructName = "protocol.processor"

	feeCollectedEventName = "ProtocolFeeCollected"
)

// Processor executes protocol instructions. Each operation is a finite,
// synchronous pipeline (validate, compute, invoke) with no state carried
// across calls; atomicity of the invocations within one operation is
// provided by the surrounding ledger transaction.
type Processor struct {
	log     *logrus.Entry
	configs protocolconfig.Store
	ledger  ledger.Ledger
}

func NewProcessor(configs protocolconfig.Store, tokenLedger ledger.Ledger) *Processor {
	return &Processor{
		log:     logrus.StandardLogger().WithField("type", "protocol/processor"),
		configs: configs,
		ledger:  tokenLedger,
	}
}

type InitializeParams struct {
	// Authority is the initializing signer; it becomes the config authority.
	Authority ed25519.PublicKey

	// FeeRecipient is the identity designated to receive protocol fees.
	FeeRecipient ed25519.PublicKey
}

// Initialize creates the singleton protocol config with the fee rate fixed
// at genesis.
func (p *Processor) Initialize(ctx context.Context, params *InitializeParams) (*protocolconfig.Record, error) {
	tracer := metrics.TraceMethodCall(ctx, metricsStructName, "Initialize")
	defer tracer.End()

	log := p.log.WithFields(logrus.Fields{
		"method":    "Initialize",
		"authority": base58.Encode(params.Authority),
	})

	configAddress, bump, err := fee_vault.GetProtocolConfigAddress()
	if err != nil {
		log.WithError(err).Warn("failure deriving protocol config address")
		tracer.OnError(err)
		return nil, err
	}

	record := &protocolconfig.Record{
		Address:      base58.Encode(configAddress),
		Authority:    base58.Encode(params.Authority),
		FeeRecipient: base58.Encode(params.FeeRecipient),
		FeeBps:       fee_vault.ProtocolFeeBps,
		Bump:         bump,
	}

	if err := p.configs.Put(ctx, record); err != nil {
		if err == protocolconfig.ErrAlreadyExists {
			return nil, ErrAlreadyInitialized
		}

		log.WithError(err).Warn("failure creating protocol config record")
		tracer.OnError(err)
		return nil, err
	}

	log.WithField("fee_recipient", record.FeeRecipient).Info("protocol initialized")

	return record, nil
}

type TransferTokensParams struct {
	// User is the signer authorizing the debit; must own Source.
	User ed25519.PublicKey

	Source      ed25519.PublicKey
	Destination ed25519.PublicKey

	Amount uint64
}

// TransferTokens executes a user-signed transfer between two accounts of
// the same mint.
func (p *Processor) TransferTokens(ctx context.Context, params *TransferTokensParams) error {
	tracer := metrics.TraceMethodCall(ctx, metricsStructName, "TransferTokens")
	defer tracer.End()

	log := p.log.WithFields(logrus.Fields{
		"method": "TransferTokens",
		"source": base58.Encode(params.Source),
		"amount": params.Amount,
	})

	source, err := p.ledger.GetTokenAccount(ctx, params.Source)
	if err != nil {
		tracer.OnError(err)
		return err
	}
	destination, err := p.ledger.GetTokenAccount(ctx, params.Destination)
	if err != nil {
		tracer.OnError(err)
		return err
	}

	if err := validateOwner(source, params.User); err != nil {
		return err
	}
	if err := validateMint(source, destination); err != nil {
		return err
	}
	if err := validateBalance(source, params.Amount); err != nil {
		return err
	}

	if err := p.ledger.Transfer(ctx, params.Source, params.Destination, params.Amount, params.User, nil); err != nil {
		log.WithError(err).Warn("ledger rejected transfer")
		tracer.OnError(err)
		return err
	}

	return nil
}

type TransferWithFeeParams struct {
	// User is the signer authorizing the debit; must own Source.
	User ed25519.PublicKey

	Source      ed25519.PublicKey
	Destination ed25519.PublicKey

	// FeeAccount collects the protocol fee; must share Source's mint.
	FeeAccount ed25519.PublicKey

	Amount uint64
}

// TransferWithFee splits a user-signed transfer into a net leg to the
// destination and a fee leg to the protocol fee account, using the fee rate
// from the protocol config. Both legs must succeed; the surrounding ledger
// transaction unwinds the first if the second fails.
func (p *Processor) TransferWithFee(ctx context.Context, params *TransferWithFeeParams) error {
	tracer := metrics.TraceMethodCall(ctx, metricsStructName, "TransferWithFee")
	defer tracer.End()

	log := p.log.WithFields(logrus.Fields{
		"method": "TransferWithFee",
		"source": base58.Encode(params.Source),
		"amount": params.Amount,
	})

	config, err := p.configs.Get(ctx)
	if err != nil {
		if err == protocolconfig.ErrNotFound {
			return ErrNotInitialized
		}

		log.WithError(err).Warn("failure getting protocol config record")
		tracer.OnError(err)
		return err
	}

	source, err := p.ledger.GetTokenAccount(ctx, params.Source)
	if err != nil {
		tracer.OnError(err)
		return err
	}
	destination, err := p.ledger.GetTokenAccount(ctx, params.Destination)
	if err != nil {
		tracer.OnError(err)
		return err
	}
	feeAccount, err := p.ledger.GetTokenAccount(ctx, params.FeeAccount)
	if err != nil {
		tracer.OnError(err)
		return err
	}

	if err := validateOwner(source, params.User); err != nil {
		return err
	}
	if err := validateMint(source, destination); err != nil {
		return err
	}
	if err := validateMint(source, feeAccount); err != nil {
		return err
	}
	if err := validateBalance(source, params.Amount); err != nil {
		return err
	}

	fee := ComputeFee(params.Amount, uint16(config.FeeBps))
	net := params.Amount - fee

	if net > 0 {
		if err := p.ledger.Transfer(ctx, params.Source, params.Destination, net, params.User, nil); err != nil {
			log.WithError(err).Warn("ledger rejected transfer")
			tracer.OnError(err)
			return err
		}
	}

	if fee > 0 {
		if err := p.ledger.Transfer(ctx, params.Source, params.FeeAccount, fee, params.User, nil); err != nil {
			log.WithError(err).Warn("ledger rejected fee transfer")
			tracer.OnError(err)
			return err
		}

		metrics.RecordEvent(ctx, feeCollectedEventName, map[string]interface{}{
			"fee_account": base58.Encode(params.FeeAccount),
			"amount":      fee,
			"fee_bps":     config.FeeBps,
		})
	}

	return nil
}

type DepositParams struct {
	// User is the depositing signer; must own Source and the vault must be
	// owned by the user's derived vault authority.
	User ed25519.PublicKey

	Source ed25519.PublicKey
	Vault  ed25519.PublicKey

	Amount uint64
}

// Deposit executes a user-signed transfer into the user's vault. The vault
// is only a destination here; no program signing is involved.
func (p *Processor) Deposit(ctx context.Context, params *DepositParams) error {
	tracer := metrics.TraceMethodCall(ctx, metricsStructName, "Deposit")
	defer tracer.End()

	log := p.log.WithFields(logrus.Fields{
		"method": "Deposit",
		"source": base58.Encode(params.Source),
		"vault":  base58.Encode(params.Vault),
		"amount": params.Amount,
	})

	source, err := p.ledger.GetTokenAccount(ctx, params.Source)
	if err != nil {
		tracer.OnError(err)
		return err
	}
	vault, err := p.ledger.GetTokenAccount(ctx, params.Vault)
	if err != nil {
		tracer.OnError(err)
		return err
	}

	if err := validateOwner(source, params.User); err != nil {
		return err
	}
	if err := validateMint(source, vault); err != nil {
		return err
	}
	if err := validateBalance(source, params.Amount); err != nil {
		return err
	}

	// The vault must belong to the depositing user's canonical vault
	// authority, so deposits can't land in another user's vault.
	vaultAuthority, _, err := fee_vault.GetVaultAuthorityAddress(&fee_vault.GetVaultAuthorityAddressArgs{
		Owner: params.User,
	})
	if err != nil {
		log.WithError(err).Warn("failure deriving vault authority address")
		tracer.OnError(err)
		return err
	}
	if err := validateVaultOwner(vault, vaultAuthority); err != nil {
		return err
	}

	if err := p.ledger.Transfer(ctx, params.Source, params.Vault, params.Amount, params.User, nil); err != nil {
		log.WithError(err).Warn("ledger rejected transfer")
		tracer.OnError(err)
		return err
	}

	return nil
}

type VaultTransferParams struct {
	// Authority is the signer whose identity seeds the vault authority
	// derivation.
	Authority ed25519.PublicKey

	Vault       ed25519.PublicKey
	Destination ed25519.PublicKey

	Amount uint64

	// Bump is the claimed canonicalization nonce for the vault authority
	// derivation. It's verified against the vault's owner before any
	// invocation.
	Bump uint8
}

// VaultTransfer withdraws from a vault via a program-signed transfer. The
// vault authority is re-derived from the signer's identity and the claimed
// bump; a derivation that doesn't match the vault's owner fails with
// ErrUnauthorized before any balance moves.
func (p *Processor) VaultTransfer(ctx context.Context, params *VaultTransferParams) error {
	tracer := metrics.TraceMethodCall(ctx, metricsStructName, "VaultTransfer")
	defer tracer.End()

	log := p.log.WithFields(logrus.Fields{
		"method": "VaultTransfer",
		"vault":  base58.Encode(params.Vault),
		"amount": params.Amount,
	})

	vault, err := p.ledger.GetTokenAccount(ctx, params.Vault)
	if err != nil {
		tracer.OnError(err)
		return err
	}
	destination, err := p.ledger.GetTokenAccount(ctx, params.Destination)
	if err != nil {
		tracer.OnError(err)
		return err
	}

	vaultAuthority, err := fee_vault.GetVaultAuthorityAddressWithBump(&fee_vault.GetVaultAuthorityAddressArgs{
		Owner: params.Authority,
	}, params.Bump)
	if err != nil {
		// The claimed bump doesn't produce a valid derivation at all.
		return ErrUnauthorized
	}

	if err := validateVaultOwner(vault, vaultAuthority); err != nil {
		return err
	}
	if err := validateMint(vault, destination); err != nil {
		return err
	}
	if err := validateBalance(vault, params.Amount); err != nil {
		return err
	}

	// One-shot program authorization scoped to this invocation. The ledger
	// re-derives the same address from these seeds to accept the debit.
	authorization := &ledger.ProgramAuthorization{
		Program: fee_vault.PROGRAM_ID,
		Seeds:   fee_vault.VaultAuthoritySeeds(params.Authority),
		Bump:    params.Bump,
	}

	if err := p.ledger.Transfer(ctx, params.Vault, params.Destination, params.Amount, vaultAuthority, authorization); err != nil {
		log.WithError(err).Warn("ledger rejected transfer")
		tracer.OnError(err)
		return err
	}

	return nil
}
