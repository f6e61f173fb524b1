package protocolconfig

import (
	"errors"
	"time"
)

// Record is the persisted protocol configuration. There is exactly one per
// deployment, created by the initialize instruction and read by every
// fee-bearing operation thereafter.
type Record struct {
	Id uint64

	Address      string
	Authority    string
	FeeRecipient string
	FeeBps       uint64
	Bump         uint8

	CreatedAt time.Time
}

func (r *Record) Validate() error {
	if len(r.Address) == 0 {
		return errors.New("address is required")
	}

	if len(r.Authority) == 0 {
		return errors.New("authority is required")
	}

	if len(r.FeeRecipient) == 0 {
		return errors.New("fee recipient is required")
	}

	if r.FeeBps > 10000 {
		return errors.New("fee bps exceeds denominator")
	}

	return nil
}

func (r *Record) Clone() Record {
	return Record{
		Id: r.Id,

		Address:      r.Address,
		Authority:    r.Authority,
		FeeRecipient: r.FeeRecipient,
		FeeBps:       r.FeeBps,
		Bump:         r.Bump,

		CreatedAt: r.CreatedAt,
	}
}

func (r *Record) CopyTo(dst *Record) {
	dst.Id = r.Id

	dst.Address = r.Address
	dst.Authority = r.Authority
	dst.FeeRecipient = r.FeeRecipient
	dst.FeeBps = r.FeeBps
	dst.Bump = r.Bump

	dst.CreatedAt = r.CreatedAt
}
