package protocolconfig

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("protocol config not found")
	ErrAlreadyExists = errors.New("protocol config already exists")
)

type Store interface {
	// Put creates the protocol config record. The config is a singleton, so
	// ErrAlreadyExists is returned if one has already been created.
	Put(ctx context.Context, record *Record) error

	// Get gets the protocol config record, or ErrNotFound if the protocol
	// hasn't been initialized.
	Get(ctx context.Context) (*Record, error)
}
