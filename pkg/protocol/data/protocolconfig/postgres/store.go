package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/feevault/feevault-server/pkg/protocol/data/protocolconfig"
)

type store struct {
	db *sqlx.DB
}

// New returns a new postgres protocolconfig.Store
func New(db *sql.DB) protocolconfig.Store {
	return &store{
		db: sqlx.NewDb(db, "pgx"),
	}
}

// Put implements protocolconfig.Store.Put
func (s *store) Put(ctx context.Context, record *protocolconfig.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	model, err := toModel(record)
	if err != nil {
		return err
	}

	if err := model.dbPut(ctx, s.db); err != nil {
		return err
	}

	fromModel(model).CopyTo(record)

	return nil
}

// Get implements protocolconfig.Store.Get
func (s *store) Get(ctx context.Context) (*protocolconfig.Record, error) {
	model, err := dbGet(ctx, s.db)
	if err != nil {
		return nil, err
	}
	return fromModel(model), nil
}
