package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	pgutil "github.com/feevault/feevault-server/pkg/database/postgres"
	"github.com/feevault/feevault-server/pkg/protocol/data/protocolconfig"
)

const (
	tableName = "feevault__core_protocolconfig"
)

type model struct {
	Id sql.NullInt64 `db:"id"`

	Address      string `db:"address"`
	Authority    string `db:"authority"`
	FeeRecipient string `db:"fee_recipient"`
	FeeBps       uint64 `db:"fee_bps"`
	Bump         uint8  `db:"bump"`

	CreatedAt time.Time `db:"created_at"`
}

func toModel(obj *protocolconfig.Record) (*model, error) {
	return &model{
		Address:      obj.Address,
		Authority:    obj.Authority,
		FeeRecipient: obj.FeeRecipient,
		FeeBps:       obj.FeeBps,
		Bump:         obj.Bump,

		CreatedAt: obj.CreatedAt,
	}, nil
}

func fromModel(obj *model) *protocolconfig.Record {
	return &protocolconfig.Record{
		Id: uint64(obj.Id.Int64),

		Address:      obj.Address,
		Authority:    obj.Authority,
		FeeRecipient: obj.FeeRecipient,
		FeeBps:       obj.FeeBps,
		Bump:         obj.Bump,

		CreatedAt: obj.CreatedAt,
	}
}

func (m *model) dbPut(ctx context.Context, db *sqlx.DB) error {
	return pgutil.ExecuteInTx(ctx, db, sql.LevelSerializable, func(tx *sqlx.Tx) error {
		var count int
		if err := tx.QueryRowxContext(ctx, `SELECT COUNT(*) FROM `+tableName).Scan(&count); err != nil {
			return err
		}
		if count > 0 {
			return protocolconfig.ErrAlreadyExists
		}

		if m.CreatedAt.IsZero() {
			m.CreatedAt = time.Now()
		}

		query := `INSERT INTO ` + tableName + `
			(address, authority, fee_recipient, fee_bps, bump, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)

			RETURNING
				id, address, authority, fee_recipient, fee_bps, bump, created_at`

		err := tx.QueryRowxContext(
			ctx,
			query,
			m.Address,
			m.Authority,
			m.FeeRecipient,
			m.FeeBps,
			m.Bump,
			m.CreatedAt,
		).StructScan(m)
		return pgutil.CheckUniqueViolation(err, protocolconfig.ErrAlreadyExists)
	})
}

func dbGet(ctx context.Context, db *sqlx.DB) (*model, error) {
	res := &model{}

	query := `SELECT id, address, authority, fee_recipient, fee_bps, bump, created_at FROM ` + tableName + `
		LIMIT 1
	`

	err := db.QueryRowxContext(
		ctx,
		query,
	).StructScan(res)
	if err != nil {
		return nil, pgutil.CheckNoRows(err, protocolconfig.ErrNotFound)
	}
	return res, nil
}
