package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/budget-guard-api/infrastructure/database/postgres"
	"github.com/vfg2006/budget-guard-api/internal/domain"
)

//go:generate mockgen -source=snapshot.go -destination=mocks/snapshot_mock.go -package=mocks

type SnapshotRepository interface {
	// Load reads brands, campaigns, schedules and ledger totals as of at in a
	// single repeatable-read transaction. Passing brand ids narrows the read.
	Load(ctx context.Context, at time.Time, brandIDs ...string) (*domain.Snapshot, error)
}

type snapshotRepository struct {
	conn postgres.Conn
}

func NewSnapshotRepository(conn postgres.Conn) SnapshotRepository {
	return &snapshotRepository{
		conn: conn,
	}
}

func (r *snapshotRepository) Load(ctx context.Context, at time.Time, brandIDs ...string) (*domain.Snapshot, error) {
	var (
		brands    []*domain.Brand
		campaigns []*domain.Campaign
		schedules []*domain.DaypartingSchedule
		spend     map[string]domain.SpendTotals
	)

	opts := &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
	err := r.conn.RunInTransaction(ctx, opts, func(tx *sql.Tx) error {
		var (
			brandScope    squirrel.Sqlizer
			campaignScope squirrel.Sqlizer
			err           error
		)
		if len(brandIDs) > 0 {
			brandScope = squirrel.Eq{"b.id": brandIDs}
			campaignScope = squirrel.Eq{"c.brand_id": brandIDs}
		}

		if brands, err = queryBrands(ctx, tx, brandScope); err != nil {
			return err
		}
		if campaigns, err = queryCampaigns(ctx, tx, campaignScope); err != nil {
			return err
		}
		if schedules, err = querySchedules(ctx, tx, nil); err != nil {
			return err
		}
		spend, err = querySpendTotals(ctx, tx, domain.Day(at), brandIDs)
		return err
	})
	if err != nil {
		return nil, err
	}

	return domain.NewSnapshot(at, brands, campaigns, schedules, spend), nil
}
