package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/budget-guard-api/infrastructure/database/postgres"
	"github.com/vfg2006/budget-guard-api/internal/domain"
)

//go:generate mockgen -source=spend.go -destination=mocks/spend_mock.go -package=mocks

type SpendRepository interface {
	Record(ctx context.Context, entry *domain.SpendEntry) error
	SumByCampaign(ctx context.Context, campaignID string, date time.Time) (decimal.Decimal, error)
	SumByCampaignMonth(ctx context.Context, campaignID string, year int, month time.Month) (decimal.Decimal, error)
	SumByBrand(ctx context.Context, brandID string, date time.Time) (decimal.Decimal, error)
	SumByBrandMonth(ctx context.Context, brandID string, year int, month time.Month) (decimal.Decimal, error)
	Totals(ctx context.Context, day time.Time) (domain.SpendTotals, error)
	ListByDateRange(ctx context.Context, filter domain.SpendFilter) ([]*domain.SpendRecord, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type spendRepository struct {
	conn postgres.Conn
}

func NewSpendRepository(conn postgres.Conn) SpendRepository {
	return &spendRepository{
		conn: conn,
	}
}

// Record adds entry.Amount to the campaign's row for entry.Date, creating it when
// missing. On return entry holds the stored row, including the accumulated amount.
func (r *spendRepository) Record(ctx context.Context, entry *domain.SpendEntry) error {
	query, args, err := squirrel.
		Insert("spends").
		Columns("id", "campaign_id", "amount", "date", "description").
		Values(entry.ID, entry.CampaignID, entry.Amount, entry.Date.Format(domain.DateLayout), entry.Description).
		Suffix(`ON CONFLICT (campaign_id, date) DO UPDATE
			SET amount = spends.amount + EXCLUDED.amount,
				description = EXCLUDED.description,
				updated_at = NOW()
			RETURNING id, amount, created_at, updated_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&entry.ID,
		&entry.Amount,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	return dbError(err, "spend")
}

func (r *spendRepository) SumByCampaign(ctx context.Context, campaignID string, date time.Time) (decimal.Decimal, error) {
	return r.sum(ctx, squirrel.Eq{"s.campaign_id": campaignID}, date, date.AddDate(0, 0, 1))
}

func (r *spendRepository) SumByCampaignMonth(ctx context.Context, campaignID string, year int, month time.Month) (decimal.Decimal, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return r.sum(ctx, squirrel.Eq{"s.campaign_id": campaignID}, from, from.AddDate(0, 1, 0))
}

func (r *spendRepository) SumByBrand(ctx context.Context, brandID string, date time.Time) (decimal.Decimal, error) {
	return r.sum(ctx, squirrel.Eq{"c.brand_id": brandID}, date, date.AddDate(0, 0, 1))
}

func (r *spendRepository) SumByBrandMonth(ctx context.Context, brandID string, year int, month time.Month) (decimal.Decimal, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return r.sum(ctx, squirrel.Eq{"c.brand_id": brandID}, from, from.AddDate(0, 1, 0))
}

// Totals sums every campaign's spend for day and for day's calendar month.
func (r *spendRepository) Totals(ctx context.Context, day time.Time) (domain.SpendTotals, error) {
	monthStart := domain.MonthStart(day)

	query, args, err := squirrel.
		Select().
		Column(squirrel.Expr("COALESCE(SUM(s.amount) FILTER (WHERE s.date = ?), 0)", day.Format(domain.DateLayout))).
		Column("COALESCE(SUM(s.amount), 0)").
		From("spends s").
		Where(squirrel.GtOrEq{"s.date": monthStart.Format(domain.DateLayout)}).
		Where(squirrel.Lt{"s.date": monthStart.AddDate(0, 1, 0).Format(domain.DateLayout)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return domain.SpendTotals{}, err
	}

	var totals domain.SpendTotals
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&totals.Daily, &totals.Monthly); err != nil {
		return domain.SpendTotals{}, dbError(err, "spend")
	}
	return totals, nil
}

// sum adds up entries matching scope with from <= date < to. It is zero when nothing matches.
func (r *spendRepository) sum(ctx context.Context, scope squirrel.Sqlizer, from, to time.Time) (decimal.Decimal, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(s.amount), 0)").
		From("spends s").
		Join("campaigns c ON c.id = s.campaign_id").
		Where(scope).
		Where(squirrel.GtOrEq{"s.date": from.Format(domain.DateLayout)}).
		Where(squirrel.Lt{"s.date": to.Format(domain.DateLayout)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return decimal.Zero, err
	}

	var total decimal.Decimal
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, dbError(err, "spend")
	}
	return total, nil
}

func (r *spendRepository) ListByDateRange(ctx context.Context, filter domain.SpendFilter) ([]*domain.SpendRecord, error) {
	builder := squirrel.
		Select(
			"s.id",
			"s.campaign_id",
			"c.name",
			"b.id",
			"b.name",
			"s.amount",
			"s.date",
			"s.description",
			"s.created_at",
		).
		From("spends s").
		Join("campaigns c ON c.id = s.campaign_id").
		Join("brands b ON b.id = c.brand_id").
		Where(squirrel.GtOrEq{"s.date": filter.StartDate.Format(domain.DateLayout)}).
		Where(squirrel.LtOrEq{"s.date": filter.EndDate.Format(domain.DateLayout)}).
		OrderBy("s.date DESC", "b.name ASC", "c.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.CampaignID != "" {
		builder = builder.Where(squirrel.Eq{"s.campaign_id": filter.CampaignID})
	}
	if filter.BrandID != "" {
		builder = builder.Where(squirrel.Eq{"c.brand_id": filter.BrandID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbError(err, "spend")
	}
	defer rows.Close()

	records := make([]*domain.SpendRecord, 0)
	for rows.Next() {
		var (
			record domain.SpendRecord
			date   time.Time
		)
		if err := rows.Scan(
			&record.ID,
			&record.CampaignID,
			&record.CampaignName,
			&record.BrandID,
			&record.BrandName,
			&record.Amount,
			&date,
			&record.Description,
			&record.CreatedAt,
		); err != nil {
			return nil, err
		}
		record.Date = date.Format(domain.DateLayout)
		records = append(records, &record)
	}

	return records, rows.Err()
}

func (r *spendRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query, args, err := squirrel.
		Delete("spends").
		Where(squirrel.Lt{"date": cutoff.Format(domain.DateLayout)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, dbError(err, "spend")
	}

	return rowsAffected(result)
}

// querySpendTotals returns today's and month-to-date ledger sums per campaign.
// Campaigns without entries are absent from the map.
func querySpendTotals(ctx context.Context, q postgres.Queryer, day time.Time, brandIDs []string) (map[string]domain.SpendTotals, error) {
	monthStart := domain.MonthStart(day)

	builder := squirrel.
		Select("s.campaign_id").
		Column(squirrel.Expr("COALESCE(SUM(s.amount) FILTER (WHERE s.date = ?), 0)", day.Format(domain.DateLayout))).
		Column("COALESCE(SUM(s.amount), 0)").
		From("spends s").
		Where(squirrel.GtOrEq{"s.date": monthStart.Format(domain.DateLayout)}).
		Where(squirrel.Lt{"s.date": monthStart.AddDate(0, 1, 0).Format(domain.DateLayout)}).
		GroupBy("s.campaign_id").
		PlaceholderFormat(squirrel.Dollar)

	if len(brandIDs) > 0 {
		builder = builder.
			Join("campaigns c ON c.id = s.campaign_id").
			Where(squirrel.Eq{"c.brand_id": brandIDs})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbError(err, "spend")
	}
	defer rows.Close()

	totals := make(map[string]domain.SpendTotals)
	for rows.Next() {
		var (
			campaignID string
			daily      decimal.Decimal
			monthly    decimal.Decimal
		)
		if err := rows.Scan(&campaignID, &daily, &monthly); err != nil {
			return nil, err
		}
		totals[campaignID] = domain.SpendTotals{Daily: daily, Monthly: monthly}
	}

	return totals, rows.Err()
}
