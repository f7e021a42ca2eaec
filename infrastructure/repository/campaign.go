package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/budget-guard-api/infrastructure/database/postgres"
	"github.com/vfg2006/budget-guard-api/internal/domain"
)

const (
	campaignsTable  = "campaigns c"
	campaignColumns = "c.id, c.name, c.brand_id, c.status, c.is_active, c.daily_budget, c.monthly_budget, c.dayparting_schedule_id, c.created_at, c.updated_at"
)

//go:generate mockgen -source=campaign.go -destination=mocks/campaign_mock.go -package=mocks

type CampaignRepository interface {
	Create(ctx context.Context, campaign *domain.Campaign) error
	GetByID(ctx context.Context, campaignID string) (*domain.Campaign, error)
	List(ctx context.Context, filter domain.CampaignFilter) ([]*domain.Campaign, error)
	Count(ctx context.Context, filter domain.CampaignFilter) (int, error)
	Update(ctx context.Context, campaign *domain.Campaign) error
	ApplyTransitions(ctx context.Context, transitions []domain.Transition) ([]domain.Transition, error)
}

type campaignRepository struct {
	conn postgres.Conn
}

func NewCampaignRepository(conn postgres.Conn) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) Create(ctx context.Context, campaign *domain.Campaign) error {
	query, args, err := squirrel.
		Insert("campaigns").
		Columns("id", "name", "brand_id", "status", "is_active", "daily_budget", "monthly_budget", "dayparting_schedule_id").
		Values(
			campaign.ID,
			campaign.Name,
			campaign.BrandID,
			campaign.Status,
			campaign.IsActive,
			nullDecimal(campaign.DailyBudget),
			nullDecimal(campaign.MonthlyBudget),
			nullString(campaign.DaypartingScheduleID),
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&campaign.CreatedAt, &campaign.UpdatedAt)
	return dbError(err, "campaign")
}

func (r *campaignRepository) GetByID(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignColumns).
		From(campaignsTable).
		Where(squirrel.Eq{"c.id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	campaign, err := scanCampaign(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, dbError(err, "campaign")
	}

	return campaign, nil
}

func (r *campaignRepository) List(ctx context.Context, filter domain.CampaignFilter) ([]*domain.Campaign, error) {
	return queryCampaigns(ctx, r.conn, campaignWhere(filter))
}

func (r *campaignRepository) Count(ctx context.Context, filter domain.CampaignFilter) (int, error) {
	builder := squirrel.
		Select("COUNT(*)").
		From(campaignsTable).
		PlaceholderFormat(squirrel.Dollar)
	if where := campaignWhere(filter); where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, dbError(err, "campaign")
	}
	return count, nil
}

// Update persists administrative fields. The run flag is left untouched.
func (r *campaignRepository) Update(ctx context.Context, campaign *domain.Campaign) error {
	query, args, err := squirrel.
		Update("campaigns").
		Set("name", campaign.Name).
		Set("status", campaign.Status).
		Set("daily_budget", nullDecimal(campaign.DailyBudget)).
		Set("monthly_budget", nullDecimal(campaign.MonthlyBudget)).
		Set("dayparting_schedule_id", nullString(campaign.DaypartingScheduleID)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": campaign.ID}).
		Suffix("RETURNING updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&campaign.UpdatedAt)
	if err == sql.ErrNoRows {
		return domain.NewNotFoundError("campaign", campaign.ID)
	}
	return dbError(err, "campaign")
}

// ApplyTransitions compare-and-sets is_active for each transition inside one
// transaction. A row whose flag no longer matches From is skipped, so two
// overlapping passes can never flip the same campaign twice. Any error rolls
// back every transition.
func (r *campaignRepository) ApplyTransitions(ctx context.Context, transitions []domain.Transition) ([]domain.Transition, error) {
	if len(transitions) == 0 {
		return []domain.Transition{}, nil
	}

	var applied []domain.Transition
	err := r.conn.RunInTransaction(ctx, nil, func(tx *sql.Tx) error {
		applied = make([]domain.Transition, 0, len(transitions))

		for _, t := range transitions {
			query, args, err := squirrel.
				Update("campaigns").
				Set("is_active", t.To).
				Set("updated_at", squirrel.Expr("NOW()")).
				Where(squirrel.Eq{"id": t.CampaignID, "is_active": t.From}).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return err
			}

			result, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				return dbError(err, "campaign")
			}

			n, err := rowsAffected(result)
			if err != nil {
				return err
			}
			if n == 1 {
				applied = append(applied, t)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return applied, nil
}

func campaignWhere(filter domain.CampaignFilter) squirrel.Sqlizer {
	and := squirrel.And{}

	if filter.BrandID != "" {
		and = append(and, squirrel.Eq{"c.brand_id": filter.BrandID})
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
		and = append(and, squirrel.Eq{"c.status": statuses})
	}
	if filter.IsActive != nil {
		and = append(and, squirrel.Eq{"c.is_active": *filter.IsActive})
	}
	if filter.HasSchedule != nil {
		if *filter.HasSchedule {
			and = append(and, squirrel.NotEq{"c.dayparting_schedule_id": nil})
		} else {
			and = append(and, squirrel.Eq{"c.dayparting_schedule_id": nil})
		}
	}

	if len(and) == 0 {
		return nil
	}
	return and
}

func queryCampaigns(ctx context.Context, q postgres.Queryer, where squirrel.Sqlizer) ([]*domain.Campaign, error) {
	builder := squirrel.
		Select(campaignColumns).
		From(campaignsTable).
		OrderBy("c.brand_id ASC", "c.name ASC").
		PlaceholderFormat(squirrel.Dollar)
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbError(err, "campaign")
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, campaign)
	}

	return campaigns, rows.Err()
}

func scanCampaign(row scanner) (*domain.Campaign, error) {
	var (
		campaign      domain.Campaign
		status        string
		dailyBudget   decimal.NullDecimal
		monthlyBudget decimal.NullDecimal
		scheduleID    sql.NullString
	)

	if err := row.Scan(
		&campaign.ID,
		&campaign.Name,
		&campaign.BrandID,
		&status,
		&campaign.IsActive,
		&dailyBudget,
		&monthlyBudget,
		&scheduleID,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	); err != nil {
		return nil, err
	}

	campaign.Status = domain.CampaignStatus(status)
	if dailyBudget.Valid {
		campaign.DailyBudget = &dailyBudget.Decimal
	}
	if monthlyBudget.Valid {
		campaign.MonthlyBudget = &monthlyBudget.Decimal
	}
	if scheduleID.Valid {
		campaign.DaypartingScheduleID = &scheduleID.String
	}

	return &campaign, nil
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func nullString(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
