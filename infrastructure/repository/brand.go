package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/budget-guard-api/infrastructure/database/postgres"
	"github.com/vfg2006/budget-guard-api/internal/domain"
)

const (
	brandsTable  = "brands b"
	brandColumns = "b.id, b.name, b.daily_budget, b.monthly_budget, b.is_active, b.created_at, b.updated_at"
)

//go:generate mockgen -source=brand.go -destination=mocks/brand_mock.go -package=mocks

type BrandRepository interface {
	Create(ctx context.Context, brand *domain.Brand) error
	GetByID(ctx context.Context, brandID string) (*domain.Brand, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.Brand, error)
	Update(ctx context.Context, brand *domain.Brand) error
	Delete(ctx context.Context, brandID string) (bool, error)
}

type brandRepository struct {
	conn postgres.Conn
}

func NewBrandRepository(conn postgres.Conn) BrandRepository {
	return &brandRepository{
		conn: conn,
	}
}

func (r *brandRepository) Create(ctx context.Context, brand *domain.Brand) error {
	query, args, err := squirrel.
		Insert("brands").
		Columns("id", "name", "daily_budget", "monthly_budget", "is_active").
		Values(brand.ID, brand.Name, brand.DailyBudget, brand.MonthlyBudget, brand.IsActive).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&brand.CreatedAt, &brand.UpdatedAt)
	return dbError(err, "brand")
}

func (r *brandRepository) GetByID(ctx context.Context, brandID string) (*domain.Brand, error) {
	query, args, err := squirrel.
		Select(brandColumns).
		From(brandsTable).
		Where(squirrel.Eq{"b.id": brandID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	brand, err := scanBrand(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, dbError(err, "brand")
	}

	return brand, nil
}

func (r *brandRepository) List(ctx context.Context, onlyActive bool) ([]*domain.Brand, error) {
	var where squirrel.Sqlizer
	if onlyActive {
		where = squirrel.Eq{"b.is_active": true}
	}
	return queryBrands(ctx, r.conn, where)
}

func (r *brandRepository) Update(ctx context.Context, brand *domain.Brand) error {
	query, args, err := squirrel.
		Update("brands").
		Set("name", brand.Name).
		Set("daily_budget", brand.DailyBudget).
		Set("monthly_budget", brand.MonthlyBudget).
		Set("is_active", brand.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": brand.ID}).
		Suffix("RETURNING updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&brand.UpdatedAt)
	if err == sql.ErrNoRows {
		return domain.NewNotFoundError("brand", brand.ID)
	}
	return dbError(err, "brand")
}

// Delete removes the brand and, by cascade, its campaigns and their spend.
func (r *brandRepository) Delete(ctx context.Context, brandID string) (bool, error) {
	query, args, err := squirrel.
		Delete("brands").
		Where(squirrel.Eq{"id": brandID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, err
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, dbError(err, "brand")
	}

	n, err := rowsAffected(result)
	return n > 0, err
}

func queryBrands(ctx context.Context, q postgres.Queryer, where squirrel.Sqlizer) ([]*domain.Brand, error) {
	builder := squirrel.
		Select(brandColumns).
		From(brandsTable).
		OrderBy("b.name ASC").
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
		return nil, dbError(err, "brand")
	}
	defer rows.Close()

	brands := make([]*domain.Brand, 0)
	for rows.Next() {
		brand, err := scanBrand(rows)
		if err != nil {
			return nil, err
		}
		brands = append(brands, brand)
	}

	return brands, rows.Err()
}

func scanBrand(row scanner) (*domain.Brand, error) {
	brand := &domain.Brand{}
	if err := row.Scan(
		&brand.ID,
		&brand.Name,
		&brand.DailyBudget,
		&brand.MonthlyBudget,
		&brand.IsActive,
		&brand.CreatedAt,
		&brand.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return brand, nil
}
