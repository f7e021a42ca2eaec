package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/budget-guard-api/infrastructure/database/postgres"
	"github.com/vfg2006/budget-guard-api/internal/domain"
)

const (
	schedulesTable  = "dayparting_schedules s"
	scheduleColumns = "s.id, s.name, s.start_hour, s.end_hour, s.days_of_week, s.is_active, s.created_at, s.updated_at"
)

//go:generate mockgen -source=dayparting_schedule.go -destination=mocks/dayparting_schedule_mock.go -package=mocks

type ScheduleRepository interface {
	Create(ctx context.Context, schedule *domain.DaypartingSchedule) error
	GetByID(ctx context.Context, scheduleID string) (*domain.DaypartingSchedule, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.DaypartingSchedule, error)
	Delete(ctx context.Context, scheduleID string) (bool, error)
	CountCampaigns(ctx context.Context) (map[string]int, error)
}

type scheduleRepository struct {
	conn postgres.Conn
}

func NewScheduleRepository(conn postgres.Conn) ScheduleRepository {
	return &scheduleRepository{
		conn: conn,
	}
}

func (r *scheduleRepository) Create(ctx context.Context, schedule *domain.DaypartingSchedule) error {
	query, args, err := squirrel.
		Insert("dayparting_schedules").
		Columns("id", "name", "start_hour", "end_hour", "days_of_week", "is_active").
		Values(
			schedule.ID,
			schedule.Name,
			schedule.StartHour,
			schedule.EndHour,
			pq.Array(toInt64s(schedule.DaysOfWeek)),
			schedule.IsActive,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&schedule.CreatedAt, &schedule.UpdatedAt)
	return dbError(err, "dayparting schedule")
}

func (r *scheduleRepository) GetByID(ctx context.Context, scheduleID string) (*domain.DaypartingSchedule, error) {
	query, args, err := squirrel.
		Select(scheduleColumns).
		From(schedulesTable).
		Where(squirrel.Eq{"s.id": scheduleID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	schedule, err := scanSchedule(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, dbError(err, "dayparting schedule")
	}

	return schedule, nil
}

func (r *scheduleRepository) List(ctx context.Context, onlyActive bool) ([]*domain.DaypartingSchedule, error) {
	var where squirrel.Sqlizer
	if onlyActive {
		where = squirrel.Eq{"s.is_active": true}
	}
	return querySchedules(ctx, r.conn, where)
}

// Delete removes the schedule. Campaigns referencing it fall back to no schedule.
func (r *scheduleRepository) Delete(ctx context.Context, scheduleID string) (bool, error) {
	query, args, err := squirrel.
		Delete("dayparting_schedules").
		Where(squirrel.Eq{"id": scheduleID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, err
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, dbError(err, "dayparting schedule")
	}

	n, err := rowsAffected(result)
	return n > 0, err
}

// CountCampaigns returns the number of campaigns per referenced schedule id.
func (r *scheduleRepository) CountCampaigns(ctx context.Context) (map[string]int, error) {
	query, args, err := squirrel.
		Select("dayparting_schedule_id", "COUNT(*)").
		From("campaigns").
		Where(squirrel.NotEq{"dayparting_schedule_id": nil}).
		GroupBy("dayparting_schedule_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbError(err, "dayparting schedule")
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			id    string
			count int
		)
		if err := rows.Scan(&id, &count); err != nil {
			return nil, err
		}
		counts[id] = count
	}

	return counts, rows.Err()
}

func querySchedules(ctx context.Context, q postgres.Queryer, where squirrel.Sqlizer) ([]*domain.DaypartingSchedule, error) {
	builder := squirrel.
		Select(scheduleColumns).
		From(schedulesTable).
		OrderBy("s.name ASC").
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
		return nil, dbError(err, "dayparting schedule")
	}
	defer rows.Close()

	schedules := make([]*domain.DaypartingSchedule, 0)
	for rows.Next() {
		schedule, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, schedule)
	}

	return schedules, rows.Err()
}

func scanSchedule(row scanner) (*domain.DaypartingSchedule, error) {
	var (
		schedule domain.DaypartingSchedule
		days     pq.Int64Array
	)

	if err := row.Scan(
		&schedule.ID,
		&schedule.Name,
		&schedule.StartHour,
		&schedule.EndHour,
		&days,
		&schedule.IsActive,
		&schedule.CreatedAt,
		&schedule.UpdatedAt,
	); err != nil {
		return nil, err
	}

	schedule.DaysOfWeek = make([]int, 0, len(days))
	for _, d := range days {
		schedule.DaysOfWeek = append(schedule.DaysOfWeek, int(d))
	}

	return &schedule, nil
}

func toInt64s(values []int) []int64 {
	out := make([]int64, 0, len(values))
	for _, v := range values {
		out = append(out, int64(v))
	}
	return out
}
