package reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, res *Reservation) error
	GetByID(ctx context.Context, id string) (*Reservation, error)
	List(ctx context.Context, filter Filter) ([]*Reservation, int, error)

	// ListByDate returns the full booking set for one date ordered by start
	// time, the input the day calendar is built from.
	ListByDate(ctx context.Context, date string) ([]*Reservation, error)

	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const selectColumns = "id, date::text, start_time::text, end_time::text, user_name, purpose, kind, created_at"

func (r *pgxRepository) Create(ctx context.Context, res *Reservation) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.reservations").
		Columns("date", "start_time", "end_time", "user_name", "purpose", "kind").
		Values(res.Date, encodeStart(res.Start), encodeEnd(res.End), res.UserName, res.Purpose, res.Kind).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create reservation query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&res.ID, &res.CreatedAt); err != nil {
		// The table carries an EXCLUDE constraint on overlapping same-day
		// ranges; a violation means another writer won the slot between our
		// admissibility check and this insert.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ExclusionViolation {
			return ErrTimeConflict
		}
		return fmt.Errorf("create reservation failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Reservation, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(selectColumns).
		From("public.reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get reservation query failed: %w", err)
	}

	res, err := scanReservation(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get reservation failed: %w", err)
	}
	return res, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Reservation, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(selectColumns + ", count(*) OVER() AS total_count").
		From("public.reservations")

	if filter.FromDate != "" {
		query = query.Where(squirrel.GtOrEq{"date": filter.FromDate})
	}
	if filter.ToDate != "" {
		query = query.Where(squirrel.LtOrEq{"date": filter.ToDate})
	}
	if filter.Kind != "" {
		query = query.Where(squirrel.Eq{"kind": filter.Kind})
	}
	if filter.UserName != "" {
		query = query.Where(squirrel.Eq{"user_name": filter.UserName})
	}

	query = query.OrderBy("date ASC", "start_time ASC")

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list reservations query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list reservations failed: %w", err)
	}
	defer rows.Close()

	var reservations []*Reservation
	var total int

	for rows.Next() {
		var res Reservation
		var startStr, endStr string
		if err := rows.Scan(
			&res.ID, &res.Date, &startStr, &endStr,
			&res.UserName, &res.Purpose, &res.Kind, &res.CreatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan reservation failed: %w", err)
		}
		if err := decodeTimes(&res, startStr, endStr); err != nil {
			return nil, 0, err
		}
		reservations = append(reservations, &res)
	}

	return reservations, total, rows.Err()
}

func (r *pgxRepository) ListByDate(ctx context.Context, date string) ([]*Reservation, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Select(selectColumns).
		From("public.reservations").
		Where(squirrel.Eq{"date": date}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list by date query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list reservations by date failed: %w", err)
	}
	defer rows.Close()

	var reservations []*Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation failed: %w", err)
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete reservation query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete reservation failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanReservation(row pgx.Row) (*Reservation, error) {
	var res Reservation
	var startStr, endStr string
	if err := row.Scan(
		&res.ID, &res.Date, &startStr, &endStr,
		&res.UserName, &res.Purpose, &res.Kind, &res.CreatedAt,
	); err != nil {
		return nil, err
	}
	if err := decodeTimes(&res, startStr, endStr); err != nil {
		return nil, err
	}
	return &res, nil
}

func decodeTimes(res *Reservation, startStr, endStr string) error {
	start, err := decodeStart(startStr)
	if err != nil {
		return err
	}
	end, err := decodeEnd(endStr)
	if err != nil {
		return err
	}
	res.Start = start
	res.End = end
	return nil
}
