package concert

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bandroomhq/bandroom-backend/internal/schedule"
)

type Repository interface {
	Create(ctx context.Context, con *Concert) error
	GetByID(ctx context.Context, id string) (*Concert, error)
	List(ctx context.Context) ([]*Concert, error)
	UpdatePosterPath(ctx context.Context, id string, path string) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const selectColumns = "id, title, venue, date::text, start_time::text, end_time::text, set_list, poster_path, created_by, created_at"

func (r *pgxRepository) Create(ctx context.Context, con *Concert) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.concerts").
		Columns("title", "venue", "date", "start_time", "end_time", "set_list", "created_by").
		Values(
			con.Title, con.Venue, con.Date,
			schedule.FormatClock(con.Start)+":00", schedule.FormatClock(con.End)+":00",
			con.SetList, con.CreatedBy,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create concert query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&con.ID, &con.CreatedAt); err != nil {
		return fmt.Errorf("create concert failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Concert, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(selectColumns).
		From("public.concerts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get concert query failed: %w", err)
	}

	con, err := scanConcert(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get concert failed: %w", err)
	}
	return con, nil
}

func (r *pgxRepository) List(ctx context.Context) ([]*Concert, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(selectColumns).
		From("public.concerts").
		OrderBy("date ASC", "start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list concerts query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list concerts failed: %w", err)
	}
	defer rows.Close()

	var concerts []*Concert
	for rows.Next() {
		con, err := scanConcert(rows)
		if err != nil {
			return nil, fmt.Errorf("scan concert failed: %w", err)
		}
		concerts = append(concerts, con)
	}
	return concerts, rows.Err()
}

func (r *pgxRepository) UpdatePosterPath(ctx context.Context, id string, path string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.concerts").
		Set("poster_path", path).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update poster query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update poster failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.concerts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete concert query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete concert failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanConcert(row pgx.Row) (*Concert, error) {
	var con Concert
	var startStr, endStr string
	if err := row.Scan(
		&con.ID, &con.Title, &con.Venue, &con.Date, &startStr, &endStr,
		&con.SetList, &con.PosterPath, &con.CreatedBy, &con.CreatedAt,
	); err != nil {
		return nil, err
	}

	start, err := schedule.ParseClock(startStr)
	if err != nil {
		return nil, fmt.Errorf("stored start time %q: %w", startStr, err)
	}
	end, err := schedule.ParseClock(endStr)
	if err != nil {
		return nil, fmt.Errorf("stored end time %q: %w", endStr, err)
	}
	con.Start = start
	con.End = end
	return &con, nil
}
