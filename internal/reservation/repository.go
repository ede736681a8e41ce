package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/campuskit/scheduling-backend/internal/db"
	"github.com/campuskit/scheduling-backend/internal/semester"
	"github.com/campuskit/scheduling-backend/internal/timeslot"
)

type Repository interface {
	Create(ctx context.Context, res *Reservation) error
	GetByID(ctx context.Context, id string) (*Reservation, error)
	// ListActiveByRoomAndDate returns RESERVED rows for one room, semester and day.
	ListActiveByRoomAndDate(ctx context.Context, roomID string, sem semester.Semester, date time.Time) ([]*Reservation, error)
	// ListActiveByProfessorAndSemester returns the professor's RESERVED rows for a semester.
	ListActiveByProfessorAndSemester(ctx context.Context, professorID string, sem semester.Semester) ([]*Reservation, error)
	// CountActiveByProfessorBetween counts RESERVED rows with from <= date < to.
	CountActiveByProfessorBetween(ctx context.Context, professorID string, from, to time.Time) (int, error)
	ListByRoom(ctx context.Context, roomID string, sem semester.Semester) ([]*Reservation, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}

type pgxRepository struct {
	q db.Querier
}

func NewPgxRepository(q db.Querier) Repository {
	return &pgxRepository{q: q}
}

const reservationColumns = "id, room_id, professor_id, semester, date, day, start_min, end_min, status, notes, created_at, updated_at"

func (r *pgxRepository) Create(ctx context.Context, res *Reservation) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.reservations").
		Columns("room_id", "professor_id", "semester", "date", "day", "start_min", "end_min", "status", "notes").
		Values(res.RoomID, res.ProfessorID, res.Semester, res.Date, int(res.Slot.Day),
			res.Slot.Start.Minutes(), res.Slot.End.Minutes(), res.Status, res.Notes).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create reservation query failed: %w", err)
	}

	err = r.q.QueryRow(ctx, query, args...).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		// The exclusion constraint on active reservations is the write-time
		// backstop for the conflict scan.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ExclusionViolation {
			return ErrRoomReservationConflict
		}
		return fmt.Errorf("create reservation failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Reservation, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(reservationColumns).
		From("public.reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get reservation query failed: %w", err)
	}

	res, err := scanReservation(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get reservation failed: %w", err)
	}
	return res, nil
}

func (r *pgxRepository) ListActiveByRoomAndDate(ctx context.Context, roomID string, sem semester.Semester, date time.Time) ([]*Reservation, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(reservationColumns).
		From("public.reservations").
		Where(squirrel.Eq{"room_id": roomID, "semester": sem, "date": date, "status": StatusReserved}).
		OrderBy("start_min").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list reservations query failed: %w", err)
	}
	return r.list(ctx, query, args)
}

func (r *pgxRepository) ListActiveByProfessorAndSemester(ctx context.Context, professorID string, sem semester.Semester) ([]*Reservation, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(reservationColumns).
		From("public.reservations").
		Where(squirrel.Eq{"professor_id": professorID, "semester": sem, "status": StatusReserved}).
		OrderBy("date", "start_min").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list reservations query failed: %w", err)
	}
	return r.list(ctx, query, args)
}

func (r *pgxRepository) CountActiveByProfessorBetween(ctx context.Context, professorID string, from, to time.Time) (int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("count(*)").
		From("public.reservations").
		Where(squirrel.Eq{"professor_id": professorID, "status": StatusReserved}).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.Lt{"date": to}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count reservations query failed: %w", err)
	}

	var count int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count reservations failed: %w", err)
	}
	return count, nil
}

func (r *pgxRepository) ListByRoom(ctx context.Context, roomID string, sem semester.Semester) ([]*Reservation, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(reservationColumns).
		From("public.reservations").
		Where(squirrel.Eq{"room_id": roomID, "semester": sem}).
		OrderBy("date", "start_min").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list reservations query failed: %w", err)
	}
	return r.list(ctx, query, args)
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.reservations").
		Set("status", status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update reservation query failed: %w", err)
	}

	ct, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		// Re-activating can collide with a reservation made since cancelling.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ExclusionViolation {
			return ErrRoomReservationConflict
		}
		return fmt.Errorf("update reservation status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) list(ctx context.Context, query string, args []any) ([]*Reservation, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reservations failed: %w", err)
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
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reservations, nil
}

func scanReservation(row pgx.Row) (*Reservation, error) {
	var res Reservation
	var day, startMin, endMin int
	if err := row.Scan(&res.ID, &res.RoomID, &res.ProfessorID, &res.Semester, &res.Date,
		&day, &startMin, &endMin, &res.Status, &res.Notes, &res.CreatedAt, &res.UpdatedAt); err != nil {
		return nil, err
	}
	res.Date = res.Date.UTC()
	res.Slot = timeslot.TimeSlot{
		Day:   timeslot.Weekday(day),
		Start: timeslot.FromMinutes(startMin),
		End:   timeslot.FromMinutes(endMin),
	}
	return &res, nil
}
