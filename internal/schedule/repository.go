package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/campuskit/scheduling-backend/internal/db"
	"github.com/campuskit/scheduling-backend/internal/semester"
	"github.com/campuskit/scheduling-backend/internal/timeslot"
)

type Repository interface {
	Create(ctx context.Context, fs *FixedSchedule) error
	GetByID(ctx context.Context, id string) (*FixedSchedule, error)
	ListByRoomAndSemester(ctx context.Context, roomID string, sem semester.Semester) ([]*FixedSchedule, error)
	// ListByProfessorAndSemester returns the professor's whole fixed teaching
	// load for a semester, across both theory and lab groups.
	ListByProfessorAndSemester(ctx context.Context, professorID string, sem semester.Semester) ([]*FixedSchedule, error)
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	q db.Querier
}

func NewPgxRepository(q db.Querier) Repository {
	return &pgxRepository{q: q}
}

func (r *pgxRepository) Create(ctx context.Context, fs *FixedSchedule) error {
	const query = `
		INSERT INTO public.fixed_schedules (room_id, semester, day, start_min, end_min, owner_kind, group_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := r.q.QueryRow(ctx, query,
		fs.RoomID, fs.Semester, int(fs.Slot.Day), fs.Slot.Start.Minutes(), fs.Slot.End.Minutes(),
		string(fs.OwnerKind), fs.GroupID,
	).Scan(&fs.ID, &fs.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ExclusionViolation {
			return ErrRoomConflict
		}
		return fmt.Errorf("create fixed schedule failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*FixedSchedule, error) {
	const query = `
		SELECT id, room_id, semester, day, start_min, end_min, owner_kind, group_id, created_at
		FROM public.fixed_schedules
		WHERE id = $1
	`
	fs, err := scanFixedSchedule(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get fixed schedule failed: %w", err)
	}
	return fs, nil
}

func (r *pgxRepository) ListByRoomAndSemester(ctx context.Context, roomID string, sem semester.Semester) ([]*FixedSchedule, error) {
	const query = `
		SELECT id, room_id, semester, day, start_min, end_min, owner_kind, group_id, created_at
		FROM public.fixed_schedules
		WHERE room_id = $1 AND semester = $2
		ORDER BY day, start_min
	`
	rows, err := r.q.Query(ctx, query, roomID, sem)
	if err != nil {
		return nil, fmt.Errorf("list fixed schedules by room failed: %w", err)
	}
	return collectFixedSchedules(rows)
}

func (r *pgxRepository) ListByProfessorAndSemester(ctx context.Context, professorID string, sem semester.Semester) ([]*FixedSchedule, error) {
	const query = `
		SELECT fs.id, fs.room_id, fs.semester, fs.day, fs.start_min, fs.end_min, fs.owner_kind, fs.group_id, fs.created_at
		FROM public.fixed_schedules fs
		WHERE fs.semester = $2
		  AND (
			(fs.owner_kind = 'theory' AND EXISTS (
				SELECT 1 FROM public.theory_groups tg
				WHERE tg.id = fs.group_id AND tg.professor_id = $1
			))
			OR
			(fs.owner_kind = 'lab' AND EXISTS (
				SELECT 1 FROM public.lab_groups lg
				WHERE lg.id = fs.group_id AND lg.professor_id = $1
			))
		  )
		ORDER BY fs.day, fs.start_min
	`
	rows, err := r.q.Query(ctx, query, professorID, sem)
	if err != nil {
		return nil, fmt.Errorf("list fixed schedules by professor failed: %w", err)
	}
	return collectFixedSchedules(rows)
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM public.fixed_schedules WHERE id = $1`
	ct, err := r.q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete fixed schedule failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanFixedSchedule(row pgx.Row) (*FixedSchedule, error) {
	var fs FixedSchedule
	var day, startMin, endMin int
	var kind string
	if err := row.Scan(&fs.ID, &fs.RoomID, &fs.Semester, &day, &startMin, &endMin,
		&kind, &fs.GroupID, &fs.CreatedAt); err != nil {
		return nil, err
	}
	fs.Slot = timeslot.TimeSlot{
		Day:   timeslot.Weekday(day),
		Start: timeslot.FromMinutes(startMin),
		End:   timeslot.FromMinutes(endMin),
	}
	fs.OwnerKind = OwnerKind(kind)
	return &fs, nil
}

func collectFixedSchedules(rows pgx.Rows) ([]*FixedSchedule, error) {
	defer rows.Close()

	var schedules []*FixedSchedule
	for rows.Next() {
		fs, err := scanFixedSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("scan fixed schedule failed: %w", err)
		}
		schedules = append(schedules, fs)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return schedules, nil
}
