package enrollment

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/campuskit/scheduling-backend/internal/db"
)

type Repository interface {
	Create(ctx context.Context, e *Enrollment) error
	GetByID(ctx context.Context, id string) (*Enrollment, error)
	ListByStudent(ctx context.Context, studentID string) ([]*Enrollment, error)
	// SetLabGroup writes the lab reference; nil clears it.
	SetLabGroup(ctx context.Context, id string, labGroupID *string) error
}

type pgxRepository struct {
	q db.Querier
}

func NewPgxRepository(q db.Querier) Repository {
	return &pgxRepository{q: q}
}

func (r *pgxRepository) Create(ctx context.Context, e *Enrollment) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.enrollments").
		Columns("student_id", "theory_group_id", "lab_group_id").
		Values(e.StudentID, e.TheoryGroupID, e.LabGroupID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create enrollment query failed: %w", err)
	}

	err = r.q.QueryRow(ctx, query, args...).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		// One enrollment per (student, theory group), enforced by the unique
		// constraint at the storage boundary.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrDuplicate
		}
		return fmt.Errorf("create enrollment failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Enrollment, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "student_id", "theory_group_id", "lab_group_id", "created_at").
		From("public.enrollments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get enrollment query failed: %w", err)
	}

	var e Enrollment
	err = r.q.QueryRow(ctx, query, args...).
		Scan(&e.ID, &e.StudentID, &e.TheoryGroupID, &e.LabGroupID, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get enrollment failed: %w", err)
	}
	return &e, nil
}

func (r *pgxRepository) ListByStudent(ctx context.Context, studentID string) ([]*Enrollment, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "student_id", "theory_group_id", "lab_group_id", "created_at").
		From("public.enrollments").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list enrollments query failed: %w", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list enrollments failed: %w", err)
	}
	defer rows.Close()

	var enrollments []*Enrollment
	for rows.Next() {
		var e Enrollment
		if err := rows.Scan(&e.ID, &e.StudentID, &e.TheoryGroupID, &e.LabGroupID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan enrollment failed: %w", err)
		}
		enrollments = append(enrollments, &e)
	}
	return enrollments, nil
}

func (r *pgxRepository) SetLabGroup(ctx context.Context, id string, labGroupID *string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.enrollments").
		Set("lab_group_id", labGroupID).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update enrollment query failed: %w", err)
	}

	ct, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update enrollment failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
