package group

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/campuskit/scheduling-backend/internal/db"
	"github.com/campuskit/scheduling-backend/internal/semester"
)

type Repository interface {
	CreateTheory(ctx context.Context, g *TheoryGroup) error
	GetTheoryByID(ctx context.Context, id string) (*TheoryGroup, error)
	CreateLab(ctx context.Context, g *LabGroup) error
	GetLabByID(ctx context.Context, id string) (*LabGroup, error)
	ListLabsBySemester(ctx context.Context, sem semester.Semester) ([]*LabGroup, error)

	// IncrementLabEnrolled takes one seat if and only if a free seat remains,
	// re-checking the capacity bound in the same statement as the write.
	// It reports whether a seat was taken.
	IncrementLabEnrolled(ctx context.Context, id string) (bool, error)
	DecrementLabEnrolled(ctx context.Context, id string) (bool, error)
}

type pgxRepository struct {
	q db.Querier
}

func NewPgxRepository(q db.Querier) Repository {
	return &pgxRepository{q: q}
}

func (r *pgxRepository) CreateTheory(ctx context.Context, g *TheoryGroup) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.theory_groups").
		Columns("course_id", "professor_id", "semester", "name").
		Values(g.CourseID, g.ProfessorID, g.Semester, g.Name).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create theory group query failed: %w", err)
	}

	if err := r.q.QueryRow(ctx, query, args...).Scan(&g.ID, &g.CreatedAt); err != nil {
		return fmt.Errorf("create theory group failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetTheoryByID(ctx context.Context, id string) (*TheoryGroup, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "course_id", "professor_id", "semester", "name", "created_at").
		From("public.theory_groups").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get theory group query failed: %w", err)
	}

	var g TheoryGroup
	err = r.q.QueryRow(ctx, query, args...).
		Scan(&g.ID, &g.CourseID, &g.ProfessorID, &g.Semester, &g.Name, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTheoryNotFound
		}
		return nil, fmt.Errorf("get theory group failed: %w", err)
	}
	return &g, nil
}

func (r *pgxRepository) CreateLab(ctx context.Context, g *LabGroup) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.lab_groups").
		Columns("course_id", "professor_id", "semester", "name", "capacity", "enrolled").
		Values(g.CourseID, g.ProfessorID, g.Semester, g.Name, g.Capacity, g.Enrolled).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create lab group query failed: %w", err)
	}

	if err := r.q.QueryRow(ctx, query, args...).Scan(&g.ID, &g.CreatedAt); err != nil {
		return fmt.Errorf("create lab group failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetLabByID(ctx context.Context, id string) (*LabGroup, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "course_id", "professor_id", "semester", "name",
		"capacity", "enrolled", "created_at").
		From("public.lab_groups").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get lab group query failed: %w", err)
	}

	var g LabGroup
	err = r.q.QueryRow(ctx, query, args...).
		Scan(&g.ID, &g.CourseID, &g.ProfessorID, &g.Semester, &g.Name,
			&g.Capacity, &g.Enrolled, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLabNotFound
		}
		return nil, fmt.Errorf("get lab group failed: %w", err)
	}
	return &g, nil
}

func (r *pgxRepository) ListLabsBySemester(ctx context.Context, sem semester.Semester) ([]*LabGroup, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "course_id", "professor_id", "semester", "name",
		"capacity", "enrolled", "created_at").
		From("public.lab_groups").
		Where(squirrel.Eq{"semester": sem}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list lab groups query failed: %w", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list lab groups failed: %w", err)
	}
	defer rows.Close()

	var groups []*LabGroup
	for rows.Next() {
		var g LabGroup
		if err := rows.Scan(&g.ID, &g.CourseID, &g.ProfessorID, &g.Semester, &g.Name,
			&g.Capacity, &g.Enrolled, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan lab group failed: %w", err)
		}
		groups = append(groups, &g)
	}
	return groups, nil
}

func (r *pgxRepository) IncrementLabEnrolled(ctx context.Context, id string) (bool, error) {
	const query = `
		UPDATE public.lab_groups
		SET enrolled = enrolled + 1
		WHERE id = $1 AND enrolled < capacity
	`
	ct, err := r.q.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("increment lab enrolled failed: %w", err)
	}
	return ct.RowsAffected() == 1, nil
}

func (r *pgxRepository) DecrementLabEnrolled(ctx context.Context, id string) (bool, error) {
	const query = `
		UPDATE public.lab_groups
		SET enrolled = enrolled - 1
		WHERE id = $1 AND enrolled > 0
	`
	ct, err := r.q.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("decrement lab enrolled failed: %w", err)
	}
	return ct.RowsAffected() == 1, nil
}
