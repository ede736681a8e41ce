package enrollment

import (
	"context"

	"github.com/campuskit/scheduling-backend/internal/group"
)

// TxRepos bundles the repositories one enrollment transaction needs, bound
// to the same open transaction.
type TxRepos struct {
	Enrollments Repository
	Groups      group.Repository
}

// TxManager runs fn inside one isolated transaction and commits only if fn
// returns nil.
type TxManager interface {
	InTx(ctx context.Context, fn func(ctx context.Context, repos TxRepos) error) error
}

type CreateRequest struct {
	StudentID     string
	TheoryGroupID string
}

// Selection names one lab-group assignment for one enrollment.
type Selection struct {
	EnrollmentID string
	LabGroupID   string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Enrollment, error)
	GetByID(ctx context.Context, id string) (*Enrollment, error)
	ListByStudent(ctx context.Context, studentID string) ([]*Enrollment, error)

	// AssignLabGroup books one seat in a lab group for the student's
	// enrollment, atomically with the capacity check.
	AssignLabGroup(ctx context.Context, studentID string, sel Selection) (*Enrollment, error)
	// AssignLabGroupsBulk applies every selection or none: the first failing
	// selection rolls back the whole batch.
	AssignLabGroupsBulk(ctx context.Context, studentID string, sels []Selection) error
	WithdrawFromLabGroup(ctx context.Context, studentID, enrollmentID string) (*Enrollment, error)
}

type service struct {
	tx     TxManager
	repo   Repository       // ambient reads
	groups group.Repository // ambient reads
}

func NewService(tx TxManager, repo Repository, groups group.Repository) Service {
	return &service{tx: tx, repo: repo, groups: groups}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Enrollment, error) {
	if _, err := s.groups.GetTheoryByID(ctx, req.TheoryGroupID); err != nil {
		return nil, err
	}

	e := &Enrollment{
		StudentID:     req.StudentID,
		TheoryGroupID: req.TheoryGroupID,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Enrollment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByStudent(ctx context.Context, studentID string) ([]*Enrollment, error) {
	return s.repo.ListByStudent(ctx, studentID)
}

func (s *service) AssignLabGroup(ctx context.Context, studentID string, sel Selection) (*Enrollment, error) {
	var assigned *Enrollment
	err := s.tx.InTx(ctx, func(ctx context.Context, repos TxRepos) error {
		var err error
		assigned, err = assignOne(ctx, repos, studentID, sel)
		return err
	})
	if err != nil {
		return nil, err
	}
	return assigned, nil
}

func (s *service) AssignLabGroupsBulk(ctx context.Context, studentID string, sels []Selection) error {
	return s.tx.InTx(ctx, func(ctx context.Context, repos TxRepos) error {
		for _, sel := range sels {
			if _, err := assignOne(ctx, repos, studentID, sel); err != nil {
				return err
			}
		}
		return nil
	})
}

// assignOne validates and books one selection against transaction-bound
// repositories. Any returned error aborts the surrounding transaction.
func assignOne(ctx context.Context, repos TxRepos, studentID string, sel Selection) (*Enrollment, error) {
	e, err := repos.Enrollments.GetByID(ctx, sel.EnrollmentID)
	if err != nil {
		return nil, err
	}
	if e.StudentID != studentID {
		return nil, ErrForbidden
	}
	if e.LabGroupID != nil {
		return nil, ErrLabAlreadyAssigned
	}

	lab, err := repos.Groups.GetLabByID(ctx, sel.LabGroupID)
	if err != nil {
		return nil, err
	}
	if lab.Full() {
		return nil, group.ErrGroupFull
	}

	theory, err := repos.Groups.GetTheoryByID(ctx, e.TheoryGroupID)
	if err != nil {
		return nil, err
	}
	if theory.CourseID != lab.CourseID {
		return nil, ErrCourseMismatch
	}

	// The seat count is re-checked in the same statement as the write, so a
	// concurrent assignment cannot push enrolled past capacity.
	taken, err := repos.Groups.IncrementLabEnrolled(ctx, lab.ID)
	if err != nil {
		return nil, err
	}
	if !taken {
		return nil, group.ErrGroupFull
	}

	if err := e.AssignLab(lab.ID); err != nil {
		return nil, err
	}
	if err := repos.Enrollments.SetLabGroup(ctx, e.ID, e.LabGroupID); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *service) WithdrawFromLabGroup(ctx context.Context, studentID, enrollmentID string) (*Enrollment, error) {
	var withdrawn *Enrollment
	err := s.tx.InTx(ctx, func(ctx context.Context, repos TxRepos) error {
		e, err := repos.Enrollments.GetByID(ctx, enrollmentID)
		if err != nil {
			return err
		}
		if e.StudentID != studentID {
			return ErrForbidden
		}
		if e.LabGroupID == nil {
			return ErrNoLabAssigned
		}

		labID := *e.LabGroupID
		if err := e.ClearLab(); err != nil {
			return err
		}
		if _, err := repos.Groups.DecrementLabEnrolled(ctx, labID); err != nil {
			return err
		}
		if err := repos.Enrollments.SetLabGroup(ctx, e.ID, nil); err != nil {
			return err
		}
		withdrawn = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return withdrawn, nil
}
