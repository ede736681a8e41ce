package group

import (
	"context"
	"strings"

	"github.com/campuskit/scheduling-backend/internal/semester"
)

type CreateTheoryRequest struct {
	CourseID    string
	ProfessorID string
	Semester    string
	Name        string
}

type CreateLabRequest struct {
	CourseID    string
	ProfessorID string
	Semester    string
	Name        string
	Capacity    int
}

type Service interface {
	CreateTheory(ctx context.Context, req CreateTheoryRequest) (*TheoryGroup, error)
	GetTheoryByID(ctx context.Context, id string) (*TheoryGroup, error)
	CreateLab(ctx context.Context, req CreateLabRequest) (*LabGroup, error)
	GetLabByID(ctx context.Context, id string) (*LabGroup, error)
	ListLabsBySemester(ctx context.Context, sem string) ([]*LabGroup, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateTheory(ctx context.Context, req CreateTheoryRequest) (*TheoryGroup, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	sem, err := semester.Parse(req.Semester)
	if err != nil {
		return nil, err
	}

	g := &TheoryGroup{
		CourseID:    req.CourseID,
		ProfessorID: req.ProfessorID,
		Semester:    sem,
		Name:        req.Name,
	}
	if err := s.repo.CreateTheory(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *service) GetTheoryByID(ctx context.Context, id string) (*TheoryGroup, error) {
	return s.repo.GetTheoryByID(ctx, id)
}

func (s *service) CreateLab(ctx context.Context, req CreateLabRequest) (*LabGroup, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if req.Capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	sem, err := semester.Parse(req.Semester)
	if err != nil {
		return nil, err
	}

	g := &LabGroup{
		CourseID:    req.CourseID,
		ProfessorID: req.ProfessorID,
		Semester:    sem,
		Name:        req.Name,
		Capacity:    req.Capacity,
	}
	if err := s.repo.CreateLab(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *service) GetLabByID(ctx context.Context, id string) (*LabGroup, error) {
	return s.repo.GetLabByID(ctx, id)
}

func (s *service) ListLabsBySemester(ctx context.Context, sem string) ([]*LabGroup, error) {
	parsed, err := semester.Parse(sem)
	if err != nil {
		return nil, err
	}
	return s.repo.ListLabsBySemester(ctx, parsed)
}
