package schedule

import (
	"context"
	"errors"

	"github.com/campuskit/scheduling-backend/internal/room"
	"github.com/campuskit/scheduling-backend/internal/semester"
	"github.com/campuskit/scheduling-backend/internal/timeslot"
)

type CreateRequest struct {
	RoomID    string
	Semester  string
	Day       string
	Start     string
	End       string
	OwnerKind string
	GroupID   string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*FixedSchedule, error)
	GetByID(ctx context.Context, id string) (*FixedSchedule, error)
	ListByRoom(ctx context.Context, roomID, sem string) ([]*FixedSchedule, error)
	ListByProfessor(ctx context.Context, professorID, sem string) ([]*FixedSchedule, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo     Repository
	roomRepo room.Repository
}

func NewService(repo Repository, roomRepo room.Repository) Service {
	return &service{repo: repo, roomRepo: roomRepo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*FixedSchedule, error) {
	slot, err := timeslot.Parse(req.Day, req.Start, req.End)
	if err != nil {
		return nil, err
	}
	sem, err := semester.Parse(req.Semester)
	if err != nil {
		return nil, err
	}
	kind := OwnerKind(req.OwnerKind)
	if !kind.Valid() {
		return nil, ErrInvalidOwnerKind
	}

	if _, err := s.roomRepo.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, room.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	// Guard against overlapping fixed blocks in the same room. The exclusion
	// constraint re-checks this at write time, so a racing create cannot
	// slip past the scan.
	existing, err := s.repo.ListByRoomAndSemester(ctx, req.RoomID, sem)
	if err != nil {
		return nil, err
	}
	for _, fs := range existing {
		if fs.Slot.Overlaps(slot) {
			return nil, ErrRoomConflict
		}
	}

	fs := &FixedSchedule{
		RoomID:    req.RoomID,
		Semester:  sem,
		Slot:      slot,
		OwnerKind: kind,
		GroupID:   req.GroupID,
	}
	if err := s.repo.Create(ctx, fs); err != nil {
		return nil, err
	}
	return fs, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*FixedSchedule, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByRoom(ctx context.Context, roomID, sem string) ([]*FixedSchedule, error) {
	parsed, err := semester.Parse(sem)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByRoomAndSemester(ctx, roomID, parsed)
}

func (s *service) ListByProfessor(ctx context.Context, professorID, sem string) ([]*FixedSchedule, error) {
	parsed, err := semester.Parse(sem)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByProfessorAndSemester(ctx, professorID, parsed)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
