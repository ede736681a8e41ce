package reservation

import (
	"context"
	"errors"
	"time"

	"github.com/campuskit/scheduling-backend/internal/room"
	"github.com/campuskit/scheduling-backend/internal/schedule"
	"github.com/campuskit/scheduling-backend/internal/semester"
	"github.com/campuskit/scheduling-backend/internal/timeslot"
)

// DefaultWeeklyLimit is the number of active reservations a professor may
// hold per academic week (Monday through Sunday).
const DefaultWeeklyLimit = 2

// TxRepos bundles the repositories a booking transaction needs, all bound to
// the same open transaction.
type TxRepos struct {
	Reservations Repository
	Schedules    schedule.Repository
	Rooms        room.Repository
}

// TxManager runs fn inside one isolated transaction: every read in fn sees a
// consistent snapshot, and the writes commit only if fn returns nil.
type TxManager interface {
	InTx(ctx context.Context, fn func(ctx context.Context, repos TxRepos) error) error
}

type CreateRequest struct {
	RoomID      string
	ProfessorID string
	Semester    string
	Date        string // YYYY-MM-DD
	Day         string // MONDAY..SUNDAY, must match Date
	Start       string // HH:MM
	End         string // HH:MM
	Notes       string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Reservation, error)
	GetByID(ctx context.Context, id string) (*Reservation, error)
	ListByRoom(ctx context.Context, roomID, sem string) ([]*Reservation, error)
	ListByProfessor(ctx context.Context, professorID, sem string) ([]*Reservation, error)
	Cancel(ctx context.Context, id, professorID string) (*Reservation, error)
	Confirm(ctx context.Context, id, professorID string) (*Reservation, error)
}

type service struct {
	tx          TxManager
	repo        Repository // ambient, for reads outside a booking transaction
	weeklyLimit int
}

func NewService(tx TxManager, repo Repository, weeklyLimit int) Service {
	if weeklyLimit <= 0 {
		weeklyLimit = DefaultWeeklyLimit
	}
	return &service{tx: tx, repo: repo, weeklyLimit: weeklyLimit}
}

// parseDate parses a reservation date as a UTC calendar day. Weekday
// derivation always happens on this UTC date so it is deterministic.
func parseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// weekBounds returns the half-open [Monday, next Monday) UTC interval of the
// academic week containing date.
func weekBounds(date time.Time) (time.Time, time.Time) {
	offset := (int(date.Weekday()) + 6) % 7 // Monday = 0
	start := date.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 7)
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Reservation, error) {
	// All input validation happens before any transaction opens.
	slot, err := timeslot.Parse(req.Day, req.Start, req.End)
	if err != nil {
		return nil, err
	}
	sem, err := semester.Parse(req.Semester)
	if err != nil {
		return nil, err
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if timeslot.WeekdayOf(date) != slot.Day {
		return nil, ErrDateDayMismatch
	}

	res := &Reservation{
		RoomID:      req.RoomID,
		ProfessorID: req.ProfessorID,
		Semester:    sem,
		Date:        date,
		Slot:        slot,
		Status:      StatusReserved,
		Notes:       req.Notes,
	}

	err = s.tx.InTx(ctx, func(ctx context.Context, repos TxRepos) error {
		if _, err := repos.Rooms.GetByID(ctx, req.RoomID); err != nil {
			if errors.Is(err, room.ErrNotFound) {
				return ErrRoomNotFound
			}
			return err
		}
		if err := s.checkConflicts(ctx, repos, res, ""); err != nil {
			return err
		}
		return repos.Reservations.Create(ctx, res)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// checkConflicts runs the conflict sources in order, first failure wins.
// Each source is a full scan against the transaction-scoped repositories;
// none is skipped as an optimization. excludeID ignores the reservation
// itself when re-checking on confirm.
func (s *service) checkConflicts(ctx context.Context, repos TxRepos, res *Reservation, excludeID string) error {
	// 1. Weekly quota.
	from, to := weekBounds(res.Date)
	count, err := repos.Reservations.CountActiveByProfessorBetween(ctx, res.ProfessorID, from, to)
	if err != nil {
		return err
	}
	if count >= s.weeklyLimit {
		return ErrQuotaExceeded
	}

	// 2. Room vs fixed schedules.
	fixed, err := repos.Schedules.ListByRoomAndSemester(ctx, res.RoomID, res.Semester)
	if err != nil {
		return err
	}
	for _, fs := range fixed {
		if fs.Slot.Overlaps(res.Slot) {
			return ErrRoomFixedConflict
		}
	}

	// 3. Room vs other reservations on the same day.
	sameRoom, err := repos.Reservations.ListActiveByRoomAndDate(ctx, res.RoomID, res.Semester, res.Date)
	if err != nil {
		return err
	}
	for _, other := range sameRoom {
		if other.ID == excludeID {
			continue
		}
		if other.Slot.Overlaps(res.Slot) {
			return ErrRoomReservationConflict
		}
	}

	// 4. Professor vs own fixed teaching load.
	load, err := repos.Schedules.ListByProfessorAndSemester(ctx, res.ProfessorID, res.Semester)
	if err != nil {
		return err
	}
	for _, fs := range load {
		if fs.Slot.Overlaps(res.Slot) {
			return ErrProfessorFixedConflict
		}
	}

	// 5. Professor vs own other reservations.
	mine, err := repos.Reservations.ListActiveByProfessorAndSemester(ctx, res.ProfessorID, res.Semester)
	if err != nil {
		return err
	}
	for _, other := range mine {
		if other.ID == excludeID {
			continue
		}
		if other.Date.Equal(res.Date) && other.Slot.Overlaps(res.Slot) {
			return ErrProfessorReservationConflict
		}
	}

	return nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Reservation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByRoom(ctx context.Context, roomID, sem string) ([]*Reservation, error) {
	parsed, err := semester.Parse(sem)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByRoom(ctx, roomID, parsed)
}

func (s *service) ListByProfessor(ctx context.Context, professorID, sem string) ([]*Reservation, error) {
	parsed, err := semester.Parse(sem)
	if err != nil {
		return nil, err
	}
	return s.repo.ListActiveByProfessorAndSemester(ctx, professorID, parsed)
}

func (s *service) Cancel(ctx context.Context, id, professorID string) (*Reservation, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.ProfessorID != professorID {
		return nil, ErrPermissionDenied
	}
	if err := res.Cancel(); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, id, StatusFree); err != nil {
		return nil, err
	}
	return res, nil
}

// Confirm re-activates a cancelled reservation. The full conflict check runs
// again inside the transaction: the slot may have been taken since the
// reservation was cancelled.
func (s *service) Confirm(ctx context.Context, id, professorID string) (*Reservation, error) {
	var res *Reservation
	err := s.tx.InTx(ctx, func(ctx context.Context, repos TxRepos) error {
		var err error
		res, err = repos.Reservations.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if res.ProfessorID != professorID {
			return ErrPermissionDenied
		}
		if err := res.Confirm(); err != nil {
			return err
		}
		if err := s.checkConflicts(ctx, repos, res, res.ID); err != nil {
			return err
		}
		return repos.Reservations.UpdateStatus(ctx, id, StatusReserved)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
