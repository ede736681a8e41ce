// Package uow runs use-case functions inside serializable database
// transactions, handing them repositories bound to the open transaction.
package uow

import (
	"context"
	"errors"
	"net/http"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuskit/scheduling-backend/internal/enrollment"
	"github.com/campuskit/scheduling-backend/internal/group"
	"github.com/campuskit/scheduling-backend/internal/pkg/apperror"
	"github.com/campuskit/scheduling-backend/internal/reservation"
	"github.com/campuskit/scheduling-backend/internal/room"
	"github.com/campuskit/scheduling-backend/internal/schedule"
)

// ErrSerializationConflict reports that a concurrent transaction touched the
// same rows and the client should retry the request.
var ErrSerializationConflict = apperror.New(http.StatusConflict, "serialization_conflict", "concurrent update detected, please retry")

var serializableOpts = pgx.TxOptions{IsoLevel: pgx.Serializable}

func inTx(ctx context.Context, pool *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	tx, err := pool.BeginTx(ctx, serializableOpts)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return translate(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return translate(err)
	}
	return nil
}

func translate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.SerializationFailure {
		return ErrSerializationConflict
	}
	return err
}

// ReservationTxManager implements reservation.TxManager on a pgx pool.
type ReservationTxManager struct {
	pool *pgxpool.Pool
}

func NewReservationTxManager(pool *pgxpool.Pool) *ReservationTxManager {
	return &ReservationTxManager{pool: pool}
}

func (m *ReservationTxManager) InTx(ctx context.Context, fn func(ctx context.Context, repos reservation.TxRepos) error) error {
	return inTx(ctx, m.pool, func(tx pgx.Tx) error {
		return fn(ctx, reservation.TxRepos{
			Reservations: reservation.NewPgxRepository(tx),
			Schedules:    schedule.NewPgxRepository(tx),
			Rooms:        room.NewPgxRepository(tx),
		})
	})
}

// EnrollmentTxManager implements enrollment.TxManager on a pgx pool.
type EnrollmentTxManager struct {
	pool *pgxpool.Pool
}

func NewEnrollmentTxManager(pool *pgxpool.Pool) *EnrollmentTxManager {
	return &EnrollmentTxManager{pool: pool}
}

func (m *EnrollmentTxManager) InTx(ctx context.Context, fn func(ctx context.Context, repos enrollment.TxRepos) error) error {
	return inTx(ctx, m.pool, func(tx pgx.Tx) error {
		return fn(ctx, enrollment.TxRepos{
			Enrollments: enrollment.NewPgxRepository(tx),
			Groups:      group.NewPgxRepository(tx),
		})
	})
}
