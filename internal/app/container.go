package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuskit/scheduling-backend/internal/api"
	"github.com/campuskit/scheduling-backend/internal/enrollment"
	"github.com/campuskit/scheduling-backend/internal/group"
	"github.com/campuskit/scheduling-backend/internal/reservation"
	"github.com/campuskit/scheduling-backend/internal/room"
	"github.com/campuskit/scheduling-backend/internal/schedule"
	"github.com/campuskit/scheduling-backend/internal/uow"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction           bool
	ProdOrigins            string
	DBPool                 *pgxpool.Pool
	ReservationWeeklyLimit int
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router *gin.Engine
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// Room Module
	roomRepo := room.NewPgxRepository(cfg.DBPool)
	roomService := room.NewService(roomRepo)

	// Group Module
	groupRepo := group.NewPgxRepository(cfg.DBPool)
	groupService := group.NewService(groupRepo)

	// Schedule Module
	scheduleRepo := schedule.NewPgxRepository(cfg.DBPool)
	scheduleService := schedule.NewService(scheduleRepo, roomRepo)

	// Reservation Module
	reservationRepo := reservation.NewPgxRepository(cfg.DBPool)
	reservationTx := uow.NewReservationTxManager(cfg.DBPool)
	reservationService := reservation.NewService(reservationTx, reservationRepo, cfg.ReservationWeeklyLimit)

	// Enrollment Module
	enrollmentRepo := enrollment.NewPgxRepository(cfg.DBPool)
	enrollmentTx := uow.NewEnrollmentTxManager(cfg.DBPool)
	enrollmentService := enrollment.NewService(enrollmentTx, enrollmentRepo, groupRepo)

	// API Router Config
	routerParams := api.Config{
		IsProduction:       cfg.IsProduction,
		ProdOrigins:        cfg.ProdOrigins,
		RoomService:        roomService,
		GroupService:       groupService,
		ScheduleService:    scheduleService,
		ReservationService: reservationService,
		EnrollmentService:  enrollmentService,
	}

	// Router
	router := api.NewRouter(routerParams)

	return &Container{
		Router: router,
	}
}
