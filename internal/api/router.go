package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/campuskit/scheduling-backend/internal/enrollment"
	enrollmentHttp "github.com/campuskit/scheduling-backend/internal/enrollment/http"
	"github.com/campuskit/scheduling-backend/internal/group"
	groupHttp "github.com/campuskit/scheduling-backend/internal/group/http"
	"github.com/campuskit/scheduling-backend/internal/reservation"
	reservationHttp "github.com/campuskit/scheduling-backend/internal/reservation/http"
	"github.com/campuskit/scheduling-backend/internal/room"
	roomHttp "github.com/campuskit/scheduling-backend/internal/room/http"
	"github.com/campuskit/scheduling-backend/internal/schedule"
	scheduleHttp "github.com/campuskit/scheduling-backend/internal/schedule/http"
)

// Config holds the services and settings the router needs.
type Config struct {
	IsProduction       bool
	ProdOrigins        string
	RoomService        room.Service
	GroupService       group.Service
	ScheduleService    schedule.Service
	ReservationService reservation.Service
	EnrollmentService  enrollment.Service
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger) and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:8081", // Swagger
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	roomHandler := roomHttp.NewHandler(cfg.RoomService)
	groupHandler := groupHttp.NewHandler(cfg.GroupService)
	scheduleHandler := scheduleHttp.NewHandler(cfg.ScheduleService)
	reservationHandler := reservationHttp.NewHandler(cfg.ReservationService)
	enrollmentHandler := enrollmentHttp.NewHandler(cfg.EnrollmentService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		roomHttp.RegisterRoutes(v1, roomHandler)
		groupHttp.RegisterRoutes(v1, groupHandler)
		scheduleHttp.RegisterRoutes(v1, scheduleHandler)
		reservationHttp.RegisterRoutes(v1, reservationHandler)
		enrollmentHttp.RegisterRoutes(v1, enrollmentHandler)
	}

	return r
}
