package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campuskit/scheduling-backend/internal/pkg/response"
	"github.com/campuskit/scheduling-backend/internal/reservation"
)

type Handler struct {
	service reservation.Service
}

func NewHandler(service reservation.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateReservationRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	res, err := h.service.Create(c.Request.Context(), reservation.CreateRequest{
		RoomID:      body.RoomID,
		ProfessorID: body.ProfessorID,
		Semester:    body.Semester,
		Date:        body.Date,
		Day:         body.Day,
		Start:       body.Start,
		End:         body.End,
		Notes:       body.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewReservationResponse(res))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	res, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewReservationResponse(res))
}

func (h *Handler) List(c *gin.Context) {
	sem := c.Query("semester")
	if sem == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "semester query parameter is required"})
		return
	}

	var (
		reservations []*reservation.Reservation
		err          error
	)
	switch {
	case c.Query("room_id") != "":
		reservations, err = h.service.ListByRoom(c.Request.Context(), c.Query("room_id"), sem)
	case c.Query("professor_id") != "":
		reservations, err = h.service.ListByProfessor(c.Request.Context(), c.Query("professor_id"), sem)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "room_id or professor_id query parameter is required"})
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ReservationResponse, len(reservations))
	for i, r := range reservations {
		items[i] = NewReservationResponse(r)
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) Cancel(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body StatusChangeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	res, err := h.service.Cancel(c.Request.Context(), id, body.ProfessorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewReservationResponse(res))
}

func (h *Handler) Confirm(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body StatusChangeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	res, err := h.service.Confirm(c.Request.Context(), id, body.ProfessorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewReservationResponse(res))
}
