package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campuskit/scheduling-backend/internal/pkg/response"
	"github.com/campuskit/scheduling-backend/internal/schedule"
)

type Handler struct {
	service schedule.Service
}

func NewHandler(service schedule.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateFixedScheduleRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	fs, err := h.service.Create(c.Request.Context(), schedule.CreateRequest{
		RoomID:    body.RoomID,
		Semester:  body.Semester,
		Day:       body.Day,
		Start:     body.Start,
		End:       body.End,
		OwnerKind: body.OwnerKind,
		GroupID:   body.GroupID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewFixedScheduleResponse(fs))
}

func (h *Handler) List(c *gin.Context) {
	roomID := c.Query("room_id")
	sem := c.Query("semester")
	professorID := c.Query("professor_id")

	if sem == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "semester query parameter is required"})
		return
	}

	var (
		schedules []*schedule.FixedSchedule
		err       error
	)
	switch {
	case roomID != "":
		schedules, err = h.service.ListByRoom(c.Request.Context(), roomID, sem)
	case professorID != "":
		schedules, err = h.service.ListByProfessor(c.Request.Context(), professorID, sem)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "room_id or professor_id query parameter is required"})
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]FixedScheduleResponse, len(schedules))
	for i, fs := range schedules {
		items[i] = NewFixedScheduleResponse(fs)
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
