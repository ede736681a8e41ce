package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campuskit/scheduling-backend/internal/group"
	"github.com/campuskit/scheduling-backend/internal/pkg/response"
)

type Handler struct {
	service group.Service
}

func NewHandler(service group.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CreateTheory(c *gin.Context) {
	var body CreateTheoryGroupRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	g, err := h.service.CreateTheory(c.Request.Context(), group.CreateTheoryRequest{
		CourseID:    body.CourseID,
		ProfessorID: body.ProfessorID,
		Semester:    body.Semester,
		Name:        body.Name,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewTheoryGroupResponse(g))
}

func (h *Handler) GetTheory(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	g, err := h.service.GetTheoryByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewTheoryGroupResponse(g))
}

func (h *Handler) CreateLab(c *gin.Context) {
	var body CreateLabGroupRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	g, err := h.service.CreateLab(c.Request.Context(), group.CreateLabRequest{
		CourseID:    body.CourseID,
		ProfessorID: body.ProfessorID,
		Semester:    body.Semester,
		Name:        body.Name,
		Capacity:    body.Capacity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewLabGroupResponse(g))
}

func (h *Handler) GetLab(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	g, err := h.service.GetLabByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewLabGroupResponse(g))
}

func (h *Handler) ListLabs(c *gin.Context) {
	sem := c.Query("semester")
	if sem == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "semester query parameter is required"})
		return
	}

	groups, err := h.service.ListLabsBySemester(c.Request.Context(), sem)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]LabGroupResponse, len(groups))
	for i, g := range groups {
		items[i] = NewLabGroupResponse(g)
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
