package http

import (
	"github.com/campuskit/scheduling-backend/internal/schedule"
)

type FixedScheduleResponse struct {
	ID        string `json:"id"`
	RoomID    string `json:"room_id"`
	Semester  string `json:"semester"`
	Day       string `json:"day"`
	Start     string `json:"start"`
	End       string `json:"end"`
	OwnerKind string `json:"owner_kind"`
	GroupID   string `json:"group_id"`
}

func NewFixedScheduleResponse(fs *schedule.FixedSchedule) FixedScheduleResponse {
	return FixedScheduleResponse{
		ID:        fs.ID,
		RoomID:    fs.RoomID,
		Semester:  fs.Semester.String(),
		Day:       fs.Slot.Day.String(),
		Start:     fs.Slot.Start.String(),
		End:       fs.Slot.End.String(),
		OwnerKind: string(fs.OwnerKind),
		GroupID:   fs.GroupID,
	}
}

type CreateFixedScheduleRequest struct {
	RoomID    string `json:"room_id" binding:"required,uuid"`
	Semester  string `json:"semester" binding:"required"`
	Day       string `json:"day" binding:"required"`
	Start     string `json:"start" binding:"required"`
	End       string `json:"end" binding:"required"`
	OwnerKind string `json:"owner_kind" binding:"required,oneof=theory lab"`
	GroupID   string `json:"group_id" binding:"required,uuid"`
}
