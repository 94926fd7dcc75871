package dto

// TimeSlotDTO mirrors entity.TimeSlot on the wire.
type TimeSlotDTO struct {
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
}

// DaySchedule is the UI-facing per-day shape; the weekly schedule is a
// map keyed by lowercase day name.
type DaySchedule struct {
	Enabled   bool          `json:"enabled"`
	TimeSlots []TimeSlotDTO `json:"timeSlots"`
}

type SaveWeeklyHoursRequest struct {
	// Days absent from the map produce no stored record.
	Schedule map[string]DaySchedule `json:"schedule" validate:"required"`
}

type WeeklyHoursResponse struct {
	Schedule map[string]DaySchedule `json:"schedule"`
}

type SaveOverrideHoursRequest struct {
	Date      string        `json:"date" validate:"required"` // YYYY-MM-DD
	Enabled   bool          `json:"enabled"`
	TimeSlots []TimeSlotDTO `json:"timeSlots" validate:"required,dive"`
}

// OverrideHoursResponse carries the date in MM-DD-YYYY form; the booking
// UI consumes it verbatim.
type OverrideHoursResponse struct {
	Date      string        `json:"date"`
	Enabled   bool          `json:"enabled"`
	TimeSlots []TimeSlotDTO `json:"timeSlots"`
}

type OverrideHoursListResponse struct {
	Overrides []OverrideHoursResponse `json:"overrides"`
	Total     int                     `json:"total"`
}
