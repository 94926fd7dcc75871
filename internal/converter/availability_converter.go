package converter

import (
	"strings"

	"ime-admin-service/internal/delivery/dto"
	"ime-admin-service/internal/domain/entity"

	"github.com/google/uuid"
)

// lowercase day keys in canonical week order; the UI object is keyed by
// these.
var weekDays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// overrideDateFormat is MM-DD-YYYY, a wire contract with the consuming
// UI, deliberately not ISO.
const overrideDateFormat = "01-02-2006"

// WeeklyScheduleToRecords maps the day-keyed UI object to normalized
// rows. Days absent from the input produce no record at all; the read
// path treats a missing row as disabled.
func WeeklyScheduleToRecords(profileID uuid.UUID, schedule map[string]dto.DaySchedule) []entity.WeeklyHours {
	records := make([]entity.WeeklyHours, 0, len(schedule))
	for _, day := range weekDays {
		daySchedule, ok := schedule[day]
		if !ok {
			continue
		}
		records = append(records, entity.WeeklyHours{
			ExaminerProfileID: profileID,
			DayOfWeek:         strings.ToUpper(day),
			Enabled:           daySchedule.Enabled,
			TimeSlots:         slotsToEntity(daySchedule.TimeSlots),
		})
	}
	return records
}

// RecordsToWeeklySchedule builds the complete 7-day UI object: every day
// starts from the default schedule, then stored rows overwrite their
// day. Reads therefore always return all seven days however sparse the
// stored data is.
func RecordsToWeeklySchedule(records []entity.WeeklyHours) map[string]dto.DaySchedule {
	schedule := defaultWeeklySchedule()
	for _, record := range records {
		schedule[strings.ToLower(record.DayOfWeek)] = dto.DaySchedule{
			Enabled:   record.Enabled,
			TimeSlots: slotsToDTO(record.TimeSlots),
		}
	}
	return schedule
}

// defaultWeeklySchedule is the hardcoded fallback: Mon/Tue/Wed/Fri
// enabled 08:00-11:00, Thursday enabled with a second evening slot,
// weekend disabled but keeping the default slot inert.
func defaultWeeklySchedule() map[string]dto.DaySchedule {
	defaultSlot := []dto.TimeSlotDTO{{StartTime: "08:00", EndTime: "11:00"}}

	schedule := make(map[string]dto.DaySchedule, len(weekDays))
	for _, day := range weekDays {
		switch day {
		case "thursday":
			schedule[day] = dto.DaySchedule{
				Enabled: true,
				TimeSlots: []dto.TimeSlotDTO{
					{StartTime: "08:00", EndTime: "11:00"},
					{StartTime: "17:00", EndTime: "21:00"},
				},
			}
		case "saturday", "sunday":
			schedule[day] = dto.DaySchedule{Enabled: false, TimeSlots: defaultSlot}
		default:
			schedule[day] = dto.DaySchedule{Enabled: true, TimeSlots: defaultSlot}
		}
	}
	return schedule
}

// OverrideHoursToResponses formats stored overrides for the UI.
func OverrideHoursToResponses(records []entity.OverrideHours) []dto.OverrideHoursResponse {
	responses := make([]dto.OverrideHoursResponse, len(records))
	for i, record := range records {
		responses[i] = dto.OverrideHoursResponse{
			Date:      record.Date.Format(overrideDateFormat),
			Enabled:   record.Enabled,
			TimeSlots: slotsToDTO(record.TimeSlots),
		}
	}
	return responses
}

func slotsToEntity(slots []dto.TimeSlotDTO) entity.TimeSlots {
	out := make(entity.TimeSlots, len(slots))
	for i, s := range slots {
		out[i] = entity.TimeSlot{StartTime: s.StartTime, EndTime: s.EndTime}
	}
	return out
}

func slotsToDTO(slots entity.TimeSlots) []dto.TimeSlotDTO {
	out := make([]dto.TimeSlotDTO, len(slots))
	for i, s := range slots {
		out[i] = dto.TimeSlotDTO{StartTime: s.StartTime, EndTime: s.EndTime}
	}
	return out
}
