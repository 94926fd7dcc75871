package converter

import (
	"testing"
	"time"

	"ime-admin-service/internal/delivery/dto"
	"ime-admin-service/internal/domain/entity"

	"github.com/google/uuid"
)

func TestWeeklyScheduleToRecordsSkipsAbsentDays(t *testing.T) {
	profileID := uuid.New()
	schedule := map[string]dto.DaySchedule{
		"monday": {Enabled: true, TimeSlots: []dto.TimeSlotDTO{{StartTime: "09:00", EndTime: "12:00"}}},
		"friday": {Enabled: false, TimeSlots: []dto.TimeSlotDTO{}},
	}

	records := WeeklyScheduleToRecords(profileID, schedule)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].DayOfWeek != "MONDAY" || records[1].DayOfWeek != "FRIDAY" {
		t.Fatalf("days not uppercased in week order: %s, %s", records[0].DayOfWeek, records[1].DayOfWeek)
	}
	if records[0].ExaminerProfileID != profileID {
		t.Fatal("profile ID not carried onto the record")
	}
	if !records[0].Enabled || records[1].Enabled {
		t.Fatal("enabled flags not preserved")
	}
	if records[0].TimeSlots[0].StartTime != "09:00" {
		t.Fatalf("slot not preserved: %+v", records[0].TimeSlots)
	}
}

func TestRecordsToWeeklyScheduleSeedsDefaults(t *testing.T) {
	schedule := RecordsToWeeklySchedule(nil)

	if len(schedule) != 7 {
		t.Fatalf("expected all 7 days, got %d", len(schedule))
	}
	for _, day := range []string{"monday", "tuesday", "wednesday", "friday"} {
		d := schedule[day]
		if !d.Enabled {
			t.Errorf("%s should default to enabled", day)
		}
		if len(d.TimeSlots) != 1 || d.TimeSlots[0].StartTime != "08:00" || d.TimeSlots[0].EndTime != "11:00" {
			t.Errorf("%s default slot wrong: %+v", day, d.TimeSlots)
		}
	}

	thursday := schedule["thursday"]
	if !thursday.Enabled || len(thursday.TimeSlots) != 2 {
		t.Fatalf("thursday default wrong: %+v", thursday)
	}
	if thursday.TimeSlots[1].StartTime != "17:00" || thursday.TimeSlots[1].EndTime != "21:00" {
		t.Fatalf("thursday evening slot wrong: %+v", thursday.TimeSlots[1])
	}

	for _, day := range []string{"saturday", "sunday"} {
		d := schedule[day]
		if d.Enabled {
			t.Errorf("%s should default to disabled", day)
		}
		if len(d.TimeSlots) != 1 {
			t.Errorf("%s should keep the inert default slot", day)
		}
	}
}

func TestRecordsToWeeklyScheduleOverwritesStoredDays(t *testing.T) {
	records := []entity.WeeklyHours{
		{
			DayOfWeek: "SATURDAY",
			Enabled:   true,
			TimeSlots: entity.TimeSlots{{StartTime: "10:00", EndTime: "14:00"}},
		},
	}

	schedule := RecordsToWeeklySchedule(records)
	saturday := schedule["saturday"]
	if !saturday.Enabled {
		t.Fatal("stored saturday should override the disabled default")
	}
	if len(saturday.TimeSlots) != 1 || saturday.TimeSlots[0].StartTime != "10:00" {
		t.Fatalf("stored slots lost: %+v", saturday.TimeSlots)
	}

	// Untouched days keep their defaults.
	if !schedule["monday"].Enabled {
		t.Fatal("monday default lost")
	}
}

func TestWeeklyRoundTrip(t *testing.T) {
	profileID := uuid.New()
	in := map[string]dto.DaySchedule{
		"tuesday": {Enabled: true, TimeSlots: []dto.TimeSlotDTO{{StartTime: "07:30", EndTime: "10:30"}}},
	}

	out := RecordsToWeeklySchedule(WeeklyScheduleToRecords(profileID, in))
	tuesday := out["tuesday"]
	if !tuesday.Enabled || tuesday.TimeSlots[0].StartTime != "07:30" {
		t.Fatalf("round trip lost data: %+v", tuesday)
	}
}

func TestOverrideHoursToResponsesDateFormat(t *testing.T) {
	date := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
	records := []entity.OverrideHours{
		{
			Date:      date,
			Enabled:   true,
			TimeSlots: entity.TimeSlots{{StartTime: "09:00", EndTime: "12:00"}},
		},
	}

	responses := OverrideHoursToResponses(records)
	if len(responses) != 1 {
		t.Fatalf("expected 1 response, got %d", len(responses))
	}
	if responses[0].Date != "03-05-2026" {
		t.Fatalf("expected MM-DD-YYYY date, got %q", responses[0].Date)
	}
	if responses[0].TimeSlots[0].EndTime != "12:00" {
		t.Fatalf("slots lost: %+v", responses[0].TimeSlots)
	}
}
