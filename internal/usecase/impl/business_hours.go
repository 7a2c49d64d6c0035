package impl

import (
	"strings"
	"time"
	_ "time/tzdata" // schedules must resolve in minimal containers

	"pedido/internal/domain/entity"
)

const defaultTimezone = "America/Sao_Paulo"

// IsOpen evaluates the weekly schedule at now in the schedule's timezone. A shift whose close
// is not after its open runs past midnight, so the previous day's shift is checked too.
// No schedule at all counts as always open.
func IsOpen(now time.Time, hours entity.OpeningHours) bool {
	if len(hours.Days) == 0 {
		return true
	}

	loc := scheduleLocation(hours.Timezone)
	local := now.In(loc)
	minute := local.Hour()*60 + local.Minute()

	if day, ok := dayFor(hours, local.Weekday()); ok && !day.Closed {
		open, okOpen := parseClock(day.Open)
		closing, okClose := parseClock(day.Close)
		if okOpen && okClose {
			if closing > open && minute >= open && minute < closing {
				return true
			}
			if closing <= open && minute >= open {
				return true
			}
		}
	}

	yesterday := (local.Weekday() + 6) % 7
	if day, ok := dayFor(hours, yesterday); ok && !day.Closed {
		open, okOpen := parseClock(day.Open)
		closing, okClose := parseClock(day.Close)
		if okOpen && okClose && closing <= open && minute < closing {
			return true
		}
	}

	return false
}

// BusinessHoursStatus is the line added to the assistant's instructions.
func BusinessHoursStatus(now time.Time, hours entity.OpeningHours) string {
	if IsOpen(now, hours) {
		return "O restaurante está ABERTO agora."
	}

	return "O restaurante está FECHADO agora. Informe o cliente e não feche pedidos."
}

func scheduleLocation(name string) *time.Location {
	if name == "" {
		name = defaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}

	return loc
}

func dayFor(hours entity.OpeningHours, weekday time.Weekday) (entity.DaySchedule, bool) {
	day, ok := hours.Days[strings.ToLower(weekday.String())]

	return day, ok
}

// parseClock turns "HH:MM" into minutes since midnight
func parseClock(s string) (int, bool) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}

	return t.Hour()*60 + t.Minute(), true
}
