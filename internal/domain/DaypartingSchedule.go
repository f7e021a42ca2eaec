package domain

import (
	"sort"
	"time"
)

var weekdayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// DaypartingSchedule restricts campaigns to an hour window on selected weekdays.
// DaysOfWeek uses 0=Monday..6=Sunday. StartHour > EndHour means the window wraps midnight.
type DaypartingSchedule struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	StartHour  int       `json:"start_hour"`
	EndHour    int       `json:"end_hour"`
	DaysOfWeek []int     `json:"days_of_week"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// WeekdayIndex maps time.Weekday (Sunday=0) to the Monday=0 convention.
func WeekdayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

func (s *DaypartingSchedule) hasDay(day int) bool {
	for _, d := range s.DaysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}

func (s *DaypartingSchedule) coversHour(hour int) bool {
	if s.StartHour <= s.EndHour {
		return hour >= s.StartHour && hour < s.EndHour
	}
	return hour >= s.StartHour || hour < s.EndHour
}

// IsWithinWindow reports whether at (already in the operating timezone) falls in the window.
// The schedule's own IsActive flag is not consulted.
func (s *DaypartingSchedule) IsWithinWindow(at time.Time) bool {
	if !s.hasDay(WeekdayIndex(at.Weekday())) {
		return false
	}
	return s.coversHour(at.Hour())
}

// ActiveHours lists the hours of the day the window covers, for display.
func (s *DaypartingSchedule) ActiveHours() []int {
	hours := make([]int, 0, 24)
	for h := 0; h < 24; h++ {
		if s.coversHour(h) {
			hours = append(hours, h)
		}
	}
	return hours
}

// DayNames returns the configured weekdays by name, Monday first.
func (s *DaypartingSchedule) DayNames() []string {
	days := make([]int, 0, len(s.DaysOfWeek))
	for _, d := range s.DaysOfWeek {
		if d >= 0 && d < len(weekdayNames) {
			days = append(days, d)
		}
	}
	sort.Ints(days)

	names := make([]string, 0, len(days))
	for _, d := range days {
		names = append(names, weekdayNames[d])
	}
	return names
}

type CreateScheduleRequest struct {
	Name       string `json:"name"`
	StartHour  int    `json:"start_hour"`
	EndHour    int    `json:"end_hour"`
	DaysOfWeek []int  `json:"days_of_week"`
	IsActive   *bool  `json:"is_active,omitempty"`
}

type ScheduleView struct {
	*DaypartingSchedule
	ActiveHours       []int    `json:"active_hours"`
	Days              []string `json:"days"`
	IsCurrentlyActive bool     `json:"is_currently_active"`
	CampaignsCount    int      `json:"campaigns_count"`
}
