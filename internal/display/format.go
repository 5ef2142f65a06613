package display

import "time"

const (
	dateLayout     = "2006-01-02"
	timeLayout     = "15:04"
	longDateLayout = "Monday, January 2, 2006"
	clockLayout    = "3:04pm"
)

// FormatEventDate renders an ISO date as "Wednesday, December 31, 2025".
// The date is read as a calendar date, so no timezone can shift the day.
// Input that is not an ISO date is returned unchanged.
func FormatEventDate(date string) string {
	if date == "" {
		return ""
	}
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	return d.Format(longDateLayout)
}

// FormatEventTime converts "18:00" to "6:00pm". Input that is not a 24-hour
// clock time is returned unchanged.
func FormatEventTime(value string) string {
	if value == "" {
		return ""
	}
	t, err := time.Parse(timeLayout, value)
	if err != nil {
		return value
	}
	return t.Format(clockLayout)
}

// ValidDate reports whether date is a real calendar date in YYYY-MM-DD form.
func ValidDate(date string) bool {
	_, err := time.Parse(dateLayout, date)
	return err == nil
}

// DateSelectable reports whether date is today or later relative to today's
// calendar day in its own location.
func DateSelectable(date string, today time.Time) bool {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return false
	}
	y, m, day := today.Date()
	return !d.Before(time.Date(y, m, day, 0, 0, 0, 0, time.UTC))
}

// TimeSlot is one selectable start time.
type TimeSlot struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

const (
	firstSlotHour = 9
	lastSlotHour  = 23
	slotMinutes   = 30
)

var timeSlots = buildTimeSlots()

func buildTimeSlots() []TimeSlot {
	var slots []TimeSlot
	start := time.Date(0, 1, 1, firstSlotHour, 0, 0, 0, time.UTC)
	end := time.Date(0, 1, 1, lastSlotHour, 60-slotMinutes, 0, 0, time.UTC)
	for t := start; !t.After(end); t = t.Add(slotMinutes * time.Minute) {
		slots = append(slots, TimeSlot{Value: t.Format(timeLayout), Label: t.Format(clockLayout)})
	}
	return slots
}

// TimeSlots returns every half hour from 09:00 to 23:30 inclusive.
func TimeSlots() []TimeSlot {
	out := make([]TimeSlot, len(timeSlots))
	copy(out, timeSlots)
	return out
}

// IsTimeSlot reports whether value is one of TimeSlots.
func IsTimeSlot(value string) bool {
	for _, s := range timeSlots {
		if s.Value == value {
			return true
		}
	}
	return false
}
