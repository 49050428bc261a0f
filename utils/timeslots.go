package utils

import "time"

// GenerateTimeSlots returns the 96 quarter-hour wall-clock slots the table
// editor offers for the time column ("00:00" … "23:45").
func GenerateTimeSlots() []string {
	start := time.Date(0, time.January, 1, 0, 0, 0, 0, time.UTC)
	slots := make([]string, 0, 96)
	for i := 0; i < 96; i++ {
		slots = append(slots, start.Add(time.Duration(i)*15*time.Minute).Format("15:04"))
	}
	return slots
}
