package models

import "strings"

// Activity is the normalized category of a voiding diary row.
type Activity string

const (
	ActivityFirstMorningVoid Activity = "First Morning Void"
	ActivityDaytimeVoid      Activity = "Daytime Void"
	ActivityBedtimeVoid      Activity = "Bedtime Void"
	ActivityNighttimeVoid    Activity = "Nighttime Void"
	ActivityUnknown          Activity = "Unknown"
)

// Leak column values. Empty means the recognizer could not read the row
// and the user has not corrected it yet.
const (
	LeakYes     = "Y"
	LeakNo      = "N"
	LeakUnknown = ""
)

// activityKeywords is the ordered normalization table; the first
// case-insensitive substring hit wins.
var activityKeywords = []struct {
	keyword  string
	activity Activity
}{
	{"first morning void", ActivityFirstMorningVoid},
	{"daytime void", ActivityDaytimeVoid},
	{"bedtime void", ActivityBedtimeVoid},
	{"nighttime void", ActivityNighttimeVoid},
}

// displayLabels are the bilingual labels the table editor shows for each
// category.
var displayLabels = map[Activity]string{
	ActivityFirstMorningVoid: "ตื่นนอน (First Morning Void)",
	ActivityDaytimeVoid:      "ปัสสาวะในระหว่างวัน (Daytime Void)",
	ActivityBedtimeVoid:      "ปัสสาวะก่อนนอน (Bedtime Void)",
	ActivityNighttimeVoid:    "ปัสสาวะกลางคืน (Nighttime Void)",
	ActivityUnknown:          "Unknown Activity",
}

// NormalizeActivity maps a free-form label fragment to one of the four
// fixed categories, falling back to Unknown.
func NormalizeActivity(label string) Activity {
	lower := strings.ToLower(label)
	for _, k := range activityKeywords {
		if strings.Contains(lower, k.keyword) {
			return k.activity
		}
	}
	return ActivityUnknown
}

func (a Activity) DisplayLabel() string {
	if l, ok := displayLabels[a]; ok {
		return l
	}
	return displayLabels[ActivityUnknown]
}

// VoidingEvent is one row of the frequency volume chart.
type VoidingEvent struct {
	Activity Activity `json:"activity"`
	Time     string   `json:"time,omitempty"` // wall clock HH:MM, empty if unreadable
	IntakeMl int      `json:"intake_ml"`
	OutputMl int      `json:"output_ml"`
	Leak     string   `json:"leak"`
}

// VoidingDiary keeps rows in entry order; duplicate times and activities
// are allowed.
type VoidingDiary []VoidingEvent

// DiarySummary holds the aggregates the metrics calculator consumes.
type DiarySummary struct {
	TotalIntakeMl     int `json:"total_intake_ml"`
	TotalOutputMl     int `json:"total_output_ml"`
	NocturnalOutputMl int `json:"nocturnal_output_ml"`
	MaxVoidMl         int `json:"max_void_ml"`
	NightVoidCount    int `json:"night_void_count"`
}

// Summarize totals the diary. First-morning output counts toward the
// nocturnal volume because that urine was produced overnight.
func (d VoidingDiary) Summarize() DiarySummary {
	var s DiarySummary
	for _, e := range d {
		s.TotalIntakeMl += e.IntakeMl
		s.TotalOutputMl += e.OutputMl
		if e.OutputMl > s.MaxVoidMl {
			s.MaxVoidMl = e.OutputMl
		}
		switch e.Activity {
		case ActivityNighttimeVoid:
			s.NocturnalOutputMl += e.OutputMl
			s.NightVoidCount++
		case ActivityFirstMorningVoid:
			s.NocturnalOutputMl += e.OutputMl
		}
	}
	return s
}

// SampleDiary is the example chart shown to first-time users before they
// enter their own rows.
func SampleDiary() VoidingDiary {
	return VoidingDiary{
		{Activity: ActivityFirstMorningVoid, Time: "06:00", IntakeMl: 0, OutputMl: 150, Leak: LeakNo},
		{Activity: ActivityDaytimeVoid, Time: "08:00", IntakeMl: 250, OutputMl: 200, Leak: LeakNo},
		{Activity: ActivityDaytimeVoid, Time: "12:00", IntakeMl: 300, OutputMl: 250, Leak: LeakNo},
		{Activity: ActivityDaytimeVoid, Time: "18:00", IntakeMl: 400, OutputMl: 300, Leak: LeakNo},
		{Activity: ActivityBedtimeVoid, Time: "22:00", IntakeMl: 200, OutputMl: 100, Leak: LeakNo},
		{Activity: ActivityNighttimeVoid, Time: "02:00", IntakeMl: 0, OutputMl: 150, Leak: LeakYes},
	}
}
