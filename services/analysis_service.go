package services

import (
	"fmt"
	"math"

	"github.com/Lappanawat/flowmind-ranocturia/models"
)

// ActivityShare is one slice of the proportion chart: output volume per
// activity category.
type ActivityShare struct {
	Activity models.Activity `json:"activity"`
	Label    string          `json:"label"`
	OutputMl int             `json:"output_ml"`
	Percent  float64         `json:"percent"`
}

type AnalysisResult struct {
	Summary          models.DiarySummary  `json:"summary"`
	Metrics          models.MetricsResult `json:"metrics"`
	Findings         []string             `json:"findings"`
	OutputByActivity []ActivityShare      `json:"output_by_activity"`
}

type AnalysisService struct {
	metrics *MetricsService
}

func NewAnalysisService(metrics *MetricsService) *AnalysisService {
	return &AnalysisService{metrics: metrics}
}

// Analyze aggregates the diary, computes the screening indices and
// builds the human-readable findings plus the chart breakdown.
func (s *AnalysisService) Analyze(diary models.VoidingDiary, age int) *AnalysisResult {
	sum := diary.Summarize()
	m := s.metrics.Calculate(models.MetricsInput{
		TotalOutputMl:     float64(sum.TotalOutputMl),
		NocturnalOutputMl: float64(sum.NocturnalOutputMl),
		MaxVoidMl:         float64(sum.MaxVoidMl),
		NightVoidCount:    sum.NightVoidCount,
		Age:               age,
	})

	return &AnalysisResult{
		Summary:          sum,
		Metrics:          m,
		Findings:         findings(m),
		OutputByActivity: outputByActivity(diary, sum.TotalOutputMl),
	}
}

func findings(m models.MetricsResult) []string {
	var out []string
	if m.TotalOutputFlag {
		out = append(out, "24-hour polyuria: total urine volume exceeds the daily sanity limit")
	}
	if m.NocturnalPolyuriaFlag {
		out = append(out, fmt.Sprintf("Nocturnal polyuria: NPI %.2f%% is above the age-banded threshold", m.NocturnalPolyuriaIndex))
	}
	if m.DiminishedBladderCapacityFlag {
		out = append(out, "Diminished bladder capacity: maximum voided volume below 200 ml")
	}
	switch nbci := m.NocturnalBladderCapacityIndex; {
	case nbci > 2:
		out = append(out, "NBCI > 2: associated with severe nocturia")
	case nbci > 1.3:
		out = append(out, "NBCI > 1.3: related to diminished nocturnal bladder capacity")
	case nbci > 0:
		out = append(out, "NBCI > 0: nighttime voids each smaller than the maximum voided volume")
	}
	return out
}

// chartOrder fixes the slice order of the proportion chart.
var chartOrder = []models.Activity{
	models.ActivityFirstMorningVoid,
	models.ActivityDaytimeVoid,
	models.ActivityBedtimeVoid,
	models.ActivityNighttimeVoid,
	models.ActivityUnknown,
}

func outputByActivity(diary models.VoidingDiary, totalOutputMl int) []ActivityShare {
	sums := map[models.Activity]int{}
	for _, e := range diary {
		sums[e.Activity] += e.OutputMl
	}

	shares := make([]ActivityShare, 0, len(chartOrder))
	for _, a := range chartOrder {
		ml := sums[a]
		var pct float64
		if totalOutputMl > 0 {
			pct = round2(float64(ml) / float64(totalOutputMl) * 100)
		}
		shares = append(shares, ActivityShare{
			Activity: a,
			Label:    a.DisplayLabel(),
			OutputMl: ml,
			Percent:  pct,
		})
	}
	return shares
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
