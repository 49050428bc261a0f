package services

import (
	"strings"
	"testing"

	"github.com/Lappanawat/flowmind-ranocturia/models"
)

func newAnalysisService() *AnalysisService {
	return NewAnalysisService(NewMetricsService(40000))
}

func TestAnalyzeSampleDiary(t *testing.T) {
	t.Parallel()
	out := newAnalysisService().Analyze(models.SampleDiary(), 50)

	if out.Summary.TotalOutputMl != 1150 || out.Summary.NocturnalOutputMl != 300 {
		t.Fatalf("unexpected summary %+v", out.Summary)
	}
	// NPI = 300/1150*100 ≈ 26.09 > 20 within the 40-65 band
	if !out.Metrics.NocturnalPolyuriaFlag {
		t.Fatal("expected nocturnal polyuria flag for the sample diary at age 50")
	}
	if out.Metrics.DiminishedBladderCapacityFlag {
		t.Fatal("300 ml max void must not flag diminished capacity")
	}
	// NI = 300/300 = 1 → PNV 0 → NBCI = 1
	if out.Metrics.NocturnalBladderCapacityIndex != 1.0 {
		t.Fatalf("NBCI = %v, want 1.0", out.Metrics.NocturnalBladderCapacityIndex)
	}
}

func TestAnalyzeFindingsBands(t *testing.T) {
	t.Parallel()
	svc := newAnalysisService()

	// three nighttime voids, each below max void → NBCI = 3 (> 2 band)
	diary := models.VoidingDiary{
		{Activity: models.ActivityDaytimeVoid, OutputMl: 400},
		{Activity: models.ActivityNighttimeVoid, OutputMl: 100},
		{Activity: models.ActivityNighttimeVoid, OutputMl: 100},
		{Activity: models.ActivityNighttimeVoid, OutputMl: 100},
	}
	out := svc.Analyze(diary, 30)

	var severe bool
	for _, f := range out.Findings {
		if strings.HasPrefix(f, "NBCI > 2") {
			severe = true
		}
	}
	if !severe {
		t.Fatalf("expected severe nocturia finding, got %v", out.Findings)
	}
}

func TestAnalyzeNoFindingsForQuietDiary(t *testing.T) {
	t.Parallel()
	diary := models.VoidingDiary{
		{Activity: models.ActivityDaytimeVoid, OutputMl: 400},
		{Activity: models.ActivityDaytimeVoid, OutputMl: 350},
	}
	out := newAnalysisService().Analyze(diary, 30)

	if len(out.Findings) != 0 {
		t.Fatalf("expected no findings, got %v", out.Findings)
	}
}

func TestOutputByActivityProportions(t *testing.T) {
	t.Parallel()
	out := newAnalysisService().Analyze(models.SampleDiary(), 50)

	shares := map[models.Activity]ActivityShare{}
	var total float64
	for _, s := range out.OutputByActivity {
		shares[s.Activity] = s
		total += s.Percent
	}

	if got := shares[models.ActivityDaytimeVoid].OutputMl; got != 750 {
		t.Fatalf("daytime output = %d, want 750", got)
	}
	if got := shares[models.ActivityUnknown].OutputMl; got != 0 {
		t.Fatalf("unknown output = %d, want 0", got)
	}
	if total < 99.9 || total > 100.1 {
		t.Fatalf("percentages sum to %v, want ~100", total)
	}
	if shares[models.ActivityNighttimeVoid].Label != "ปัสสาวะกลางคืน (Nighttime Void)" {
		t.Fatalf("unexpected chart label %q", shares[models.ActivityNighttimeVoid].Label)
	}
}

func TestOutputByActivityEmptyDiary(t *testing.T) {
	t.Parallel()
	out := newAnalysisService().Analyze(models.VoidingDiary{}, 30)

	if len(out.OutputByActivity) != 5 {
		t.Fatalf("chart slices = %d, want 5", len(out.OutputByActivity))
	}
	for _, s := range out.OutputByActivity {
		if s.Percent != 0 {
			t.Fatalf("empty diary must yield zero percentages, got %+v", s)
		}
	}
}
