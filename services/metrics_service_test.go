package services

import (
	"testing"

	"github.com/Lappanawat/flowmind-ranocturia/models"
)

func TestCalculateZeroInput(t *testing.T) {
	t.Parallel()
	svc := NewMetricsService(40000)
	res := svc.Calculate(models.MetricsInput{Age: 30})

	if res.NocturnalPolyuriaIndex != 0 || res.NocturnalIndex != 0 ||
		res.PredictedNocturnalVoids != 0 || res.NocturnalBladderCapacityIndex != 0 {
		t.Fatalf("zero input must yield zero indices, got %+v", res)
	}
	if res.TotalOutputFlag || res.NocturnalPolyuriaFlag {
		t.Fatalf("zero input must not raise polyuria flags, got %+v", res)
	}
	// a max void of 0 is still below the 200 ml capacity threshold
	if !res.DiminishedBladderCapacityFlag {
		t.Fatal("expected diminished capacity flag for zero max void")
	}
}

func TestCalculateWorkedExample(t *testing.T) {
	t.Parallel()
	svc := NewMetricsService(40000)
	res := svc.Calculate(models.MetricsInput{
		TotalOutputMl:     1000,
		NocturnalOutputMl: 300,
		MaxVoidMl:         150,
		NightVoidCount:    2,
		Age:               50,
	})

	if res.NocturnalPolyuriaIndex != 30.0 {
		t.Fatalf("NPI = %v, want 30.0", res.NocturnalPolyuriaIndex)
	}
	if !res.NocturnalPolyuriaFlag {
		t.Fatal("expected nocturnal polyuria flag at NPI 30 for age 50")
	}
	if !res.DiminishedBladderCapacityFlag {
		t.Fatal("expected diminished capacity flag at 150 ml max void")
	}
	if res.NocturnalIndex != 2.0 {
		t.Fatalf("NI = %v, want 2.0", res.NocturnalIndex)
	}
	if res.PredictedNocturnalVoids != 1.0 {
		t.Fatalf("PNV = %v, want 1.0", res.PredictedNocturnalVoids)
	}
	if res.NocturnalBladderCapacityIndex != 1.0 {
		t.Fatalf("NBCI = %v, want 1.0", res.NocturnalBladderCapacityIndex)
	}
	if res.TotalOutputFlag {
		t.Fatal("1000 ml must not trip the gross output flag")
	}
}

func TestCalculateAgeBandBoundaries(t *testing.T) {
	t.Parallel()
	svc := NewMetricsService(40000)
	// NPI fixed at 30: above the 20% band threshold, below the 33% default
	base := models.MetricsInput{TotalOutputMl: 1000, NocturnalOutputMl: 300, MaxVoidMl: 250}

	cases := []struct {
		age  int
		want bool
	}{
		{39, false},
		{40, true},
		{65, true},
		{66, false},
	}
	for _, c := range cases {
		in := base
		in.Age = c.age
		if got := svc.Calculate(in).NocturnalPolyuriaFlag; got != c.want {
			t.Fatalf("age %d: polyuria flag = %v, want %v", c.age, got, c.want)
		}
	}
}

func TestCalculateNBCIUnclamped(t *testing.T) {
	t.Parallel()
	svc := NewMetricsService(40000)
	res := svc.Calculate(models.MetricsInput{
		TotalOutputMl:     1000,
		NocturnalOutputMl: 600,
		MaxVoidMl:         100,
		NightVoidCount:    1,
		Age:               30,
	})

	// NI = 6, PNV = 5, NBCI = 1 - 5 = -4: reported as-is
	if res.NocturnalBladderCapacityIndex != -4.0 {
		t.Fatalf("NBCI = %v, want -4.0", res.NocturnalBladderCapacityIndex)
	}
}

func TestCalculatePNVClampedAtZero(t *testing.T) {
	t.Parallel()
	svc := NewMetricsService(40000)
	res := svc.Calculate(models.MetricsInput{
		TotalOutputMl:     1000,
		NocturnalOutputMl: 200,
		MaxVoidMl:         400,
		NightVoidCount:    1,
		Age:               30,
	})

	// NI = 0.5 <= 1, so PNV stays 0 rather than going negative
	if res.PredictedNocturnalVoids != 0 {
		t.Fatalf("PNV = %v, want 0", res.PredictedNocturnalVoids)
	}
	if res.NocturnalBladderCapacityIndex != 1.0 {
		t.Fatalf("NBCI = %v, want 1.0", res.NocturnalBladderCapacityIndex)
	}
}

func TestCalculateTotalOutputThreshold(t *testing.T) {
	t.Parallel()
	svc := NewMetricsService(40000)

	at := svc.Calculate(models.MetricsInput{TotalOutputMl: 40000, MaxVoidMl: 400, Age: 30})
	if at.TotalOutputFlag {
		t.Fatal("flag must stay down at exactly 40000 ml")
	}
	over := svc.Calculate(models.MetricsInput{TotalOutputMl: 40001, MaxVoidMl: 400, Age: 30})
	if !over.TotalOutputFlag {
		t.Fatal("flag must raise above 40000 ml")
	}
}

func TestCalculateIsPure(t *testing.T) {
	t.Parallel()
	svc := NewMetricsService(40000)
	in := models.MetricsInput{TotalOutputMl: 1234, NocturnalOutputMl: 321, MaxVoidMl: 210, NightVoidCount: 3, Age: 44}

	first := svc.Calculate(in)
	for i := 0; i < 5; i++ {
		if got := svc.Calculate(in); got != first {
			t.Fatalf("calculation not deterministic: %+v vs %+v", got, first)
		}
	}
}
