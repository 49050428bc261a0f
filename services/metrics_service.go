package services

import "github.com/Lappanawat/flowmind-ranocturia/models"

type MetricsService struct {
	totalOutputLimitMl float64
}

func NewMetricsService(totalOutputLimitMl float64) *MetricsService {
	return &MetricsService{totalOutputLimitMl: totalOutputLimitMl}
}

// Calculate computes the frequency-volume-chart indices. Pure: identical
// input always yields an identical result.
func (s *MetricsService) Calculate(in models.MetricsInput) models.MetricsResult {
	var res models.MetricsResult

	res.TotalOutputFlag = in.TotalOutputMl > s.totalOutputLimitMl

	if in.TotalOutputMl > 0 {
		res.NocturnalPolyuriaIndex = in.NocturnalOutputMl / in.TotalOutputMl * 100
	}
	// NPI threshold is 20% for ages 40-65 inclusive, 33% for everyone else.
	if in.Age >= 40 && in.Age <= 65 {
		res.NocturnalPolyuriaFlag = res.NocturnalPolyuriaIndex > 20
	} else {
		res.NocturnalPolyuriaFlag = res.NocturnalPolyuriaIndex > 33
	}

	res.DiminishedBladderCapacityFlag = in.MaxVoidMl < 200

	if in.MaxVoidMl > 0 {
		res.NocturnalIndex = in.NocturnalOutputMl / in.MaxVoidMl
	}
	if res.NocturnalIndex > 1 {
		res.PredictedNocturnalVoids = res.NocturnalIndex - 1
	}

	// NBCI is deliberately left unclamped and may go negative.
	res.NocturnalBladderCapacityIndex = float64(in.NightVoidCount) - res.PredictedNocturnalVoids

	return res
}
