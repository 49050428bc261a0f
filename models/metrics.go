package models

// MetricsInput carries the diary aggregates plus the patient's age.
type MetricsInput struct {
	TotalOutputMl     float64 `json:"total_output_ml"`
	NocturnalOutputMl float64 `json:"nocturnal_output_ml"`
	MaxVoidMl         float64 `json:"max_void_ml"`
	NightVoidCount    int     `json:"night_void_count"`
	Age               int     `json:"age"`
}

// MetricsResult is the screening outcome of one calculation. Produced
// fresh per call; nothing is persisted.
type MetricsResult struct {
	TotalOutputFlag               bool    `json:"total_output_flag"`
	NocturnalPolyuriaIndex        float64 `json:"npi"`
	NocturnalPolyuriaFlag         bool    `json:"nocturnal_polyuria_flag"`
	DiminishedBladderCapacityFlag bool    `json:"diminished_bladder_capacity_flag"`
	NocturnalIndex                float64 `json:"ni"`
	PredictedNocturnalVoids       float64 `json:"pnv"`
	NocturnalBladderCapacityIndex float64 `json:"nbci"`
}
