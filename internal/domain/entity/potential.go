package entity

// PotentialInput are the parameters of a rooftop estimate.
type PotentialInput struct {
	Insolation float64 `json:"insolation"`
	PanelArea  float64 `json:"panelArea"`
	Efficiency float64 `json:"efficiency"`
}

// PotentialEstimate is derived per request and never stored. Savings are in thousands of
// rubles per year, CO2Reduction in tons per year.
type PotentialEstimate struct {
	Input        PotentialInput `json:"-"`
	Daily        float64        `json:"daily"`
	Monthly      float64        `json:"monthly"`
	Yearly       float64        `json:"yearly"`
	Savings      float64        `json:"savings"`
	CO2Reduction float64        `json:"co2_reduction"`
}
