package solar

import (
	"fmt"

	"solar-map/internal/domain/entity"
	"solar-map/pkg/util/numberutils"
)

const (
	DefaultPanelArea  = 10.0
	DefaultEfficiency = 0.18

	daysPerMonth = 30
	daysPerYear  = 365
	// rubles per kWh, savings are reported in thousands
	tariff = 5.5
	// kg of CO2 avoided per kWh, reduction is reported in tons
	co2PerKWh = 0.4
)

// Estimate converts insolation (kWh/m²/day) and panel parameters into energy, savings and CO2
// figures. Every output is rounded to two decimals; monthly and yearly values are derived
// from the unrounded daily energy.
func Estimate(insolation, panelArea, efficiency float64) (entity.PotentialEstimate, error) {
	if err := validate(insolation, panelArea, efficiency); err != nil {
		return entity.PotentialEstimate{}, err
	}

	daily := insolation * panelArea * efficiency
	yearly := daily * daysPerYear

	return entity.PotentialEstimate{
		Input: entity.PotentialInput{
			Insolation: insolation,
			PanelArea:  panelArea,
			Efficiency: efficiency,
		},
		Daily:        numberutils.Round(daily, 2),
		Monthly:      numberutils.Round(daily*daysPerMonth, 2),
		Yearly:       numberutils.Round(yearly, 2),
		Savings:      numberutils.Round(yearly*tariff/1000, 2),
		CO2Reduction: numberutils.Round(yearly*co2PerKWh/1000, 2),
	}, nil
}

// DefaultEstimate is Estimate with a 10 m² panel at 18% efficiency.
func DefaultEstimate(insolation float64) (entity.PotentialEstimate, error) {
	return Estimate(insolation, DefaultPanelArea, DefaultEfficiency)
}

func validate(insolation, panelArea, efficiency float64) error {
	switch {
	case !numberutils.IsFinite(insolation) || insolation < 0:
		return fmt.Errorf("%w: insolation must be a non-negative number, got %v", entity.ErrInvalidParameter, insolation)
	case !numberutils.IsFinite(panelArea) || panelArea <= 0:
		return fmt.Errorf("%w: panel area must be positive, got %v", entity.ErrInvalidParameter, panelArea)
	case !numberutils.IsFinite(efficiency) || efficiency <= 0 || efficiency > 1:
		return fmt.Errorf("%w: efficiency must be in (0, 1], got %v", entity.ErrInvalidParameter, efficiency)
	}
	return nil
}
