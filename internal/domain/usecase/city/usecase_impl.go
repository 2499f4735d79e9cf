package city

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"solar-map/internal/domain/entity"
	"solar-map/internal/domain/gateway/registry"
	"solar-map/internal/domain/model"
	"solar-map/internal/domain/service/search"
	"solar-map/internal/domain/service/solar"
	"solar-map/pkg/log"
	"solar-map/pkg/metrics"
)

type cityUseCase struct {
	registry registry.CityRegistry
}

func NewCityUseCase(cities registry.CityRegistry) UseCase {
	return &cityUseCase{registry: cities}
}

func (uc *cityUseCase) ListCities() []string {
	all := uc.registry.All()
	names := make([]string, len(all))
	for i, c := range all {
		names[i] = c.Name
	}
	return names
}

func (uc *cityUseCase) ListCitiesAlphabetically() []string {
	return SortNames(uc.ListCities())
}

// SortNames sorts names in place with Russian collation and returns them. A collator is not
// safe for concurrent use, so one is built per call.
func SortNames(names []string) []string {
	col := collate.New(language.Russian)
	sort.SliceStable(names, func(i, j int) bool {
		return col.CompareString(names[i], names[j]) < 0
	})
	return names
}

func (uc *cityUseCase) FindCity(name string) (entity.City, error) {
	c, ok := uc.registry.Lookup(name)
	if !ok {
		return entity.City{}, fmt.Errorf("%w: %s", entity.ErrCityNotFound, name)
	}
	return c, nil
}

func (uc *cityUseCase) SolarData(name string, panelArea, efficiency float64) (model.SolarReport, error) {
	c, err := uc.FindCity(name)
	if err != nil {
		return model.SolarReport{}, err
	}
	if !c.HasInsolation() {
		return model.SolarReport{}, fmt.Errorf("%w: %s", entity.ErrNoSolarData, name)
	}

	insolation := c.InsolationValue()
	estimate, err := solar.Estimate(insolation, panelArea, efficiency)
	if err != nil {
		return model.SolarReport{}, err
	}

	report := model.SolarReport{
		City:       c,
		Insolation: insolation,
		Tier:       solar.Classify(insolation),
		PanelArea:  panelArea,
		Efficiency: efficiency,
		Potential:  estimate,
	}
	if z, ok := registry.ZoneFor(insolation); ok {
		report.Zone = z.Name
	}
	return report, nil
}

func (uc *cityUseCase) Search(query string) (search.MatchResult, error) {
	result, err := search.Resolve(query, uc.registry)
	if err != nil {
		metrics.SearchResolutions.WithLabelValues("empty").Inc()
		return result, err
	}

	metrics.SearchResolutions.WithLabelValues(string(result.Kind)).Inc()
	log.Debug("city search resolved",
		zap.String("query", result.Query),
		zap.String("match", string(result.Kind)),
		zap.String("city", result.City.Name),
		zap.Int("suggestions", len(result.Suggestions)),
	)
	return result, nil
}
