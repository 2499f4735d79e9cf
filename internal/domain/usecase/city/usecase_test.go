package city

import (
	"errors"
	"reflect"
	"testing"

	"solar-map/internal/domain/entity"
	"solar-map/internal/domain/gateway/registry"
	"solar-map/internal/domain/service/search"
)

func newUseCase(t *testing.T, cities []entity.City) UseCase {
	t.Helper()
	r, err := registry.NewCityRegistry(cities)
	if err != nil {
		t.Fatal(err)
	}
	return NewCityUseCase(r)
}

func TestListCities(t *testing.T) {
	uc := newUseCase(t, registry.DefaultCities())

	names := uc.ListCities()
	if len(names) != 49 || names[0] != "Москва" || names[len(names)-1] != "Мурманск" {
		t.Errorf("unexpected registry order: %v", names)
	}

	sorted := uc.ListCitiesAlphabetically()
	if sorted[0] != "Архангельск" || sorted[1] != "Астрахань" || sorted[len(sorted)-1] != "Ярославль" {
		t.Errorf("unexpected alphabetical order: %v", sorted)
	}

	if again := uc.ListCities(); again[0] != "Москва" {
		t.Error("sorting leaked into registry order")
	}
}

func TestSortNamesUsesRussianCollation(t *testing.T) {
	got := SortNames([]string{"Ёлки", "Ялта", "Ейск", "Жуковский", "Абакан"})
	want := []string{"Абакан", "Ейск", "Ёлки", "Жуковский", "Ялта"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFindCity(t *testing.T) {
	uc := newUseCase(t, registry.DefaultCities())

	c, err := uc.FindCity("Казань")
	if err != nil || c.Name != "Казань" {
		t.Fatalf("FindCity = %+v, %v", c, err)
	}

	if _, err := uc.FindCity("казань"); !errors.Is(err, entity.ErrCityNotFound) {
		t.Errorf("lowercase lookup err = %v, want ErrCityNotFound", err)
	}
}

func TestSolarData(t *testing.T) {
	uc := newUseCase(t, registry.DefaultCities())

	report, err := uc.SolarData("Сочи", 10, 0.18)
	if err != nil {
		t.Fatal(err)
	}
	if report.Potential.Daily != 6.3 || report.Potential.Yearly != 2299.5 {
		t.Errorf("potential = %+v", report.Potential)
	}
	if report.Tier != entity.TierHigh || report.Zone != "Высокий потенциал" || report.Insolation != 3.5 {
		t.Errorf("report = %+v", report)
	}

	if _, err := uc.SolarData("Сочи", 0, 0.18); !errors.Is(err, entity.ErrInvalidParameter) {
		t.Errorf("zero area err = %v", err)
	}
	if _, err := uc.SolarData("Атлантида", 10, 0.18); !errors.Is(err, entity.ErrCityNotFound) {
		t.Errorf("unknown city err = %v", err)
	}
}

func TestSolarDataWithoutInsolation(t *testing.T) {
	uc := newUseCase(t, []entity.City{{Name: "Тверь", Coordinates: entity.NewLatLng(56.8587, 35.9176)}})

	if _, err := uc.SolarData("Тверь", 10, 0.18); !errors.Is(err, entity.ErrNoSolarData) {
		t.Errorf("err = %v, want ErrNoSolarData", err)
	}
}

func TestSearch(t *testing.T) {
	uc := newUseCase(t, registry.DefaultCities())

	result, err := uc.Search("москва")
	if err != nil || result.Kind != search.MatchExact || result.City.Name != "Москва" {
		t.Errorf("Search = %+v, %v", result, err)
	}

	if _, err := uc.Search(" "); !errors.Is(err, entity.ErrEmptyQuery) {
		t.Errorf("blank search err = %v", err)
	}
}
