package registry

import (
	"fmt"

	"github.com/spf13/viper"

	"solar-map/internal/domain/entity"
)

type catalogFile struct {
	Cities []entity.City `mapstructure:"cities"`
}

// LoadCities reads a city catalog from a YAML file shaped like
//
//	cities:
//	  - name: Сочи
//	    coordinates: [43.5855, 39.7231]
//	    color: "#98FB98"
//	    icon: umbrella
//	    insolation: 3.5
func LoadCities(path string) ([]entity.City, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read city catalog %s: %w", path, err)
	}

	var catalog catalogFile
	if err := v.Unmarshal(&catalog); err != nil {
		return nil, fmt.Errorf("decode city catalog %s: %w", path, err)
	}
	if len(catalog.Cities) == 0 {
		return nil, fmt.Errorf("%w: catalog %s has no cities", entity.ErrInvalidCity, path)
	}
	return catalog.Cities, nil
}

// NewRegistryFromSource builds the registry from a catalog file, or from the built-in catalog
// when path is empty.
func NewRegistryFromSource(path string) (CityRegistry, error) {
	if path == "" {
		return NewCityRegistry(DefaultCities())
	}
	cities, err := LoadCities(path)
	if err != nil {
		return nil, err
	}
	return NewCityRegistry(cities)
}
