package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"solar-map/internal/domain/entity"
	"solar-map/internal/domain/gateway/registry"
)

func defaultRegistry(t *testing.T) registry.CityRegistry {
	t.Helper()
	r, err := registry.NewCityRegistry(registry.DefaultCities())
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestPrintCities(t *testing.T) {
	var buf bytes.Buffer
	if err := printCities(&buf, defaultRegistry(t), true); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if !strings.HasPrefix(lines[1], "Архангельск") {
		t.Errorf("first row = %q", lines[1])
	}
	if !strings.Contains(buf.String(), "Total: 49") {
		t.Errorf("missing total:\n%s", buf.String())
	}
}

func TestPrintEstimate(t *testing.T) {
	var buf bytes.Buffer
	if err := printEstimate(&buf, defaultRegistry(t), "Сочи", 10, 0.18); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"daily:   6.30 kWh", "yearly:  2299.50 kWh", "savings: 12.65"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output lacks %q:\n%s", want, buf.String())
		}
	}

	if err := printEstimate(&buf, defaultRegistry(t), "Сочи", -1, 0.18); !errors.Is(err, entity.ErrInvalidParameter) {
		t.Errorf("err = %v", err)
	}
}

func TestRunValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cities.yml")
	content := `
cities:
  - name: Тверь
    coordinates: [56.8587, 35.9176]
    color: "#FFD700"
    icon: star
  - name: Сочи
    coordinates: [43.5855, 39.7231]
    color: "#98FB98"
    icon: star
    insolation: 3.5
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := runValidate(&buf, path); err != nil {
		t.Fatalf("runValidate: %v\n%s", err, buf.String())
	}
	if !strings.Contains(buf.String(), "VALID (2 cities, 1 without insolation)") {
		t.Errorf("output:\n%s", buf.String())
	}

	if err := runValidate(&buf, filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("expected error for missing file")
	}
}
