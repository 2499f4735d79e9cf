package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"solar-map/internal/domain/gateway/registry"
	"solar-map/internal/domain/service/solar"
	"solar-map/internal/domain/usecase/city"
)

func runCities(w io.Writer, alphabetical bool) error {
	cityRegistry, err := loadRegistry()
	if err != nil {
		return err
	}
	return printCities(w, cityRegistry, alphabetical)
}

func printCities(w io.Writer, cities registry.CityRegistry, alphabetical bool) error {
	uc := city.NewCityUseCase(cities)
	names := uc.ListCities()
	if alphabetical {
		names = uc.ListCitiesAlphabetically()
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CITY\tLAT\tLON\tINSOLATION\tTIER")
	for _, name := range names {
		c, _ := cities.Lookup(name)
		insolation, tier := "-", "-"
		if c.HasInsolation() {
			insolation = fmt.Sprintf("%.1f", c.InsolationValue())
			tier = string(solar.Classify(c.InsolationValue()))
		}
		fmt.Fprintf(tw, "%s\t%.4f\t%.4f\t%s\t%s\n", c.Name, c.Coordinates.Lat(), c.Coordinates.Lon(), insolation, tier)
	}
	fmt.Fprintf(tw, "\nTotal: %d\n", len(names))
	return tw.Flush()
}

func runEstimate(w io.Writer, name string, area, efficiency float64) error {
	cityRegistry, err := loadRegistry()
	if err != nil {
		return err
	}
	return printEstimate(w, cityRegistry, name, area, efficiency)
}

func printEstimate(w io.Writer, cities registry.CityRegistry, name string, area, efficiency float64) error {
	report, err := city.NewCityUseCase(cities).SolarData(name, area, efficiency)
	if err != nil {
		return err
	}

	p := report.Potential
	fmt.Fprintf(w, "%s: %.1f kWh/m²/day (%s)", report.City.Name, report.Insolation, report.Tier)
	if report.Zone != "" {
		fmt.Fprintf(w, ", %s", report.Zone)
	}
	fmt.Fprintf(w, "\nPanels: %.1f m² at %.0f%%\n", area, efficiency*100)
	fmt.Fprintf(w, "  daily:   %.2f kWh\n", p.Daily)
	fmt.Fprintf(w, "  monthly: %.2f kWh\n", p.Monthly)
	fmt.Fprintf(w, "  yearly:  %.2f kWh\n", p.Yearly)
	fmt.Fprintf(w, "  savings: %.2f thousand rubles/year\n", p.Savings)
	fmt.Fprintf(w, "  CO2:     %.2f t/year\n", p.CO2Reduction)
	return nil
}

func runValidate(w io.Writer, path string) error {
	cities, err := registry.LoadCities(path)
	if err != nil {
		fmt.Fprintf(w, "Result: INVALID (%v)\n", err)
		return err
	}
	r, err := registry.NewCityRegistry(cities)
	if err != nil {
		fmt.Fprintf(w, "Result: INVALID (%v)\n", err)
		return err
	}

	missing := 0
	for _, c := range r.All() {
		if !c.HasInsolation() {
			fmt.Fprintf(w, "  [warning] %s has no insolation, it is left out of the heatmap\n", c.Name)
			missing++
		}
	}
	fmt.Fprintf(w, "Result: VALID (%d cities, %d without insolation)\n", r.Len(), missing)
	return nil
}
