package search

import (
	"errors"
	"reflect"
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

func TestResolve(t *testing.T) {
	r := defaultRegistry(t)

	tests := []struct {
		name        string
		query       string
		kind        MatchKind
		city        string
		suggestions []string
	}{
		{"lowercase exact", "москва", MatchExact, "Москва", nil},
		{"mixed case with spaces", "  сОчИ ", MatchExact, "Сочи", nil},
		{"exact name", "Тула", MatchExact, "Тула", nil},
		{"substring", "сан", MatchPartial, "Санкт-Петербург", nil},
		{"first substring in registry order", "ск", MatchPartial, "Москва", nil},
		{"substring in the middle", "ара", MatchPartial, "Самара", nil},
		{"no suggestions", "zzz", MatchNotFound, "", []string{}},
		{"suggestions from first three characters", "Новгородище", MatchNotFound, "",
			[]string{"Новосибирск", "Нижний Новгород", "Ульяновск", "Новокузнецк", "Иваново"}},
		{"case-insensitive suggestions", "ОРСКИЙ", MatchNotFound, "", []string{"Магнитогорск"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.query, r)
			if err != nil {
				t.Fatalf("Resolve(%q): %v", tt.query, err)
			}
			if got.Kind != tt.kind {
				t.Fatalf("kind = %s, want %s", got.Kind, tt.kind)
			}
			if got.City.Name != tt.city {
				t.Errorf("city = %q, want %q", got.City.Name, tt.city)
			}
			if tt.kind == MatchNotFound && !reflect.DeepEqual(got.Suggestions, tt.suggestions) {
				t.Errorf("suggestions = %v, want %v", got.Suggestions, tt.suggestions)
			}
			if got.Found() != (tt.kind != MatchNotFound) {
				t.Errorf("Found() = %v", got.Found())
			}
			if got.Query != strings.TrimSpace(tt.query) {
				t.Errorf("query = %q", got.Query)
			}
		})
	}
}

func TestResolveEmptyQuery(t *testing.T) {
	r := defaultRegistry(t)
	for _, q := range []string{"", "   ", "\t\n"} {
		if _, err := Resolve(q, r); !errors.Is(err, entity.ErrEmptyQuery) {
			t.Errorf("Resolve(%q) err = %v, want ErrEmptyQuery", q, err)
		}
	}
}

func TestSuggestionsAreCappedAndContainPrefix(t *testing.T) {
	var cities []entity.City
	for _, name := range []string{"Abcx", "Zabc", "Nope", "ABCd", "xxABC", "abc-1", "abc-2", "abc-3"} {
		cities = append(cities, entity.City{Name: name, Coordinates: entity.NewLatLng(50, 50)})
	}
	r, err := registry.NewCityRegistry(cities)
	if err != nil {
		t.Fatal(err)
	}

	got, err := Resolve("abczzz", r)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Abcx", "Zabc", "ABCd", "xxABC", "abc-1"}
	if !reflect.DeepEqual(got.Suggestions, want) {
		t.Errorf("suggestions = %v, want %v", got.Suggestions, want)
	}
	if len(got.Suggestions) > MaxSuggestions {
		t.Errorf("more than %d suggestions", MaxSuggestions)
	}
	for _, s := range got.Suggestions {
		if !strings.Contains(strings.ToLower(s), "abc") {
			t.Errorf("suggestion %q lacks the query prefix", s)
		}
	}
}

func TestFirstRunes(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"москва", 3, "мос"},
		{"мо", 3, "мо"},
		{"abc", 3, "abc"},
		{"", 3, ""},
	}
	for _, tt := range tests {
		if got := firstRunes(tt.in, tt.n); got != tt.want {
			t.Errorf("firstRunes(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
