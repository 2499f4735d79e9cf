package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"

	"github.com/labstack/echo/v4"

	"solar-map/internal/domain/gateway/cache"
	"solar-map/internal/domain/gateway/registry"
	"solar-map/internal/domain/model"
	"solar-map/internal/domain/service/layer"
	"solar-map/internal/domain/usecase/city"
	"solar-map/internal/domain/usecase/health"
	"solar-map/internal/domain/usecase/mapview"
	"solar-map/pkg/msg"
)

func TestMain(m *testing.M) {
	if err := msg.Init("../../../configs/messages.yml"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newServer(t *testing.T) *echo.Echo {
	t.Helper()
	r, err := registry.NewCityRegistry(registry.DefaultCities())
	if err != nil {
		t.Fatal(err)
	}
	composer := layer.NewComposer(r, registry.SolarZones(), layer.Options{Solar: true})
	mapCache := cache.NewNoopMapCache()

	e := echo.New()
	api := e.Group("")
	NewCityController(api, city.NewCityUseCase(r)).InitCityRoutes()
	NewMapController(api, mapview.NewMapViewUseCase(r, composer, mapCache)).InitMapRoutes()
	NewHealthController(api, health.NewHealthUseCase(r, mapCache)).InitHealthRoutes()
	return e
}

func get(t *testing.T, e *echo.Echo, target string, out any) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if out != nil {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("GET %s: decode %q: %v", target, rec.Body.String(), err)
		}
	}
	return rec.Code
}

func TestCitiesRoundTrip(t *testing.T) {
	e := newServer(t)

	var list model.CitiesResponse
	if code := get(t, e, "/api/cities", &list); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if !list.Success || list.Count != 49 || len(list.Cities) != 49 || list.Cities[0] != "Москва" {
		t.Fatalf("list = %+v", list)
	}

	for _, name := range list.Cities {
		var c model.CityResponse
		if code := get(t, e, "/api/city/"+url.PathEscape(name), &c); code != http.StatusOK {
			t.Errorf("%s: status = %d", name, code)
			continue
		}
		if c.City != name || !c.Coordinates.Valid() {
			t.Errorf("%s: got %+v", name, c)
		}
	}
}

func TestFindCityNotFound(t *testing.T) {
	e := newServer(t)

	var body model.ErrorResponse
	code := get(t, e, "/api/city/"+url.PathEscape("Атлантида"), &body)
	if code != http.StatusNotFound || body.Success || body.Error != "Город Атлантида не найден" {
		t.Errorf("%d %+v", code, body)
	}
}

func TestSolarData(t *testing.T) {
	e := newServer(t)
	sochi := url.PathEscape("Сочи")

	tests := []struct {
		name   string
		target string
		status int
		daily  float64
	}{
		{"defaults", "/api/solar-data/" + sochi, http.StatusOK, 6.3},
		{"custom area", "/api/solar-data/" + sochi + "?area=20", http.StatusOK, 12.6},
		{"custom efficiency", "/api/solar-data/" + sochi + "?area=10&efficiency=0.2", http.StatusOK, 7},
		{"zero area", "/api/solar-data/" + sochi + "?area=0", http.StatusBadRequest, 0},
		{"unparseable area", "/api/solar-data/" + sochi + "?area=ten", http.StatusBadRequest, 0},
		{"efficiency above one", "/api/solar-data/" + sochi + "?efficiency=1.5", http.StatusBadRequest, 0},
		{"unknown city", "/api/solar-data/" + url.PathEscape("Атлантида"), http.StatusNotFound, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body model.SolarDataResponse
			code := get(t, e, tt.target, &body)
			if code != tt.status {
				t.Fatalf("status = %d, want %d", code, tt.status)
			}
			if code == http.StatusOK && body.Potential.Daily != tt.daily {
				t.Errorf("daily = %v, want %v", body.Potential.Daily, tt.daily)
			}
		})
	}

	var body model.SolarDataResponse
	get(t, e, "/api/solar-data/"+sochi, &body)
	if body.Potential.Yearly != 2299.5 || body.Potential.Savings != 12.65 || body.Potential.CO2Reduction != 0.92 {
		t.Errorf("potential = %+v", body.Potential)
	}
	if body.Insolation != 3.5 || body.Zone == "" {
		t.Errorf("body = %+v", body)
	}
}

func TestSearch(t *testing.T) {
	e := newServer(t)

	tests := []struct {
		query  string
		status int
		match  string
		city   string
	}{
		{"москва", http.StatusOK, "exact", "Москва"},
		{"сан", http.StatusOK, "partial", "Санкт-Петербург"},
		{"zzz", http.StatusOK, "not_found", ""},
		{"", http.StatusBadRequest, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var body model.SearchResponse
			code := get(t, e, "/api/search?q="+url.QueryEscape(tt.query), &body)
			if code != tt.status || body.Match != tt.match || body.City != tt.city {
				t.Errorf("%d %+v", code, body)
			}
			if code == http.StatusOK && body.Suggestions == nil {
				t.Error("suggestions must be an array")
			}
		})
	}
}

func TestRenderMap(t *testing.T) {
	e := newServer(t)

	for _, target := range []string{"/?city=" + url.QueryEscape("Сочи"), "/api/map?city=" + url.QueryEscape("сочи")} {
		var body model.MapResponse
		if code := get(t, e, target, &body); code != http.StatusOK {
			t.Fatalf("%s: status = %d", target, code)
		}
		if body.Selected != "Сочи" || body.Stats == nil || body.Stats.Potential.Daily != 6.3 {
			t.Errorf("%s: selected %q stats %+v", target, body.Selected, body.Stats)
		}
		if len(body.Layers) == 0 || body.Count != 49 {
			t.Errorf("%s: %d layers, %d cities", target, len(body.Layers), body.Count)
		}
	}

	var national model.MapResponse
	get(t, e, "/api/map?city="+url.QueryEscape("Атлантида"), &national)
	if national.Selected != "" || national.Match != "not_found" || national.View.Zoom != layer.NationalZoom {
		t.Errorf("national = %+v", national.View)
	}
}

func TestHealthAndMetrics(t *testing.T) {
	e := newServer(t)

	var h model.HealthResponse
	if code := get(t, e, "/health", &h); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if h.Status != model.StatusUp || h.Cache.Status != model.StatusDisabled {
		t.Errorf("health = %+v", h)
	}

	if code := get(t, e, "/metrics", nil); code != http.StatusOK {
		t.Errorf("metrics status = %d", code)
	}
}
