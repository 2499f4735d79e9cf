package layer

import (
	"fmt"
	"maps"
	"math"
	"net/url"

	"solar-map/internal/domain/entity"
	"solar-map/internal/domain/gateway/registry"
	"solar-map/internal/domain/service/solar"
)

// Options tune a Composer. Zero values fall back to the defaults.
type Options struct {
	// Solar enables heatmap, zone polygons, legend and tier-colored markers
	Solar           bool
	RayCount        int
	RayLength       float64
	HighlightRadius float64
}

func (o Options) withDefaults() Options {
	if o.RayCount <= 0 {
		o.RayCount = DefaultRayCount
	}
	if o.RayLength <= 0 {
		o.RayLength = DefaultRayLength
	}
	if o.HighlightRadius <= 0 {
		o.HighlightRadius = DefaultHighlightRadius
	}
	return o
}

// Composer turns registry and zone data into an ordered layer list. It holds no mutable
// state and is safe for concurrent use.
type Composer struct {
	cities registry.CityRegistry
	zones  []entity.SolarZone
	opts   Options
}

func NewComposer(cities registry.CityRegistry, zones []entity.SolarZone, opts Options) *Composer {
	return &Composer{
		cities: cities,
		zones:  zones,
		opts:   opts.withDefaults(),
	}
}

// Solar reports whether the composer emits the solar layers.
func (c *Composer) Solar() bool {
	return c.opts.Solar
}

// Compose builds the map for the selected city name, or the national view when selected is
// empty. The name must exist in the registry.
//
// Layer order: base tiles, country outline, zone polygons, heatmap, city markers, highlight
// circle, rays, legend, minimap, controls.
func (c *Composer) Compose(selected string) (entity.Map, error) {
	var (
		city        entity.City
		hasSelected bool
	)
	if selected != "" {
		var ok bool
		if city, ok = c.cities.Lookup(selected); !ok {
			return entity.Map{}, fmt.Errorf("%w: %s", entity.ErrCityNotFound, selected)
		}
		hasSelected = true
	}

	out := entity.Map{View: c.view(city, hasSelected)}
	if hasSelected {
		out.Selected = city.Name
	}

	for _, t := range baseTiles {
		tile := t.tile
		out.Layers = append(out.Layers, entity.Layer{Kind: entity.LayerBaseTile, Name: t.name, Tile: &tile})
	}

	outline := countryOutline
	outline.Ring = append([]entity.LatLng(nil), countryOutline.Ring...)
	out.Layers = append(out.Layers, entity.Layer{Kind: entity.LayerCountryOutline, Name: "Граница", Polygon: &outline})

	all := c.cities.All()

	if c.opts.Solar {
		out.Layers = append(out.Layers, c.zoneLayers()...)
		out.Layers = append(out.Layers, heatmapLayer(all))
	}

	for _, ct := range all {
		marker, err := c.marker(ct, hasSelected && ct.Name == city.Name)
		if err != nil {
			return entity.Map{}, err
		}
		out.Layers = append(out.Layers, entity.Layer{Kind: entity.LayerCityMarker, Name: ct.Name, Marker: &marker})
	}

	if hasSelected {
		out.Layers = append(out.Layers, c.highlight(city), c.rays(city))
	}

	if c.opts.Solar {
		var stats *entity.CityStats
		if hasSelected && city.HasInsolation() {
			s, err := cityStats(city)
			if err != nil {
				return entity.Map{}, err
			}
			stats = &s
			out.Stats = stats
		}
		out.Layers = append(out.Layers, c.legend(stats))
	}

	mini := miniMap
	out.Layers = append(out.Layers, entity.Layer{Kind: entity.LayerMiniMap, Name: "Мини-карта", MiniMap: &mini})

	for _, ctl := range controls {
		ctl.Options = maps.Clone(ctl.Options)
		out.Layers = append(out.Layers, entity.Layer{Kind: entity.LayerControl, Name: string(ctl.Type), Control: &ctl})
	}

	return out, nil
}

func (c *Composer) view(city entity.City, selected bool) entity.ViewState {
	v := entity.ViewState{
		Center:  NationalCenter,
		Zoom:    NationalZoom,
		MinZoom: MinZoom,
		MaxZoom: MaxZoom,
		Bounds:  NationalBounds,
	}
	if selected {
		v.Center = city.Coordinates
		v.Zoom = CityZoom
	}
	return v
}

// zoneLayers emits one polygon per zone; each style is copied by value from the table.
func (c *Composer) zoneLayers() []entity.Layer {
	layers := make([]entity.Layer, 0, len(c.zones))
	for _, z := range c.zones {
		polygon := entity.Polygon{
			Ring:        append([]entity.LatLng(nil), z.Bounds...),
			Color:       z.Style.Color,
			Weight:      z.Style.Weight,
			FillColor:   z.Style.FillColor,
			FillOpacity: z.Style.FillOpacity,
			Tooltip:     fmt.Sprintf("%s (%.1f–%.1f)", z.Name, z.Min, z.Max),
			Zone:        z.Tier,
		}
		layers = append(layers, entity.Layer{Kind: entity.LayerZonePolygon, Name: z.Name, Polygon: &polygon})
	}
	return layers
}

func heatmapLayer(cities []entity.City) entity.Layer {
	heat := heatmapStyle
	heat.Points = make([]entity.HeatPoint, 0, len(cities))
	for _, ct := range cities {
		if !ct.HasInsolation() {
			continue
		}
		heat.Points = append(heat.Points, entity.HeatPoint{
			Lat:    ct.Coordinates.Lat(),
			Lng:    ct.Coordinates.Lon(),
			Weight: ct.InsolationValue(),
			City:   ct.Name,
		})
	}
	return entity.Layer{Kind: entity.LayerHeatmap, Name: "Тепловая карта инсоляции", Heatmap: &heat}
}

func (c *Composer) marker(city entity.City, selected bool) (entity.Marker, error) {
	popup := entity.Popup{
		Title:     city.Name,
		Latitude:  city.Coordinates.Lat(),
		Longitude: city.Coordinates.Lon(),
		Status:    statusRegular,
		Link:      "/?city=" + url.QueryEscape(city.Name),
		MaxWidth:  popupWidth,
	}

	color := city.Color
	if c.opts.Solar && city.HasInsolation() {
		insolation := city.InsolationValue()
		estimate, err := solar.DefaultEstimate(insolation)
		if err != nil {
			return entity.Marker{}, fmt.Errorf("estimate %s: %w", city.Name, err)
		}
		popup.Insolation = entity.Insolation(insolation)
		popup.Tier = solar.Classify(insolation)
		popup.Potential = &estimate
		color = solar.MarkerColor(insolation)
	}

	if selected {
		popup.Status = statusSelected
		return entity.Marker{
			City:        city.Name,
			Position:    city.Coordinates,
			Highlighted: true,
			Icon:        "star",
			IconColor:   "white",
			Color:       "red",
			FillOpacity: 1,
			Weight:      2,
			Tooltip:     fmt.Sprintf("★ %s ★ (выбран)", city.Name),
			Popup:       popup,
		}, nil
	}

	return entity.Marker{
		City:        city.Name,
		Position:    city.Coordinates,
		Radius:      markerRadius,
		Color:       color,
		FillOpacity: 0.8,
		Weight:      2,
		Tooltip:     city.Name,
		Clustered:   true,
		Popup:       popup,
	}, nil
}

func (c *Composer) highlight(city entity.City) entity.Layer {
	return entity.Layer{
		Kind: entity.LayerCityHighlight,
		Name: city.Name,
		Circle: &entity.Circle{
			City:        city.Name,
			Center:      city.Coordinates,
			Radius:      c.opts.HighlightRadius,
			Color:       city.Color,
			FillOpacity: 0.2,
			Weight:      3,
		},
	}
}

// rays fans RayCount segments at equal angles. Offsets are in degrees and purely cosmetic.
func (c *Composer) rays(city entity.City) entity.Layer {
	step := 360.0 / float64(c.opts.RayCount)
	segments := make([][2]entity.LatLng, 0, c.opts.RayCount)
	for i := 0; i < c.opts.RayCount; i++ {
		rad := float64(i) * step * math.Pi / 180
		end := entity.NewLatLng(
			city.Coordinates.Lat()+math.Sin(rad)*c.opts.RayLength,
			city.Coordinates.Lon()+math.Cos(rad)*c.opts.RayLength,
		)
		segments = append(segments, [2]entity.LatLng{city.Coordinates, end})
	}

	return entity.Layer{
		Kind: entity.LayerRays,
		Name: city.Name,
		Rays: &entity.RaySet{
			City:      city.Name,
			Origin:    city.Coordinates,
			Segments:  segments,
			Color:     city.Color,
			Weight:    1,
			Opacity:   0.5,
			DashArray: "5, 10",
		},
	}
}

func (c *Composer) legend(stats *entity.CityStats) entity.Layer {
	legend := entity.Legend{
		Title:    legendTitle,
		Position: "bottomleft",
		Entries:  make([]entity.LegendEntry, 0, len(c.zones)),
		Stats:    stats,
	}
	for _, z := range c.zones {
		legend.Entries = append(legend.Entries, entity.LegendEntry{
			Label: z.Name,
			Color: z.Color,
			Tier:  z.Tier,
			Min:   z.Min,
			Max:   z.Max,
		})
	}
	return entity.Layer{Kind: entity.LayerLegend, Name: "Легенда", Legend: &legend}
}

func cityStats(city entity.City) (entity.CityStats, error) {
	estimate, err := solar.DefaultEstimate(city.InsolationValue())
	if err != nil {
		return entity.CityStats{}, fmt.Errorf("estimate %s: %w", city.Name, err)
	}
	return entity.CityStats{
		City:       city.Name,
		Insolation: city.InsolationValue(),
		Tier:       solar.Classify(city.InsolationValue()),
		Potential:  estimate,
	}, nil
}
