package layer

import "solar-map/internal/domain/entity"

const (
	NationalZoom = 3
	CityZoom     = 10
	MinZoom      = 3
	MaxZoom      = 15

	DefaultRayCount        = 8
	DefaultRayLength       = 5.0
	DefaultHighlightRadius = 15000.0

	markerRadius = 8
	popupWidth   = 300

	statusSelected = "Выбранный город"
	statusRegular  = "Крупный город России"
)

// NationalCenter is the view center when no city is selected.
var NationalCenter = entity.NewLatLng(61.524, 105.3188)

// NationalBounds is the pan/zoom extent handed to the renderer.
var NationalBounds = entity.Bounds{South: 40, North: 82, West: 20, East: 190}

type namedTile struct {
	name string
	tile entity.TileLayer
}

var baseTiles = []namedTile{
	{"Карта России", entity.TileLayer{
		URL:         "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
		Attribution: "© OpenStreetMap contributors",
		Toggleable:  true,
	}},
	{"Топографическая", entity.TileLayer{
		URL:         "https://{s}.tile.opentopomap.org/{z}/{x}/{y}.png",
		Attribution: "OpenTopoMap",
		Toggleable:  true,
	}},
	{"Контурная", entity.TileLayer{
		URL:         "https://tiles.stadiamaps.com/tiles/stamen_toner_lite/{z}/{x}/{y}{r}.png",
		Attribution: "Stadia Maps",
		Toggleable:  true,
	}},
}

var countryOutline = entity.Polygon{
	Ring: []entity.LatLng{
		{41.0, 19.0}, {41.0, 190.0}, {82.0, 190.0}, {82.0, 19.0}, {41.0, 19.0},
	},
	Color:       "#1E3A8A",
	Weight:      3,
	FillColor:   "#3B82F6",
	FillOpacity: 0.15,
	Tooltip:     "🇷🇺 Российская Федерация",
}

var heatmapStyle = entity.Heatmap{
	Radius:     35,
	Blur:       25,
	MinOpacity: 0.4,
}

var miniMap = entity.MiniMap{
	Tile: entity.TileLayer{
		URL:         "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
		Attribution: "© OpenStreetMap contributors",
	},
	Position: "bottomright",
	Width:    150,
	Height:   150,
}

var controls = []entity.Control{
	{Type: entity.ControlFullscreen, Position: "topleft", Options: map[string]string{
		"title":        "Полноэкранный режим",
		"title_cancel": "Выйти из полноэкранного режима",
	}},
	{Type: entity.ControlMeasure, Position: "topleft", Options: map[string]string{
		"primary_length_unit":   "kilometers",
		"secondary_length_unit": "meters",
		"primary_area_unit":     "sqkilometers",
		"secondary_area_unit":   "hectares",
	}},
	{Type: entity.ControlLayers, Position: "topright", Options: map[string]string{
		"collapsed": "false",
	}},
}

const legendTitle = "Солнечный потенциал, кВт·ч/м² в день"
