package entity

// LayerKind discriminates the payload carried by a Layer.
type LayerKind string

const (
	LayerBaseTile       LayerKind = "base_tile"
	LayerCountryOutline LayerKind = "country_outline"
	LayerZonePolygon    LayerKind = "zone_polygon"
	LayerHeatmap        LayerKind = "heatmap"
	LayerCityMarker     LayerKind = "city_marker"
	LayerCityHighlight  LayerKind = "city_highlight"
	LayerRays           LayerKind = "directional_rays"
	LayerLegend         LayerKind = "legend"
	LayerMiniMap        LayerKind = "minimap"
	LayerControl        LayerKind = "control"
)

// Layer is one drawing instruction for the map renderer. Exactly one payload field is set,
// matching Kind. Layers are drawn in slice order.
type Layer struct {
	Kind    LayerKind  `json:"kind"`
	Name    string     `json:"name,omitempty"`
	Tile    *TileLayer `json:"tile,omitempty"`
	Polygon *Polygon   `json:"polygon,omitempty"`
	Heatmap *Heatmap   `json:"heatmap,omitempty"`
	Marker  *Marker    `json:"marker,omitempty"`
	Circle  *Circle    `json:"circle,omitempty"`
	Rays    *RaySet    `json:"rays,omitempty"`
	Legend  *Legend    `json:"legend,omitempty"`
	MiniMap *MiniMap   `json:"minimap,omitempty"`
	Control *Control   `json:"control,omitempty"`
}

type TileLayer struct {
	URL         string `json:"url"`
	Attribution string `json:"attribution"`
	Overlay     bool   `json:"overlay"`
	Toggleable  bool   `json:"toggleable"`
}

type Polygon struct {
	Ring        []LatLng `json:"ring"`
	Color       string   `json:"color"`
	Weight      int      `json:"weight"`
	FillColor   string   `json:"fillColor"`
	FillOpacity float64  `json:"fillOpacity"`
	Tooltip     string   `json:"tooltip,omitempty"`
	// Zone is set when the polygon belongs to a solar zone.
	Zone Tier `json:"zone,omitempty"`
}

type HeatPoint struct {
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Weight float64 `json:"weight"`
	City   string  `json:"city"`
}

type Heatmap struct {
	Points     []HeatPoint `json:"points"`
	Radius     int         `json:"radius"`
	Blur       int         `json:"blur"`
	MinOpacity float64     `json:"minOpacity"`
}

// Popup is structured popup content; turning it into markup is the renderer's job.
type Popup struct {
	Title      string             `json:"title"`
	Latitude   float64            `json:"latitude"`
	Longitude  float64            `json:"longitude"`
	Status     string             `json:"status"`
	Link       string             `json:"link"`
	Insolation *float64           `json:"insolation,omitempty"`
	Tier       Tier               `json:"tier,omitempty"`
	Potential  *PotentialEstimate `json:"potential,omitempty"`
	MaxWidth   int                `json:"maxWidth"`
}

// Marker is a city pin. Highlighted markers use an icon, the rest are circle markers.
type Marker struct {
	City        string  `json:"city"`
	Position    LatLng  `json:"position"`
	Highlighted bool    `json:"highlighted"`
	Icon        string  `json:"icon,omitempty"`
	IconColor   string  `json:"iconColor,omitempty"`
	Radius      int     `json:"radius,omitempty"`
	Color       string  `json:"color"`
	FillOpacity float64 `json:"fillOpacity"`
	Weight      int     `json:"weight"`
	Tooltip     string  `json:"tooltip"`
	Clustered   bool    `json:"clustered"`
	Popup       Popup   `json:"popup"`
}

// Circle has a radius in meters.
type Circle struct {
	City        string  `json:"city"`
	Center      LatLng  `json:"center"`
	Radius      float64 `json:"radius"`
	Color       string  `json:"color"`
	FillOpacity float64 `json:"fillOpacity"`
	Weight      int     `json:"weight"`
}

// RaySet is a fan of decorative segments around the selected city.
type RaySet struct {
	City      string      `json:"city"`
	Origin    LatLng      `json:"origin"`
	Segments  [][2]LatLng `json:"segments"`
	Color     string      `json:"color"`
	Weight    int         `json:"weight"`
	Opacity   float64     `json:"opacity"`
	DashArray string      `json:"dashArray"`
}

type LegendEntry struct {
	Label string  `json:"label"`
	Color string  `json:"color"`
	Tier  Tier    `json:"tier"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// CityStats feeds the legend/stat display for the selected city.
type CityStats struct {
	City       string            `json:"city"`
	Insolation float64           `json:"insolation"`
	Tier       Tier              `json:"tier"`
	Potential  PotentialEstimate `json:"potential"`
}

type Legend struct {
	Title    string        `json:"title"`
	Position string        `json:"position"`
	Entries  []LegendEntry `json:"entries"`
	Stats    *CityStats    `json:"stats,omitempty"`
}

type MiniMap struct {
	Tile     TileLayer `json:"tile"`
	Position string    `json:"position"`
	Width    int       `json:"width"`
	Height   int       `json:"height"`
}

type ControlKind string

const (
	ControlFullscreen ControlKind = "fullscreen"
	ControlMeasure    ControlKind = "measure"
	ControlLayers     ControlKind = "layers"
)

type Control struct {
	Type     ControlKind       `json:"type"`
	Position string            `json:"position"`
	Options  map[string]string `json:"options,omitempty"`
}

// Bounds is the pan/zoom extent enforced by the renderer.
type Bounds struct {
	South float64 `json:"south"`
	North float64 `json:"north"`
	West  float64 `json:"west"`
	East  float64 `json:"east"`
}

type ViewState struct {
	Center  LatLng `json:"center"`
	Zoom    int    `json:"zoom"`
	MinZoom int    `json:"minZoom"`
	MaxZoom int    `json:"maxZoom"`
	Bounds  Bounds `json:"bounds"`
}

// Map is the full output of a composition: the view plus ordered layers.
type Map struct {
	View     ViewState  `json:"view"`
	Selected string     `json:"selected,omitempty"`
	Layers   []Layer    `json:"layers"`
	Stats    *CityStats `json:"stats,omitempty"`
}
