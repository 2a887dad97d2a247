package gallery

import (
	"strings"

	"colorful-history/internal/domain/artworks"
)

type Sorting string

const (
	SortLatest Sorting = "latest"
	SortOldest Sorting = "oldest"
	SortRandom Sorting = "random"
)

func ParseSorting(s string) (Sorting, bool) {
	switch Sorting(strings.ToLower(strings.TrimSpace(s))) {
	case SortLatest:
		return SortLatest, true
	case SortOldest:
		return SortOldest, true
	case SortRandom:
		return SortRandom, true
	}
	return "", false
}

// Panel is one of the overlay views toggled from the navigation.
type Panel string

const (
	PanelContact Panel = "contact"
	PanelGates   Panel = "gates"
	PanelWar     Panel = "war"
	PanelAR      Panel = "ar"
)

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Rect is the on-screen box a transition animates from.
type Rect struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Bottom float64 `json:"bottom"`
	Right  float64 `json:"right"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

type MapState struct {
	Coords    Coordinates `json:"coords"`
	ZoomLevel float64     `json:"zoomLevel"`
	PopupOpen string      `json:"popupOpen"`
}

type Animation struct {
	IsAnimating   bool               `json:"isAnimating"`
	IsReversing   bool               `json:"isReversing"`
	SourceRect    *Rect              `json:"sourceRect"`
	Artwork       *artworks.ListItem `json:"artwork"`
	CameFromMap   bool               `json:"cameFromMap"`
	SavedMapState *MapState          `json:"savedMapState"`
}

// State is the whole gallery UI state for one page view.
type State struct {
	ImageURL string             `json:"imageUrl"`
	Original []artworks.Artwork `json:"original"`
	Filtered []artworks.Artwork `json:"filtered"`
	Checked  []string           `json:"checked"`
	Sorting  Sorting            `json:"sorting"`

	Available   bool   `json:"available"`
	NavOpen     bool   `json:"navOpen"`
	CurrentCity string `json:"currentCity"`
	SearchTerm  string `json:"searchTerm"`

	ViewMap     bool `json:"viewMap"`
	ViewContact bool `json:"viewContact"`
	ViewGates   bool `json:"viewGates"`
	ViewWar     bool `json:"viewWar"`
	ViewAR      bool `json:"viewAR"`

	Coords             Coordinates        `json:"coords"`
	ZoomLevel          float64            `json:"zoomLevel"`
	PopupOpen          string             `json:"popupOpen"`
	CurrentMapArtwork  *artworks.ListItem `json:"currentMapArtwork"`
	MapNavKey          []string           `json:"mapNavKey"`
	MapPointScale      float64            `json:"mapPointScale"`
	CurrentMapNavIndex int                `json:"currentMapNavIndex"`
	MapNavHidden       bool               `json:"mapNavHidden"`
	Loaded             bool               `json:"loaded"`
	PinColors          map[string]string  `json:"pinColors"`

	Animation Animation `json:"animation"`
}

const (
	defaultImageURL = "https://digitalcityseries.com/art/a-colorful-history/"
	defaultCity     = "San Francisco"
	defaultZoom     = 12
	maxZoom         = 23
	maxPointScale   = 2
)

var (
	defaultChecked = []string{"San Francisco", "Berlin", "Hamburg"}
	defaultCoords  = Coordinates{Lat: 52.518611, Lng: 13.408333}
)

// Interpolate maps x from [x0, x1] onto [y0, y1].
func Interpolate(x, x0, x1, y0, y1 float64) float64 {
	if x1 == x0 {
		return y0
	}
	return y0 + (x-x0)*(y1-y0)/(x1-x0)
}

func pointScale(zoom float64) float64 {
	return Interpolate(zoom, 0, maxZoom, 0, maxPointScale)
}

func initialState(original []artworks.Artwork) State {
	if original == nil {
		original = []artworks.Artwork{}
	}
	return State{
		ImageURL:      defaultImageURL,
		Original:      original,
		Filtered:      []artworks.Artwork{},
		Checked:       append([]string(nil), defaultChecked...),
		Sorting:       SortLatest,
		CurrentCity:   defaultCity,
		ViewMap:       true,
		Coords:        defaultCoords,
		ZoomLevel:     defaultZoom,
		MapNavKey:     []string{},
		MapPointScale: pointScale(defaultZoom),
		PinColors:     map[string]string{},
	}
}

func (s State) clone() State {
	out := s
	out.Original = append([]artworks.Artwork{}, s.Original...)
	out.Filtered = append([]artworks.Artwork{}, s.Filtered...)
	out.Checked = append([]string{}, s.Checked...)
	out.MapNavKey = append([]string{}, s.MapNavKey...)
	out.PinColors = make(map[string]string, len(s.PinColors))
	for k, v := range s.PinColors {
		out.PinColors[k] = v
	}
	return out
}
