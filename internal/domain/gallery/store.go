package gallery

import (
	"math/rand/v2"
	"sync"

	"colorful-history/internal/domain/artworks"
)

type Option func(*Store)

// WithShuffle replaces the permutation used by the random sort.
func WithShuffle(shuffle func(n int, swap func(i, j int))) Option {
	return func(s *Store) {
		if shuffle != nil {
			s.shuffle = shuffle
		}
	}
}

// Store owns one State. Every method applies atomically; concurrent
// writers are last-write-wins.
type Store struct {
	mu      sync.Mutex
	state   State
	shuffle func(n int, swap func(i, j int))
}

func NewStore(initial []artworks.Artwork, opts ...Option) *Store {
	s := &Store{
		state:   initialState(initial),
		shuffle: rand.Shuffle,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.recompute()
	return s
}

// Snapshot returns a copy that is safe to read after the lock is released.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

func (s *Store) update(fn func(*State), recompute bool) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
	if recompute {
		s.recompute()
	}
	return s.state.clone()
}

// caller holds mu
func (s *Store) recompute() {
	s.state.Filtered = Project(s.state.Original, s.state.Sorting, s.shuffle)
}

func (s *Store) SetOriginal(list []artworks.Artwork) State {
	return s.update(func(st *State) {
		st.Original = append([]artworks.Artwork{}, list...)
		st.Loaded = true
	}, true)
}

// SetSorting ignores unknown modes without touching the projection.
func (s *Store) SetSorting(sorting Sorting) State {
	parsed, ok := ParseSorting(string(sorting))
	return s.update(func(st *State) {
		if ok {
			st.Sorting = parsed
		}
	}, ok)
}

func (s *Store) SetChecked(cities []string) State {
	return s.update(func(st *State) {
		st.Checked = append([]string{}, cities...)
	}, true)
}

func (s *Store) SetSearchTerm(term string) State {
	return s.update(func(st *State) { st.SearchTerm = term }, false)
}

func (s *Store) SetCurrentCity(city string) State {
	return s.update(func(st *State) { st.CurrentCity = city }, false)
}

func (s *Store) SetNavOpen(open bool) State {
	return s.update(func(st *State) { st.NavOpen = open }, false)
}

func (s *Store) ShowMap() State {
	return s.update(func(st *State) { st.ViewMap = true }, false)
}

func (s *Store) ShowList() State {
	return s.update(func(st *State) {
		st.ViewMap = false
		st.PopupOpen = ""
		st.CurrentMapArtwork = nil
	}, false)
}

// ShowPanel opens or closes one overlay. Opening a panel closes the others.
func (s *Store) ShowPanel(p Panel, open bool) State {
	return s.update(func(st *State) {
		if open {
			st.ViewContact, st.ViewGates, st.ViewWar, st.ViewAR = false, false, false, false
		}
		switch p {
		case PanelContact:
			st.ViewContact = open
		case PanelGates:
			st.ViewGates = open
		case PanelWar:
			st.ViewWar = open
		case PanelAR:
			st.ViewAR = open
		}
	}, false)
}

// MoveMap sets the viewport; the pin scale follows the zoom level.
func (s *Store) MoveMap(coords Coordinates, zoom float64) State {
	return s.update(func(st *State) {
		st.Coords = coords
		st.ZoomLevel = zoom
		st.MapPointScale = pointScale(zoom)
	}, false)
}

func (s *Store) OpenPopup(slug string) State {
	return s.update(func(st *State) { st.PopupOpen = slug }, false)
}

func (s *Store) ClosePopup() State {
	return s.update(func(st *State) { st.PopupOpen = "" }, false)
}

// SelectMapArtwork focuses the map on slug and opens its popup. An unknown
// slug clears the selection.
func (s *Store) SelectMapArtwork(slug string) State {
	return s.update(func(st *State) {
		st.CurrentMapArtwork = nil
		st.PopupOpen = ""
		for i, a := range st.Filtered {
			if a.Slug != slug {
				continue
			}
			item := a.ListItem()
			st.CurrentMapArtwork = &item
			st.CurrentMapNavIndex = i
			st.PopupOpen = slug
			if a.Lat != 0 || a.Lng != 0 {
				st.Coords = Coordinates{Lat: a.Lat, Lng: a.Lng}
			}
			return
		}
	}, false)
}

func (s *Store) SetMapNav(keys []string, hidden bool) State {
	return s.update(func(st *State) {
		st.MapNavKey = append([]string{}, keys...)
		st.MapNavHidden = hidden
	}, false)
}

func (s *Store) SetPinColors(colors map[string]string) State {
	return s.update(func(st *State) {
		st.PinColors = make(map[string]string, len(colors))
		for k, v := range colors {
			st.PinColors[k] = v
		}
	}, false)
}

// StartTransition begins the list/map to detail animation. Leaving the map
// saves its viewport so FinishTransition can restore it on the way back.
func (s *Store) StartTransition(src Rect, art artworks.ListItem, fromMap bool) State {
	return s.update(func(st *State) {
		anim := Animation{
			IsAnimating: true,
			SourceRect:  &src,
			Artwork:     &art,
			CameFromMap: fromMap,
		}
		if fromMap {
			anim.SavedMapState = &MapState{
				Coords:    st.Coords,
				ZoomLevel: st.ZoomLevel,
				PopupOpen: st.PopupOpen,
			}
		}
		st.Animation = anim
	}, false)
}

// ReverseTransition plays the running animation backwards. It is a no-op
// when nothing was started.
func (s *Store) ReverseTransition() State {
	return s.update(func(st *State) {
		if st.Animation.Artwork == nil {
			return
		}
		st.Animation.IsAnimating = true
		st.Animation.IsReversing = true
	}, false)
}

func (s *Store) FinishTransition() State {
	return s.update(func(st *State) {
		a := st.Animation
		if a.IsReversing && a.CameFromMap && a.SavedMapState != nil {
			st.ViewMap = true
			st.Coords = a.SavedMapState.Coords
			st.ZoomLevel = a.SavedMapState.ZoomLevel
			st.MapPointScale = pointScale(a.SavedMapState.ZoomLevel)
			st.PopupOpen = a.SavedMapState.PopupOpen
		}
		st.Animation = Animation{}
	}, false)
}
