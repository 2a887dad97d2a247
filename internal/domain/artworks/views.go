package artworks

// ListItem is the map/list reduction of Artwork.
type ListItem struct {
	DatabaseID int          `json:"databaseId"`
	Slug       string       `json:"slug"`
	Title      string       `json:"title"`
	Date       string       `json:"date"`
	Lat        float64      `json:"lat"`
	Lng        float64      `json:"lng"`
	Image      ImageDetails `json:"image"`
	AREnabled  bool         `json:"arEnabled"`
}

// ARData is the reduction used by the AR page.
type ARData struct {
	DatabaseID int          `json:"databaseId"`
	Slug       string       `json:"slug"`
	Title      string       `json:"title"`
	Date       string       `json:"date"`
	AREnabled  bool         `json:"arEnabled"`
	MindImage  ImageDetails `json:"mindImage"`
	ARAssets   ARAssets     `json:"arAssets"`
}

func (a Artwork) ListItem() ListItem {
	return ListItem{
		DatabaseID: a.DatabaseID,
		Slug:       a.Slug,
		Title:      a.Title,
		Date:       a.Date,
		Lat:        a.Lat,
		Lng:        a.Lng,
		Image:      a.Image,
		AREnabled:  a.AREnabled,
	}
}

func (a Artwork) ARData() ARData {
	return ARData{
		DatabaseID: a.DatabaseID,
		Slug:       a.Slug,
		Title:      a.Title,
		Date:       a.Date,
		AREnabled:  a.AREnabled,
		MindImage:  a.MindImage,
		ARAssets:   a.ARAssets,
	}
}

// ListItems reduces a slice, keeping it non-nil.
func ListItems(in []Artwork) []ListItem {
	out := make([]ListItem, 0, len(in))
	for _, a := range in {
		out = append(out, a.ListItem())
	}
	return out
}
