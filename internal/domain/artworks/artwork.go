package artworks

// ImageDetails describes one rendition of a CMS media item.
type ImageDetails struct {
	SourceURL string `json:"sourceUrl"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	SrcSet    string `json:"srcSet"`
}

// ARAsset is the per-scenario bundle shown on the AR page.
type ARAsset struct {
	ButtonColor    string `json:"buttonColor"`
	ButtonIconURL  string `json:"buttonIconUrl"`
	VideoURL       string `json:"videoUrl"`
	PosterImageURL string `json:"posterImageUrl"`
}

type ARAssets struct {
	Making    ARAsset `json:"making"`
	History   ARAsset `json:"history"`
	Freestyle ARAsset `json:"freestyle"`
}

// Artwork is the canonical flattened view model. Every field is always
// populated; absent CMS values become the zero value (or the documented
// default) during normalization.
type Artwork struct {
	DatabaseID int    `json:"databaseId"`
	Slug       string `json:"slug"`
	Title      string `json:"title"`
	Date       string `json:"date"`

	Lat       float64      `json:"lat"`
	Lng       float64      `json:"lng"`
	AREnabled bool         `json:"arEnabled"`
	Image     ImageDetails `json:"image"`

	FullDescription string    `json:"fullDescription"`
	Story           Bilingual `json:"story"`
	WikiLink        Bilingual `json:"wikiLink"`

	City            string `json:"city"`
	Country         string `json:"country"`
	Location        string `json:"location"`
	Medium          string `json:"medium"`
	Style           string `json:"style"`
	Series          string `json:"series"`
	Provenance      string `json:"provenance"`
	Year            int    `json:"year"`
	Price           int    `json:"price"`
	Size            string `json:"size"`
	Units           string `json:"units"`
	Height          int    `json:"height"`
	Width           int    `json:"width"`
	ForSale         bool   `json:"forSale"`
	MetaDescription string `json:"metaDescription"`
	MetaKeywords    string `json:"metaKeywords"`
	Orientation     string `json:"orientation"`
	Coordinates     string `json:"coordinates"`

	MindImage ImageDetails `json:"mindImage"`
	ARAssets  ARAssets     `json:"arAssets"`
}

// HasImage reports whether the artwork resolved an image URL.
func (a Artwork) HasImage() bool {
	return a.Image.SourceURL != ""
}
