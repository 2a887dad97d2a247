package works

import (
	"colorful-history/internal/domain/artworks"
	"colorful-history/internal/domain/gallery"
)

// ---------- requests

type CheckoutRequest struct {
	Email string `json:"email" binding:"omitempty,email"`
}

// ---------- responses

type HomeResponse struct {
	Locale   artworks.Locale     `json:"locale"`
	Artworks []artworks.ListItem `json:"artworks"`
}

type GalleryResponse struct {
	Locale artworks.Locale `json:"locale"`
	State  gallery.State   `json:"state"`
}

// PageMeta is the SEO block of a detail page.
type PageMeta struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Keywords    string            `json:"keywords"`
	Canonical   string            `json:"canonical"`
	Alternates  map[string]string `json:"alternates"`
	OGImages    []string          `json:"ogImages"`
}

type DetailResponse struct {
	Locale   artworks.Locale  `json:"locale"`
	Artwork  artworks.Artwork `json:"artwork"`
	Story    string           `json:"story"`
	WikiLink string           `json:"wikiLink"`
	Meta     PageMeta         `json:"meta"`
	ARPath   string           `json:"arPath,omitempty"`
	Buyable  bool             `json:"buyable"`
}

type ARResponse struct {
	Locale  artworks.Locale `json:"locale"`
	Artwork artworks.ARData `json:"artwork"`
}

type CheckoutResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// PagePath is one pre-renderable page.
type PagePath struct {
	Locale artworks.Locale `json:"locale"`
	Slug   string          `json:"slug"`
}
