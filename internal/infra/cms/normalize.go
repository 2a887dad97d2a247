package cms

import (
	"strings"

	"colorful-history/internal/domain/artworks"
)

// fieldDefaults lists the non-zero defaults used when the CMS omits a
// value. Every other field falls back to its zero value.
var fieldDefaults = struct {
	ARButtonColor string
}{
	ARButtonColor: "#000000",
}

// imageVariant selects which aliased rendition fills Artwork.Image.
type imageVariant int

const (
	imageThumb imageVariant = iota
	imageLarge
)

func mapImage(ref *mediaRef) artworks.ImageDetails {
	if ref == nil || ref.Node == nil {
		return artworks.ImageDetails{}
	}
	n := ref.Node
	img := artworks.ImageDetails{
		SourceURL: n.SourceURL.String(),
		SrcSet:    n.SrcSet.String(),
	}
	if n.MediaDetails != nil {
		img.Width = n.MediaDetails.Width.Int()
		img.Height = n.MediaDetails.Height.Int()
	}
	return img
}

func mapVideoURL(ref *videoRef) string {
	if ref == nil || ref.Node == nil {
		return ""
	}
	return ref.Node.MediaItemURL.String()
}

func mapARAsset(color value, icon *mediaRef, video *videoRef, poster *mediaRef) artworks.ARAsset {
	c := color.String()
	if c == "" {
		c = fieldDefaults.ARButtonColor
	}
	return artworks.ARAsset{
		ButtonColor:    c,
		ButtonIconURL:  mapImage(icon).SourceURL,
		VideoURL:       mapVideoURL(video),
		PosterImageURL: mapImage(poster).SourceURL,
	}
}

func pickImage(af *artworkFields, variant imageVariant) artworks.ImageDetails {
	switch {
	case variant == imageLarge && af.ArtworkImageLarge != nil:
		return mapImage(af.ArtworkImageLarge)
	case variant == imageThumb && af.ArtworkImageThumb != nil:
		return mapImage(af.ArtworkImageThumb)
	}
	return mapImage(af.ArtworkImage)
}

// normalize is the single mapping from a CMS node to the view model.
// It never fails: missing groups and fields become defaults.
func normalize(node artworkNode, variant imageVariant) artworks.Artwork {
	af := node.ArtworkFields
	if af == nil {
		af = &artworkFields{}
	}
	cf := node.ColorfulFields
	if cf == nil {
		cf = &colorfulFields{}
	}

	return artworks.Artwork{
		DatabaseID: node.DatabaseID.Int(),
		Slug:       node.Slug.String(),
		Title:      plainText(node.Title.String()),
		Date:       node.Date.String(),

		Lat:       af.Lat.Float(),
		Lng:       af.Lng.Float(),
		AREnabled: cf.AR.Bool(),
		Image:     pickImage(af, variant),

		FullDescription: safeHTML(node.Content.String()),
		Story: artworks.Bilingual{
			EN: safeHTML(cf.StoryEN.String()),
			DE: safeHTML(cf.StoryDE.String()),
		},
		WikiLink: artworks.Bilingual{
			EN: strings.TrimSpace(cf.WikiLinkEN.String()),
			DE: strings.TrimSpace(cf.WikiLinkDE.String()),
		},

		City:            af.City.String(),
		Country:         af.Country.String(),
		Location:        af.Location.String(),
		Medium:          af.Medium.String(),
		Style:           af.Style.String(),
		Series:          strings.ToLower(af.Series.First()),
		Provenance:      af.Provenance.String(),
		Year:            af.Year.Int(),
		Price:           af.Price.Int(),
		Size:            strings.ToLower(af.Size.First()),
		Units:           strings.ToLower(af.Units.First()),
		Height:          af.Height.Int(),
		Width:           af.Width.Int(),
		ForSale:         af.ForSale.Bool(),
		MetaDescription: af.MetaDescription.String(),
		MetaKeywords:    af.MetaKeywords.String(),
		Orientation:     strings.ToLower(af.Orientation.First()),
		Coordinates:     af.Coordinates.String(),

		MindImage: mapImage(cf.Mind),
		ARAssets: artworks.ARAssets{
			Making:    mapARAsset(cf.MakingColor, cf.MakingIcon, cf.MakingVideo, cf.MakingPoster),
			History:   mapARAsset(cf.HistoryColor, cf.HistoryIcon, cf.HistoryVideo, cf.HistoryPoster),
			Freestyle: mapARAsset(cf.FreestyleColor, cf.FreestyleIcon, cf.FreestyleVideo, cf.FreestylePoster),
		},
	}
}
