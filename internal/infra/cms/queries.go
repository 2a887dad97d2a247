package cms

// Category the gallery lists, and the upper bound for one list fetch.
const (
	galleryCategory = "A Colorful History"
	maxListCount    = 1000
)

const arAssetFields = `
      makingColor
      makingIcon { node { sourceUrl(size: THUMBNAIL) } }
      makingVideo { node { mediaItemUrl } }
      makingPoster { node { sourceUrl(size: LARGE) } }

      historyColor
      historyIcon { node { sourceUrl(size: THUMBNAIL) } }
      historyVideo { node { mediaItemUrl } }
      historyPoster { node { sourceUrl(size: LARGE) } }

      freestyleColor
      freestyleIcon { node { sourceUrl(size: THUMBNAIL) } }
      freestyleVideo { node { mediaItemUrl } }
      freestylePoster { node { sourceUrl(size: LARGE) } }
`

const listFields = `
    databaseId
    slug
    title(format: RENDERED)
    date
    artworkFields {
      artworkImageThumb: artworkImage {
        node {
          sourceUrl(size: THUMBNAIL)
          mediaDetails { width height }
        }
      }
      lat
      lng
    }
    colorfulFields {
      ar
    }
`

const detailFields = `
    databaseId
    slug
    title(format: RENDERED)
    date
    content(format: RENDERED)
    artworkFields {
      artworkImageThumb: artworkImage {
        node {
          sourceUrl(size: THUMBNAIL)
          mediaDetails { width height }
        }
      }
      artworkImageLarge: artworkImage {
        node {
          sourceUrl(size: _2048X2048)
          srcSet(size: _2048X2048)
          mediaDetails { width height }
        }
      }
      lat
      lng
      location
      city
      country
      coordinates
      forsale
      height
      medium
      metadescription
      metakeywords
      orientation
      price
      provenance
      series
      size
      style
      units
      year
      width
    }
    colorfulFields {
      ar
      storyEn
      storyDe
      wikiLinkEn
      wikiLinkDe
      mind { node { sourceUrl(size: LARGE) srcSet(size: LARGE) mediaDetails { width height } } }
` + arAssetFields + `
    }
`

const arFields = `
    databaseId
    slug
    title(format: RENDERED)
    date
    artworkFields {
      year
      city
    }
    colorfulFields {
      ar
      mind { node { sourceUrl(size: LARGE) } }
` + arAssetFields + `
    }
`

const listQuery = `
  query AllArtworks($category: String!, $first: Int!) {
    allArtwork(where: {categoryName: $category}, first: $first) {
      nodes {` + listFields + `}
    }
  }
`

const detailQuery = `
  query SingleArtwork($slug: ID!) {
    artwork(id: $slug, idType: SLUG) {` + detailFields + `}
  }
`

const arQuery = `
  query ARArtwork($slug: ID!) {
    artwork(id: $slug, idType: SLUG) {` + arFields + `}
  }
`
