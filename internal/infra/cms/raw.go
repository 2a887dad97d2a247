package cms

import (
	"bytes"
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// value keeps a loosely typed ACF/WPGraphQL scalar exactly as received.
// ACF returns numbers as strings, booleans as "1", and select fields as
// either a string or a list, so coercion happens at read time.
type value struct {
	raw json.RawMessage
}

func (v *value) UnmarshalJSON(b []byte) error {
	v.raw = append(v.raw[:0], b...)
	return nil
}

func (v value) decoded() interface{} {
	if len(v.raw) == 0 {
		return nil
	}
	var out interface{}
	dec := json.NewDecoder(bytes.NewReader(v.raw))
	dec.UseNumber()
	if err := dec.Decode(&out); err != nil {
		return nil
	}
	return out
}

// String returns strings verbatim and numbers in their JSON form.
// Anything else is "".
func (v value) String() string {
	switch t := v.decoded().(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	}
	return ""
}

// First reads single-or-list select fields.
func (v value) First() string {
	switch t := v.decoded().(type) {
	case string:
		return t
	case []interface{}:
		if len(t) == 0 {
			return ""
		}
		if s, ok := t[0].(string); ok {
			return s
		}
	}
	return ""
}

var (
	floatPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	intPrefix   = regexp.MustCompile(`^[+-]?\d+`)
)

// Float parses the leading numeric part; unparseable or absent is 0.
func (v value) Float() float64 {
	m := floatPrefix.FindString(strings.TrimSpace(v.String()))
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return f
}

// Int parses the leading integer part; unparseable or absent is 0.
func (v value) Int() int {
	m := intPrefix.FindString(strings.TrimSpace(v.String()))
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}

// Bool is true only for JSON true, "1" and "true".
func (v value) Bool() bool {
	switch t := v.decoded().(type) {
	case bool:
		return t
	case string:
		return t == "1" || t == "true"
	}
	return false
}

type imageNode struct {
	SourceURL    value `json:"sourceUrl"`
	SrcSet       value `json:"srcSet"`
	MediaDetails *struct {
		Width  value `json:"width"`
		Height value `json:"height"`
	} `json:"mediaDetails"`
}

type mediaRef struct {
	Node *imageNode `json:"node"`
}

type videoRef struct {
	Node *struct {
		MediaItemURL value `json:"mediaItemUrl"`
	} `json:"node"`
}

type artworkFields struct {
	ArtworkImage      *mediaRef `json:"artworkImage"`
	ArtworkImageThumb *mediaRef `json:"artworkImageThumb"`
	ArtworkImageLarge *mediaRef `json:"artworkImageLarge"`

	Location        value `json:"location"`
	City            value `json:"city"`
	Country         value `json:"country"`
	Coordinates     value `json:"coordinates"`
	ForSale         value `json:"forsale"`
	Height          value `json:"height"`
	Width           value `json:"width"`
	Lat             value `json:"lat"`
	Lng             value `json:"lng"`
	Medium          value `json:"medium"`
	MetaDescription value `json:"metadescription"`
	MetaKeywords    value `json:"metakeywords"`
	Orientation     value `json:"orientation"`
	Price           value `json:"price"`
	Provenance      value `json:"provenance"`
	Series          value `json:"series"`
	Size            value `json:"size"`
	Style           value `json:"style"`
	Units           value `json:"units"`
	Year            value `json:"year"`
}

type colorfulFields struct {
	AR   value     `json:"ar"`
	Mind *mediaRef `json:"mind"`

	StoryEN    value `json:"storyEn"`
	StoryDE    value `json:"storyDe"`
	WikiLinkEN value `json:"wikiLinkEn"`
	WikiLinkDE value `json:"wikiLinkDe"`

	MakingColor  value     `json:"makingColor"`
	MakingIcon   *mediaRef `json:"makingIcon"`
	MakingVideo  *videoRef `json:"makingVideo"`
	MakingPoster *mediaRef `json:"makingPoster"`

	HistoryColor  value     `json:"historyColor"`
	HistoryIcon   *mediaRef `json:"historyIcon"`
	HistoryVideo  *videoRef `json:"historyVideo"`
	HistoryPoster *mediaRef `json:"historyPoster"`

	FreestyleColor  value     `json:"freestyleColor"`
	FreestyleIcon   *mediaRef `json:"freestyleIcon"`
	FreestyleVideo  *videoRef `json:"freestyleVideo"`
	FreestylePoster *mediaRef `json:"freestylePoster"`
}

// artworkNode mirrors one `artwork` object of the WPGraphQL schema.
type artworkNode struct {
	DatabaseID     value           `json:"databaseId"`
	Slug           value           `json:"slug"`
	Title          value           `json:"title"`
	Content        value           `json:"content"`
	Date           value           `json:"date"`
	ArtworkFields  *artworkFields  `json:"artworkFields"`
	ColorfulFields *colorfulFields `json:"colorfulFields"`
}

// decodeNode decodes one artwork object. A nested field of the wrong
// shape is left at its zero value and the rest of the node is kept; only
// a missing, null or non-object node is rejected.
func decodeNode(raw json.RawMessage) (artworkNode, bool) {
	var node artworkNode
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return node, false
	}
	err := json.Unmarshal(trimmed, &node)
	var typeErr *json.UnmarshalTypeError
	if err != nil && !errors.As(err, &typeErr) {
		return node, false
	}
	return node, true
}
