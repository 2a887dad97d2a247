package cms

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"colorful-history/internal/domain/artworks"
)

var (
	// ErrUpstreamStatus is returned for non-2xx GraphQL responses.
	ErrUpstreamStatus = errors.New("cms: unexpected status")
	// ErrGraphQL is returned when the response carries an errors array.
	ErrGraphQL = errors.New("cms: graphql error")
)

// ResponseCache stores successful GraphQL `data` payloads.
type ResponseCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration)
}

// Client queries the CMS GraphQL endpoint.
type Client struct {
	endpoint string
	http     *http.Client
	logger   *zap.Logger
	cache    ResponseCache
	cacheTTL time.Duration
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithCache enables the shared response cache. A nil cache or a
// non-positive ttl leaves caching off.
func WithCache(cache ResponseCache, ttl time.Duration) Option {
	return func(c *Client) {
		if cache != nil && ttl > 0 {
			c.cache = cache
			c.cacheTTL = ttl
		}
	}
}

func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint: strings.TrimSpace(endpoint),
		http:     http.DefaultClient,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

// Do posts one query and decodes `data` into out.
func (c *Client) Do(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("cms: encode request: %w", err)
	}

	key := cacheKey(body)
	if c.cache != nil {
		if data, ok := c.cache.Get(ctx, key); ok {
			return decodeData(data, out)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("cms: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("cms: post query: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("%w: %d", ErrUpstreamStatus, res.StatusCode)
	}

	var gql graphQLResponse
	if err := json.NewDecoder(res.Body).Decode(&gql); err != nil {
		return fmt.Errorf("cms: decode response: %w", err)
	}
	if len(gql.Errors) > 0 {
		return fmt.Errorf("%w: %s", ErrGraphQL, gql.Errors[0].Message)
	}

	if err := decodeData(gql.Data, out); err != nil {
		return err
	}
	if c.cache != nil && len(gql.Data) > 0 && !bytes.Equal(gql.Data, []byte("null")) {
		c.cache.Set(ctx, key, gql.Data, c.cacheTTL)
	}
	return nil
}

func decodeData(data []byte, out interface{}) error {
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("cms: decode data: %w", err)
	}
	return nil
}

func cacheKey(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

// ListArtworks returns the gallery list with thumbnail images. Any
// upstream failure yields an empty, non-nil slice.
func (c *Client) ListArtworks(ctx context.Context) []artworks.Artwork {
	var data struct {
		AllArtwork *struct {
			Nodes []json.RawMessage `json:"nodes"`
		} `json:"allArtwork"`
	}
	vars := map[string]interface{}{"category": galleryCategory, "first": maxListCount}
	if err := c.Do(ctx, listQuery, vars, &data); err != nil {
		c.logger.Warn("artwork list fetch failed", zap.Error(err))
		return []artworks.Artwork{}
	}
	if data.AllArtwork == nil {
		return []artworks.Artwork{}
	}

	out := make([]artworks.Artwork, 0, len(data.AllArtwork.Nodes))
	for _, raw := range data.AllArtwork.Nodes {
		node, ok := decodeNode(raw)
		if !ok {
			c.logger.Debug("skipping malformed artwork node")
			continue
		}
		out = append(out, normalize(node, imageThumb))
	}
	return out
}

// ArtworkBySlug returns the full artwork with its large image, or nil
// when it is missing or the CMS failed.
func (c *Client) ArtworkBySlug(ctx context.Context, slug string) *artworks.Artwork {
	node := c.fetchOne(ctx, detailQuery, slug)
	if node == nil {
		return nil
	}
	a := normalize(*node, imageLarge)
	return &a
}

// ARArtworkBySlug returns the AR bundle for slug, or nil.
func (c *Client) ARArtworkBySlug(ctx context.Context, slug string) *artworks.ARData {
	node := c.fetchOne(ctx, arQuery, slug)
	if node == nil {
		return nil
	}
	ar := normalize(*node, imageLarge).ARData()
	return &ar
}

func (c *Client) fetchOne(ctx context.Context, query, slug string) *artworkNode {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil
	}
	var data struct {
		Artwork json.RawMessage `json:"artwork"`
	}
	if err := c.Do(ctx, query, map[string]interface{}{"slug": slug}, &data); err != nil {
		c.logger.Warn("artwork fetch failed", zap.String("slug", slug), zap.Error(err))
		return nil
	}
	node, ok := decodeNode(data.Artwork)
	if !ok {
		return nil
	}
	return &node
}
