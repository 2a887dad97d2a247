package stripe

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	stripego "github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/client"

	"colorful-history/internal/domain/artworks"
)

var (
	// ErrDisabled means no Stripe secret key is configured.
	ErrDisabled = errors.New("checkout disabled")
	// ErrNotForSale covers artworks that are not for sale or have no price.
	ErrNotForSale = errors.New("artwork not for sale")
)

const currency = "eur"

// sessionCreator is the part of the Stripe checkout API used here.
type sessionCreator interface {
	New(params *stripego.CheckoutSessionParams) (*stripego.CheckoutSession, error)
}

type CheckoutRequest struct {
	Artwork artworks.Artwork
	Locale  artworks.Locale
	Email   string
}

type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// CheckoutService creates one-off payment sessions for single artworks.
type CheckoutService struct {
	sessions sessionCreator
	appURL   string
}

// NewCheckoutService returns a disabled service when secretKey is empty.
func NewCheckoutService(secretKey, appURL string) *CheckoutService {
	s := &CheckoutService{appURL: strings.TrimRight(appURL, "/")}
	if secretKey != "" {
		sc := &client.API{}
		sc.Init(secretKey, nil)
		s.sessions = sc.CheckoutSessions
	}
	return s
}

func (s *CheckoutService) Enabled() bool {
	return s != nil && s.sessions != nil
}

// NewArtworkSession builds the session params for req and creates the session.
func (s *CheckoutService) NewArtworkSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error) {
	if !s.Enabled() {
		return nil, ErrDisabled
	}
	params, err := s.sessionParams(req)
	if err != nil {
		return nil, err
	}
	params.Context = ctx

	cs, err := s.sessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	return &CheckoutSession{ID: cs.ID, URL: cs.URL}, nil
}

func (s *CheckoutService) sessionParams(req CheckoutRequest) (*stripego.CheckoutSessionParams, error) {
	a := req.Artwork
	if !a.ForSale || a.Price <= 0 {
		return nil, ErrNotForSale
	}

	locale := string(req.Locale)
	if locale == "" {
		locale = string(artworks.DefaultLocale)
	}
	pageURL := fmt.Sprintf("%s/%s/artwork/%s", s.appURL, locale, a.Slug)

	product := &stripego.CheckoutSessionLineItemPriceDataProductDataParams{
		Name: stripego.String(a.Title),
		Metadata: map[string]string{
			"slug": a.Slug,
		},
	}
	if a.Image.SourceURL != "" {
		product.Images = []*string{stripego.String(a.Image.SourceURL)}
	}
	if a.MetaDescription != "" {
		product.Description = stripego.String(a.MetaDescription)
	}

	params := &stripego.CheckoutSessionParams{
		Mode:       stripego.String(string(stripego.CheckoutSessionModePayment)),
		SuccessURL: stripego.String(pageURL + "?purchased=1"),
		CancelURL:  stripego.String(pageURL + "?canceled=1"),
		Locale:     stripego.String(locale),
		LineItems: []*stripego.CheckoutSessionLineItemParams{
			{
				PriceData: &stripego.CheckoutSessionLineItemPriceDataParams{
					Currency:    stripego.String(currency),
					UnitAmount:  stripego.Int64(int64(a.Price) * 100),
					ProductData: product,
				},
				Quantity: stripego.Int64(1),
			},
		},
		ClientReferenceID: stripego.String(strconv.Itoa(a.DatabaseID)),
	}
	params.AddMetadata("artwork_id", strconv.Itoa(a.DatabaseID))
	params.AddMetadata("slug", a.Slug)
	if req.Email != "" {
		params.CustomerEmail = stripego.String(req.Email)
	}
	return params, nil
}
