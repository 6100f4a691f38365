package checkout

import (
	"fmt"
	"math"
	"os"

	"github.com/nexxdevv/sunset-traders-api/models"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
)

// PaymentClient is the payment processor surface the orchestrator needs:
// create a hosted checkout session, and fetch one back after the redirect.
type PaymentClient interface {
	CreateSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	GetSession(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// StripeClient talks to Stripe Checkout.
type StripeClient struct{}

// NewStripeClient reads the secret key from the environment and configures
// the Stripe SDK.
func NewStripeClient() (*StripeClient, error) {
	key := os.Getenv("STRIPE_SECRET_KEY")
	if key == "" {
		return nil, fmt.Errorf("stripe configuration missing: STRIPE_SECRET_KEY must be set")
	}
	stripe.Key = key
	return &StripeClient{}, nil
}

func (c *StripeClient) CreateSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return session.New(params)
}

func (c *StripeClient) GetSession(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return session.Get(id, params)
}

// BuildSessionParams maps the cart into a Stripe Checkout session request:
// one line item per cart entry, unit amounts in cents, the owning uid in
// metadata, and redirect targets with the session-id placeholder Stripe
// substitutes on return.
func BuildSessionParams(items []models.CartLineItem, uid, baseURL string) *stripe.CheckoutSessionParams {
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		SuccessURL:         stripe.String(baseURL + "/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:          stripe.String(baseURL + "/cancel"),
	}
	for _, item := range items {
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String("usd"),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:   stripe.String(item.Name),
					Images: stripe.StringSlice([]string{item.ImageURL}),
				},
				UnitAmount: stripe.Int64(int64(math.Round(item.Price * 100))),
			},
			Quantity: stripe.Int64(int64(item.Quantity)),
		})
	}
	params.AddMetadata("userId", uid)
	return params
}

// retrieveParams asks Stripe to expand the nested objects the order mapping
// reads.
func retrieveParams() *stripe.CheckoutSessionParams {
	params := &stripe.CheckoutSessionParams{}
	params.AddExpand("line_items.data.price.product")
	params.AddExpand("customer_details")
	return params
}
