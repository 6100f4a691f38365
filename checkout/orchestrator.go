package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/nexxdevv/sunset-traders-api/docstore"
	"github.com/nexxdevv/sunset-traders-api/models"
	"github.com/nexxdevv/sunset-traders-api/store"
	"github.com/stripe/stripe-go/v79"
)

// State tracks where a checkout is in its lifecycle.
type State int

const (
	StateIdle State = iota
	StateSessionRequested
	StateRedirected
	StateReconciling
	StateCompleted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSessionRequested:
		return "session_requested"
	case StateRedirected:
		return "redirected"
	case StateReconciling:
		return "reconciling"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

var (
	ErrNotSignedIn      = errors.New("please log in to proceed with checkout")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrCheckoutInFlight = errors.New("a checkout is already in progress")
	ErrMissingSessionID = errors.New("session id required")
)

const placeholderImage = "/placeholder-product.jpg"

// Config carries the orchestrator's redirect targets and cosmetic
// post-completion navigation.
type Config struct {
	// BaseURL prefixes the success and cancel redirect targets.
	BaseURL string
	// RedirectDelay is the pause before OnCompleted fires. Defaults to 3s.
	RedirectDelay time.Duration
	// OnCompleted, if set, runs once per completed checkout after
	// RedirectDelay. Purely cosmetic; reconciliation does not depend on it.
	OnCompleted func(order models.Order)
	// Broadcast, if set, runs synchronously with each reconciled order.
	Broadcast func(order models.Order)
}

// Orchestrator drives a checkout from cart to persisted order:
// Idle → SessionRequested → Redirected → Reconciling → Completed or Failed.
// Reconciliation is keyed by the client returning to the success URL; a
// replayed return can write a duplicate order for the same session id. That
// matches the observed flow and is deliberately not deduplicated here.
type Orchestrator struct {
	payment PaymentClient
	cart    *store.CartStore
	users   *store.UserStore
	docs    docstore.Store
	cfg     Config

	mu    sync.Mutex
	state State
}

// New builds an orchestrator in the Idle state.
func New(payment PaymentClient, cart *store.CartStore, users *store.UserStore, docs docstore.Store, cfg Config) *Orchestrator {
	if cfg.RedirectDelay == 0 {
		cfg.RedirectDelay = 3 * time.Second
	}
	return &Orchestrator{
		payment: payment,
		cart:    cart,
		users:   users,
		docs:    docs,
		cfg:     cfg,
		state:   StateIdle,
	}
}

// State returns the current checkout state.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Begin validates the preconditions and creates a payment session. It
// returns the session id and the hosted payment page URL the client should
// be redirected to. Precondition failures leave the state untouched; a
// processor error rolls back to Idle.
func (o *Orchestrator) Begin(ctx context.Context) (string, string, error) {
	o.mu.Lock()
	if o.state == StateSessionRequested || o.state == StateReconciling {
		o.mu.Unlock()
		return "", "", ErrCheckoutInFlight
	}
	user := o.users.User()
	if user == nil {
		o.mu.Unlock()
		return "", "", ErrNotSignedIn
	}
	items := o.cart.Items()
	if len(items) == 0 {
		o.mu.Unlock()
		return "", "", ErrEmptyCart
	}
	o.state = StateSessionRequested
	o.mu.Unlock()

	params := BuildSessionParams(items, user.UID, o.cfg.BaseURL)
	params.Context = ctx
	sess, err := o.payment.CreateSession(params)
	if err != nil {
		log.Printf("❌ Stripe session creation failed: %v", err)
		o.setState(StateIdle)
		return "", "", fmt.Errorf("failed to create checkout session: %w", err)
	}

	o.setState(StateRedirected)
	return sess.ID, sess.URL, nil
}

// Cancel handles the cancel redirect: an abandoned hosted payment page puts
// the flow back to Idle with the cart untouched.
func (o *Orchestrator) Cancel() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state == StateRedirected {
		o.state = StateIdle
	}
}

// Reconcile turns a completed payment session into a persisted order: fetch
// the session, map it, write it once to the orders collection, then clear
// the cart. Any failure lands in StateFailed with no retry and nothing
// rolled back; the payment itself is not reversed here.
func (o *Orchestrator) Reconcile(ctx context.Context, sessionID string) (models.Order, error) {
	if sessionID == "" {
		o.setState(StateFailed)
		return models.Order{}, ErrMissingSessionID
	}

	o.mu.Lock()
	if o.state == StateReconciling {
		o.mu.Unlock()
		return models.Order{}, ErrCheckoutInFlight
	}
	o.state = StateReconciling
	o.mu.Unlock()

	params := retrieveParams()
	params.Context = ctx
	sess, err := o.payment.GetSession(sessionID, params)
	if err != nil {
		log.Printf("❌ Failed to fetch Stripe session %s: %v", sessionID, err)
		o.setState(StateFailed)
		return models.Order{}, fmt.Errorf("failed to fetch session: %w", err)
	}

	order, err := OrderFromSession(sess)
	if err != nil {
		log.Printf("❌ Session %s is missing required fields: %v", sessionID, err)
		o.setState(StateFailed)
		return models.Order{}, err
	}

	if err := o.docs.AddOrder(ctx, order); err != nil {
		log.Printf("❌ Failed to save order for session %s: %v", sessionID, err)
		o.setState(StateFailed)
		return models.Order{}, fmt.Errorf("failed to save order: %w", err)
	}

	o.cart.ClearCart()
	o.setState(StateCompleted)
	log.Printf("✅ Order %s saved for user %s", order.ID, order.UserID)

	if o.cfg.Broadcast != nil {
		o.cfg.Broadcast(order)
	}
	if o.cfg.OnCompleted != nil {
		time.AfterFunc(o.cfg.RedirectDelay, func() { o.cfg.OnCompleted(order) })
	}
	return order, nil
}

// OrderFromSession maps a fetched payment session into an order record.
// Amounts come back in minor units; the order stores major units. Missing
// required fields are a reconciliation failure, not a panic.
func OrderFromSession(sess *stripe.CheckoutSession) (models.Order, error) {
	if sess == nil || sess.ID == "" {
		return models.Order{}, errors.New("session has no id")
	}
	uid := sess.Metadata["userId"]
	if uid == "" {
		return models.Order{}, errors.New("session has no userId metadata")
	}
	if sess.CustomerDetails == nil {
		return models.Order{}, errors.New("session has no customer details")
	}
	if sess.LineItems == nil {
		return models.Order{}, errors.New("session has no line items")
	}

	order := models.Order{
		ID:       sess.ID,
		UserID:   uid,
		Total:    float64(sess.AmountTotal) / 100,
		Customer: sess.CustomerDetails.Name,
		Email:    sess.CustomerDetails.Email,
		Date:     time.Now().UTC().Format(time.RFC3339),
	}
	for _, item := range sess.LineItems.Data {
		image := placeholderImage
		if item.Price != nil && item.Price.Product != nil && len(item.Price.Product.Images) > 0 {
			image = item.Price.Product.Images[0]
		}
		order.Items = append(order.Items, models.OrderItem{
			Name:     item.Description,
			Quantity: int(item.Quantity),
			Price:    float64(item.AmountTotal) / 100,
			Image:    image,
		})
	}
	return order, nil
}

func (o *Orchestrator) setState(s State) {
	o.mu.Lock()
	o.state = s
	o.mu.Unlock()
}
