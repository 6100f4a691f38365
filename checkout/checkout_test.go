package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79"

	"github.com/nexxdevv/sunset-traders-api/models"
	"github.com/nexxdevv/sunset-traders-api/store"
)

type fakePayment struct {
	createdParams []*stripe.CheckoutSessionParams
	createSess    *stripe.CheckoutSession
	createErr     error
	onCreate      func()

	gotIDs  []string
	getSess *stripe.CheckoutSession
	getErr  error
}

func (f *fakePayment) CreateSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	f.createdParams = append(f.createdParams, params)
	if f.onCreate != nil {
		f.onCreate()
	}
	return f.createSess, f.createErr
}

func (f *fakePayment) GetSession(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	f.gotIDs = append(f.gotIDs, id)
	return f.getSess, f.getErr
}

type fakeDocs struct {
	users   map[string]models.UserDoc
	orders  []models.Order
	addErr  error
	getErr  error
	creates int
}

func newFakeDocs() *fakeDocs {
	return &fakeDocs{users: make(map[string]models.UserDoc)}
}

func (f *fakeDocs) GetUser(ctx context.Context, uid string) (*models.UserDoc, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	doc, ok := f.users[uid]
	if !ok {
		return nil, false, nil
	}
	return &doc, true, nil
}

func (f *fakeDocs) CreateUser(ctx context.Context, doc models.UserDoc) error {
	f.creates++
	f.users[doc.UID] = doc
	return nil
}

func (f *fakeDocs) AddOrder(ctx context.Context, order models.Order) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.orders = append(f.orders, order)
	return nil
}

func (f *fakeDocs) OrdersByUser(ctx context.Context, uid string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if o.UserID == uid {
			out = append(out, o)
		}
	}
	return out, nil
}

func signedInStores(t *testing.T) (*store.CartStore, *store.UserStore) {
	t.Helper()
	cart := store.NewCartStore(nil)
	users := store.NewUserStore(nil)
	users.SetUser(&models.Identity{UID: "u1", Name: "Sunny", Email: "sunny@example.com"})
	return cart, users
}

func TestBuildSessionParams(t *testing.T) {
	items := []models.CartLineItem{
		{ProductID: "3", Name: "AirPods", Price: 30, ImageURL: "/airpods.png", Quantity: 2},
	}

	params := BuildSessionParams(items, "u1", "https://shop.example.com")

	require.Len(t, params.LineItems, 1)
	li := params.LineItems[0]
	assert.Equal(t, int64(3000), *li.PriceData.UnitAmount)
	assert.Equal(t, int64(2), *li.Quantity)
	assert.Equal(t, "usd", *li.PriceData.Currency)
	assert.Equal(t, "AirPods", *li.PriceData.ProductData.Name)
	assert.Equal(t, "u1", params.Metadata["userId"])
	assert.Equal(t, string(stripe.CheckoutSessionModePayment), *params.Mode)
	assert.Equal(t, "https://shop.example.com/success?session_id={CHECKOUT_SESSION_ID}", *params.SuccessURL)
	assert.Equal(t, "https://shop.example.com/cancel", *params.CancelURL)
}

func TestBuildSessionParams_RoundsFractionalPrices(t *testing.T) {
	items := []models.CartLineItem{
		{ProductID: "1", Name: "Scarf", Price: 19.999, Quantity: 1},
	}

	params := BuildSessionParams(items, "u1", "https://shop.example.com")
	assert.Equal(t, int64(2000), *params.LineItems[0].PriceData.UnitAmount)
}

func completedSession() *stripe.CheckoutSession {
	return &stripe.CheckoutSession{
		ID:          "cs_test_123",
		AmountTotal: 6000,
		Metadata:    map[string]string{"userId": "u1"},
		CustomerDetails: &stripe.CheckoutSessionCustomerDetails{
			Name:  "Sunny Trader",
			Email: "sunny@example.com",
		},
		LineItems: &stripe.LineItemList{
			Data: []*stripe.LineItem{
				{
					Description: "AirPods",
					Quantity:    2,
					AmountTotal: 4000,
					Price: &stripe.Price{
						Product: &stripe.Product{Images: []string{"/airpods.png"}},
					},
				},
				{
					Description: "Hunting Knife",
					Quantity:    2,
					AmountTotal: 2000,
				},
			},
		},
	}
}

func TestOrderFromSession(t *testing.T) {
	order, err := OrderFromSession(completedSession())
	require.NoError(t, err)

	assert.Equal(t, "cs_test_123", order.ID)
	assert.Equal(t, "u1", order.UserID)
	assert.Equal(t, 60.0, order.Total)
	assert.Equal(t, "Sunny Trader", order.Customer)
	assert.Equal(t, "sunny@example.com", order.Email)

	require.Len(t, order.Items, 2)
	assert.Equal(t, "AirPods", order.Items[0].Name)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, 40.0, order.Items[0].Price)
	assert.Equal(t, "/airpods.png", order.Items[0].Image)

	// No expanded product images: falls back to the placeholder
	assert.Equal(t, placeholderImage, order.Items[1].Image)
}

func TestOrderFromSession_MissingRequiredFields(t *testing.T) {
	sess := completedSession()
	sess.Metadata = nil
	_, err := OrderFromSession(sess)
	assert.Error(t, err)

	sess = completedSession()
	sess.CustomerDetails = nil
	_, err = OrderFromSession(sess)
	assert.Error(t, err)

	sess = completedSession()
	sess.LineItems = nil
	_, err = OrderFromSession(sess)
	assert.Error(t, err)

	_, err = OrderFromSession(nil)
	assert.Error(t, err)
}

func TestBegin_EmptyCartNeverCallsProcessor(t *testing.T) {
	cart, users := signedInStores(t)
	payment := &fakePayment{}
	orc := New(payment, cart, users, newFakeDocs(), Config{BaseURL: "https://shop.example.com"})

	_, _, err := orc.Begin(context.Background())
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, payment.createdParams)
	assert.Equal(t, StateIdle, orc.State())
}

func TestBegin_RequiresIdentity(t *testing.T) {
	cart := store.NewCartStore(nil)
	cart.AddToCart(models.Product{ID: "3", Name: "AirPods", Price: 30}, 1)
	users := store.NewUserStore(nil)
	payment := &fakePayment{}
	orc := New(payment, cart, users, newFakeDocs(), Config{BaseURL: "https://shop.example.com"})

	_, _, err := orc.Begin(context.Background())
	assert.ErrorIs(t, err, ErrNotSignedIn)
	assert.Empty(t, payment.createdParams)
	assert.Equal(t, StateIdle, orc.State())
}

func TestBegin_CreatesSessionAndRedirects(t *testing.T) {
	cart, users := signedInStores(t)
	cart.AddToCart(models.Product{ID: "3", Name: "AirPods", Price: 30, ImageURL: "/airpods.png"}, 2)
	payment := &fakePayment{
		createSess: &stripe.CheckoutSession{ID: "cs_test_123", URL: "https://checkout.stripe.com/pay/cs_test_123"},
	}
	orc := New(payment, cart, users, newFakeDocs(), Config{BaseURL: "https://shop.example.com"})

	sessionID, url, err := orc.Begin(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cs_test_123", sessionID)
	assert.Equal(t, "https://checkout.stripe.com/pay/cs_test_123", url)
	assert.Equal(t, StateRedirected, orc.State())

	require.Len(t, payment.createdParams, 1)
	params := payment.createdParams[0]
	assert.Equal(t, "u1", params.Metadata["userId"])
	assert.Equal(t, int64(3000), *params.LineItems[0].PriceData.UnitAmount)
	assert.Equal(t, int64(2), *params.LineItems[0].Quantity)
}

func TestBegin_ProcessorErrorReturnsToIdle(t *testing.T) {
	cart, users := signedInStores(t)
	cart.AddToCart(models.Product{ID: "3", Name: "AirPods", Price: 30}, 1)
	payment := &fakePayment{createErr: errors.New("card network down")}
	orc := New(payment, cart, users, newFakeDocs(), Config{BaseURL: "https://shop.example.com"})

	_, _, err := orc.Begin(context.Background())
	assert.Error(t, err)
	assert.Equal(t, StateIdle, orc.State())
}

func TestBegin_GuardsInFlightCheckout(t *testing.T) {
	cart, users := signedInStores(t)
	cart.AddToCart(models.Product{ID: "3", Name: "AirPods", Price: 30}, 1)
	payment := &fakePayment{
		createSess: &stripe.CheckoutSession{ID: "cs_test_123"},
	}
	orc := New(payment, cart, users, newFakeDocs(), Config{BaseURL: "https://shop.example.com"})

	// A second checkout attempt while the first is still at the processor
	var reentrantErr error
	payment.onCreate = func() {
		_, _, reentrantErr = orc.Begin(context.Background())
	}

	_, _, err := orc.Begin(context.Background())
	require.NoError(t, err)
	assert.ErrorIs(t, reentrantErr, ErrCheckoutInFlight)
}

func TestReconcile_MissingSessionIDNeverFetches(t *testing.T) {
	cart, users := signedInStores(t)
	payment := &fakePayment{}
	orc := New(payment, cart, users, newFakeDocs(), Config{BaseURL: "https://shop.example.com"})

	_, err := orc.Reconcile(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingSessionID)
	assert.Empty(t, payment.gotIDs)
	assert.Equal(t, StateFailed, orc.State())
}

func TestReconcile_WritesOrderOnceAndClearsCart(t *testing.T) {
	cart, users := signedInStores(t)
	cart.AddToCart(models.Product{ID: "3", Name: "AirPods", Price: 30}, 2)
	payment := &fakePayment{getSess: completedSession()}
	docs := newFakeDocs()

	var broadcasted []models.Order
	orc := New(payment, cart, users, docs, Config{
		BaseURL:   "https://shop.example.com",
		Broadcast: func(o models.Order) { broadcasted = append(broadcasted, o) },
	})

	order, err := orc.Reconcile(context.Background(), "cs_test_123")
	require.NoError(t, err)

	assert.Equal(t, 60.0, order.Total)
	require.Len(t, docs.orders, 1)
	assert.Equal(t, "cs_test_123", docs.orders[0].ID)
	assert.Empty(t, cart.Items(), "cart must be cleared after reconciliation")
	assert.Equal(t, StateCompleted, orc.State())
	require.Len(t, broadcasted, 1)
	assert.Equal(t, "cs_test_123", broadcasted[0].ID)
}

func TestReconcile_FetchErrorFails(t *testing.T) {
	cart, users := signedInStores(t)
	cart.AddToCart(models.Product{ID: "3", Name: "AirPods", Price: 30}, 1)
	payment := &fakePayment{getErr: errors.New("session not found")}
	orc := New(payment, cart, users, newFakeDocs(), Config{BaseURL: "https://shop.example.com"})

	_, err := orc.Reconcile(context.Background(), "cs_test_123")
	assert.Error(t, err)
	assert.Equal(t, StateFailed, orc.State())
	assert.Len(t, cart.Items(), 1, "cart is untouched on failure")
}

func TestReconcile_WriteErrorFails(t *testing.T) {
	cart, users := signedInStores(t)
	cart.AddToCart(models.Product{ID: "3", Name: "AirPods", Price: 30}, 1)
	payment := &fakePayment{getSess: completedSession()}
	docs := newFakeDocs()
	docs.addErr = errors.New("permission denied")
	orc := New(payment, cart, users, docs, Config{BaseURL: "https://shop.example.com"})

	_, err := orc.Reconcile(context.Background(), "cs_test_123")
	assert.Error(t, err)
	assert.Equal(t, StateFailed, orc.State())
	assert.Len(t, cart.Items(), 1)
	assert.Empty(t, docs.orders)
}

func TestReconcile_SchedulesDelayedCompletionHook(t *testing.T) {
	cart, users := signedInStores(t)
	cart.AddToCart(models.Product{ID: "3", Name: "AirPods", Price: 30}, 1)
	payment := &fakePayment{getSess: completedSession()}

	done := make(chan models.Order, 1)
	orc := New(payment, cart, users, newFakeDocs(), Config{
		BaseURL:       "https://shop.example.com",
		RedirectDelay: 10 * time.Millisecond,
		OnCompleted:   func(o models.Order) { done <- o },
	})

	_, err := orc.Reconcile(context.Background(), "cs_test_123")
	require.NoError(t, err)

	select {
	case o := <-done:
		assert.Equal(t, "cs_test_123", o.ID)
	case <-time.After(time.Second):
		t.Fatal("completion hook never fired")
	}
}

func TestCancelResetsRedirectedToIdle(t *testing.T) {
	cart, users := signedInStores(t)
	cart.AddToCart(models.Product{ID: "3", Name: "AirPods", Price: 30}, 1)
	payment := &fakePayment{createSess: &stripe.CheckoutSession{ID: "cs_test_123"}}
	orc := New(payment, cart, users, newFakeDocs(), Config{BaseURL: "https://shop.example.com"})

	_, _, err := orc.Begin(context.Background())
	require.NoError(t, err)
	require.Equal(t, StateRedirected, orc.State())

	orc.Cancel()
	assert.Equal(t, StateIdle, orc.State())
	assert.Len(t, cart.Items(), 1, "cancelling keeps the cart")
}
