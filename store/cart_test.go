package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexxdevv/sunset-traders-api/models"
)

// memPersistence is an in-memory stand-in for the local store.
type memPersistence struct {
	blobs map[string][]byte
	saves int
}

func newMemPersistence() *memPersistence {
	return &memPersistence{blobs: make(map[string][]byte)}
}

func (m *memPersistence) Save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.blobs[key] = data
	m.saves++
	return nil
}

func (m *memPersistence) Load(key string, out any) (bool, error) {
	data, ok := m.blobs[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, out)
}

func sunglasses() models.Product {
	return models.Product{ID: "1", Name: "Giorgio Armani AR8186", Price: 40, ImageURL: "/sunnies.png", Category: "sunglasses"}
}

func airpods() models.Product {
	return models.Product{ID: "3", Name: "AirPods", Price: 20, ImageURL: "/airpods.png", Category: "electronics"}
}

func TestAddToCart_MergesByProductID(t *testing.T) {
	cart := NewCartStore(newMemPersistence())

	cart.AddToCart(sunglasses(), 1)
	cart.AddToCart(airpods(), 2)
	cart.AddToCart(sunglasses(), 3)

	items := cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].ProductID)
	assert.Equal(t, 4, items[0].Quantity)
	assert.Equal(t, "3", items[1].ProductID)
	assert.Equal(t, 2, items[1].Quantity)
}

func TestAddToCart_ClampsNonPositiveQuantity(t *testing.T) {
	cart := NewCartStore(newMemPersistence())

	cart.AddToCart(sunglasses(), 0)
	cart.AddToCart(airpods(), -5)

	items := cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestIncrementQuantity(t *testing.T) {
	cart := NewCartStore(newMemPersistence())
	cart.AddToCart(sunglasses(), 1)

	cart.IncrementQuantity("1")
	assert.Equal(t, 2, cart.Items()[0].Quantity)

	// Absent product: no-op
	cart.IncrementQuantity("nope")
	require.Len(t, cart.Items(), 1)
}

func TestDecrementQuantity_RemovesAtZero(t *testing.T) {
	cart := NewCartStore(newMemPersistence())
	cart.AddToCart(sunglasses(), 2)

	cart.DecrementQuantity("1")
	require.Len(t, cart.Items(), 1)
	assert.Equal(t, 1, cart.Items()[0].Quantity)

	cart.DecrementQuantity("1")
	assert.Empty(t, cart.Items())

	// Further decrements on an absent id are no-ops
	cart.DecrementQuantity("1")
	assert.Empty(t, cart.Items())
}

func TestRemoveItem_Idempotent(t *testing.T) {
	cart := NewCartStore(newMemPersistence())
	cart.AddToCart(sunglasses(), 5)
	cart.AddToCart(airpods(), 1)

	cart.RemoveItem("1")
	cart.RemoveItem("1")

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "3", items[0].ProductID)
}

func TestClearCart(t *testing.T) {
	cart := NewCartStore(newMemPersistence())
	cart.AddToCart(sunglasses(), 1)
	cart.AddToCart(airpods(), 1)

	cart.ClearCart()
	assert.Empty(t, cart.Items())
}

func TestCartPersistsEveryMutation(t *testing.T) {
	ls := newMemPersistence()
	cart := NewCartStore(ls)

	cart.AddToCart(sunglasses(), 1)
	cart.IncrementQuantity("1")
	cart.RemoveItem("1")

	assert.Equal(t, 3, ls.saves)

	// A fresh store rehydrates from the same persistence
	cart.AddToCart(airpods(), 2)
	reloaded := NewCartStore(ls)
	items := reloaded.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "3", items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCartSubscribersNotifiedSynchronously(t *testing.T) {
	cart := NewCartStore(newMemPersistence())

	var seen [][]models.CartLineItem
	id := cart.Subscribe(func(items []models.CartLineItem) {
		seen = append(seen, items)
	})

	cart.AddToCart(sunglasses(), 1)
	require.Len(t, seen, 1)
	require.Len(t, seen[0], 1)
	assert.Equal(t, 1, seen[0][0].Quantity)

	cart.Unsubscribe(id)
	cart.AddToCart(sunglasses(), 1)
	assert.Len(t, seen, 1)
}

// A subscriber may read the store back during its notification.
func TestCartSubscriberCanCallBackIntoStore(t *testing.T) {
	cart := NewCartStore(newMemPersistence())

	var observed []models.CartLineItem
	cart.Subscribe(func([]models.CartLineItem) {
		observed = cart.Items()
	})

	cart.AddToCart(sunglasses(), 2)
	require.Len(t, observed, 1)
	assert.Equal(t, 2, observed[0].Quantity)

	cart.ClearCart()
	assert.Empty(t, observed)
}
