package orderControllers

import (
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexxdevv/sunset-traders-api/models"
)

func startWSServer(t *testing.T) (string, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/orders/ws", OrderWebSocketHandler)
	srv := httptest.NewServer(r)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/orders/ws"
	return url, srv.Close
}

func waitForClients(t *testing.T, n int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		wsMu.Lock()
		got := len(wsClients)
		wsMu.Unlock()
		if got >= n {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("expected %d connected clients", n)
}

func TestBroadcastNewOrder_DeliversToConnectedClients(t *testing.T) {
	url, shutdown := startWSServer(t)
	defer shutdown()

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Registration happens on the handler goroutine after the upgrade
	waitForClients(t, 1)

	BroadcastNewOrder(models.Order{ID: "cs_test_123", UserID: "u1", Total: 60})

	conn.SetReadDeadline(time.Now().Add(time.Second))
	var got models.Order
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, "cs_test_123", got.ID)
	assert.Equal(t, 60.0, got.Total)
}

// Broadcasts arrive from the checkout flow while clients connect and drop on
// their own goroutines; the shared client set must survive that interleaving.
// Run with -race.
func TestBroadcastNewOrder_ConcurrentWithConnects(t *testing.T) {
	url, shutdown := startWSServer(t)
	defer shutdown()

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				BroadcastNewOrder(models.Order{ID: "cs_test_456", Total: 1})
			}
		}
	}()

	for i := 0; i < 20; i++ {
		conn, _, err := websocket.DefaultDialer.Dial(url, nil)
		require.NoError(t, err)
		// Closing triggers the handler's removal path mid-broadcast
		conn.Close()
	}

	close(stop)
	wg.Wait()
}
