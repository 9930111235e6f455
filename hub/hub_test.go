package hub

import (
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helpkhazaana-eng/production-app/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

func TestSubscribe_ListenerReceivesBroadcasts(t *testing.T) {
	var mu sync.Mutex
	var received []Message
	Subscribe(func(msg Message) {
		mu.Lock()
		defer mu.Unlock()
		received = append(received, msg)
	})

	BroadcastCartUpdate("client-1", map[string]int{"items": 2})
	BroadcastOrderPlaced("client-1", map[string]string{"orderId": "ORD-20260828-00042"})
	BroadcastSheetsStatus(map[string]bool{"healthy": false})

	mu.Lock()
	defer mu.Unlock()
	// Listeners see every event, including other clients' cart updates; only
	// the websocket fan-out filters by client id.
	assert.Len(t, received, 3)
	assert.Equal(t, EventCartUpdate, received[0].Event)
	assert.Equal(t, "client-1", received[0].ClientID)
	assert.Equal(t, EventOrderPlaced, received[1].Event)
	assert.Equal(t, EventSheetsStatus, received[2].Event)
	assert.Empty(t, received[2].ClientID)
}
