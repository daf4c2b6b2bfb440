package handlers

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/mcalvert/outings-api/internal/logger"
)

func TestHub_ConcurrentRegisterAndBroadcast(t *testing.T) {
	logger.Init("disabled")

	h := &Hub{rooms: make(map[uuid.UUID]map[*connection]bool)}
	userA := uuid.New()
	userB := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conn := &connection{}
			h.register(userA, conn)
			// Broadcasts race against room churn; userB has no
			// connections so no write is attempted.
			h.Broadcast(userB, WSEvent{Type: EventNoteUpdated})
			h.unregister(userA, conn)
		}()
	}
	wg.Wait()

	assert.Empty(t, h.rooms)
}

func TestHub_BroadcastToUnknownUserIsNoop(t *testing.T) {
	logger.Init("disabled")

	h := &Hub{rooms: make(map[uuid.UUID]map[*connection]bool)}
	assert.NotPanics(t, func() {
		h.Broadcast(uuid.New(), WSEvent{Type: EventActivityCreated})
	})
}
