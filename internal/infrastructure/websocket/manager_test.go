package websocket

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// registerClients pushes clients through the Register channel. The manager
// loop is sequential, so once the last send returns every earlier client is
// in the registry; a throwaway client flushes the final insert.
func registerClients(m *Manager, clients ...*Client) {
	for _, c := range clients {
		m.Register <- c
	}
	m.Register <- &Client{UserID: "flush", Send: make(chan []byte, 1)}
}

func TestJoinRoomRejectsNonParticipants(t *testing.T) {
	m := NewManager()
	m.SetJoinAuthorizer(func(ctx context.Context, conversationID, userID string) bool {
		return conversationID == "conv1" && (userID == "ana" || userID == "ben")
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m.Start(ctx)

	ana := &Client{UserID: "ana", Send: make(chan []byte, 1)}
	eve := &Client{UserID: "eve", Send: make(chan []byte, 1)}
	registerClients(m, ana, eve)

	assert.True(t, m.JoinRoom(ctx, "conv1", "ana"))
	assert.False(t, m.JoinRoom(ctx, "conv1", "eve"))

	m.SendToRoom("conv1", []byte("kamusta"), "ben")

	select {
	case got := <-ana.Send:
		assert.Equal(t, "kamusta", string(got))
	default:
		t.Fatal("participant did not receive the room broadcast")
	}

	select {
	case <-eve.Send:
		t.Fatal("non-participant received the room broadcast")
	default:
	}
}

func TestJoinRoomWithoutAuthorizerAllowsAll(t *testing.T) {
	m := NewManager()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m.Start(ctx)

	ana := &Client{UserID: "ana", Send: make(chan []byte, 1)}
	registerClients(m, ana)

	assert.True(t, m.JoinRoom(ctx, "conv1", "ana"))
	m.SendToRoom("conv1", []byte("hello"), "ben")

	select {
	case got := <-ana.Send:
		assert.Equal(t, "hello", string(got))
	default:
		t.Fatal("joined client did not receive the room broadcast")
	}
}

func TestLeaveRoomStopsDelivery(t *testing.T) {
	m := NewManager()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m.Start(ctx)

	ana := &Client{UserID: "ana", Send: make(chan []byte, 1)}
	registerClients(m, ana)

	m.JoinRoom(ctx, "conv1", "ana")
	m.LeaveRoom("conv1", "ana")
	m.SendToRoom("conv1", []byte("hello"), "ben")

	select {
	case <-ana.Send:
		t.Fatal("client received a broadcast after leaving the room")
	default:
	}
}
