package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Client represents one connected device.
type Client struct {
	UserID string
	Conn   *websocket.Conn
	Send   chan []byte
}

// JoinAuthorizer reports whether a user may open a conversation room. The
// chat flow wires its participant check in here so a join frame carrying
// someone else's conversation id is rejected.
type JoinAuthorizer func(ctx context.Context, conversationID, userID string) bool

// Manager keeps the registry of connected clients and per-conversation
// rooms. It replaces the snapshot listeners the mobile SDK provided: the
// chat flow pushes new_message and conversation_update events through it.
type Manager struct {
	clients       map[string]*Client
	rooms         map[string]map[string]bool // conversationID -> set of userIDs
	Register      chan *Client
	Unregister    chan *Client
	authorizeJoin JoinAuthorizer
	mutex         sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		rooms:      make(map[string]map[string]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Start runs the manager's main loop in a goroutine.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client.UserID] = client
				m.mutex.Unlock()
				log.Printf("Client registered: %s", client.UserID)

			case client := <-m.Unregister:
				m.mutex.Lock()
				if _, ok := m.clients[client.UserID]; ok {
					delete(m.clients, client.UserID)
					for _, members := range m.rooms {
						delete(members, client.UserID)
					}
					close(client.Send)
				}
				m.mutex.Unlock()
				log.Printf("Client unregistered: %s", client.UserID)

			case <-ctx.Done():
				return
			}
		}
	}()
}

// SetJoinAuthorizer installs the membership check applied on every join.
// Call during startup, before clients connect; the manager holds no lock
// around the callback.
func (m *Manager) SetJoinAuthorizer(fn JoinAuthorizer) {
	m.authorizeJoin = fn
}

// JoinRoom marks a user as having the conversation open. Returns false when
// the authorizer denies the user, in which case the room is untouched.
func (m *Manager) JoinRoom(ctx context.Context, conversationID, userID string) bool {
	if m.authorizeJoin != nil && !m.authorizeJoin(ctx, conversationID, userID) {
		log.Printf("Rejected join for %s on conversation %s", userID, conversationID)
		return false
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.rooms[conversationID] == nil {
		m.rooms[conversationID] = make(map[string]bool)
	}
	m.rooms[conversationID][userID] = true
	return true
}

// LeaveRoom removes a user from a conversation room.
func (m *Manager) LeaveRoom(conversationID, userID string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if members, ok := m.rooms[conversationID]; ok {
		delete(members, userID)
		if len(members) == 0 {
			delete(m.rooms, conversationID)
		}
	}
}

// SendToUser delivers a message to one user if connected.
func (m *Manager) SendToUser(userID string, message []byte) {
	m.mutex.RLock()
	client, ok := m.clients[userID]
	m.mutex.RUnlock()

	if !ok {
		return
	}

	select {
	case client.Send <- message:
	default:
		// Slow consumer; drop rather than block the caller.
		log.Printf("Dropping message for slow client %s", userID)
	}
}

// SendToRoom delivers a message to every user with the conversation open,
// except the excluded sender.
func (m *Manager) SendToRoom(conversationID string, message []byte, excludeUserID string) {
	m.mutex.RLock()
	members := make([]string, 0, len(m.rooms[conversationID]))
	for userID := range m.rooms[conversationID] {
		if userID != excludeUserID {
			members = append(members, userID)
		}
	}
	m.mutex.RUnlock()

	for _, userID := range members {
		m.SendToUser(userID, message)
	}
}

// Event is the envelope for inbound client frames.
type Event struct {
	Type           string `json:"type"` // "join", "leave"
	ConversationID string `json:"conversation_id"`
}

// ReadPump reads control frames (room join/leave) until the connection dies.
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("websocket read error for %s: %v", c.UserID, err)
			}
			break
		}

		var event Event
		if err := json.Unmarshal(raw, &event); err != nil {
			log.Printf("Ignoring malformed frame from %s: %v", c.UserID, err)
			continue
		}

		switch event.Type {
		case "join":
			if event.ConversationID != "" {
				m.JoinRoom(context.Background(), event.ConversationID, c.UserID)
			}
		case "leave":
			if event.ConversationID != "" {
				m.LeaveRoom(event.ConversationID, c.UserID)
			}
		}
	}
}

// WritePump drains the send channel into the connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("websocket write error for %s: %v", c.UserID, err)
			return
		}
	}
}
