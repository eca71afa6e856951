package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// ConnectionManager tracks the open watch streams. Every connection has its
// own write lock because a gorilla conn allows only one concurrent writer.
type ConnectionManager struct {
	connections map[string]*websocket.Conn
	writeMu     map[string]*sync.Mutex
	mu          sync.RWMutex
}

func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{
		connections: make(map[string]*websocket.Conn),
		writeMu:     make(map[string]*sync.Mutex),
	}
}

func (cm *ConnectionManager) AddConnection(id string, conn *websocket.Conn) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if old, exists := cm.connections[id]; exists {
		old.Close()
	}
	cm.connections[id] = conn
	cm.writeMu[id] = &sync.Mutex{}
}

func (cm *ConnectionManager) RemoveConnection(id string) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if conn, exists := cm.connections[id]; exists {
		conn.Close()
		delete(cm.connections, id)
		delete(cm.writeMu, id)
	}
}

// SendMessage writes message to the stream id. A stream that is already
// gone is not an error.
func (cm *ConnectionManager) SendMessage(id string, message ServerMessage) error {
	cm.mu.RLock()
	conn, exists := cm.connections[id]
	mu, muExists := cm.writeMu[id]
	cm.mu.RUnlock()

	if !exists || !muExists {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(message)
}

// Close sends a normal close frame to id and drops the stream.
func (cm *ConnectionManager) Close(id, reason string) {
	cm.mu.RLock()
	conn, exists := cm.connections[id]
	mu := cm.writeMu[id]
	cm.mu.RUnlock()

	if exists {
		mu.Lock()
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, reason),
			time.Now().Add(writeWait))
		mu.Unlock()
	}
	cm.RemoveConnection(id)
}

// CloseAll ends every stream, used on server shutdown.
func (cm *ConnectionManager) CloseAll(reason string) {
	cm.mu.RLock()
	ids := make([]string, 0, len(cm.connections))
	for id := range cm.connections {
		ids = append(ids, id)
	}
	cm.mu.RUnlock()

	for _, id := range ids {
		cm.Close(id, reason)
	}
}

func (cm *ConnectionManager) Count() int {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return len(cm.connections)
}
