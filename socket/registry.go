package socket

import (
	"sync"

	socketio "github.com/googollee/go-socket.io"
)

// Registry maps connected user ids to their live socket connections. It is a
// routing table only; game rules never live here. All access goes through the
// lock so a reconnect racing a disconnect cannot leave a stale handle behind.
type Registry struct {
	mu    sync.RWMutex
	conns map[string]socketio.Conn
}

func NewRegistry() *Registry {
	return &Registry{conns: map[string]socketio.Conn{}}
}

// Register records conn as the live connection for userID, replacing any
// previous one.
func (r *Registry) Register(userID string, conn socketio.Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conns[userID] = conn
}

// Unregister removes the mapping for userID, but only if conn is still the
// registered handle. A stale disconnect must not evict a fresh connection.
func (r *Registry) Unregister(userID string, conn socketio.Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if current, ok := r.conns[userID]; ok && current.ID() == conn.ID() {
		delete(r.conns, userID)
	}
}

// Get returns the live connection for userID, if any.
func (r *Registry) Get(userID string) (socketio.Conn, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	conn, ok := r.conns[userID]
	return conn, ok
}
