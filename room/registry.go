package room

import (
	"crypto/rand"
	"log/slog"
	"math/big"
	"sync"
)

// RoomInfo is returned by the API for the room listing.
type RoomInfo struct {
	Name    string `json:"name"`
	Players int    `json:"players"`
}

// Registry holds every live room. It owns room assignment and deletion; the
// per-room match state stays inside each room's goroutine. The player counts
// live here, under the registry lock, so capacity decisions never race with
// joins in flight.
type Registry struct {
	mu     sync.Mutex
	rooms  map[string]*Room
	counts map[string]int
	logger *slog.Logger
}

func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		rooms:  make(map[string]*Room),
		counts: make(map[string]int),
		logger: logger,
	}
}

// Assign seats a connecting session in the first room with a free slot, or
// creates a new room with the session as its first player. The scan order
// over joinable rooms is map iteration order and deliberately unspecified.
func (g *Registry) Assign(sessionID string, conn Conn) *Room {
	g.mu.Lock()
	defer g.mu.Unlock()

	for name, r := range g.rooms {
		if g.counts[name] < 2 {
			g.counts[name]++
			// Sent under the lock so inbox order matches seat order.
			r.Inbox <- Join{SessionID: sessionID, Conn: conn}
			return r
		}
	}

	name := g.newRoomName()
	r := newRoom(name, sessionID, conn, g.logger)
	g.rooms[name] = r
	g.counts[name] = 1
	go r.Run()
	g.logger.Info("room created", "room", name, "session", sessionID)
	return r
}

// Release records a session's disconnect. The room is deleted the moment its
// last player leaves; otherwise the room is told so it can stop simulating
// and notify the remaining player.
func (g *Registry) Release(r *Room, sessionID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.counts[r.name]
	if !ok {
		g.logger.Warn("release for unknown room", "room", r.name, "session", sessionID)
		return
	}
	if n <= 1 {
		delete(g.rooms, r.name)
		delete(g.counts, r.name)
		r.Stop()
		g.logger.Info("room deleted", "room", r.name)
		return
	}
	g.counts[r.name] = n - 1
	r.Inbox <- Leave{SessionID: sessionID}
}

// Rooms returns a snapshot of all live rooms with their player counts.
func (g *Registry) Rooms() []RoomInfo {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]RoomInfo, 0, len(g.rooms))
	for name := range g.rooms {
		out = append(out, RoomInfo{Name: name, Players: g.counts[name]})
	}
	return out
}

// Close stops every room loop. Used on server shutdown.
func (g *Registry) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for name, r := range g.rooms {
		r.Stop()
		delete(g.rooms, name)
		delete(g.counts, name)
	}
}

const nameChars = "abcdefghijklmnopqrstuvwxyz0123456789"

// newRoomName draws "room-" plus five random characters, redrawing on the
// unlikely collision with a live room. Caller holds the lock.
func (g *Registry) newRoomName() string {
	for {
		name := "room-" + randomCode(5)
		if _, exists := g.rooms[name]; !exists {
			return name
		}
	}
}

func randomCode(n int) string {
	b := make([]byte, n)
	max := big.NewInt(int64(len(nameChars)))
	for i := range b {
		idx, _ := rand.Int(rand.Reader, max)
		b[i] = nameChars[idx.Int64()]
	}
	return string(b)
}
