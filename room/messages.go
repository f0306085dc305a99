package room

// Conn is a session's outbound message sink. The websocket layer implements
// it; tests use fakes.
type Conn interface {
	Send([]byte) error
	Close() error
}

// Join: issued by the registry when it seats a second session in a room.
// The creating session is seated at construction and never sees a Join.
type Join struct {
	SessionID string
	Conn      Conn
}

// PaddleMove: a session asks to place its paddle at Y. Unclamped.
type PaddleMove struct {
	SessionID string
	Y         float64
}

// Leave: issued by the registry when a session disconnects from a room that
// still has players left.
type Leave struct {
	SessionID string
}
