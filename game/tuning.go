package game

// Field geometry and speeds shared with the renderer client. All distances
// are in field units, speeds in units per tick.
const (
	FieldWidth   = 800.0
	FieldHeight  = 600.0
	PaddleWidth  = 10.0
	PaddleHeight = 100.0
	BallRadius   = 7.0

	BallSpeed = 5.0 // per-axis velocity magnitude
	TickHz    = 60

	// PaddleStep is the client-local step per key press; the server only
	// clamps whatever position the client asks for.
	PaddleStep = 20.0
)
