package game

// Authoritative match state. Every MatchState is owned by exactly one room
// goroutine; nothing outside it mutates these structs while the room runs.

type Player struct {
	ID      string  `json:"id"`
	PaddleY float64 `json:"paddleY"`
}

type Ball struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	DX     float64 `json:"dx"`
	DY     float64 `json:"dy"`
	Radius float64 `json:"radius"`
}

// MatchState is the full per-room snapshot broadcast to clients. PlayerIDs
// is join order: index 0 defends the left edge, index 1 the right. Players
// and Scores always hold exactly the sessions listed in PlayerIDs.
type MatchState struct {
	RoomName  string             `json:"roomName"`
	PlayerIDs []string           `json:"playerIds"`
	Players   map[string]*Player `json:"players"`
	Scores    map[string]int     `json:"scores"`
	Ball      Ball               `json:"ball"`
}

// NewMatchState builds a fresh match holding only the creating session, with
// the ball centered and moving toward the right seat.
func NewMatchState(roomName, sessionID string) *MatchState {
	s := &MatchState{
		RoomName: roomName,
		Players:  make(map[string]*Player),
		Scores:   make(map[string]int),
		Ball: Ball{
			X:      FieldWidth / 2,
			Y:      FieldHeight / 2,
			DX:     BallSpeed,
			DY:     BallSpeed,
			Radius: BallRadius,
		},
	}
	s.AddPlayer(sessionID)
	return s
}

// AddPlayer appends a session with a centered paddle and a zero score. The
// registry never routes a join to a full room, so capacity is not rechecked
// here.
func (s *MatchState) AddPlayer(sessionID string) {
	s.PlayerIDs = append(s.PlayerIDs, sessionID)
	s.Players[sessionID] = &Player{
		ID:      sessionID,
		PaddleY: FieldHeight/2 - PaddleHeight/2,
	}
	s.Scores[sessionID] = 0
}

// RemovePlayer drops the session from all three maps. A remaining player
// keeps its score and shifts to the first seat.
func (s *MatchState) RemovePlayer(sessionID string) {
	for i, id := range s.PlayerIDs {
		if id == sessionID {
			s.PlayerIDs = append(s.PlayerIDs[:i], s.PlayerIDs[i+1:]...)
			break
		}
	}
	delete(s.Players, sessionID)
	delete(s.Scores, sessionID)
}

// SetPaddleY clamps y to [0, FieldHeight-PaddleHeight] and stores it,
// returning the clamped value. Reports false when the session is not a
// player in this match.
func (s *MatchState) SetPaddleY(sessionID string, y float64) (float64, bool) {
	p, ok := s.Players[sessionID]
	if !ok {
		return 0, false
	}
	if y < 0 {
		y = 0
	}
	if y > FieldHeight-PaddleHeight {
		y = FieldHeight - PaddleHeight
	}
	p.PaddleY = y
	return y, true
}
