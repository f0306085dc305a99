package protocol

// Payloads sent by the server. The gameState event carries game.MatchState
// serialized as-is, so it has no struct here.

type PlayerJoined struct {
	PlayerID string `json:"playerId"`
	Room     string `json:"room"`
}

type PlayerLeft struct {
	PlayerID string `json:"playerId"`
}

type OpponentPaddleMove struct {
	PlayerID string  `json:"playerId"`
	Y        float64 `json:"y"`
}

type ScoreUpdate struct {
	Scores   map[string]int `json:"scores"`
	ScorerID string         `json:"scorerId"`
	RoomName string         `json:"roomName"`
}
