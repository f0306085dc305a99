package protocol

import "encoding/json"

// Event names shared with the renderer client. The server emits everything
// except MsgPaddleMove, which is the only client-to-server event.
const (
	MsgGameState          = "gameState"
	MsgPlayerJoined       = "playerJoined"
	MsgPlayerLeft         = "playerLeft"
	MsgPaddleMove         = "paddleMove"
	MsgOpponentPaddleMove = "opponentPaddleMove"
	MsgScoreUpdate        = "scoreUpdate"
)

type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"` // raw payload bytes
}
