package room

import (
	"log/slog"
	"time"

	"pong/game"
	"pong/protocol"
)

// Room owns one MatchState and drives its simulation. All state mutation
// happens on the Run goroutine, fed by Inbox; registry, gateway, and ticker
// never touch the match directly, which keeps every mutation for one room
// serialized without a lock.
type Room struct {
	Inbox chan any

	name    string
	state   *game.MatchState
	clients map[string]Conn
	logger  *slog.Logger

	// Tick source. Owned by the Run goroutine: the ticker exists only
	// while the match is running, and a nil tick channel never fires.
	ticker *time.Ticker
	tick   <-chan time.Time

	quit chan struct{}
}

// newRoom builds a room holding its creating session and sends that session
// its first snapshot. The caller starts Run.
func newRoom(name, sessionID string, conn Conn, logger *slog.Logger) *Room {
	r := &Room{
		Inbox:   make(chan any, 256),
		name:    name,
		state:   game.NewMatchState(name, sessionID),
		clients: map[string]Conn{sessionID: conn},
		logger:  logger,
		quit:    make(chan struct{}),
	}
	r.sendTo(sessionID, protocol.MsgGameState, r.state)
	return r
}

// Name returns the room's registry key.
func (r *Room) Name() string {
	return r.name
}

// Stop terminates the Run loop. No tick fires after Run observes the stop.
func (r *Room) Stop() {
	close(r.quit)
}

func (r *Room) Run() {
	defer r.stopTicking()
	for {
		select {
		case <-r.quit:
			return
		case cmd := <-r.Inbox:
			r.handleCommand(cmd)
		case <-r.tick:
			r.stepOnce()
		}
	}
}

func (r *Room) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case Join:
		r.handleJoin(c.SessionID, c.Conn)
	case PaddleMove:
		r.handlePaddleMove(c.SessionID, c.Y)
	case Leave:
		r.handleLeave(c.SessionID)
	}
}

func (r *Room) handleJoin(sessionID string, conn Conn) {
	r.state.AddPlayer(sessionID)
	r.clients[sessionID] = conn
	r.sendTo(sessionID, protocol.MsgGameState, r.state)
	if len(r.state.PlayerIDs) == 2 {
		r.broadcast(protocol.MsgPlayerJoined, protocol.PlayerJoined{
			PlayerID: sessionID,
			Room:     r.name,
		})
		r.broadcast(protocol.MsgGameState, r.state)
		r.startTicking()
		r.logger.Info("match started", "room", r.name, "session", sessionID)
	}
}

func (r *Room) handlePaddleMove(sessionID string, y float64) {
	clamped, ok := r.state.SetPaddleY(sessionID, y)
	if !ok {
		// Orphaned intent: the sender is no longer a player here.
		return
	}
	r.broadcastExcept(sessionID, protocol.MsgOpponentPaddleMove, protocol.OpponentPaddleMove{
		PlayerID: sessionID,
		Y:        clamped,
	})
}

func (r *Room) handleLeave(sessionID string) {
	if _, ok := r.state.Players[sessionID]; !ok {
		delete(r.clients, sessionID)
		return
	}
	r.state.RemovePlayer(sessionID)
	delete(r.clients, sessionID)
	if len(r.state.PlayerIDs) < 2 {
		r.stopTicking()
		r.broadcast(protocol.MsgPlayerLeft, protocol.PlayerLeft{PlayerID: sessionID})
	}
	r.broadcast(protocol.MsgGameState, r.state)
	r.logger.Info("player left", "room", r.name, "session", sessionID)
}

func (r *Room) stepOnce() {
	if len(r.state.PlayerIDs) < 2 {
		r.stopTicking()
		return
	}
	if ev := game.Step(r.state); ev != nil {
		r.logger.Info("goal", "room", r.name, "scorer", ev.ScorerID, "scores", r.state.Scores)
		r.broadcast(protocol.MsgScoreUpdate, protocol.ScoreUpdate{
			Scores:   r.state.Scores,
			ScorerID: ev.ScorerID,
			RoomName: r.name,
		})
	}
	r.broadcast(protocol.MsgGameState, r.state)
}

func (r *Room) startTicking() {
	if r.ticker != nil {
		return
	}
	r.ticker = time.NewTicker(time.Second / game.TickHz)
	r.tick = r.ticker.C
}

// stopTicking is idempotent. Because ticks are consumed on the same
// goroutine that calls this, no tick runs after it returns.
func (r *Room) stopTicking() {
	if r.ticker == nil {
		return
	}
	r.ticker.Stop()
	r.ticker = nil
	r.tick = nil
}

func (r *Room) broadcast(t string, payload any) {
	b, err := protocol.Encode(t, payload)
	if err != nil {
		r.logger.Error("encode broadcast", "room", r.name, "type", t, "error", err)
		return
	}
	for id, c := range r.clients {
		if err := c.Send(b); err != nil {
			// Close and let the gateway's dead read loop drive the
			// normal leave path.
			_ = c.Close()
			r.logger.Warn("dropping unreachable client", "room", r.name, "session", id)
		}
	}
}

func (r *Room) broadcastExcept(sessionID, t string, payload any) {
	b, err := protocol.Encode(t, payload)
	if err != nil {
		r.logger.Error("encode broadcast", "room", r.name, "type", t, "error", err)
		return
	}
	for id, c := range r.clients {
		if id == sessionID {
			continue
		}
		if err := c.Send(b); err != nil {
			_ = c.Close()
			r.logger.Warn("dropping unreachable client", "room", r.name, "session", id)
		}
	}
}

func (r *Room) sendTo(sessionID, t string, payload any) {
	c, ok := r.clients[sessionID]
	if !ok {
		return
	}
	b, err := protocol.Encode(t, payload)
	if err != nil {
		r.logger.Error("encode send", "room", r.name, "type", t, "error", err)
		return
	}
	_ = c.Send(b)
}
