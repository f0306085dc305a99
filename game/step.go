package game

import "math/rand/v2"

// ScoreEvent reports the goal observed during one tick, if any.
type ScoreEvent struct {
	ScorerID string
}

// Step advances the match by one fixed tick: Euler ball advance, wall
// bounce, paddle bounce, then scoring. Call only with both seats filled.
func Step(s *MatchState) *ScoreEvent {
	b := &s.Ball
	b.X += b.DX
	b.Y += b.DY

	// Wall bounce flips the vertical sign only; there is no position
	// correction, so the ball may overlap the boundary for a tick.
	if b.Y+b.Radius > FieldHeight || b.Y-b.Radius < 0 {
		b.DY = -b.DY
	}

	left := s.Players[s.PlayerIDs[0]]
	right := s.Players[s.PlayerIDs[1]]

	// The direction guards keep the ball from flipping again while it
	// still overlaps a paddle band on following ticks. Collision is
	// checked only at the post-advance position; a fast enough ball can
	// tunnel straight through a paddle between ticks.
	if b.X-b.Radius < PaddleWidth && b.DX < 0 && inPaddleBand(b.Y, left.PaddleY) {
		b.DX = -b.DX
	}
	if b.X+b.Radius > FieldWidth-PaddleWidth && b.DX > 0 && inPaddleBand(b.Y, right.PaddleY) {
		b.DX = -b.DX
	}

	if b.X-b.Radius < 0 {
		scorer := s.PlayerIDs[1]
		s.Scores[scorer]++
		ResetBall(s, scorer)
		return &ScoreEvent{ScorerID: scorer}
	}
	if b.X+b.Radius > FieldWidth {
		scorer := s.PlayerIDs[0]
		s.Scores[scorer]++
		ResetBall(s, scorer)
		return &ScoreEvent{ScorerID: scorer}
	}
	return nil
}

func inPaddleBand(ballY, paddleY float64) bool {
	return ballY >= paddleY && ballY < paddleY+PaddleHeight
}

// ResetBall recenters the ball and serves it toward the player who did not
// score. With no identifiable scorer it serves toward the second seat. The
// vertical direction is a coin flip.
func ResetBall(s *MatchState, scorerID string) {
	s.Ball.X = FieldWidth / 2
	s.Ball.Y = FieldHeight / 2
	if scorerID == "" || scorerID == s.PlayerIDs[0] {
		s.Ball.DX = BallSpeed
	} else {
		s.Ball.DX = -BallSpeed
	}
	if rand.IntN(2) == 0 {
		s.Ball.DY = BallSpeed
	} else {
		s.Ball.DY = -BallSpeed
	}
}
