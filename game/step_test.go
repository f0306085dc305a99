package game

import (
	"math"
	"testing"
)

func twoPlayerMatch() *MatchState {
	s := NewMatchState("room-test", "p1")
	s.AddPlayer("p2")
	return s
}

func TestStepAdvancesBall(t *testing.T) {
	s := twoPlayerMatch()
	s.Ball = Ball{X: 400, Y: 300, DX: 5, DY: -5, Radius: BallRadius}

	Step(s)
	if s.Ball.X != 405 || s.Ball.Y != 295 {
		t.Fatalf("ball after 1 step = (%f, %f), want (405, 295)", s.Ball.X, s.Ball.Y)
	}
}

func TestStepWallBounceFlipsVerticalSign(t *testing.T) {
	s := twoPlayerMatch()
	s.Ball = Ball{X: 400, Y: 590, DX: 0, DY: 5, Radius: BallRadius}

	Step(s)
	if s.Ball.DY != -5 {
		t.Fatalf("dy after bottom bounce = %f, want -5", s.Ball.DY)
	}
	// No position correction: the ball keeps its overlapping position.
	if s.Ball.Y != 595 {
		t.Fatalf("y after bottom bounce = %f, want 595", s.Ball.Y)
	}

	s.Ball = Ball{X: 400, Y: 10, DX: 0, DY: -5, Radius: BallRadius}
	Step(s)
	if s.Ball.DY != 5 {
		t.Fatalf("dy after top bounce = %f, want 5", s.Ball.DY)
	}
}

func TestStepPaddleBounce(t *testing.T) {
	s := twoPlayerMatch()
	// Left paddle spawns at y=250; aim the ball into its band.
	s.Ball = Ball{X: 20, Y: 300, DX: -5, DY: 0, Radius: BallRadius}

	Step(s)
	if s.Ball.DX != 5 {
		t.Fatalf("dx after left paddle hit = %f, want 5", s.Ball.DX)
	}

	// Right side, symmetric.
	s.Ball = Ball{X: 780, Y: 300, DX: 5, DY: 0, Radius: BallRadius}
	Step(s)
	if s.Ball.DX != -5 {
		t.Fatalf("dx after right paddle hit = %f, want -5", s.Ball.DX)
	}
}

func TestStepPaddleBounceRequiresApproach(t *testing.T) {
	s := twoPlayerMatch()
	// Ball overlaps the left paddle band but is already moving away; the
	// guard must not flip it back.
	s.Ball = Ball{X: 10, Y: 300, DX: 5, DY: 0, Radius: BallRadius}

	Step(s)
	if s.Ball.DX != 5 {
		t.Fatalf("dx = %f, want 5 (no double bounce)", s.Ball.DX)
	}
}

func TestStepPaddleBandIsHalfOpen(t *testing.T) {
	s := twoPlayerMatch()
	s.Players["p1"].PaddleY = 200

	// Center exactly at the paddle top edge counts as a hit.
	s.Ball = Ball{X: 20, Y: 200, DX: -5, DY: 0, Radius: BallRadius}
	Step(s)
	if s.Ball.DX != 5 {
		t.Fatalf("dx with ball at paddle top = %f, want 5", s.Ball.DX)
	}

	// Center exactly at the bottom edge does not.
	s.Ball = Ball{X: 20, Y: 300, DX: -5, DY: 0, Radius: BallRadius}
	Step(s)
	if s.Ball.DX != -5 {
		t.Fatalf("dx with ball at paddle bottom = %f, want -5 (miss)", s.Ball.DX)
	}
}

func TestStepLeftExitScoresForSecondPlayer(t *testing.T) {
	s := twoPlayerMatch()
	// Paddles are at 250; a ball at y=100 slips past and exits left.
	s.Ball = Ball{X: 11, Y: 100, DX: -5, DY: 0, Radius: BallRadius}

	ev := Step(s)
	if ev == nil || ev.ScorerID != "p2" {
		t.Fatalf("score event = %+v, want scorer p2", ev)
	}
	if s.Scores["p2"] != 1 || s.Scores["p1"] != 0 {
		t.Fatalf("scores = %v, want p2:1 p1:0", s.Scores)
	}
	assertBallServed(t, s, -BallSpeed)
}

func TestStepRightExitScoresForFirstPlayer(t *testing.T) {
	s := twoPlayerMatch()
	s.Ball = Ball{X: 794, Y: 100, DX: 5, DY: 0, Radius: BallRadius}

	ev := Step(s)
	if ev == nil || ev.ScorerID != "p1" {
		t.Fatalf("score event = %+v, want scorer p1", ev)
	}
	if s.Scores["p1"] != 1 {
		t.Fatalf("scores = %v, want p1:1", s.Scores)
	}
	assertBallServed(t, s, BallSpeed)
}

func TestStepNoEventOnPlainTick(t *testing.T) {
	s := twoPlayerMatch()
	s.Ball = Ball{X: 400, Y: 300, DX: 5, DY: 5, Radius: BallRadius}
	if ev := Step(s); ev != nil {
		t.Fatalf("unexpected score event %+v", ev)
	}
}

func TestResetBallServeDirection(t *testing.T) {
	cases := []struct {
		scorer string
		wantDX float64
	}{
		{"p1", BallSpeed},  // first seat scored: serve right, toward p2
		{"p2", -BallSpeed}, // second seat scored: serve left, toward p1
		{"", BallSpeed},    // no scorer: default toward the second seat
	}
	for _, tc := range cases {
		s := twoPlayerMatch()
		s.Ball = Ball{X: 12, Y: 34, DX: -1, DY: -1, Radius: BallRadius}
		ResetBall(s, tc.scorer)
		assertBallServed(t, s, tc.wantDX)
	}
}

func assertBallServed(t *testing.T, s *MatchState, wantDX float64) {
	t.Helper()
	if s.Ball.X != FieldWidth/2 || s.Ball.Y != FieldHeight/2 {
		t.Fatalf("ball at (%f, %f), want center", s.Ball.X, s.Ball.Y)
	}
	if s.Ball.DX != wantDX {
		t.Fatalf("dx = %f, want %f", s.Ball.DX, wantDX)
	}
	if math.Abs(s.Ball.DY) != BallSpeed {
		t.Fatalf("|dy| = %f, want %f", math.Abs(s.Ball.DY), BallSpeed)
	}
}
