package loop

import "fmt"

// Phase is the lifecycle phase of a game.
type Phase int

const (
	// PhaseRunning dispatches ticks.
	PhaseRunning Phase = iota
	// PhaseAwaitingAck has ticks stopped until Acknowledge is called.
	PhaseAwaitingAck
)

func (p Phase) String() string {
	if p == PhaseAwaitingAck {
		return "awaiting-ack"
	}
	return "running"
}

// Dialog is the message a paused game is waiting on.
type Dialog int

const (
	DialogNone Dialog = iota
	// DialogCollision follows a hit that left lives remaining.
	DialogCollision
	// DialogGameOver follows the hit that took the last life.
	DialogGameOver
)

// shipHit takes a life and stops the game until the hit is acknowledged.
// The ship is hidden and exempt from hit-testing from this point on.
func (g *Game) shipHit() {
	g.lives--
	g.checkLives()

	g.invulnerable = true
	g.shipVisible = false
	if g.lives > 0 {
		g.dialog = DialogCollision
	} else {
		g.dialog = DialogGameOver
	}
	g.phase = PhaseAwaitingAck
	g.sched.Pause()

	g.logger.Info("ship hit", "lives", g.lives, "score", g.score, "game_over", g.dialog == DialogGameOver)
}

// Acknowledge dismisses the pending dialog and resumes the game. After a
// collision the ship respawns and the field and score are kept; after game
// over the score is recorded and everything is reset. Either way the ship
// starts invulnerable. It reports false when nothing was pending.
func (g *Game) Acknowledge() bool {
	if g.phase != PhaseAwaitingAck {
		return false
	}

	if g.dialog == DialogGameOver {
		g.recordScore()
		g.lives = g.cfg.Lives
		g.asteroids = nil
		g.score = 0
	}
	g.checkLives()

	g.ship.Reset(g.field)
	g.controls.Reset()
	g.startInvulnerability()

	g.dialog = DialogNone
	g.phase = PhaseRunning
	g.sched.Resume()
	return true
}

func (g *Game) recordScore() {
	if g.ledger == nil {
		return
	}
	if err := g.ledger.Add(g.player, g.score); err != nil {
		g.notice = "Could not save scores: " + err.Error()
		g.logger.Warn("score not saved", "player", g.player, "score", g.score, "error", err)
		return
	}
	g.notice = ""
	g.logger.Info("score recorded", "player", g.player, "score", g.score)
}

func (g *Game) startInvulnerability() {
	if g.invTimer != nil {
		g.invTimer.Stop()
	}
	g.invulnerable = true
	g.shipVisible = false
	g.invTimer = g.sched.After(g.cfg.Invulnerability, g.endInvulnerability)
}

func (g *Game) endInvulnerability() {
	g.invulnerable = false
	g.shipVisible = true
	g.invTimer = nil
}

// checkLives panics when lives have gone negative.
func (g *Game) checkLives() {
	if g.lives < 0 {
		panic(fmt.Sprintf("loop: lives went negative (%d)", g.lives))
	}
}

// Notice returns the last non-fatal problem to show the player.
func (g *Game) Notice() string {
	return g.notice
}
