package client

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomz197/polyroids/internal/draw"
	"github.com/tomz197/polyroids/internal/geom"
	"github.com/tomz197/polyroids/internal/loop"
	"github.com/tomz197/polyroids/internal/scores"
)

// Ship sprite scale used for drawing only; the collision triangle is
// derived from the unscaled sprite.
const (
	shipScaleX = 1.0 / 15
	shipScaleY = 1.0 / 13
)

// Text is a string placed at a 1-based terminal position.
type Text struct {
	Col, Row int
	S        string
}

// Renderer turns snapshots into canvas pixels and positioned text.
type Renderer struct {
	hud      lipgloss.Style
	panel    lipgloss.Style
	heading  lipgloss.Style
	dialog   lipgloss.Style
	gameOver lipgloss.Style
	notice   lipgloss.Style
	title    lipgloss.Style
	hint     lipgloss.Style
}

// NewRenderer creates a renderer whose styles target r's color profile.
// A nil r uses the default renderer.
func NewRenderer(r *lipgloss.Renderer) *Renderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Renderer{
		hud:      r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		panel:    r.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("245")).Padding(0, 1),
		heading:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		dialog:   r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("14")).Padding(1, 3).Align(lipgloss.Center),
		gameOver: r.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("9")).Padding(1, 3).Align(lipgloss.Center),
		notice:   r.NewStyle().Foreground(lipgloss.Color("208")),
		title:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")).Border(lipgloss.ThickBorder()).Padding(0, 4),
		hint:     r.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// World draws the asteroids, projectiles and ship of s onto c.
func (r *Renderer) World(c *draw.Canvas, s loop.Snapshot) {
	for _, a := range s.Asteroids {
		c.Polygon(a, false)
	}
	for _, p := range s.Projectiles {
		c.Polygon(projectileBox(p), true)
	}
	if s.Ship.Visible {
		c.Polygon(shipSprite(s.Ship), true)
	}
}

func projectileBox(p geom.Point) geom.Polygon {
	const size = 5
	return geom.Polygon{
		{X: p.X, Y: p.Y},
		{X: p.X + size, Y: p.Y},
		{X: p.X + size, Y: p.Y + size},
		{X: p.X, Y: p.Y + size},
	}
}

// shipSprite returns the drawn ship: a triangle the size of the scaled
// sprite, centred on the ship and turned to its heading.
func shipSprite(v loop.ShipView) geom.Polygon {
	w := v.SpriteWidth * shipScaleX
	h := v.SpriteHeight * shipScaleY
	corners := [...]geom.Point{
		{X: 0, Y: -h / 2},
		{X: w / 2, Y: h / 2},
		{X: 0, Y: h / 4},
		{X: -w / 2, Y: h / 2},
	}

	rad := v.Heading * math.Pi / 180
	sin, cos := math.Sincos(rad)
	poly := make(geom.Polygon, len(corners))
	for i, p := range corners {
		poly[i] = geom.Point{
			X: v.X + p.X*cos - p.Y*sin,
			Y: v.Y + p.X*sin + p.Y*cos,
		}
	}
	return poly
}

// HUD returns the score and lives line, the top score panel and any notice.
func (r *Renderer) HUD(s loop.Snapshot, cols, rows int) []Text {
	texts := []Text{
		{Col: 2, Row: 1, S: r.hud.Render(fmt.Sprintf("Score: %-8d", s.Score))},
		{Col: 2, Row: 2, S: r.hud.Render(fmt.Sprintf("Lives: %-3d", s.Lives))},
	}

	if len(s.TopScores) > 0 {
		panel := r.panel.Render(r.heading.Render("Top scores") + "\n" + scoreLines(s.TopScores))
		texts = append(texts, block(panel, cols-lipgloss.Width(panel), 1)...)
	}

	if s.Notice != "" {
		texts = append(texts, Text{Col: 2, Row: rows, S: r.notice.Render(s.Notice)})
	}
	return texts
}

func scoreLines(records []scores.Record) string {
	lines := make([]string, len(records))
	for i, rec := range records {
		lines[i] = fmt.Sprintf("%s: %d", rec.Name, rec.Score)
	}
	return strings.Join(lines, "\n")
}

// Dialog returns the centred acknowledgement box, or nothing when no dialog
// is pending.
func (r *Renderer) Dialog(s loop.Snapshot, cols, rows int) []Text {
	var box string
	switch s.Dialog {
	case loop.DialogCollision:
		box = r.dialog.Render(fmt.Sprintf(
			"Your ship collided with an asteroid!\nLives left: %d\n\n%s",
			s.Lives, r.hint.Render("Press Enter to continue"),
		))
	case loop.DialogGameOver:
		box = r.gameOver.Render(fmt.Sprintf(
			"GAME OVER\nFinal score: %d\n\n%s",
			s.Score, r.hint.Render("Press Enter to play again"),
		))
	default:
		return nil
	}
	return centred(box, cols, rows)
}

// Title returns the title screen with instructions and the best scores.
func (r *Renderer) Title(top []scores.Record, cols, rows int) []Text {
	var b strings.Builder
	b.WriteString(r.title.Render("P O L Y R O I D S"))
	b.WriteString("\n\n")
	b.WriteString(r.heading.Render("Controls"))
	b.WriteString("\n")
	b.WriteString(strings.Join([]string{
		"Left / Right . . . Rotate",
		"Up . . . . . . . . Thrust",
		"Down . . . . . Hyperspace",
		"Space  . . . . . . . Fire",
		"Q  . . . . . . . . . Quit",
	}, "\n"))
	if len(top) > 0 {
		b.WriteString("\n\n")
		b.WriteString(r.heading.Render("Top scores"))
		b.WriteString("\n")
		b.WriteString(scoreLines(top))
	}
	b.WriteString("\n\n")
	b.WriteString(r.hint.Render(">>  Press Enter to start  <<"))

	return centred(lipgloss.NewStyle().Align(lipgloss.Center).Render(b.String()), cols, rows)
}

// centred places a multi-line block in the middle of the terminal.
func centred(s string, cols, rows int) []Text {
	col := (cols-lipgloss.Width(s))/2 + 1
	row := (rows-lipgloss.Height(s))/2 + 1
	return block(s, col, row)
}

// block splits a multi-line string into one Text per line.
func block(s string, col, row int) []Text {
	lines := strings.Split(s, "\n")
	texts := make([]Text, len(lines))
	for i, line := range lines {
		texts[i] = Text{Col: max(col, 1), Row: row + i, S: line}
	}
	return texts
}
