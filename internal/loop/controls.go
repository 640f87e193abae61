package loop

// Key is a game control.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyThrust
	KeyHyperspace
	KeyFire
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyThrust:
		return "thrust"
	case KeyHyperspace:
		return "hyperspace"
	case KeyFire:
		return "fire"
	}
	return "unknown"
}

// Controls is the held state of every game key. Continuous effects
// (rotation, thrust, hyperspace) are polled once per ship tick; firing
// happens on key-down only.
type Controls struct {
	Left       bool
	Right      bool
	Thrust     bool
	Hyperspace bool

	fireArmed  bool // Fire key released since the last shot
	decelerate bool // Thrust released and not pressed since
}

func newControls() Controls {
	return Controls{fireArmed: true}
}

// Reset releases every key.
func (c *Controls) Reset() {
	*c = newControls()
}

// KeyDown applies a key press. It reports whether the press fires a shot.
func (c *Controls) KeyDown(k Key) (fire bool) {
	switch k {
	case KeyLeft:
		c.Left = true
	case KeyRight:
		c.Right = true
	case KeyThrust:
		c.Thrust = true
		c.decelerate = false
	case KeyHyperspace:
		c.Hyperspace = true
	case KeyFire:
		if c.fireArmed {
			c.fireArmed = false
			return true
		}
	}
	return false
}

// KeyUp applies a key release.
func (c *Controls) KeyUp(k Key) {
	switch k {
	case KeyLeft:
		c.Left = false
	case KeyRight:
		c.Right = false
	case KeyThrust:
		c.Thrust = false
		c.decelerate = true
	case KeyHyperspace:
		c.Hyperspace = false
	case KeyFire:
		c.fireArmed = true
	}
}

// Decelerating reports whether the ship should bleed speed this tick.
func (c *Controls) Decelerating() bool {
	return c.decelerate && !c.Thrust
}
