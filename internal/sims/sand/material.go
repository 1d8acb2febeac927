package sand

// Material identifies the substance a cell currently holds. The numeric
// values are fixed so the raw material buffer can be consumed directly by
// external renderers.
type Material uint8

const (
	Air Material = iota
	Rock
	Sand
	Water
	Smoke
)

// String names the material for diagnostics and HUD text.
func (m Material) String() string {
	switch m {
	case Air:
		return "air"
	case Rock:
		return "rock"
	case Sand:
		return "sand"
	case Water:
		return "water"
	case Smoke:
		return "smoke"
	}
	return "unknown"
}

// Tint is a cosmetic shading level carried alongside a material. It travels
// with the material on every move but never affects movement itself.
type Tint uint8

const (
	TintNone Tint = iota
	TintDark
	TintDarker
	TintDarkest
)

// State classifies a material for movement purposes. Air counts as gas so
// that "move into empty space" and "move into smoke" share one rule.
type State uint8

const (
	StateSolid State = iota
	StateLiquid
	StateGas
)

// StateOf maps a material to its movement state.
func StateOf(m Material) State {
	switch m {
	case Rock, Sand:
		return StateSolid
	case Water:
		return StateLiquid
	default:
		return StateGas
	}
}
