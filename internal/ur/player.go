package ur

// Player identifies a side. The numeric values double as the tri-state cell
// codes handed to the host: 0 empty, 1 Light, 2 Dark.
type Player uint8

const (
	NoPlayer Player = iota
	Light
	Dark
)

func (p Player) String() string {
	switch p {
	case Light:
		return "Light"
	case Dark:
		return "Dark"
	default:
		return "None"
	}
}

// Opponent returns the other side. NoPlayer has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case Light:
		return Dark
	case Dark:
		return Light
	default:
		return NoPlayer
	}
}

func (p Player) IsValid() bool {
	return p == Light || p == Dark
}

// ParsePlayer accepts the lowercase names used by the host ("light", "dark")
// as well as the display names.
func ParsePlayer(name string) (Player, bool) {
	switch name {
	case "light", "Light":
		return Light, true
	case "dark", "Dark":
		return Dark, true
	default:
		return NoPlayer, false
	}
}
