package ur

const (
	BoardSize       = 20
	PiecesPerPlayer = 7

	// PathStart is the start reserve, PathOff the first borne-off position.
	PathStart = 0
	PathLast  = 20
	PathOff   = 21
)

// segment is a run of consecutive path positions laid over a run of board
// indices with a constant offset. step is +1 when the indices ascend with the
// path and -1 when they descend.
type segment struct {
	firstPath int
	lastPath  int
	index     int
	step      int
}

func (s segment) containsPath(path int) bool {
	return path >= s.firstPath && path <= s.lastPath
}

func (s segment) containsIndex(index int) bool {
	lo, hi := s.index, s.index+s.step*(s.lastPath-s.firstPath)
	if lo > hi {
		lo, hi = hi, lo
	}
	return index >= lo && index <= hi
}

// Board zones: left 0-11 (Light entry 0-3, shared 4-7, Dark entry 8-11),
// centre 12-13 (shared), right 14-19 (Light exit 14-15, shared 16-17,
// Dark exit 18-19). Path positions 13-18 have no square on either route.
var routes = map[Player][]segment{
	Light: {
		{firstPath: 1, lastPath: 4, index: 3, step: -1},
		{firstPath: 5, lastPath: 8, index: 4, step: 1},
		{firstPath: 9, lastPath: 10, index: 12, step: 1},
		{firstPath: 11, lastPath: 12, index: 16, step: 1},
		{firstPath: 19, lastPath: 20, index: 15, step: -1},
	},
	Dark: {
		{firstPath: 1, lastPath: 4, index: 11, step: -1},
		{firstPath: 5, lastPath: 8, index: 4, step: 1},
		{firstPath: 9, lastPath: 10, index: 12, step: 1},
		{firstPath: 11, lastPath: 12, index: 16, step: 1},
		{firstPath: 19, lastPath: 20, index: 19, step: -1},
	},
}

const (
	lastSharedPath = 12
	firstExitPath  = 19
	routeGap       = firstExitPath - lastSharedPath - 1
)

// ToBoardIndex maps a path position of player to its board index. The start
// reserve, borne-off positions, positions without a square and unknown
// players all report false.
func ToBoardIndex(path int, player Player) (int, bool) {
	for _, s := range routes[player] {
		if s.containsPath(path) {
			return s.index + s.step*(path-s.firstPath), true
		}
	}
	return 0, false
}

// ToPath is the inverse of ToBoardIndex. It reports false for indices off the
// board and for squares that belong to the opponent's entry or exit run.
func ToPath(index int, player Player) (int, bool) {
	if index < 0 || index >= BoardSize {
		return 0, false
	}
	for _, s := range routes[player] {
		if s.containsIndex(index) {
			return s.firstPath + (index-s.index)*s.step, true
		}
	}
	return 0, false
}

// EntryIndex is the square a piece lands on when it leaves the start reserve
// with the given roll: 4-dice for Light, 12-dice for Dark.
func EntryIndex(dice uint8, player Player) (int, bool) {
	if dice < MinRoll || dice > MaxRoll {
		return 0, false
	}
	return ToBoardIndex(int(dice), player)
}

// Advance moves steps squares along the route starting at path. Steps that
// leave the shared run continue on the exit squares, so a piece is never
// parked on a position without a square. Results of PathOff or more mean the
// piece is borne off.
func Advance(path, steps int) int {
	target := path + steps
	if path <= lastSharedPath && target > lastSharedPath {
		target += routeGap
	}
	return target
}
