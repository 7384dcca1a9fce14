package core

// BallKind classifies ball behavior on goal contact
type BallKind uint8

const (
	// BallPoint scores one point for the receiving side
	BallPoint BallKind = iota
	// BallGold is the rare high-value point ball, worth three
	BallGold
	// BallMulti spawns two replacement point balls toward the scoring side
	BallMulti
	// BallSwitchSide swaps paddle sides and goal ownership
	BallSwitchSide
)

// IsBonus reports whether the kind carries a field effect instead of a score value
func (k BallKind) IsBonus() bool {
	return k == BallMulti || k == BallSwitchSide
}

// IsScoring reports whether a goal contact adds to the score
func (k BallKind) IsScoring() bool {
	return k == BallPoint || k == BallGold
}

func (k BallKind) String() string {
	switch k {
	case BallPoint:
		return "point"
	case BallGold:
		return "gold"
	case BallMulti:
		return "multi"
	case BallSwitchSide:
		return "switchside"
	default:
		return "unknown"
	}
}
