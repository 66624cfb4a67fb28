package exam

// Difficulty represents a challenge difficulty band.
type Difficulty string

const (
	DifficultyMaster Difficulty = "master"
	DifficultyExpert Difficulty = "expert"
	DifficultyLegend Difficulty = "legend"
)

// Label returns the display label for a difficulty band.
func (d Difficulty) Label() string {
	switch d {
	case DifficultyMaster:
		return "Master"
	case DifficultyExpert:
		return "Expert"
	case DifficultyLegend:
		return "Legend"
	default:
		return string(d)
	}
}

// Challenge is a single immutable entry in the Final Examination catalog.
// Ordinal is the fixed unlock order; it is an explicit field rather than
// an array position so reordering the seed cannot silently change gating.
type Challenge struct {
	ID            string
	Title         string
	Brief         string
	Difficulty    Difficulty
	Points        int
	TimeLimitSecs int
	Ordinal       int
	Question      Question
}

// Question is the exam prompt attached to a challenge. The engine never
// inspects it; the exam screen uses it to decide how to resolve.
type Question struct {
	Prompt      string
	Options     []string
	Answer      int
	Explanation string
}
