package exam

// MasteryBonus is the point multiplier for a mastered resolution.
const MasteryBonus = 1.5

// Summary is the derived progression summary. It owns no storage: it is
// recomputed from the status array on every call, so it can never drift
// from the statuses it describes.
type Summary struct {
	Total     int
	Completed int
	Mastered  int
	Points    float64
	Tier      Tier
}

// Summary computes the current progression summary.
func (e *Engine) Summary() Summary {
	s := Summary{Total: e.catalog.Len()}
	for i, st := range e.statuses {
		points := float64(e.catalog.challenges[i].Points)
		switch st {
		case StatusCompleted:
			s.Completed++
			s.Points += points
		case StatusMastered:
			s.Mastered++
			s.Points += points * MasteryBonus
		}
	}
	s.Tier = ComputeTier(s.Points, s.Mastered)
	return s
}

// Done reports whether every challenge has been resolved.
func (s Summary) Done() bool {
	return s.Completed+s.Mastered == s.Total
}
