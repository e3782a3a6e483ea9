package app

import "dentadvisor-quiz-service/internal/domain"

// ScoreFor returns the points awarded for choosing an option. Options
// declared without points carry zero.
func ScoreFor(opt domain.Option) int {
	return opt.Points
}

// ResolveTier scans the ordered tiers and returns the first whose inclusive
// [MinScore, MaxScore] range contains score. When none matches — a gap in
// the configured ranges, or a score past every maximum — the first tier is
// returned rather than an error. Coverage gaps are a content problem and are
// reported by ValidateCoverage at startup; resolution itself stays lenient.
// There is deliberately no nearest-match heuristic.
func ResolveTier(score int, tiers []domain.ResultTier) domain.ResultTier {
	for _, tier := range tiers {
		if score >= tier.MinScore && score <= tier.MaxScore {
			return tier
		}
	}
	return tiers[0]
}

// MaxScore is the highest total a quiz can produce: the sum over questions
// of their highest-point option.
func MaxScore(quiz domain.Quiz) int {
	total := 0
	for _, q := range quiz.Questions {
		best := 0
		for _, opt := range q.Options {
			if opt.Points > best {
				best = opt.Points
			}
		}
		total += best
	}
	return total
}

// CoverageGap is a run of achievable scores no result tier covers.
type CoverageGap struct {
	From int
	To   int
}

// ValidateCoverage reports the scores in [0, MaxScore(quiz)] that fall
// outside every configured tier. A non-empty result means ResolveTier's
// first-tier fallback can fire at runtime; callers log these as warnings.
func ValidateCoverage(quiz domain.Quiz) []CoverageGap {
	var gaps []CoverageGap
	max := MaxScore(quiz)
	inGap := false
	var start int
	for score := 0; score <= max; score++ {
		covered := false
		for _, tier := range quiz.Results {
			if score >= tier.MinScore && score <= tier.MaxScore {
				covered = true
				break
			}
		}
		if !covered && !inGap {
			inGap = true
			start = score
		}
		if covered && inGap {
			inGap = false
			gaps = append(gaps, CoverageGap{From: start, To: score - 1})
		}
	}
	if inGap {
		gaps = append(gaps, CoverageGap{From: start, To: max})
	}
	return gaps
}
