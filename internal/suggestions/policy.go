package suggestions

// Tier classifies how closely a resume matches a job
type Tier string

const (
	// TierRestructure applies below 50%
	TierRestructure Tier = "restructure"
	// TierImprove applies from 50% up to but excluding 80%
	TierImprove Tier = "improve"
	// TierRefine applies from 80% upward
	TierRefine Tier = "refine"
)

// tierPolicy pairs a tier with its inclusive lower bound and fixed messages
type tierPolicy struct {
	tier     Tier
	minimum  float64
	messages []string
}

// policies is ordered by descending minimum. The last entry catches everything below
// the other bounds, including negative values and NaN.
var policies = []tierPolicy{
	{
		tier:    TierRefine,
		minimum: 80.0,
		messages: []string{
			"Your resume has strong alignment. Refine formatting and ATS keyword optimization.",
			"Consider adding quantifiable results (e.g., performance improvements) to strengthen impact.",
		},
	},
	{
		tier:    TierImprove,
		minimum: 50.0,
		messages: []string{
			"Improve project descriptions to better highlight relevant skills mentioned in the job posting.",
			"Optimize resume keywords to match ATS scanning patterns used by recruiters.",
		},
	},
	{
		tier:    TierRestructure,
		minimum: 0.0,
		messages: []string{
			"Your resume needs major alignment with job requirements. Restructure to highlight required skills more prominently.",
			"Consider adding a 'Core Competencies' section to emphasize missing technical areas.",
		},
	},
}

// TierFor returns the tier for a match percentage
func TierFor(percentage float64) Tier {
	for _, p := range policies[:len(policies)-1] {
		if percentage >= p.minimum {
			return p.tier
		}
	}
	return policies[len(policies)-1].tier
}

// Tiers returns every tier from lowest to highest
func Tiers() []Tier {
	out := make([]Tier, 0, len(policies))
	for i := len(policies) - 1; i >= 0; i-- {
		out = append(out, policies[i].tier)
	}
	return out
}

// Minimum returns the inclusive lower bound of a tier, or false for an unknown tier
func Minimum(tier Tier) (float64, bool) {
	for _, p := range policies {
		if p.tier == tier {
			return p.minimum, true
		}
	}
	return 0, false
}

// Messages returns a copy of the fixed messages for a tier, or nil for an unknown tier
func Messages(tier Tier) []string {
	for _, p := range policies {
		if p.tier == tier {
			out := make([]string, len(p.messages))
			copy(out, p.messages)
			return out
		}
	}
	return nil
}
