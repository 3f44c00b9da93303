// Package scoring computes the weighted match between a job's required
// skills and a candidate's possessed skills.
package scoring

import (
	"fmt"
	"math"
	"sort"

	"github.com/priya/skillgap/internal/types"
)

// Weights per skill type. Untyped requirements still score, so a missing
// classification can never zero out a skill.
const (
	WeightTechnical = 3
	WeightSoft      = 1
	WeightUnknown   = 1
)

const noRequirementsSummary = "No required skills were identified in the job description."

// Weight returns the scoring weight for a skill type.
func Weight(t types.SkillType) int {
	switch t {
	case types.SkillTypeTechnical:
		return WeightTechnical
	case types.SkillTypeSoft:
		return WeightSoft
	default:
		return WeightUnknown
	}
}

// Score compares required skills against the possessed set and returns the
// weighted match. Requirements are accumulated in input order; the matching
// and missing lists come back sorted by skill id. Score is total: any input,
// including an empty requirement list, produces a result.
func Score(required []types.RequiredSkill, possessed types.SkillSet) *types.ScoreResult {
	if len(required) == 0 {
		return &types.ScoreResult{
			Summary:  noRequirementsSummary,
			Matching: []types.RequiredSkill{},
			Missing:  []types.RequiredSkill{},
		}
	}

	achieved := 0
	maxScore := 0
	matching := make([]types.RequiredSkill, 0, len(required))
	missing := make([]types.RequiredSkill, 0, len(required))

	for _, req := range required {
		weight := Weight(req.Type)
		maxScore += weight
		if possessed.Contains(req.Skill) {
			achieved += weight
			matching = append(matching, req)
		} else {
			missing = append(missing, req)
		}
	}

	pct := roundPercentage(float64(achieved) / float64(maxScore) * 100)
	sortBySkill(matching)
	sortBySkill(missing)

	return &types.ScoreResult{
		AchievedScore:    achieved,
		MaxPossibleScore: maxScore,
		MatchPercentage:  pct,
		Summary:          fmt.Sprintf("The candidate's skills align with %.2f%% of the job's weighted requirements.", pct),
		Matching:         matching,
		Missing:          missing,
	}
}

// roundPercentage rounds half away from zero to two decimal places.
func roundPercentage(v float64) float64 {
	return math.Round(v*100) / 100
}

func sortBySkill(skills []types.RequiredSkill) {
	sort.Slice(skills, func(i, j int) bool {
		return skills[i].Skill < skills[j].Skill
	})
}
