package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priya/skillgap/internal/types"
)

func TestWeight_PerType(t *testing.T) {
	assert.Equal(t, 3, Weight(types.SkillTypeTechnical))
	assert.Equal(t, 1, Weight(types.SkillTypeSoft))
	assert.Equal(t, 1, Weight(types.SkillType("")))
	assert.Equal(t, 1, Weight(types.SkillType("bogus")))
}

func TestScore_WeightedMatch(t *testing.T) {
	required := []types.RequiredSkill{
		{Skill: "Python", Type: types.SkillTypeTechnical},
		{Skill: "Communication", Type: types.SkillTypeSoft},
	}
	possessed := types.SkillSet{"Python": types.SkillTypeTechnical}

	result := Score(required, possessed)

	assert.Equal(t, 3, result.AchievedScore)
	assert.Equal(t, 4, result.MaxPossibleScore)
	assert.Equal(t, 75.0, result.MatchPercentage)
	assert.Equal(t, "The candidate's skills align with 75.00% of the job's weighted requirements.", result.Summary)

	require.Len(t, result.Matching, 1)
	assert.Equal(t, "Python", result.Matching[0].Skill)
	require.Len(t, result.Missing, 1)
	assert.Equal(t, "Communication", result.Missing[0].Skill)
}

func TestScore_NoRequirements(t *testing.T) {
	result := Score(nil, types.SkillSet{"Python": types.SkillTypeTechnical})

	assert.Equal(t, 0, result.AchievedScore)
	assert.Equal(t, 0, result.MaxPossibleScore)
	assert.Equal(t, 0.0, result.MatchPercentage)
	assert.Equal(t, "No required skills were identified in the job description.", result.Summary)
	assert.NotNil(t, result.Matching)
	assert.Empty(t, result.Matching)
	assert.NotNil(t, result.Missing)
	assert.Empty(t, result.Missing)
}

func TestScore_AllMatched(t *testing.T) {
	required := []types.RequiredSkill{
		{Skill: "SQL", Type: types.SkillTypeTechnical},
		{Skill: "Teamwork", Type: types.SkillTypeSoft},
	}
	possessed := types.SkillSet{
		"SQL":      types.SkillTypeTechnical,
		"Teamwork": types.SkillTypeSoft,
	}

	result := Score(required, possessed)

	assert.Equal(t, 4, result.AchievedScore)
	assert.Equal(t, 4, result.MaxPossibleScore)
	assert.Equal(t, 100.0, result.MatchPercentage)
	assert.Len(t, result.Matching, 2)
	assert.Empty(t, result.Missing)
}

func TestScore_NoneMatched(t *testing.T) {
	required := []types.RequiredSkill{
		{Skill: "Rust", Type: types.SkillTypeTechnical},
	}

	result := Score(required, types.SkillSet{})

	assert.Equal(t, 0, result.AchievedScore)
	assert.Equal(t, 3, result.MaxPossibleScore)
	assert.Equal(t, 0.0, result.MatchPercentage)
	assert.Empty(t, result.Matching)
	assert.Len(t, result.Missing, 1)
}

func TestScore_UntypedRequirementWeighsOne(t *testing.T) {
	required := []types.RequiredSkill{
		{Skill: "Python", Type: types.SkillTypeTechnical},
		{Skill: "Esperanto"},
	}
	possessed := types.SkillSet{"Esperanto": ""}

	result := Score(required, possessed)

	assert.Equal(t, 1, result.AchievedScore)
	assert.Equal(t, 4, result.MaxPossibleScore)
	assert.Equal(t, 25.0, result.MatchPercentage)
}

func TestScore_ListsSortedBySkill(t *testing.T) {
	required := []types.RequiredSkill{
		{Skill: "Zig", Type: types.SkillTypeTechnical},
		{Skill: "Ada", Type: types.SkillTypeTechnical},
		{Skill: "Nim", Type: types.SkillTypeTechnical},
	}
	possessed := types.SkillSet{
		"Zig": types.SkillTypeTechnical,
		"Ada": types.SkillTypeTechnical,
	}

	result := Score(required, possessed)

	require.Len(t, result.Matching, 2)
	assert.Equal(t, "Ada", result.Matching[0].Skill)
	assert.Equal(t, "Zig", result.Matching[1].Skill)
	require.Len(t, result.Missing, 1)
	assert.Equal(t, "Nim", result.Missing[0].Skill)
}

func TestScore_OrderInvariantTotals(t *testing.T) {
	forward := []types.RequiredSkill{
		{Skill: "Python", Type: types.SkillTypeTechnical},
		{Skill: "SQL", Type: types.SkillTypeTechnical},
		{Skill: "Communication", Type: types.SkillTypeSoft},
	}
	reversed := []types.RequiredSkill{forward[2], forward[1], forward[0]}
	possessed := types.SkillSet{"SQL": types.SkillTypeTechnical}

	a := Score(forward, possessed)
	b := Score(reversed, possessed)

	assert.Equal(t, a.AchievedScore, b.AchievedScore)
	assert.Equal(t, a.MaxPossibleScore, b.MaxPossibleScore)
	assert.Equal(t, a.MatchPercentage, b.MatchPercentage)
	assert.Equal(t, a.Matching, b.Matching)
	assert.Equal(t, a.Missing, b.Missing)
}

func TestScore_RoundsToTwoDecimals(t *testing.T) {
	required := []types.RequiredSkill{
		{Skill: "A", Type: types.SkillTypeSoft},
		{Skill: "B", Type: types.SkillTypeSoft},
		{Skill: "C", Type: types.SkillTypeSoft},
	}

	oneOfThree := Score(required, types.SkillSet{"A": types.SkillTypeSoft})
	assert.Equal(t, 33.33, oneOfThree.MatchPercentage)

	twoOfThree := Score(required, types.SkillSet{
		"A": types.SkillTypeSoft,
		"B": types.SkillTypeSoft,
	})
	assert.Equal(t, 66.67, twoOfThree.MatchPercentage)
}
