package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priya/skillgap/internal/types"
)

const (
	jobMentionsJSON = `[
		{"text": "Python", "inferred_type": "technical"},
		{"text": "communication skills", "inferred_type": "soft"},
		{"text": "react.js", "inferred_type": "technical"}
	]`
	candidateMentionsJSON = `[
		{"text": "python3"},
		{"text": "js"}
	]`
)

func setAnalyzeFlags(job, candidate, output string) {
	analyzeJob = job
	analyzeCandidate = candidate
	analyzeOutput = output
	analyzeConfig = ""
	analyzeCatalog = ""
	analyzeResources = ""
	analyzeAPIKey = ""
	analyzeTimeout = 0
	analyzeMaxResources = 0
	analyzeVerbose = false
	analyzeJSONLogs = false
	analyzeDebug = false
}

func setScoreFlags(job, candidate, output string) {
	scoreJob = job
	scoreCandidate = candidate
	scoreOutput = output
	scoreConfig = ""
	scoreCatalog = ""
	scoreVerbose = false
	scoreJSONLogs = false
	scoreDebug = false
}

func setRoadmapFlags(skillNames []string, candidate, output string) {
	roadmapSkills = skillNames
	roadmapCandidate = candidate
	roadmapOutput = output
	roadmapConfig = ""
	roadmapCatalog = ""
	roadmapResources = ""
	roadmapAPIKey = ""
	roadmapTimeout = 0
	roadmapMaxResources = 0
	roadmapVerbose = false
	roadmapJSONLogs = false
	roadmapDebug = false
}

func readJSON(t *testing.T, path string, v any) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, v))
}

func TestRunAnalyze_WritesReport(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "")
	dir := t.TempDir()
	jobPath := filepath.Join(dir, "job.json")
	candidatePath := filepath.Join(dir, "candidate.json")
	outPath := filepath.Join(dir, "report.json")
	require.NoError(t, os.WriteFile(jobPath, []byte(jobMentionsJSON), 0644))
	require.NoError(t, os.WriteFile(candidatePath, []byte(candidateMentionsJSON), 0644))

	setAnalyzeFlags(jobPath, candidatePath, outPath)
	require.NoError(t, runAnalyze(nil, nil))

	var report types.Report
	readJSON(t, outPath, &report)

	assert.NotEqual(t, uuid.Nil, report.ID)
	assert.False(t, report.GeneratedAt.IsZero())

	require.Len(t, report.Required, 3)
	assert.Equal(t, "Python", report.Required[0].Skill)
	assert.Equal(t, "Communication", report.Required[1].Skill)
	assert.Equal(t, "React", report.Required[2].Skill)
	assert.Equal(t, []string{"JavaScript", "Python"}, report.Possessed)

	require.NotNil(t, report.Score)
	assert.Equal(t, 3, report.Score.AchievedScore)
	assert.Equal(t, 7, report.Score.MaxPossibleScore)
	assert.InDelta(t, 42.86, report.Score.MatchPercentage, 0.001)

	require.NotNil(t, report.Roadmap)
	require.Len(t, report.Roadmap.Steps, 2)
	assert.Equal(t, "Communication", report.Roadmap.Steps[0].Skill)
	assert.Equal(t, "React", report.Roadmap.Steps[1].Skill)
	assert.Equal(t, 9, report.Roadmap.TotalWeeks)
}

func TestRunAnalyze_MissingJobFile(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "")
	dir := t.TempDir()
	candidatePath := filepath.Join(dir, "candidate.json")
	require.NoError(t, os.WriteFile(candidatePath, []byte(candidateMentionsJSON), 0644))

	setAnalyzeFlags(filepath.Join(dir, "absent.json"), candidatePath, filepath.Join(dir, "report.json"))
	err := runAnalyze(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read mentions file")
}

func TestRunAnalyze_CustomCatalogFlag(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "")
	dir := t.TempDir()
	jobPath := filepath.Join(dir, "job.json")
	candidatePath := filepath.Join(dir, "candidate.json")
	catalogPath := filepath.Join(dir, "catalog.json")
	outPath := filepath.Join(dir, "report.json")
	require.NoError(t, os.WriteFile(jobPath, []byte(`[{"text": "cobol"}]`), 0644))
	require.NoError(t, os.WriteFile(candidatePath, []byte(`[]`), 0644))
	require.NoError(t, os.WriteFile(catalogPath, []byte(`{
		"skills": [
			{"id": "COBOL", "type": "technical", "duration_weeks": 12, "difficulty": "Advanced"}
		]
	}`), 0644))

	setAnalyzeFlags(jobPath, candidatePath, outPath)
	analyzeCatalog = catalogPath
	require.NoError(t, runAnalyze(nil, nil))

	var report types.Report
	readJSON(t, outPath, &report)

	require.Len(t, report.Required, 1)
	assert.Equal(t, "COBOL", report.Required[0].Skill)
	assert.Equal(t, types.SkillTypeTechnical, report.Required[0].Type)
	require.Len(t, report.Roadmap.Steps, 1)
	assert.Equal(t, 12, report.Roadmap.Steps[0].DurationWeeks)
}

func TestRunScore_WritesScore(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "")
	dir := t.TempDir()
	jobPath := filepath.Join(dir, "job.json")
	candidatePath := filepath.Join(dir, "candidate.json")
	outPath := filepath.Join(dir, "score.json")
	require.NoError(t, os.WriteFile(jobPath, []byte(jobMentionsJSON), 0644))
	require.NoError(t, os.WriteFile(candidatePath, []byte(candidateMentionsJSON), 0644))

	setScoreFlags(jobPath, candidatePath, outPath)
	require.NoError(t, runScore(nil, nil))

	var score types.ScoreResult
	readJSON(t, outPath, &score)

	assert.Equal(t, 3, score.AchievedScore)
	assert.Equal(t, 7, score.MaxPossibleScore)
	assert.InDelta(t, 42.86, score.MatchPercentage, 0.001)
	assert.Contains(t, score.Summary, "42.86%")

	require.Len(t, score.Matching, 1)
	assert.Equal(t, "Python", score.Matching[0].Skill)
	require.Len(t, score.Missing, 2)
	assert.Equal(t, "Communication", score.Missing[0].Skill)
	assert.Equal(t, "React", score.Missing[1].Skill)
}

func TestRunScore_MissingCandidateFile(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "")
	dir := t.TempDir()
	jobPath := filepath.Join(dir, "job.json")
	require.NoError(t, os.WriteFile(jobPath, []byte(jobMentionsJSON), 0644))

	setScoreFlags(jobPath, filepath.Join(dir, "absent.json"), filepath.Join(dir, "score.json"))
	err := runScore(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read mentions file")
}

func TestRunRoadmap_WritesRoadmap(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "")
	dir := t.TempDir()
	candidatePath := filepath.Join(dir, "candidate.json")
	outPath := filepath.Join(dir, "roadmap.json")
	require.NoError(t, os.WriteFile(candidatePath, []byte(`[{"text": "python3"}]`), 0644))

	setRoadmapFlags([]string{"deep learning"}, candidatePath, outPath)
	require.NoError(t, runRoadmap(nil, nil))

	var roadmap types.Roadmap
	readJSON(t, outPath, &roadmap)

	require.Len(t, roadmap.Steps, 2)
	assert.Equal(t, "Machine Learning", roadmap.Steps[0].Skill)
	assert.Equal(t, "Deep Learning", roadmap.Steps[1].Skill)
	assert.Equal(t, 8, roadmap.Steps[0].CumulativeWeeks)
	assert.Equal(t, 18, roadmap.Steps[1].CumulativeWeeks)
	assert.Equal(t, 18, roadmap.TotalWeeks)
	assert.False(t, roadmap.FallbackOrdering)
}

func TestRunRoadmap_WithoutCandidateFile(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "")
	dir := t.TempDir()
	outPath := filepath.Join(dir, "roadmap.json")

	setRoadmapFlags([]string{"React"}, "", outPath)
	require.NoError(t, runRoadmap(nil, nil))

	var roadmap types.Roadmap
	readJSON(t, outPath, &roadmap)

	require.Len(t, roadmap.Steps, 2)
	assert.Equal(t, "JavaScript", roadmap.Steps[0].Skill)
	assert.Equal(t, "React", roadmap.Steps[1].Skill)
}
