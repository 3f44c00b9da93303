// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/priya/skillgap/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRequirements outputs the normalized required skills with their types.
func (p *Printer) PrintRequirements(required []types.RequiredSkill) {
	if len(required) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Normalized %d required skills:\n\n", len(required)))

	count := min(len(required), maxItemsToShow)
	for i := 0; i < count; i++ {
		req := required[i]
		sb.WriteString(fmt.Sprintf("  • %s", req.Skill))
		if req.Type != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", req.Type))
		}
		sb.WriteString("\n")
	}
	if len(required) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(required)-maxItemsToShow))
	}

	p.printBox("REQUIRED SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScoreResult outputs a human-readable summary of the weighted match.
func (p *Printer) PrintScoreResult(result *types.ScoreResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Match:    %.2f%%\n", result.MatchPercentage))
	sb.WriteString(fmt.Sprintf("Score:    %d / %d\n", result.AchievedScore, result.MaxPossibleScore))
	sb.WriteString("\n")

	if len(result.Matching) > 0 {
		sb.WriteString("Matching:\n")
		count := min(len(result.Matching), maxItemsToShow)
		for i := 0; i < count; i++ {
			skill := result.Matching[i]
			sb.WriteString(fmt.Sprintf("  ✓ %s", skill.Skill))
			if skill.Type != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", skill.Type))
			}
			sb.WriteString("\n")
		}
		if len(result.Matching) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Matching)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(result.Missing) > 0 {
		sb.WriteString("Missing:\n")
		count := min(len(result.Missing), maxItemsToShow)
		for i := 0; i < count; i++ {
			skill := result.Missing[i]
			sb.WriteString(fmt.Sprintf("  ✗ %s", skill.Skill))
			if skill.Type != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", skill.Type))
			}
			sb.WriteString("\n")
		}
		if len(result.Missing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Missing)-maxItemsToShow))
		}
	}

	p.printBox("SKILL MATCH SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRoadmap outputs the learning plan with per-step timelines.
func (p *Printer) PrintRoadmap(roadmap *types.Roadmap) {
	if roadmap == nil {
		return
	}

	if len(roadmap.Steps) == 0 {
		p.printBox("LEARNING ROADMAP", "Nothing to learn, all required skills are covered.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d steps, %d weeks total:\n\n", len(roadmap.Steps), roadmap.TotalWeeks))

	count := min(len(roadmap.Steps), maxItemsToShow)
	for i := 0; i < count; i++ {
		step := roadmap.Steps[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", step.Order, step.Skill))
		sb.WriteString(fmt.Sprintf("    %d weeks, %s (week %d overall)\n", step.DurationWeeks, step.Difficulty, step.CumulativeWeeks))
		if len(step.Resources) > 0 {
			sb.WriteString(fmt.Sprintf("    %d resources\n", len(step.Resources)))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(roadmap.Steps) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more steps", len(roadmap.Steps)-maxItemsToShow))
	}

	if roadmap.FallbackOrdering {
		sb.WriteString(fmt.Sprintf("\n\n⚠ %d skills could not be ordered (dependency cycle)", len(roadmap.Unordered)))
	}

	p.printBox("LEARNING ROADMAP", sb.String())
}
