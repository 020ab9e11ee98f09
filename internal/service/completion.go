package service

import (
	"strings"
)

// CompletionPolicy maps a section's position and name to the probability
// that a task in it is already completed.
//
// The base probability grows quadratically with progress through the
// workflow. A section whose name contains a done keyword is forced to
// DoneProbability; otherwise a backlog keyword forces BacklogProbability.
// Keywords match case-insensitively.
type CompletionPolicy struct {
	DoneKeywords       []string
	DoneProbability    float64 `validate:"gte=0,lte=1"`
	BacklogKeywords    []string
	BacklogProbability float64 `validate:"gte=0,lte=1"`
}

// DefaultCompletionPolicy returns the stock keyword overrides
func DefaultCompletionPolicy() CompletionPolicy {
	return CompletionPolicy{
		DoneKeywords:       []string{"done", "complete", "shipped", "released"},
		DoneProbability:    0.98,
		BacklogKeywords:    []string{"backlog", "todo", "idea"},
		BacklogProbability: 0.05,
	}
}

// Probability returns the completion probability for a section of the given
// rank in a project with total sections
func (p CompletionPolicy) Probability(rank, total int, sectionName string) float64 {
	name := strings.ToLower(sectionName)
	if containsAny(name, p.DoneKeywords) {
		return p.DoneProbability
	}
	if containsAny(name, p.BacklogKeywords) {
		return p.BacklogProbability
	}
	if total <= 0 {
		return 0
	}
	progress := float64(rank+1) / float64(total)
	return progress * progress
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if k != "" && strings.Contains(s, strings.ToLower(k)) {
			return true
		}
	}
	return false
}
