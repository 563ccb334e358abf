package reporting

import (
	"fmt"
	"strings"
)

// HelpMessage is returned for any query the rule table does not match.
const HelpMessage = "I can answer questions about your predicted scores. " +
	"Try asking about math, science, computer or english, your average, or which subject you are best at."

// NoDataMessage is returned when the user has no stored predictions yet.
const NoDataMessage = "You have no predictions yet. Submit one from the predict page and ask me again."

// chatRule pairs a predicate over the normalized query with a responder over
// the user's aggregated history. Rules are evaluated in order; the first
// match wins, with HelpMessage as the fallback.
type chatRule struct {
	match  func(query string) bool
	answer func(s Summary) string
}

func contains(word string) func(string) bool {
	return func(query string) bool { return strings.Contains(query, word) }
}

func subjectRule(subject string) chatRule {
	return chatRule{
		match: contains(subject),
		answer: func(s Summary) string {
			return fmt.Sprintf("Across your %d predictions, your average %s score is %.2f and your best is %.2f.",
				s.Count, subject, s.Means[subject], s.Maxes[subject])
		},
	}
}

var chatRules = []chatRule{
	subjectRule("math"),
	subjectRule("science"),
	subjectRule("computer"),
	subjectRule("english"),
	{
		match: contains("best"),
		answer: func(s Summary) string {
			subject, mean := BestSubject(s)
			return fmt.Sprintf("Your strongest subject is %s with an average predicted score of %.2f.", subject, mean)
		},
	},
	{
		match: contains("average"),
		answer: func(s Summary) string {
			return fmt.Sprintf("Your overall average across %d predictions is %.2f.", s.Count, s.Means["overall"])
		},
	},
}

// Answer resolves a free-text question against the user's summary. Matching
// is a plain substring check over a lowercased copy of the query.
func Answer(query string, s Summary) string {
	if s.Count == 0 {
		return NoDataMessage
	}

	normalized := strings.ToLower(strings.TrimSpace(query))
	for _, rule := range chatRules {
		if rule.match(normalized) {
			return rule.answer(s)
		}
	}
	return HelpMessage
}
