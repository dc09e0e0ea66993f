// Package classify labels incoming queries so the retrieval planner can pick
// a strategy. Classification is pure string matching against the versioned
// vocabulary tables, deterministic and case-insensitive.
package classify

import (
	"strings"

	"github.com/nyaya-ai/nyaya/model"
)

// Classify labels a query as greeting, off-topic, lawyer-directory lookup or
// general legal query. Order is fixed: greeting check first (exact match),
// then off-topic, then lawyer lookup, then general.
func Classify(text string) model.Classification {
	normalized := strings.ToLower(strings.TrimSpace(text))

	if category, ok := matchGreeting(normalized); ok {
		return model.Classification{
			Kind:     model.ClassificationGreeting,
			Greeting: category,
		}
	}

	if !containsAny(normalized, legalTerms) && !containsAny(normalized, legalCodeAbbreviations) {
		return model.Classification{Kind: model.ClassificationOffTopic}
	}

	if containsAny(normalized, lawyerTerms) {
		return model.Classification{
			Kind:           model.ClassificationLawyerLookup,
			Specialization: matchSpecialization(normalized),
		}
	}

	return model.Classification{Kind: model.ClassificationGeneral}
}

// MatchedLegalKeywords returns the legal vocabulary terms contained in the
// query, in table order. The retrieval engine uses the first five of these
// as keyword patterns for the hybrid datastore call.
func MatchedLegalKeywords(text string) []string {
	normalized := strings.ToLower(text)

	var matched []string
	for _, term := range legalTerms {
		if strings.Contains(normalized, term) {
			matched = append(matched, term)
		}
	}
	for _, abbr := range legalCodeAbbreviations {
		if strings.Contains(normalized, abbr) {
			matched = append(matched, abbr)
		}
	}

	return matched
}

// matchGreeting does an exact whole-string match against the greeting rules
func matchGreeting(normalized string) (model.GreetingCategory, bool) {
	for _, rule := range greetingRules {
		for _, phrase := range rule.Phrases {
			if normalized == phrase {
				return rule.Category, true
			}
		}
	}
	return "", false
}

// matchSpecialization returns the label of the first specialization rule with
// a matching keyword, or an empty string when no practice area matched
func matchSpecialization(normalized string) string {
	for _, rule := range specializationRules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(normalized, keyword) {
				return rule.Label
			}
		}
	}
	return ""
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
