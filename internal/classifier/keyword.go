package classifier

import (
	"context"
	"strings"
)

// Classify implements Classifier.
func (KeywordClassifier) Classify(_ context.Context, in Input) Category {
	if c, ok := matchKeywords(in.Title); ok {
		return c
	}
	if c, ok := matchKeywords(in.Description); ok {
		return c
	}
	return CategoryGeneral
}

func matchKeywords(text string) (Category, bool) {
	text = strings.ToLower(text)
	if text == "" {
		return "", false
	}
	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.category, true
			}
		}
	}
	return "", false
}
