package assist

import (
	"encoding/json"
	"fmt"
	"strings"
)

const textFallback = "I'm sorry, I couldn't generate a response."

// InterpretText trims a free-text completion. An empty completion falls back
// to a fixed apology instead of failing.
func InterpretText(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return textFallback
	}
	return s
}

// decodeObject parses a json-object completion into out. Models sometimes
// wrap the object in a markdown code fence despite the response format, so
// fences are stripped first. No repair beyond that is attempted.
func decodeObject(raw string, out interface{}) error {
	content := stripCodeFences(raw)
	if content == "" {
		return ErrEmptyCompletion
	}
	if err := json.Unmarshal([]byte(content), out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

func InterpretAlternatives(raw string) (AlternativesResult, error) {
	var res AlternativesResult
	if err := decodeObject(raw, &res); err != nil {
		return AlternativesResult{}, err
	}
	if res.Suggestions == nil {
		res.Suggestions = []Suggestion{}
	}
	return res, nil
}

func InterpretProductAnalysis(raw string) (ProductAnalysis, error) {
	var res ProductAnalysis
	if err := decodeObject(raw, &res); err != nil {
		return ProductAnalysis{}, err
	}
	if res.WarningFlags == nil {
		res.WarningFlags = []string{}
	}
	if res.PriceComparison.ComparisonDetails == nil {
		res.PriceComparison.ComparisonDetails = []ComparisonRow{}
	}
	return res, nil
}

func InterpretBasketAnalysis(raw string) (BasketAnalysis, error) {
	var res BasketAnalysis
	if err := decodeObject(raw, &res); err != nil {
		return BasketAnalysis{}, err
	}
	if res.Recommendations == nil {
		res.Recommendations = []string{}
	}
	if res.SubstitutionIdeas == nil {
		res.SubstitutionIdeas = []Substitution{}
	}
	return res, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSpace(s)
	if strings.HasPrefix(strings.ToLower(s), "json") {
		s = strings.TrimSpace(s[4:])
	}
	if i := strings.LastIndex(s, "```"); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	return s
}
