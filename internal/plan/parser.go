package plan

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseError signals that the model response could not be decoded into a
// structured plan. Raw keeps the original text so the caller can fall back
// to it; the parser never invents data.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse plan response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseWorkout decodes a model response into a WorkoutPlan, tolerating
// surrounding whitespace and a fenced code block around the payload.
func ParseWorkout(raw string) (*WorkoutPlan, error) {
	payload := stripFences(raw)

	var plan WorkoutPlan
	if err := json.Unmarshal([]byte(payload), &plan); err != nil {
		return nil, &ParseError{Raw: raw, Err: err}
	}

	if len(plan.Days) == 0 {
		return nil, &ParseError{Raw: raw, Err: fmt.Errorf("workout plan has no days")}
	}
	for _, day := range plan.Days {
		for _, ex := range day.Exercises {
			if ex.Sets < 0 {
				return nil, &ParseError{Raw: raw, Err: fmt.Errorf("exercise %q has negative sets", ex.Name)}
			}
		}
	}

	return &plan, nil
}

// ParseNutrition decodes a model response into a NutritionPlan.
func ParseNutrition(raw string) (*NutritionPlan, error) {
	payload := stripFences(raw)

	var plan NutritionPlan
	if err := json.Unmarshal([]byte(payload), &plan); err != nil {
		return nil, &ParseError{Raw: raw, Err: err}
	}

	if plan.Calories <= 0 {
		return nil, &ParseError{Raw: raw, Err: fmt.Errorf("nutrition plan has no calorie target")}
	}
	if len(plan.Meals.Breakfast.Items) == 0 {
		return nil, &ParseError{Raw: raw, Err: fmt.Errorf("nutrition plan has no breakfast")}
	}
	if plan.ProteinG < 0 || plan.CarbsG < 0 || plan.FatsG < 0 || plan.TotalCost < 0 {
		return nil, &ParseError{Raw: raw, Err: fmt.Errorf("nutrition plan has negative values")}
	}
	for _, item := range plan.ShoppingList {
		if item.Price < 0 {
			return nil, &ParseError{Raw: raw, Err: fmt.Errorf("shopping item %q has negative price", item.Item)}
		}
	}

	return &plan, nil
}

// stripFences trims the response and removes a surrounding triple-backtick
// code block, including an optional language tag after the opening fence.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		// Drop the rest of the opening fence line (language tag, if any).
		s = s[i+1:]
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")

	return strings.TrimSpace(s)
}
