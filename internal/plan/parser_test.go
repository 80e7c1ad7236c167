package plan

import (
	"errors"
	"reflect"
	"testing"
)

const workoutJSON = `{
  "frequency": "3 vezes por semana",
  "division": "ABC",
  "days": [
    {
      "title": "DIA A - PEITO E TRÍCEPS",
      "warmup": [{"exercise": "Polichinelos", "duration": "5 min"}],
      "exercises": [{"name": "Flexões", "sets": 3, "reps": "10-15", "rest": "60s"}],
      "cooldown": [{"muscle": "Peitoral", "duration": "30s", "instructions": "Abra os braços na parede"}]
    }
  ]
}`

func TestParseWorkout(t *testing.T) {
	plan, err := ParseWorkout(workoutJSON)
	if err != nil {
		t.Fatalf("ParseWorkout: %v", err)
	}
	if plan.Frequency != "3 vezes por semana" {
		t.Errorf("frequency = %q", plan.Frequency)
	}
	if len(plan.Days) != 1 || plan.Days[0].Exercises[0].Sets != 3 {
		t.Errorf("unexpected days: %+v", plan.Days)
	}
}

func TestParseWorkoutStripsFences(t *testing.T) {
	variants := []string{
		"```json\n" + workoutJSON + "\n```",
		"```\n" + workoutJSON + "\n```",
		"\n\n  " + workoutJSON + "  \n",
	}

	want, err := ParseWorkout(workoutJSON)
	if err != nil {
		t.Fatalf("ParseWorkout: %v", err)
	}

	for _, raw := range variants {
		got, err := ParseWorkout(raw)
		if err != nil {
			t.Fatalf("ParseWorkout(%.20q...): %v", raw, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("fenced variant decoded differently: %+v", got)
		}
	}
}

func TestParseWorkoutFailureKeepsRawText(t *testing.T) {
	raw := "Claro! Aqui está seu treino:\n1. Flexões..."

	_, err := ParseWorkout(raw)
	if err == nil {
		t.Fatal("expected parse error for non-JSON response")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error is %T, want *ParseError", err)
	}
	if parseErr.Raw != raw {
		t.Errorf("Raw = %q, want original text", parseErr.Raw)
	}
}

func TestParseWorkoutRequiresDays(t *testing.T) {
	_, err := ParseWorkout(`{"frequency": "3x", "division": "ABC", "days": []}`)
	if err == nil {
		t.Fatal("expected error for plan without days")
	}
}

func TestParseWorkoutRejectsNegativeSets(t *testing.T) {
	_, err := ParseWorkout(`{"days": [{"title": "A", "exercises": [{"name": "Flexões", "sets": -1}]}]}`)
	if err == nil {
		t.Fatal("expected error for negative sets")
	}
}

const nutritionJSON = `{
  "calories": 2000,
  "protein_g": 150,
  "carbs_g": 200,
  "fats_g": 60,
  "meals": {
    "breakfast": {"items": [{"food": "Ovos mexidos", "quantity": "2 unidades"}], "calories": 300},
    "morning_snack": {"items": [{"food": "Banana", "quantity": "1 unidade"}], "calories": 100},
    "lunch": {"items": [{"food": "Arroz com feijão", "quantity": "1 prato"}], "calories": 600},
    "afternoon_snack": {"items": [{"food": "Iogurte natural", "quantity": "1 pote"}], "calories": 150},
    "dinner": {"items": [{"food": "Omelete", "quantity": "3 ovos"}], "calories": 450},
    "supper": {"items": [{"food": "Leite", "quantity": "1 copo"}], "calories": 120}
  },
  "shopping_list": [{"item": "Ovos (30 unidades)", "price": 18.00}],
  "total_cost": 120.00,
  "substitutions": [{"original": "Frango", "alternative": "Ovos"}]
}`

func TestParseNutrition(t *testing.T) {
	plan, err := ParseNutrition(nutritionJSON)
	if err != nil {
		t.Fatalf("ParseNutrition: %v", err)
	}
	if plan.Calories != 2000 {
		t.Errorf("calories = %d", plan.Calories)
	}
	if plan.Meals.Breakfast.Items[0].Food != "Ovos mexidos" {
		t.Errorf("breakfast = %+v", plan.Meals.Breakfast)
	}
	if plan.TotalCost != 120.00 {
		t.Errorf("total cost = %v", plan.TotalCost)
	}
}

func TestParseNutritionRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing calories", `{"meals": {"breakfast": {"items": [{"food": "Ovos"}]}}}`},
		{"missing breakfast", `{"calories": 2000, "meals": {"breakfast": {"items": []}}}`},
		{"negative macro", `{"calories": 2000, "protein_g": -5, "meals": {"breakfast": {"items": [{"food": "Ovos"}]}}}`},
		{"negative price", `{"calories": 2000, "meals": {"breakfast": {"items": [{"food": "Ovos"}]}}, "shopping_list": [{"item": "Ovos", "price": -1}]}`},
		{"not json", "plano: coma bem"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseNutrition(tt.raw); err == nil {
				t.Fatal("expected parse error")
			}
		})
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"{}", "{}"},
		{"```json\n{}\n```", "{}"},
		{"```\n{}\n```", "{}"},
		{"  \n```json\n{\"a\": 1}\n```\n  ", `{"a": 1}`},
		{"sem cercas", "sem cercas"},
	}

	for _, tt := range tests {
		if got := stripFences(tt.in); got != tt.want {
			t.Errorf("stripFences(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
