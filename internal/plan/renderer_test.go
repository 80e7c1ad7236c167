package plan

import (
	"strings"
	"testing"
)

func sampleWorkout() *WorkoutPlan {
	return &WorkoutPlan{
		Frequency: "3 a 4 vezes por semana",
		Division:  "ABC - Treino dividido por grupos musculares",
		Days: []WorkoutDay{
			{
				Title:  "DIA A - PEITO E TRÍCEPS",
				Warmup: []WarmupItem{{Exercise: "Polichinelos", Duration: "5 min"}},
				Exercises: []ExerciseItem{
					{Name: "Flexões", Sets: 3, Reps: "10-15", Rest: "60s"},
					{Name: "Mergulho entre cadeiras", Sets: 3, Reps: "8-12"},
				},
				Cooldown: []CooldownItem{{Muscle: "Peitoral", Duration: "30s", Instructions: "Abra os braços na parede"}},
			},
		},
	}
}

func sampleNutrition() *NutritionPlan {
	return &NutritionPlan{
		Calories: 2000,
		ProteinG: 150,
		CarbsG:   200,
		FatsG:    60,
		Meals: Meals{
			Breakfast:      MealSlot{Items: []FoodItem{{Food: "Ovos mexidos", Quantity: "2 unidades"}}, Calories: 300},
			MorningSnack:   MealSlot{Items: []FoodItem{{Food: "Banana", Quantity: "1 unidade"}}, Calories: 100},
			Lunch:          MealSlot{Items: []FoodItem{{Food: "Arroz com feijão", Quantity: "1 prato", Details: "Com frango grelhado"}}, Calories: 600},
			AfternoonSnack: MealSlot{Items: []FoodItem{{Food: "Iogurte natural", Quantity: "1 pote"}}, Calories: 150},
			Dinner:         MealSlot{Items: []FoodItem{{Food: "Omelete", Quantity: "3 ovos"}}, Calories: 450},
			Supper:         MealSlot{Items: []FoodItem{{Food: "Leite", Quantity: "1 copo"}}, Calories: 120},
		},
		ShoppingList:  []ShoppingItem{{Item: "Ovos (30 unidades)", Price: 18}, {Item: "Arroz 5kg", Price: 25.9}},
		TotalCost:     120.5,
		Substitutions: []Substitution{{Original: "Frango", Alternative: "Ovos"}},
	}
}

func TestRenderWorkout(t *testing.T) {
	doc := RenderWorkout("João Silva", sampleWorkout())

	if !strings.HasPrefix(doc, "PLANO DE TREINO PERSONALIZADO - JOÃO SILVA\n") {
		t.Fatalf("header missing upper-cased name: %q", doc[:60])
	}

	for _, section := range []string{
		"FREQUÊNCIA SEMANAL", "DIVISÃO DO TREINO", "AQUECIMENTO",
		"TREINO PRINCIPAL", "ALONGAMENTO", "DICAS IMPORTANTES",
		"PROGRESSÃO", "OBSERVAÇÕES DE SEGURANÇA",
	} {
		if !strings.Contains(doc, section) {
			t.Errorf("document missing section %q", section)
		}
	}

	if !strings.Contains(doc, "1. Flexões\n   Séries: 3, Repetições: 10-15, Descanso: 60s") {
		t.Error("exercise item not rendered in the fixed format")
	}
	// Missing rest time renders the placeholder, keeping structure fixed.
	if !strings.Contains(doc, "Descanso: não informado") {
		t.Error("missing optional field was not rendered as placeholder")
	}
	if strings.ContainsAny(doc, "*#`") {
		t.Error("rendered document contains emphasis markup")
	}
}

func TestRenderNutrition(t *testing.T) {
	doc := RenderNutrition("Maria", sampleNutrition())

	if !strings.HasPrefix(doc, "PLANO NUTRICIONAL PERSONALIZADO - MARIA\n") {
		t.Fatalf("header missing upper-cased name: %q", doc[:60])
	}

	sections := []string{
		"METAS DIÁRIAS", "CAFÉ DA MANHÃ", "LANCHE DA MANHÃ", "ALMOÇO",
		"LANCHE DA TARDE", "JANTAR", "CEIA", "LISTA DE COMPRAS SEMANAL",
		"DICAS DE PREPARO", "DICAS DE ECONOMIA", "SUBSTITUIÇÕES POSSÍVEIS",
		"OBSERVAÇÕES IMPORTANTES",
	}
	last := 0
	for _, section := range sections {
		idx := strings.Index(doc, section)
		if idx < 0 {
			t.Fatalf("document missing section %q", section)
		}
		if idx < last {
			t.Errorf("section %q rendered out of order", section)
		}
		last = idx
	}

	if !strings.Contains(doc, "Calorias totais: 2000 kcal") {
		t.Error("daily targets not rendered")
	}
	if !strings.Contains(doc, "Total aproximado: 300 kcal") {
		t.Error("meal calorie subtotal not rendered")
	}
	if !strings.Contains(doc, "2. Arroz 5kg - R$ 25.90") {
		t.Error("shopping list item not rendered with price")
	}
	if !strings.Contains(doc, "Total estimado da semana: R$ 120.50") {
		t.Error("weekly total not rendered")
	}
	if !strings.Contains(doc, "- Frango: Ovos") {
		t.Error("substitution not rendered as dash item")
	}
}

func TestRenderingIsIdempotent(t *testing.T) {
	w := sampleWorkout()
	if RenderWorkout("Ana", w) != RenderWorkout("Ana", w) {
		t.Error("RenderWorkout is not byte-stable")
	}

	n := sampleNutrition()
	if RenderNutrition("Ana", n) != RenderNutrition("Ana", n) {
		t.Error("RenderNutrition is not byte-stable")
	}
}
