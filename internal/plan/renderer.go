package plan

import (
	"fmt"
	"strings"
)

// Placeholder rendered for missing optional fields, so the document keeps
// its fixed section structure instead of silently dropping lines.
const notInformed = "não informado"

// RenderWorkout produces the final workout document from a structured
// plan. The template is fixed: identical input yields identical bytes.
func RenderWorkout(profileName string, plan *WorkoutPlan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "PLANO DE TREINO PERSONALIZADO - %s\n\n", strings.ToUpper(profileName))

	fmt.Fprintf(&b, "FREQUÊNCIA SEMANAL\n%s\n\n", orPlaceholder(plan.Frequency))
	fmt.Fprintf(&b, "DIVISÃO DO TREINO\n%s\n\n", orPlaceholder(plan.Division))

	for _, day := range plan.Days {
		fmt.Fprintf(&b, "\n%s\n\n", day.Title)

		b.WriteString("AQUECIMENTO\n")
		for i, item := range day.Warmup {
			fmt.Fprintf(&b, "%d. %s - %s\n", i+1, item.Exercise, orPlaceholder(item.Duration))
		}
		b.WriteString("\n")

		b.WriteString("TREINO PRINCIPAL\n")
		for i, ex := range day.Exercises {
			fmt.Fprintf(&b, "%d. %s\n   Séries: %d, Repetições: %s, Descanso: %s\n",
				i+1, ex.Name, ex.Sets, orPlaceholder(ex.Reps), orPlaceholder(ex.Rest))
		}
		b.WriteString("\n")

		b.WriteString("ALONGAMENTO\n")
		for i, item := range day.Cooldown {
			fmt.Fprintf(&b, "%d. %s - %s\n", i+1, item.Muscle, orPlaceholder(item.Duration))
			if item.Instructions != "" {
				fmt.Fprintf(&b, "   %s\n", item.Instructions)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(`
DICAS IMPORTANTES
- Mantenha sempre uma boa postura durante os exercícios
- Hidrate-se antes, durante e após o treino
- Respeite os intervalos de descanso entre as séries
- Aumente a carga progressivamente conforme evolui
- Em caso de dor, interrompa o exercício

PROGRESSÃO
Semana 1-2: Foque na execução correta dos movimentos
Semana 3-4: Aumente levemente a carga mantendo a forma
Semana 5-6: Reduza o tempo de descanso entre séries
Semana 7-8: Aumente repetições ou adicione uma série extra

OBSERVAÇÕES DE SEGURANÇA
- Consulte um profissional antes de iniciar
- Faça um aquecimento adequado antes de cada treino
- Não treine o mesmo grupo muscular em dias consecutivos
- Descanse pelo menos 1 dia por semana
- Mantenha uma alimentação adequada para seus objetivos
`)

	return b.String()
}

// RenderNutrition produces the final nutrition document from a structured
// plan, same byte-stability contract as RenderWorkout.
func RenderNutrition(profileName string, plan *NutritionPlan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "PLANO NUTRICIONAL PERSONALIZADO - %s\n\n", strings.ToUpper(profileName))

	b.WriteString("METAS DIÁRIAS\n")
	fmt.Fprintf(&b, "Calorias totais: %d kcal\n", plan.Calories)
	fmt.Fprintf(&b, "Proteínas: %dg\n", plan.ProteinG)
	fmt.Fprintf(&b, "Carboidratos: %dg\n", plan.CarbsG)
	fmt.Fprintf(&b, "Gorduras: %dg\n\n", plan.FatsG)

	writeMeal(&b, "CAFÉ DA MANHÃ", plan.Meals.Breakfast)
	writeMeal(&b, "LANCHE DA MANHÃ", plan.Meals.MorningSnack)
	writeMeal(&b, "ALMOÇO", plan.Meals.Lunch)
	writeMeal(&b, "LANCHE DA TARDE", plan.Meals.AfternoonSnack)
	writeMeal(&b, "JANTAR", plan.Meals.Dinner)
	writeMeal(&b, "CEIA", plan.Meals.Supper)

	b.WriteString("LISTA DE COMPRAS SEMANAL\n")
	for i, item := range plan.ShoppingList {
		fmt.Fprintf(&b, "%d. %s - R$ %.2f\n", i+1, item.Item, item.Price)
	}
	fmt.Fprintf(&b, "\nTotal estimado da semana: R$ %.2f\n\n", plan.TotalCost)

	b.WriteString(`DICAS DE PREPARO
- Prepare as refeições com antecedência nos finais de semana
- Use temperos naturais para dar mais sabor
- Cozinhe em maior quantidade e congele porções
- Prefira alimentos grelhados, assados ou cozidos
- Lave bem frutas e verduras antes de consumir

DICAS DE ECONOMIA
- Compre frutas e verduras da estação
- Escolha cortes de carne mais em conta
- Compre em maior quantidade quando houver promoção
- Evite desperdícios, aproveite sobras em novas receitas
- Faça uma lista antes de ir ao mercado

SUBSTITUIÇÕES POSSÍVEIS
`)
	for _, sub := range plan.Substitutions {
		fmt.Fprintf(&b, "- %s: %s\n", sub.Original, sub.Alternative)
	}

	b.WriteString(`
OBSERVAÇÕES IMPORTANTES
- Beba pelo menos 2 litros de água por dia
- Evite alimentos ultraprocessados
- Mastigue bem os alimentos
- Faça as refeições em horários regulares
- Consulte um nutricionista para orientações específicas
`)

	return b.String()
}

func writeMeal(b *strings.Builder, header string, slot MealSlot) {
	fmt.Fprintf(b, "%s\n", header)
	for i, item := range slot.Items {
		fmt.Fprintf(b, "%d. %s - %s\n", i+1, item.Food, orPlaceholder(item.Quantity))
		if item.Details != "" {
			fmt.Fprintf(b, "   %s\n", item.Details)
		}
	}
	fmt.Fprintf(b, "Total aproximado: %d kcal\n\n", slot.Calories)
}

func orPlaceholder(s string) string {
	if s == "" {
		return notInformed
	}
	return s
}
