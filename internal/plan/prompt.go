package plan

import (
	"fmt"
	"math"
	"strings"

	"fitlife/internal/foodpolicy"
	"fitlife/internal/models"
)

// Weekly shopping cost band the nutrition prompt asks the model to honor,
// in BRL.
const (
	costBandMinBRL = 100
	costBandMaxBRL = 150
)

const workoutSystemPrompt = `Você é um personal trainer experiente especializado em criar treinos personalizados.
Sua missão é criar planos de treino seguros, eficientes e adaptados ao perfil do aluno.
Responda sempre em JSON válido, sem texto fora do JSON.`

const nutritionSystemPrompt = `Você é um nutricionista experiente especializado em criar planos alimentares acessíveis e práticos.
Seu foco é em alimentos brasileiros comuns, baratos e fáceis de encontrar.
Responda sempre em JSON válido, sem texto fora do JSON.`

// BMI computes the body mass index from weight in kg and height in cm,
// rounded to one decimal.
func BMI(weightKg float64, heightCm int) float64 {
	heightM := float64(heightCm) / 100
	return math.Round(weightKg/(heightM*heightM)*10) / 10
}

// trainingLocationPhrase maps the profile's training location to the
// descriptive phrase embedded in prompts.
func trainingLocationPhrase(trainingType string) string {
	switch trainingType {
	case models.TrainingGym:
		return "academia com equipamentos disponíveis"
	case models.TrainingHome:
		return "casa sem equipamentos especiais"
	case models.TrainingOutdoors:
		return "ao ar livre (parques, praças)"
	default:
		return "local escolhido"
	}
}

func profileSummary(p *models.Profile) string {
	restrictions := p.DietaryRestrictions
	if restrictions == "" {
		restrictions = "Nenhuma restrição mencionada"
	}
	activities := p.CurrentActivities
	if activities == "" {
		activities = "Nenhuma atividade regular"
	}

	return fmt.Sprintf(`PERFIL DO ALUNO:
- Nome: %s
- Idade: %d anos
- Peso: %.1f kg
- Altura: %d cm
- IMC: %.1f
- Objetivos: %s
- Restrições alimentares: %s
- Nível de atividade: %s`,
		p.FullName, p.Age, p.Weight, p.Height, BMI(p.Weight, p.Height),
		p.Objectives, restrictions, activities)
}

func buildWorkoutPrompt(p *models.Profile) (system, user string) {
	location := trainingLocationPhrase(p.TrainingType)

	var b strings.Builder
	b.WriteString("Crie um plano de treino personalizado com base nas seguintes informações:\n\n")
	b.WriteString(profileSummary(p))
	fmt.Fprintf(&b, "\n- Local de treino: %s\n", location)
	fmt.Fprintf(&b, `
INSTRUÇÕES IMPORTANTES:
1. Adapte os exercícios para o local escolhido (%s)
2. Considere as atividades físicas que a pessoa já pratica para evitar sobrecarga
3. Inclua sempre: aquecimento, treino principal e alongamento
4. Para cada exercício, especifique: séries, repetições e tempo de descanso

FORMATO DA RESPOSTA (JSON):
{
  "frequency": "frequência semanal recomendada",
  "division": "divisão do treino (ex: ABC)",
  "days": [
    {
      "title": "DIA A - GRUPO MUSCULAR",
      "warmup": [{"exercise": "nome", "duration": "5 min"}],
      "exercises": [{"name": "nome", "sets": 3, "reps": "10-12", "rest": "60s"}],
      "cooldown": [{"muscle": "grupo", "duration": "30s", "instructions": "como alongar"}]
    }
  ]
}`, location)

	return workoutSystemPrompt, b.String()
}

func buildNutritionPrompt(p *models.Profile, policy *foodpolicy.Policy) (system, user string) {
	var b strings.Builder
	b.WriteString("Crie um plano nutricional personalizado com base nas seguintes informações:\n\n")
	b.WriteString(profileSummary(p))
	b.WriteString("\n\n")
	b.WriteString(policy.AllowedSummary())
	b.WriteString("\n\n")
	b.WriteString(policy.ForbiddenSummary())
	fmt.Fprintf(&b, `

INSTRUÇÕES IMPORTANTES:
1. Use APENAS alimentos da lista de permitidos
2. NUNCA inclua alimentos da lista de proibidos
3. Respeite as restrições alimentares mencionadas
4. O custo total da lista de compras semanal deve ficar entre R$ %d e R$ %d
5. Dê opções de substituição para cada refeição

FORMATO DA RESPOSTA (JSON):
{
  "calories": 2000,
  "protein_g": 150,
  "carbs_g": 200,
  "fats_g": 60,
  "meals": {
    "breakfast": {"items": [{"food": "nome", "quantity": "porção", "details": "preparo"}], "calories": 400},
    "morning_snack": {"items": [], "calories": 0},
    "lunch": {"items": [], "calories": 0},
    "afternoon_snack": {"items": [], "calories": 0},
    "dinner": {"items": [], "calories": 0},
    "supper": {"items": [], "calories": 0}
  },
  "shopping_list": [{"item": "nome", "price": 12.50}],
  "total_cost": 120.00,
  "substitutions": [{"original": "alimento", "alternative": "substituto"}]
}`, costBandMinBRL, costBandMaxBRL)

	return nutritionSystemPrompt, b.String()
}
