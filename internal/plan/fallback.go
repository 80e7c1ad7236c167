package plan

import (
	"fmt"
	"strings"
)

// DefaultWorkout is the static fallback workout document, returned when
// model invocation fails. Deterministic for a given name.
func DefaultWorkout(profileName string) string {
	return fmt.Sprintf(`PLANO DE TREINO - %s

Este é um plano básico gerado automaticamente. Para melhores resultados, tente novamente mais tarde.

TREINO ABC - 3x POR SEMANA

DIA A - PEITO E TRÍCEPS
1. Aquecimento: 5 min de movimentos articulares
2. Flexões: 3 séries de 10-15 repetições
3. Mergulho entre cadeiras: 3 séries de 8-12 repetições
4. Alongamento: 5 minutos

DIA B - COSTAS E BÍCEPS
1. Aquecimento: 5 min
2. Remada com peso improvisado: 3 séries de 12 repetições
3. Rosca direta: 3 séries de 12 repetições
4. Alongamento: 5 minutos

DIA C - PERNAS E CORE
1. Aquecimento: 5 min
2. Agachamento: 3 séries de 15 repetições
3. Afundo: 3 séries de 10 repetições (cada perna)
4. Prancha: 3 séries de 30 segundos
5. Alongamento: 5 minutos

DICAS IMPORTANTES
- Descanse 1-2 minutos entre as séries
- Hidrate-se antes, durante e após o treino
- Em caso de dor, interrompa o exercício
`, strings.ToUpper(profileName))
}

// DefaultNutrition is the static fallback nutrition document. Built only
// from allowed foods, so it always passes the food policy.
func DefaultNutrition(profileName string) string {
	return fmt.Sprintf(`PLANO NUTRICIONAL - %s

Este é um plano básico gerado automaticamente. Para melhores resultados, tente novamente mais tarde.

CAFÉ DA MANHÃ
- 2 ovos mexidos
- 2 fatias de pão de forma integral
- 1 banana
- Café com leite

LANCHE DA MANHÃ
- 1 iogurte natural
- 1 maçã

ALMOÇO
- Arroz integral (4 colheres)
- Feijão (1 concha)
- Frango grelhado (150g)
- Salada verde à vontade
- 1 colher de azeite

LANCHE DA TARDE
- Pão de forma integral com requeijão
- 1 fruta da estação

JANTAR
- Omelete de 3 ovos com legumes
- Salada verde
- 1 fatia de pão de forma integral

CEIA
- 1 copo de leite

DICAS IMPORTANTES
- Beba pelo menos 2 litros de água por dia
- Faça as refeições em horários regulares
- Evite alimentos ultraprocessados
`, strings.ToUpper(profileName))
}
