// Package foodpolicy keeps the allow/deny food vocabulary that steers
// nutrition plans toward cheap, easy to find items.
package foodpolicy

import (
	"strings"
)

// Policy is a fixed vocabulary: allowed items grouped by category plus a
// flat forbidden list. Built once at startup and never mutated.
type Policy struct {
	allowed   map[string][]string
	forbidden []string
}

// Caps applied when summarizing the vocabulary for a prompt, so the prompt
// size stays bounded no matter how the lists grow.
const (
	maxProteins      = 10
	maxCarbs         = 15
	maxVegetables    = 12
	maxForbiddenList = 30
)

var defaultAllowed = map[string][]string{
	"proteinas": {
		"Ovos",
		"Frango (peito, coxa, sobrecoxa)",
		"Carne moída",
		"Carne de segunda (patinho, músculo)",
		"Fígado bovino",
		"Linguiça",
		"Sardinha em lata",
		"Atum em lata",
		"Peito de peru fatiado",
		"Leite integral",
		"Leite em pó",
		"Iogurte natural",
		"Queijo minas",
		"Requeijão",
		"Feijão (preto, carioca)",
		"Lentilha",
		"Grão de bico",
		"Ervilha",
	},
	"carboidratos": {
		"Arroz branco",
		"Arroz integral",
		"Macarrão",
		"Pão francês",
		"Pão de forma integral",
		"Pão de forma branco",
		"Aveia em flocos",
		"Farinha de trigo",
		"Farinha de mandioca",
		"Fubá",
		"Tapioca",
		"Batata inglesa",
		"Batata doce",
		"Mandioca/Aipim",
		"Inhame",
		"Cará",
		"Banana",
		"Maçã",
		"Laranja",
		"Mamão",
		"Melancia",
		"Abacaxi",
	},
	"vegetais": {
		"Alface",
		"Tomate",
		"Cenoura",
		"Cebola",
		"Alho",
		"Chuchu",
		"Abobrinha",
		"Abóbora",
		"Beterraba",
		"Pepino",
		"Pimentão",
		"Couve",
		"Repolho",
		"Brócolis",
		"Couve-flor",
		"Vagem",
		"Espinafre",
		"Rúcula",
	},
	"gorduras": {
		"Óleo de soja",
		"Azeite de oliva (pequenas quantidades)",
		"Manteiga",
		"Margarina",
		"Amendoim (torrado, sem casca)",
	},
	"temperos": {
		"Sal",
		"Pimenta do reino",
		"Colorau",
		"Cominho",
		"Orégano",
		"Cheiro verde",
		"Limão",
		"Vinagre",
	},
}

var defaultForbidden = []string{
	// Proteínas caras
	"Salmão",
	"Camarão",
	"Lagosta",
	"Bacalhau",
	"Atum fresco",
	"Picanha",
	"Filé mignon",
	"Cordeiro",
	"Whey protein",
	"Proteína isolada",
	"Creatina",
	"BCAA",

	// Grãos e cereais caros
	"Quinoa",
	"Amaranto",
	"Chia",
	"Linhaça dourada",
	"Granola gourmet",
	"Cereais importados",

	// Castanhas caras
	"Castanha de caju",
	"Castanha do Pará",
	"Nozes",
	"Amêndoas",
	"Pistache",
	"Avelã",
	"Macadâmia",
	"Mix de nuts",

	// Frutas caras ou exóticas
	"Açaí (bowl)",
	"Frutas vermelhas importadas",
	"Morango (fora de época)",
	"Kiwi",
	"Pera importada",
	"Uva importada",
	"Manga (fora de época)",
	"Frutas orgânicas premium",
	"Pitaya",
	"Lichia",

	// Superfoods e produtos especiais
	"Spirulina",
	"Chlorella",
	"Goji berry",
	"Maca peruana",
	"Óleo de coco extra virgem",
	"Ghee",
	"Manteiga de amêndoas",
	"Pasta de amendoim importada",
	"Tahine",
	"Produtos sem glúten premium",
	"Produtos veganos premium",
	"Barrinhas de proteína importadas",

	// Laticínios especiais
	"Queijos importados",
	"Iogurte grego premium",
	"Leite de amêndoas",
	"Leite de coco",
	"Cream cheese importado",

	// Outros
	"Alimentos orgânicos certificados",
	"Produtos diet/light premium",
	"Suplementos caros",
	"Bebidas isotônicas premium",
	"Shakes prontos importados",
}

// Default returns the built-in vocabulary.
func Default() *Policy {
	return &Policy{
		allowed:   defaultAllowed,
		forbidden: defaultForbidden,
	}
}

// IsForbidden reports whether text contains any forbidden item, using
// case-insensitive substring containment. All matches are returned in
// vocabulary order. Substring matching is deliberate: a forbidden term
// embedded in a longer phrase still counts.
func (p *Policy) IsForbidden(text string) (bool, []string) {
	lower := strings.ToLower(text)

	var found []string
	for _, item := range p.forbidden {
		if strings.Contains(lower, strings.ToLower(item)) {
			found = append(found, item)
		}
	}

	return len(found) > 0, found
}

// AllowedSummary renders a truncated view of the allowed vocabulary for
// inclusion in a generation prompt.
func (p *Policy) AllowedSummary() string {
	var b strings.Builder

	b.WriteString("ALIMENTOS PERMITIDOS (BARATOS E ACESSÍVEIS):\n\n")

	b.WriteString("Proteínas:\n")
	b.WriteString(strings.Join(truncate(p.allowed["proteinas"], maxProteins), ", "))
	b.WriteString("\n\n")

	b.WriteString("Carboidratos:\n")
	b.WriteString(strings.Join(truncate(p.allowed["carboidratos"], maxCarbs), ", "))
	b.WriteString("\n\n")

	b.WriteString("Vegetais:\n")
	b.WriteString(strings.Join(truncate(p.allowed["vegetais"], maxVegetables), ", "))
	b.WriteString("\n\n")

	b.WriteString("Gorduras:\n")
	b.WriteString(strings.Join(p.allowed["gorduras"], ", "))

	return b.String()
}

// ForbiddenSummary renders a truncated view of the forbidden vocabulary.
func (p *Policy) ForbiddenSummary() string {
	return "ALIMENTOS PROIBIDOS (CAROS/DIFÍCEIS):\n" +
		strings.Join(truncate(p.forbidden, maxForbiddenList), ", ")
}

func truncate(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
