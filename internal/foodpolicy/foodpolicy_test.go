package foodpolicy

import (
	"strings"
	"testing"
)

func TestIsForbidden(t *testing.T) {
	policy := Default()

	tests := []struct {
		name      string
		text      string
		forbidden bool
		matches   []string
	}{
		{
			name:      "clean plan",
			text:      "Almoço: arroz, feijão e frango grelhado com salada",
			forbidden: false,
		},
		{
			name:      "exact term",
			text:      "Jantar: Salmão grelhado com legumes",
			forbidden: true,
			matches:   []string{"Salmão"},
		},
		{
			name:      "case insensitive",
			text:      "lanche com WHEY PROTEIN e banana",
			forbidden: true,
			matches:   []string{"Whey protein"},
		},
		{
			name:      "term embedded in a longer phrase",
			text:      "Vitamina de quinoa em flocos no café da manhã",
			forbidden: true,
			matches:   []string{"Quinoa"},
		},
		{
			name:      "multiple matches reported in vocabulary order",
			text:      "Camarão ao alho e óleo, sobremesa de açaí (bowl) com nozes",
			forbidden: true,
			matches:   []string{"Camarão", "Nozes", "Açaí (bowl)"},
		},
		{
			name:      "empty text",
			text:      "",
			forbidden: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := policy.IsForbidden(tt.text)
			if got != tt.forbidden {
				t.Fatalf("IsForbidden(%q) = %v, want %v", tt.text, got, tt.forbidden)
			}
			if len(found) != len(tt.matches) {
				t.Fatalf("matches = %v, want %v", found, tt.matches)
			}
			for i := range found {
				if found[i] != tt.matches[i] {
					t.Errorf("match[%d] = %q, want %q", i, found[i], tt.matches[i])
				}
			}
		})
	}
}

func TestAllowedSummaryIsTruncatedAndStable(t *testing.T) {
	policy := Default()

	first := policy.AllowedSummary()
	second := policy.AllowedSummary()
	if first != second {
		t.Fatal("AllowedSummary is not deterministic")
	}

	if !strings.HasPrefix(first, "ALIMENTOS PERMITIDOS") {
		t.Errorf("unexpected header: %q", first[:40])
	}
	for _, header := range []string{"Proteínas:", "Carboidratos:", "Vegetais:", "Gorduras:"} {
		if !strings.Contains(first, header) {
			t.Errorf("summary missing section %q", header)
		}
	}

	// Item 11 of the protein list must be cut by the cap.
	if strings.Contains(first, "Leite em pó") {
		t.Error("protein list was not truncated to the cap")
	}
	if !strings.Contains(first, "Leite integral") {
		t.Error("protein item under the cap is missing")
	}
}

func TestForbiddenSummaryIsTruncated(t *testing.T) {
	policy := Default()

	summary := policy.ForbiddenSummary()
	if !strings.HasPrefix(summary, "ALIMENTOS PROIBIDOS") {
		t.Errorf("unexpected header: %q", summary)
	}
	if !strings.Contains(summary, "Salmão") {
		t.Error("summary missing a leading forbidden item")
	}
	// Entry 31+ stays out of the prompt summary.
	if strings.Contains(summary, "Spirulina") {
		t.Error("forbidden list was not truncated to the cap")
	}
	if got := len(strings.Split(strings.SplitN(summary, "\n", 2)[1], ", ")); got != 30 {
		t.Errorf("summary has %d items, want 30", got)
	}
}
