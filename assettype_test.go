package carteira

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Ação", "acao"},
		{"Renda Fixa", "renda_fixa"},
		{"Tesouro Direto", "tesouro_direto"},
		{"Criptomoeda", "criptomoeda"},
		{"FII/Logística", "fii_logistica"},
		{"  Câmbio  ", "cambio"},
		{"!!!", ""},
	}
	for _, tt := range tests {
		if got := slugify(tt.in); got != tt.want {
			t.Errorf("slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDefaultAssetTypes(t *testing.T) {
	types := DefaultAssetTypes()
	ids := make(map[string]bool, len(types))
	for _, tp := range types {
		ids[tp.ID] = true
	}
	for _, want := range []string{"acao", "fii", "renda_fixa", "cripto", "outros"} {
		if !ids[want] {
			t.Errorf("default types missing %q", want)
		}
	}
}
