package carteira

import (
	"regexp"
	"strings"
)

// AssetType is a user-managed category tag for holdings.
type AssetType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DefaultAssetTypes returns the type registry a new book starts with.
func DefaultAssetTypes() []AssetType {
	return []AssetType{
		{ID: "acao", Name: "Ação"},
		{ID: "fii", Name: "FII"},
		{ID: "renda_fixa", Name: "Renda Fixa"},
		{ID: "cripto", Name: "Criptomoeda"},
		{ID: "outros", Name: "Outros"},
	}
}

var slugSeparators = regexp.MustCompile(`[\s/-]+`)

// slugify derives a registry id from a display name, e.g.
// "Renda Fixa" -> "renda_fixa".
func slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugSeparators.ReplaceAllString(s, "_")
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		case r == 'ç':
			b.WriteRune('c')
		case r == 'á' || r == 'à' || r == 'â' || r == 'ã':
			b.WriteRune('a')
		case r == 'é' || r == 'ê':
			b.WriteRune('e')
		case r == 'í':
			b.WriteRune('i')
		case r == 'ó' || r == 'ô' || r == 'õ':
			b.WriteRune('o')
		case r == 'ú' || r == 'ü':
			b.WriteRune('u')
		}
	}
	return b.String()
}
