package i18n

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/simaogato/kirimuang-backend/internal/domain"
)

//go:embed translations.yaml
var tablesFS embed.FS

// Translator is a static key-value lookup per language
type Translator struct {
	tables   map[domain.Language]map[string]string
	fallback domain.Language
}

// Load parses the embedded translation tables
func Load() (*Translator, error) {
	data, err := tablesFS.ReadFile("translations.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded translations: %w", err)
	}
	return Parse(data)
}

// MustLoad is Load for package-level wiring where the embedded file is known to be valid
func MustLoad() *Translator {
	t, err := Load()
	if err != nil {
		panic(err)
	}
	return t
}

// Parse builds a translator from a YAML document keyed by language
func Parse(data []byte) (*Translator, error) {
	var raw map[string]map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse translations YAML: %w", err)
	}

	tables := make(map[domain.Language]map[string]string, len(raw))
	for lang, table := range raw {
		l := domain.Language(lang)
		if !l.Valid() {
			return nil, fmt.Errorf("invalid language %q in translations", lang)
		}
		tables[l] = table
	}

	return &Translator{tables: tables, fallback: domain.DefaultLanguage}, nil
}

// T returns the text for key. Unknown languages use the default table, unknown keys return the key.
func (t *Translator) T(lang domain.Language, key string) string {
	table, ok := t.tables[lang]
	if !ok {
		table = t.tables[t.fallback]
	}
	if v, ok := table[key]; ok {
		return v
	}
	return key
}

// Tf formats the looked-up text with args
func (t *Translator) Tf(lang domain.Language, key string, args ...interface{}) string {
	return fmt.Sprintf(t.T(lang, key), args...)
}

// Localize replaces every message key of errs with its text
func (t *Translator) Localize(lang domain.Language, errs domain.ValidationErrors) domain.ValidationErrors {
	out := make(domain.ValidationErrors, len(errs))
	for field, key := range errs {
		out[field] = t.T(lang, key)
	}
	return out
}
