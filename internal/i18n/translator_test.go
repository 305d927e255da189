package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/kirimuang-backend/internal/domain"
)

func TestLoad_EmbeddedTables(t *testing.T) {
	tr, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Kirim Uang", tr.T(domain.LanguageIndonesian, "send.title"))
	assert.Equal(t, "Send Money", tr.T(domain.LanguageEnglish, "send.title"))
}

func TestTranslator_FallsBack(t *testing.T) {
	tr := MustLoad()

	assert.Equal(t, "no.such.key", tr.T(domain.LanguageEnglish, "no.such.key"))
	assert.Equal(t, "Kirim Uang", tr.T(domain.Language("fr"), "send.title"), "unknown language uses the default table")
}

func TestTranslator_EveryValidationKeyIsTranslated(t *testing.T) {
	tr := MustLoad()
	keys := []string{
		domain.MsgAmountInvalid, domain.MsgAmountMin, domain.MsgAmountMax,
		domain.MsgRecipientNameRequired, domain.MsgRecipientNameShort,
		domain.MsgPhoneRequired, domain.MsgPhoneInvalid, domain.MsgBankRequired,
		domain.MsgAccountRequired, domain.MsgAccountShort, domain.MsgAccountDigits,
	}

	for _, lang := range []domain.Language{domain.LanguageIndonesian, domain.LanguageEnglish} {
		for _, key := range keys {
			assert.NotEqual(t, key, tr.T(lang, key), "%s missing in %s", key, lang)
		}
	}
}

func TestTranslator_Localize(t *testing.T) {
	tr := MustLoad()
	errs := domain.ValidationErrors{domain.FieldAmount: domain.MsgAmountMin}

	out := tr.Localize(domain.LanguageEnglish, errs)
	assert.Contains(t, out[domain.FieldAmount], "minimum 10")
	assert.Equal(t, domain.MsgAmountMin, errs[domain.FieldAmount], "input is left untouched")
}

func TestParse_RejectsUnknownLanguage(t *testing.T) {
	_, err := Parse([]byte("xx:\n  a: b\n"))
	assert.Error(t, err)
}
