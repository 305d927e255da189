package wizard

import (
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/kirimuang-backend/internal/domain"
	"github.com/simaogato/kirimuang-backend/internal/i18n"
)

func newTestManager() *Manager {
	return NewManager(Deps{
		Submitter:  new(MockSubmissionService),
		Rates:      fixedRates{},
		Translator: i18n.MustLoad(),
		Logger:     zerolog.New(io.Discard),
	})
}

func TestManager_StartGetEnd(t *testing.T) {
	m := newTestManager()

	w, err := m.Start(context.Background(), domain.LanguageIndonesian)
	require.NoError(t, err)

	got, err := m.Get(w.ID())
	require.NoError(t, err)
	assert.Same(t, w, got)

	require.NoError(t, m.End(w.ID()))

	_, err = m.Get(w.ID())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.ErrorIs(t, m.End(w.ID()), domain.ErrSessionNotFound)

	_, err = w.Next()
	assert.ErrorIs(t, err, domain.ErrWizardClosed)
}

func TestManager_SessionsAreIndependent(t *testing.T) {
	m := newTestManager()

	a, err := m.Start(context.Background(), domain.LanguageEnglish)
	require.NoError(t, err)
	b, err := m.Start(context.Background(), domain.LanguageIndonesian)
	require.NoError(t, err)

	_, err = a.SetField(domain.FieldAmount, "5")
	require.NoError(t, err)
	_, err = a.Next()
	require.Error(t, err)

	assert.NotEqual(t, a.ID(), b.ID())
	assert.Empty(t, b.State().Draft.Amount)
	assert.Equal(t, "Minimal transfer $10", func() string {
		_, _ = b.SetField(domain.FieldAmount, "5")
		_, err := b.Next()
		verrs, _ := IsValidation(err)
		return verrs[domain.FieldAmount]
	}())

	m.CloseAll()
	_, err = m.Get(a.ID())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestManager_StartWithCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestManager().Start(ctx, domain.LanguageEnglish)
	assert.ErrorIs(t, err, context.Canceled)
}
