// Package wizard implements the three-step transfer form: amount, recipient, confirmation.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/simaogato/kirimuang-backend/internal/domain"
	"github.com/simaogato/kirimuang-backend/internal/i18n"
	"github.com/simaogato/kirimuang-backend/internal/observability"
	"github.com/simaogato/kirimuang-backend/internal/usecase/notification"
	"github.com/simaogato/kirimuang-backend/internal/usecase/submission"
)

// RateProvider supplies the snapshot quotes are computed from
type RateProvider interface {
	Current() domain.ExchangeRateSnapshot
}

// Deps are the collaborators shared by every wizard session
type Deps struct {
	Submitter  domain.SubmissionService
	Rates      RateProvider
	Notices    *notification.Notices
	Translator *i18n.Translator
	Logger     zerolog.Logger
}

// State is a read-only view of a session
type State struct {
	SessionID         string
	Language          domain.Language
	Step              domain.Step
	Draft             domain.TransferDraft
	Errors            domain.ValidationErrors
	Quote             domain.Quote
	Submitting        bool
	LastTransactionID string
	Route             domain.Route
}

// Wizard holds one draft. All methods are safe for concurrent use; Submit is the only one that blocks.
type Wizard struct {
	id   string
	lang domain.Language
	deps Deps
	nav  domain.Navigator

	mu         sync.Mutex
	step       domain.Step
	draft      domain.TransferDraft
	errs       domain.ValidationErrors
	lastTxnID  string
	generation uint64
	closed     bool

	now    func() time.Time
	logger zerolog.Logger
}

// New opens a wizard on the amount step and moves nav to the send screen
func New(id string, lang domain.Language, nav domain.Navigator, deps Deps) *Wizard {
	if !lang.Valid() {
		lang = domain.DefaultLanguage
	}
	nav.Navigate(domain.RouteSend)

	return &Wizard{
		id:     id,
		lang:   lang,
		deps:   deps,
		nav:    nav,
		step:   domain.StepAmount,
		errs:   domain.ValidationErrors{},
		now:    time.Now,
		logger: deps.Logger.With().Str("session_id", id).Logger(),
	}
}

func (w *Wizard) ID() string {
	return w.id
}

// SetField edits one input of the current step and clears its error.
// The phone number is stored in its display format.
func (w *Wizard) SetField(field domain.Field, value string) (State, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return State{}, domain.ErrWizardClosed
	}
	if _, err := w.draft.Get(field); err != nil {
		return w.stateLocked(), err
	}
	if !w.step.Owns(field) {
		return w.stateLocked(), fmt.Errorf("%w: %s on %s", domain.ErrFieldNotOnStep, field, w.step)
	}

	if field == domain.FieldRecipientPhone {
		value = domain.FormatPhone(value)
	}
	if err := w.draft.Set(field, value); err != nil {
		return w.stateLocked(), err
	}
	delete(w.errs, field)

	return w.stateLocked(), nil
}

// Next validates the current step and advances. On failure the returned error is the
// localized domain.ValidationErrors and the step is unchanged.
func (w *Wizard) Next() (State, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return State{}, domain.ErrWizardClosed
	}

	switch w.step {
	case domain.StepAmount, domain.StepRecipient:
	case domain.StepSubmitting:
		return w.stateLocked(), domain.ErrSubmitInProgress
	default:
		return w.stateLocked(), fmt.Errorf("%w: no next step after %s", domain.ErrInvalidTransition, w.step)
	}

	if errs := domain.ValidateStep(w.step, w.draft); len(errs) > 0 {
		for field := range errs {
			observability.ValidationFailures.WithLabelValues(string(field)).Inc()
		}
		w.errs = w.deps.Translator.Localize(w.lang, errs)
		w.logger.Debug().Str("step", w.step.String()).Str("errors", errs.Error()).Msg("step blocked by validation")
		return w.stateLocked(), w.errs.Clone()
	}

	w.errs = domain.ValidationErrors{}
	w.step++
	return w.stateLocked(), nil
}

// Back returns to the previous step keeping every entered value.
// From the amount step it leaves the wizard through the navigator and discards the draft.
func (w *Wizard) Back() (State, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return State{}, domain.ErrWizardClosed
	}

	switch w.step {
	case domain.StepAmount:
		w.resetLocked()
		w.nav.Back()
	case domain.StepRecipient, domain.StepConfirmation:
		w.step--
		w.errs = domain.ValidationErrors{}
	case domain.StepSubmitting:
		return w.stateLocked(), domain.ErrSubmitInProgress
	case domain.StepSuccess:
		w.resetLocked()
	}
	return w.stateLocked(), nil
}

// Reset starts over with an empty draft
func (w *Wizard) Reset() (State, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return State{}, domain.ErrWizardClosed
	}
	if w.step == domain.StepSubmitting {
		return w.stateLocked(), domain.ErrSubmitInProgress
	}
	w.resetLocked()
	return w.stateLocked(), nil
}

// Quote derives the amounts from the draft and the current rate
func (w *Wizard) Quote() domain.Quote {
	w.mu.Lock()
	draft := w.draft
	w.mu.Unlock()

	return domain.NewQuote(draft, w.deps.Rates.Current().Rate)
}

func (w *Wizard) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stateLocked()
}

// Submit sends the confirmed draft and waits for the answer.
// A call while another submission is pending returns ErrSubmitInProgress.
// On success the draft is cleared and the user is sent to the dashboard; on failure the wizard
// is back on confirmation and a sticky error toast offers a retry.
func (w *Wizard) Submit(ctx context.Context) (State, error) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return State{}, domain.ErrWizardClosed
	}
	switch w.step {
	case domain.StepConfirmation:
	case domain.StepSubmitting:
		state := w.stateLocked()
		w.mu.Unlock()
		return state, domain.ErrSubmitInProgress
	default:
		state := w.stateLocked()
		w.mu.Unlock()
		return state, fmt.Errorf("%w: submit from %s", domain.ErrInvalidTransition, state.Step)
	}

	w.step = domain.StepSubmitting
	gen := w.generation
	draft := w.draft
	w.mu.Unlock()

	amount, _ := draft.ParsedAmount()
	start := w.now()
	// once started a submission always resolves; the caller going away does not abort it
	res, err := w.deps.Submitter.Submit(context.WithoutCancel(ctx), draft)
	observability.SubmitLatency.Observe(time.Since(start).Seconds())

	if err != nil {
		return w.failed(ctx, gen, draft, err)
	}

	txnID := res.TransactionID
	if txnID == "" {
		txnID = submission.NewTransactionID(w.now())
	}
	observability.TransfersSubmitted.WithLabelValues("success").Inc()

	w.mu.Lock()
	late := w.closed || w.generation != gen
	if !late {
		w.resetLocked()
		w.step = domain.StepSuccess
		w.lastTxnID = txnID
	}
	state := w.stateLocked()
	w.mu.Unlock()

	// the transfer happened either way, so the toast is raised even for a closed session
	w.notify(func(n *notification.Notices) error {
		_, err := n.TransferSucceeded(w.lang, amount, draft.RecipientName, txnID, nil)
		return err
	})

	if late {
		w.logger.Info().Str("transaction_id", txnID).Msg("submission completed after the session was closed")
		return state, domain.ErrWizardClosed
	}

	w.nav.Navigate(domain.RouteDashboard)
	w.logger.Info().Str("transaction_id", txnID).Msg("transfer submitted")
	return w.State(), nil
}

func (w *Wizard) failed(ctx context.Context, gen uint64, draft domain.TransferDraft, cause error) (State, error) {
	observability.TransfersSubmitted.WithLabelValues("failure").Inc()

	w.mu.Lock()
	late := w.closed || w.generation != gen
	if !late {
		w.step = domain.StepConfirmation
	}
	state := w.stateLocked()
	w.mu.Unlock()

	var retry func()
	if !late {
		retryCtx := context.WithoutCancel(ctx)
		retry = func() {
			go func() {
				if _, err := w.Submit(retryCtx); err != nil {
					w.logger.Warn().Err(err).Msg("retried submission failed")
				}
			}()
		}
	}

	amount, _ := draft.ParsedAmount()
	w.notify(func(n *notification.Notices) error {
		_, err := n.TransferFailed(w.lang, amount, draft.RecipientName, cause.Error(), retry)
		return err
	})

	w.logger.Warn().Err(cause).Msg("transfer submission failed")
	if late {
		return state, domain.ErrWizardClosed
	}
	return state, fmt.Errorf("%w: %w", domain.ErrSubmissionFailed, cause)
}

// Close ends the session. A submission still pending completes without touching any state.
func (w *Wizard) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	w.closed = true
	w.generation++
	w.draft = domain.TransferDraft{}
	w.errs = domain.ValidationErrors{}
}

func (w *Wizard) notify(raise func(*notification.Notices) error) {
	if w.deps.Notices == nil {
		return
	}
	if err := raise(w.deps.Notices); err != nil {
		w.logger.Error().Err(err).Msg("failed to raise transfer notification")
	}
}

func (w *Wizard) resetLocked() {
	w.step = domain.StepAmount
	w.draft = domain.TransferDraft{}
	w.errs = domain.ValidationErrors{}
}

func (w *Wizard) stateLocked() State {
	return State{
		SessionID:         w.id,
		Language:          w.lang,
		Step:              w.step,
		Draft:             w.draft,
		Errors:            w.errs.Clone(),
		Quote:             domain.NewQuote(w.draft, w.deps.Rates.Current().Rate),
		Submitting:        w.step == domain.StepSubmitting,
		LastTransactionID: w.lastTxnID,
		Route:             w.nav.Current(),
	}
}

// IsValidation reports whether err carries per-field validation messages
func IsValidation(err error) (domain.ValidationErrors, bool) {
	var verrs domain.ValidationErrors
	if errors.As(err, &verrs) {
		return verrs, true
	}
	return nil, false
}
