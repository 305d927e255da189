package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/simaogato/kirimuang-backend/internal/domain"
	"github.com/simaogato/kirimuang-backend/internal/usecase/dashboard"
	"github.com/simaogato/kirimuang-backend/internal/usecase/wizard"
)

var selectTemplates = &promptui.SelectTemplates{
	Label:    "{{ . }}?",
	Active:   `{{ "✔" | cyan }} {{ . | cyan }}`,
	Inactive: `  {{ . }}`,
	Selected: `{{ "✔" | green }} {{ . | green }}`,
}

func newSendCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "send",
		Short: "Start a transfer with the interactive wizard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

			lang, err := s.app.Preferences.Language(ctx)
			if err != nil {
				return err
			}

			w, err := s.app.Wizards.Start(ctx, lang)
			if err != nil {
				return err
			}
			defer s.app.Wizards.End(w.ID())

			err = s.runWizard(cmd, w, lang)
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return nil
			}
			return err
		},
	}
}

// runWizard drives the session step by step until success or cancel
func (s *session) runWizard(cmd *cobra.Command, w *wizard.Wizard, lang domain.Language) error {
	ctx := commandContext(cmd)
	out := cmd.OutOrStdout()
	t := func(key string) string { return s.app.Translator.T(lang, key) }

	fmt.Fprintln(out, titleStyle.Render(t("send.title")))

	for {
		state := w.State()

		switch state.Step {
		case domain.StepAmount:
			fmt.Fprintf(out, "\n[1/3] %s\n", t("send.amount"))
			amount, err := promptText(t("send.enterAmount"), state.Draft.Amount)
			if err != nil {
				return err
			}
			if _, err := w.SetField(domain.FieldAmount, amount); err != nil {
				return err
			}
			if err := next(w, out); err != nil {
				return err
			}

		case domain.StepRecipient:
			fmt.Fprintf(out, "\n[2/3] %s\n", t("send.recipientData"))
			if err := promptRecipient(w, state.Draft, t); err != nil {
				return err
			}
			if err := next(w, out); err != nil {
				return err
			}

		case domain.StepConfirmation:
			fmt.Fprintf(out, "\n[3/3] %s\n", t("send.confirmation"))
			fmt.Fprintf(out, "%s, %s, %s\n", state.Draft.RecipientName, state.Draft.BankName, state.Draft.AccountNumber)
			fmt.Fprint(out, renderQuote(state.Quote))
			if state.Quote.Total.GreaterThan(dashboard.MockBalance) {
				if _, err := s.app.Notices.LowBalance(lang, dashboard.MockBalance, nil); err != nil {
					return err
				}
				s.printToasts(out)
			}

			actions := []string{t("send.sendNow"), t("send.back"), t("send.cancel")}
			choice, _, err := (&promptui.Select{
				Label:     t("send.confirmation"),
				Items:     actions,
				Size:      len(actions),
				Templates: selectTemplates,
			}).Run()
			if err != nil {
				return err
			}

			switch choice {
			case 0:
				if err := s.submit(ctx, w, lang, out); err != nil {
					return err
				}
			case 1:
				if _, err := w.Back(); err != nil {
					return err
				}
			default:
				return nil
			}

		case domain.StepSuccess:
			fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Transaction ID:"), state.LastTransactionID)
			return nil

		default:
			return fmt.Errorf("unexpected wizard step %s", state.Step)
		}
	}
}

// submit shows a "transfer started" toast for as long as the submission is pending.
// A rejected transfer is not an error here; the wizard is back on confirmation.
func (s *session) submit(ctx context.Context, w *wizard.Wizard, lang domain.Language, out io.Writer) error {
	state := w.State()
	started, err := s.app.Notices.TransferStarted(lang, state.Quote.Amount, state.Draft.RecipientName)
	if err != nil {
		return err
	}
	s.printToasts(out)
	fmt.Fprintln(out, labelStyle.Render(s.app.Translator.T(lang, "send.processing")))

	_, err = w.Submit(ctx)
	s.app.Center.Remove(started.ID)
	if err != nil && !errors.Is(err, domain.ErrSubmissionFailed) {
		return err
	}
	s.printToasts(out)
	return nil
}

func next(w *wizard.Wizard, out io.Writer) error {
	_, err := w.Next()
	if errs, ok := wizard.IsValidation(err); ok {
		fmt.Fprint(out, renderErrors(errs))
		return nil
	}
	return err
}

func promptRecipient(w *wizard.Wizard, draft domain.TransferDraft, t func(string) string) error {
	fields := []struct {
		field domain.Field
		label string
		value string
	}{
		{domain.FieldRecipientName, t("send.fullName"), draft.RecipientName},
		{domain.FieldRecipientPhone, t("send.phoneNumber"), draft.RecipientPhone},
	}
	for _, f := range fields {
		value, err := promptText(f.label, f.value)
		if err != nil {
			return err
		}
		if _, err := w.SetField(f.field, value); err != nil {
			return err
		}
	}

	bank, err := promptBank(t("send.bankName"), draft.BankName)
	if err != nil {
		return err
	}
	if _, err := w.SetField(domain.FieldBankName, bank); err != nil {
		return err
	}

	account, err := promptText(t("send.accountNumber"), draft.AccountNumber)
	if err != nil {
		return err
	}
	_, err = w.SetField(domain.FieldAccountNumber, account)
	return err
}

func promptText(label, current string) (string, error) {
	prompt := promptui.Prompt{
		Label:     label,
		Default:   current,
		AllowEdit: true,
	}
	value, err := prompt.Run()
	return strings.TrimSpace(value), err
}

func promptBank(label, current string) (string, error) {
	cursor := 0
	for i, bank := range domain.IndonesianBanks {
		if bank == current {
			cursor = i
		}
	}

	prompt := promptui.Select{
		Label:             label,
		Items:             domain.IndonesianBanks,
		Size:              8,
		CursorPos:         cursor,
		StartInSearchMode: current == "",
		Templates:         selectTemplates,
		Searcher: func(input string, index int) bool {
			return slices.Contains(domain.SuggestBanks(strings.TrimSpace(input)), domain.IndonesianBanks[index])
		},
	}

	_, bank, err := prompt.Run()
	return bank, err
}
