package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/simaogato/kirimuang-backend/internal/domain"
	"github.com/simaogato/kirimuang-backend/internal/money"
	"github.com/simaogato/kirimuang-backend/internal/usecase/history"
)

func newHistoryCmd(s *session) *cobra.Command {
	var filter history.Filter

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past transfers, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			out := cmd.OutOrStdout()

			transactions, err := s.app.History.List(ctx, filter)
			if err != nil {
				return err
			}
			if len(transactions) == 0 {
				fmt.Fprintln(out, "No transactions found.")
				return nil
			}
			for _, tx := range transactions {
				fmt.Fprintln(out, renderTransaction(tx))
			}

			stats, err := s.app.History.Stats(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\n%d transactions, %d completed, %s sent\n",
				stats.TotalTransactions, stats.Completed, money.USD(stats.TotalSent))
			return nil
		},
	}

	cmd.Flags().StringVarP(&filter.Query, "query", "q", "", "Search recipient, transaction id or bank")
	cmd.Flags().StringVarP(&filter.Status, "status", "s", history.StatusAll, "Filter by status: all, completed, processing, failed")
	return cmd
}

func newReceiptCmd(s *session) *cobra.Command {
	var (
		lang string
		dir  string
	)

	cmd := &cobra.Command{
		Use:   "receipt <transaction-id>",
		Short: "Print or save the receipt of a transfer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

			language, err := resolveLanguage(s, cmd, lang)
			if err != nil {
				return err
			}

			receipt, err := s.app.History.Receipt(ctx, args[0], language)
			if err != nil {
				return err
			}

			if dir == "" {
				_, err := cmd.OutOrStdout().Write(receipt.Body)
				return err
			}

			path := filepath.Join(dir, receipt.FileName)
			if err := os.WriteFile(path, receipt.Body, 0o644); err != nil {
				return fmt.Errorf("failed to save receipt: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Receipt saved to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", "", "Receipt language: id or en (default: saved preference)")
	cmd.Flags().StringVarP(&dir, "save", "o", "", "Save the receipt into this directory instead of printing it")
	return cmd
}

func newRateCmd(s *session) *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Show the current USD to IDR exchange rate",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			out := cmd.OutOrStdout()

			snap := s.app.Rates.Current()
			if refresh {
				lang, err := resolveLanguage(s, cmd, "")
				if err != nil {
					return err
				}
				if snap, err = s.app.Rates.ManualRefresh(ctx, lang); err != nil {
					return err
				}
			}

			fmt.Fprintf(out, "%s 1 USD = %s (%s%%)\n",
				titleStyle.Render("Rate"), money.IDR(snap.Rate), snap.ChangePercent.StringFixed(2))
			s.printToasts(out)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&refresh, "refresh", "r", false, "Fetch a new reading first")
	return cmd
}

func newConvertCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <usd>",
		Short: "Convert a USD amount to IDR at the current rate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := s.app.Dashboard.Calculate(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", money.USD(result.USD), money.IDR(result.IDR))
			return nil
		},
	}
}

func newDashboardCmd(s *session) *cobra.Command {
	var showBalance bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show balance, rate and recent transfers",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			out := cmd.OutOrStdout()

			summary, err := s.app.Dashboard.GetSummary(ctx, showBalance)
			if err != nil {
				return err
			}
			t := func(key string) string { return s.app.Translator.T(summary.Language, key) }

			fmt.Fprintln(out, titleStyle.Render(t("dashboard.welcome")))
			if summary.NeedsOnboarding {
				fmt.Fprintln(out, labelStyle.Render(t("dashboard.subtitle")))
			}
			fmt.Fprintf(out, "%s %s\n", labelStyle.Render(t("dashboard.balance")+":"), summary.Balance)
			fmt.Fprintf(out, "%s 1 USD = %s\n\n", labelStyle.Render(t("exchange.title")+":"), money.IDR(summary.Rate.Rate))

			fmt.Fprintln(out, t("dashboard.recentTransactions"))
			if len(summary.Recent) == 0 {
				fmt.Fprintln(out, t("dashboard.noTransactions"))
			}
			for _, tx := range summary.Recent {
				fmt.Fprintln(out, renderTransaction(tx))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showBalance, "show-balance", "b", false, "Reveal the balance")
	return cmd
}

func newProfileCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the sender profile and totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			p := s.app.Profile.Get()

			stats, err := s.app.Profile.Stats(commandContext(cmd))
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "%s %s\n", titleStyle.Render(p.Initials()), p.Name)
			fmt.Fprintf(out, "%s %s\n", labelStyle.Render("email:"), p.Email)
			fmt.Fprintf(out, "%s %s\n", labelStyle.Render("phone:"), p.Phone)
			fmt.Fprintf(out, "%s %s\n", labelStyle.Render("address:"), p.Address)
			fmt.Fprintf(out, "%s %s\n", labelStyle.Render("member since:"), p.JoinedAt.Format("January 2006"))
			fmt.Fprintf(out, "%d transactions, %s sent\n", stats.TotalTransactions, money.USD(stats.TotalSent))
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:       "set <name|email|phone|address> <value>",
		Short:     "Change one profile field for this session",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{string(domain.ProfileName), string(domain.ProfileEmail), string(domain.ProfilePhone), string(domain.ProfileAddress)},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := s.app.Profile.UpdateField(domain.ProfileField(args[0]), args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s updated for %s\n", args[0], p.Name)
			return nil
		},
	})
	return cmd
}

func newPrefsCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show the saved language, theme and onboarding state",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

			lang, err := s.app.Preferences.Language(ctx)
			if err != nil {
				return err
			}
			theme, err := s.app.Preferences.Theme(ctx)
			if err != nil {
				return err
			}
			done, err := s.app.Preferences.OnboardingCompleted(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "language: %s\ntheme: %s\nonboarding completed: %t\n", lang, theme, done)
			return nil
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:       "language <id|en>",
			Short:     "Save the interface language",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{string(domain.LanguageIndonesian), string(domain.LanguageEnglish)},
			RunE: func(cmd *cobra.Command, args []string) error {
				return s.app.Preferences.SetLanguage(commandContext(cmd), domain.Language(args[0]))
			},
		},
		&cobra.Command{
			Use:       "theme <light|dark|system>",
			Short:     "Save the colour theme",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{string(domain.ThemeLight), string(domain.ThemeDark), string(domain.ThemeSystem)},
			RunE: func(cmd *cobra.Command, args []string) error {
				return s.app.Preferences.SetTheme(commandContext(cmd), domain.Theme(args[0]))
			},
		},
		&cobra.Command{
			Use:   "onboarded",
			Short: "Mark onboarding as completed",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return s.app.Preferences.CompleteOnboarding(commandContext(cmd))
			},
		},
	)
	return cmd
}

// resolveLanguage prefers an explicit flag value over the saved preference
func resolveLanguage(s *session, cmd *cobra.Command, flag string) (domain.Language, error) {
	if flag == "" {
		return s.app.Preferences.Language(commandContext(cmd))
	}
	lang := domain.Language(flag)
	if !lang.Valid() {
		return "", fmt.Errorf("unsupported language %q", flag)
	}
	return lang, nil
}
