// Package cli is the interactive terminal client. It drives the same services the server exposes.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/simaogato/kirimuang-backend/internal/app"
)

// Builder creates the application for one command run
type Builder func(ctx context.Context) (*app.App, error)

// session is the state shared by the commands of one invocation
type session struct {
	app     *app.App
	printed map[string]bool
}

// NewRootCmd assembles the kirimuang command tree
func NewRootCmd(build Builder) *cobra.Command {
	s := &session{printed: make(map[string]bool)}

	root := &cobra.Command{
		Use:               "kirimuang",
		Short:             "Send money from the US to Indonesia",
		Long:              `KirimUang sends USD to Indonesian bank accounts at a live-simulated USD to IDR rate.`,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			a, err := build(ctx)
			if err != nil {
				return err
			}
			s.app = a

			// a single read so quotes have a rate before the first prompt
			if _, _, err := a.Rates.Refresh(ctx); err != nil {
				return fmt.Errorf("failed to read exchange rate: %w", err)
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if s.app == nil {
				return nil
			}
			return s.app.Close()
		},
	}

	root.AddCommand(
		newSendCmd(s),
		newHistoryCmd(s),
		newReceiptCmd(s),
		newRateCmd(s),
		newConvertCmd(s),
		newDashboardCmd(s),
		newProfileCmd(s),
		newPrefsCmd(s),
	)
	return root
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// printToasts writes the notifications that were not shown yet, oldest first
func (s *session) printToasts(out io.Writer) {
	list := s.app.Center.List()
	for i := len(list) - 1; i >= 0; i-- {
		n := list[i]
		if s.printed[n.ID] {
			continue
		}
		s.printed[n.ID] = true
		fmt.Fprintln(out, renderToast(n))
	}
}
