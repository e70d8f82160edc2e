package main

import (
	"fmt"
	"time"

	"github.com/automoto/showdown/ledger"
	dc "github.com/automoto/showdown/shared/duelconfig"
	"github.com/spf13/cobra"
)

// opener returns the store for an app name.
type opener func(appName string) (ledger.Store, error)

func openGData(appName string) (ledger.Store, error) {
	return ledger.OpenGData(appName)
}

func newRootCmd(open opener) *cobra.Command {
	var appName string

	root := &cobra.Command{
		Use:           "showdown-ledger",
		Short:         "Inspect or reset the Showdown achievement ledger",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&appName, "app", ledger.DefaultAppName, "gdata application name")

	load := func(cmd *cobra.Command) (*ledger.Ledger, error) {
		store, err := open(appName)
		if err != nil {
			return nil, err
		}
		var saveErr error
		l, res := ledger.Open(store, time.Now(), func(err error) { saveErr = err })
		if res.Status == ledger.Corrupt {
			fmt.Fprintf(cmd.ErrOrStderr(), "ledger was unusable and has been reset: %v\n", res.Cause)
		}
		if saveErr != nil {
			return nil, fmt.Errorf("write ledger: %w", saveErr)
		}
		return l, nil
	}

	root.AddCommand(newShowCmd(load), newResetCmd(open, &appName))
	return root
}

func newShowCmd(load func(*cobra.Command) (*ledger.Ledger, error)) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print unlocked achievements and today's counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := load(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if asJSON {
				data, err := ledger.Encode(l.Record())
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return err
			}

			for _, id := range dc.AchievementIDs {
				mark := " "
				if l.Unlocked(id) {
					mark = "x"
				}
				fmt.Fprintf(out, "[%s] %s\n", mark, id)
			}
			fmt.Fprintf(out, "\n%s  wins %d  shots %d\n", l.LastPlayDate(), l.DailyWins(), l.DailyShots())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the stored record")
	return cmd
}

func newResetCmd(open opener, appName *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Lock every achievement and clear today's counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := open(*appName)
			if err != nil {
				return err
			}
			l, _ := ledger.Open(store, time.Now(), nil)
			if err := l.Reset(time.Now()); err != nil {
				return fmt.Errorf("reset ledger: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Ledger reset")
			return nil
		},
	}
}
