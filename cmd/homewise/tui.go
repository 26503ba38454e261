package main

import (
	"github.com/spf13/cobra"

	"github.com/lucianookdp/HomeWise/internal/tui"
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive expense form",
		Long: `Open the interactive form: log in once, then register expenses
without leaving the terminal. Mirrors the login and expense panels of
the HomeWise page.`,
		RunE: runTui,
	}
}

func runTui(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	return tui.Run(a.sessions, a.submitter, a.clock)
}
