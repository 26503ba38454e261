package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lucianookdp/HomeWise/internal/cli"
)

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the saved session on this device",
		RunE:  runLogout,
	}
}

func runLogout(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.sessions.Logout(); err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess("Sessão encerrada."))
	return nil
}
