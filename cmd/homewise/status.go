package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lucianookdp/HomeWise/internal/cli"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show who is logged in and for how long",
		RunE:  runStatus,
	}
}

func runStatus(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if !a.sessions.IsActive() {
		fmt.Println(cli.FormatInfo("Nenhum acesso ativo. Use 'homewise login'."))
		return nil
	}

	sess := a.sessions.Current()
	content := fmt.Sprintf("Usuário: %s\nSessão expira em %d min", sess.Person, a.sessions.RemainingMinutes())
	fmt.Println(cli.RenderBox("Acesso ativo", content))
	return nil
}
