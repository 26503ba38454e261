package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lucianookdp/HomeWise/internal/cli"
	"github.com/lucianookdp/HomeWise/internal/common"
	"github.com/lucianookdp/HomeWise/internal/expense"
	"github.com/lucianookdp/HomeWise/internal/model"
)

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register an expense in the spreadsheet",
		Long: `Register one expense, dated today, using the saved session.

The amount uses Brazilian formatting: comma for decimals, optional
dots for thousands (e.g. 50,00 or 1.234,56).`,
		RunE: runAdd,
	}

	cmd.Flags().String("amount", "", "amount, e.g. 50,00 (required)")
	cmd.Flags().String("category", model.Categories[0], "one of: "+strings.Join(model.Categories, ", "))
	cmd.Flags().String("description", "", "optional free text")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func runAdd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.cfg.Validate(); err != nil {
		return common.NewUserError("API não configurada. Defina HOMEWISE_API_URL.", err)
	}

	draft := expense.NewDraft(a.clock)
	draft.Amount, _ = cmd.Flags().GetString("amount")
	draft.Category, _ = cmd.Flags().GetString("category")
	draft.Description, _ = cmd.Flags().GetString("description")

	spin := cli.NewSpinner("Salvando...")
	spin.Start()
	confirmation, err := a.submitter.Submit(ctx, draft)
	spin.Stop()
	if err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess(confirmation))
	return nil
}
