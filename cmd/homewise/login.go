package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lucianookdp/HomeWise/internal/cli"
	"github.com/lucianookdp/HomeWise/internal/common"
	"github.com/lucianookdp/HomeWise/internal/model"
)

func loginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the HomeWise spreadsheet",
		Long: `Authenticate with your name and PIN.

The PIN is validated by the spreadsheet script. On success the session
stays valid for eight hours on this device; expenses added during that
window reuse it without asking again.`,
		RunE: runLogin,
	}

	cmd.Flags().String("person", "", "household member name")
	cmd.Flags().String("pin", "", "numeric PIN (prompted without echo when omitted)")

	return cmd
}

func runLogin(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.cfg.Validate(); err != nil {
		return common.NewUserError("API não configurada. Defina HOMEWISE_API_URL.", err)
	}

	person, _ := cmd.Flags().GetString("person")
	if person == "" {
		person, err = promptPerson()
		if err != nil {
			return err
		}
	}

	pin, _ := cmd.Flags().GetString("pin")
	if pin == "" {
		pin, err = promptPIN()
		if err != nil {
			return err
		}
	}

	spin := cli.NewSpinner("Entrando...")
	spin.Start()
	sess, err := a.sessions.Login(ctx, person, pin)
	spin.Stop()
	if err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess("Acesso liberado."))
	fmt.Println(cli.SubtleStyle.Render(
		fmt.Sprintf("Logado como %s. Sessão expira em %d min.", sess.Person, a.sessions.RemainingMinutes())))

	return nil
}

// promptPerson shows the household list and reads a selection, either
// by number or by typing the name.
func promptPerson() (string, error) {
	fmt.Println(cli.FormatTitle("Quem está lançando?"))
	for i, person := range model.People {
		fmt.Printf("  %d. %s\n", i+1, person)
	}
	fmt.Print(cli.FormatPrompt("Pessoa"))

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read selection: %w", err)
	}
	line = strings.TrimSpace(line)

	if index, err := strconv.Atoi(line); err == nil {
		if index < 1 || index > len(model.People) {
			return "", common.NewUserError("Selecione a pessoa.", common.ErrValidation)
		}
		return model.People[index-1], nil
	}
	return line, nil
}

// promptPIN reads the PIN without echoing it to the terminal.
func promptPIN() (string, error) {
	fmt.Print(cli.FormatPrompt("Acesso"))
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read PIN: %w", err)
	}
	return string(raw), nil
}
