package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lucianookdp/HomeWise/internal/cli"
	"github.com/lucianookdp/HomeWise/internal/model"
)

var (
	labelStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E2E8F0"))
	focusedLabelStyle = labelStyle.Foreground(cli.PrimaryColor)
	cursorStyle       = lipgloss.NewStyle().Foreground(cli.PrimaryColor)
	hintStyle         = cli.SubtleStyle
)

// View renders the active form.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(cli.FormatTitle("HomeWise"))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("Controle financeiro em família"))
	b.WriteString("\n\n")

	if m.mode == modeLogin {
		m.viewLogin(&b)
	} else {
		m.viewExpense(&b)
	}

	if m.loading {
		b.WriteString("\n")
		b.WriteString(m.spin.View())
		b.WriteString(cli.InfoStyle.Render(m.status.Message))
		b.WriteString("\n")
	} else if banner := cli.RenderStatus(m.status); banner != "" {
		b.WriteString("\n")
		b.WriteString(banner)
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewLogin(b *strings.Builder) {
	b.WriteString(cli.TitleStyle.Render("Entrar"))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("Acesse para registrar gastos com rapidez."))
	b.WriteString("\n\n")

	b.WriteString(m.fieldLabel("Pessoa", m.focus == loginFieldPerson))
	b.WriteString("\n")
	b.WriteString(renderList(model.People, m.personCursor, m.focus == loginFieldPerson))
	b.WriteString("\n")

	b.WriteString(m.fieldLabel("Acesso", m.focus == loginFieldPIN))
	b.WriteString("\n")
	b.WriteString(m.pinInput.View())
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("Usado apenas para validar e manter o acesso neste dispositivo."))
	b.WriteString("\n\n")

	b.WriteString(hintStyle.Render("tab alterna campos · ↑/↓ escolhe · ctrl+o mostra/oculta · enter entra · ctrl+c sai"))
	b.WriteString("\n")
}

func (m Model) viewExpense(b *strings.Builder) {
	sess := m.sessions.Current()
	header := fmt.Sprintf("%s • %d min", sess.Person, m.sessions.RemainingMinutes())
	b.WriteString(cli.TitleStyle.Render("Novo gasto"))
	b.WriteString("  ")
	b.WriteString(hintStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("Ao salvar, vai direto para a planilha."))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Data"))
	b.WriteString("  ")
	b.WriteString(cli.InfoStyle.Render(m.draft.Date))
	b.WriteString("  ")
	b.WriteString(hintStyle.Render("(lançamento registrado com a data de hoje)"))
	b.WriteString("\n\n")

	b.WriteString(m.fieldLabel("Valor", m.focus == expenseFieldAmount))
	b.WriteString("  ")
	b.WriteString(hintStyle.Render("Prévia: " + m.amountPreview()))
	b.WriteString("\n")
	b.WriteString(m.amountInput.View())
	b.WriteString("\n\n")

	b.WriteString(m.fieldLabel("Categoria", m.focus == expenseFieldCategory))
	b.WriteString("\n")
	b.WriteString(renderList(model.Categories, m.categoryCursor, m.focus == expenseFieldCategory))
	b.WriteString("\n")

	b.WriteString(m.fieldLabel("Descrição (opcional)", m.focus == expenseFieldDescription))
	b.WriteString("\n")
	b.WriteString(m.descInput.View())
	b.WriteString("\n\n")

	b.WriteString(hintStyle.Render("tab alterna campos · ↑/↓ escolhe · enter salva · ctrl+l encerra acesso · ctrl+c sai"))
	b.WriteString("\n")
}

func (m Model) fieldLabel(label string, focused bool) string {
	if focused {
		return focusedLabelStyle.Render(label)
	}
	return labelStyle.Render(label)
}

func (m Model) amountPreview() string {
	value, err := model.ParseAmount(m.amountInput.Value())
	if err != nil || value <= 0 {
		return "—"
	}
	return model.FormatBRL(value)
}

func renderList(options []string, cursor int, focused bool) string {
	var b strings.Builder
	for i, option := range options {
		if i == cursor {
			marker := "▸ "
			if !focused {
				marker = "• "
			}
			b.WriteString(cursorStyle.Render(marker + option))
		} else {
			b.WriteString(hintStyle.Render("  " + option))
		}
		b.WriteString("\n")
	}
	return b.String()
}
