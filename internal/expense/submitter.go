// Package expense validates and submits expense entries.
package expense

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"
	"github.com/lucianookdp/HomeWise/internal/common"
	"github.com/lucianookdp/HomeWise/internal/model"
	"github.com/lucianookdp/HomeWise/internal/session"
)

// Origin tags every entry this client creates, so the spreadsheet can
// tell them apart from rows added by hand.
const Origin = "site"

// NewDraft returns a draft dated today with the default category.
func NewDraft(clock clockwork.Clock) *model.ExpenseDraft {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &model.ExpenseDraft{
		Date:     clock.Now().Format("2006-01-02"),
		Category: model.Categories[0],
	}
}

// Submitter sends validated drafts to the endpoint with the active
// session's credentials.
type Submitter struct {
	sessions *session.Manager
	api      session.Caller
}

// NewSubmitter creates a submitter bound to the session manager and
// the gateway.
func NewSubmitter(sessions *session.Manager, api session.Caller) *Submitter {
	return &Submitter{sessions: sessions, api: api}
}

// Submit validates the draft and sends it. It returns the
// confirmation message shown to the user. On success the draft's
// amount and description are cleared; category and date stay for the
// next entry. An expired session is cleared before failing, so the
// next run starts logged out.
func (s *Submitter) Submit(ctx context.Context, draft *model.ExpenseDraft) (string, error) {
	if !s.sessions.IsActive() {
		if err := s.sessions.Logout(); err != nil {
			slog.Warn("failed to clear expired session", "error", err)
		}
		return "", common.NewUserError("Acesso expirou. Faça login novamente.", common.ErrSessionExpired)
	}

	value, err := model.ParseAmount(draft.Amount)
	if err != nil || value <= 0 {
		return "", common.NewUserError("Informe um valor válido.", common.ErrValidation)
	}
	if draft.Category == "" || !model.IsCategory(draft.Category) {
		return "", common.NewUserError("Selecione a categoria.", common.ErrValidation)
	}

	sess := s.sessions.Current()

	// The amount travels as the raw string the user typed; the script
	// does its own pt-BR parsing.
	result := s.api.Call(ctx, map[string]string{
		"action":      "create_expense",
		"person":      sess.Person,
		"pin":         sess.PIN,
		"date":        draft.Date,
		"amount":      draft.Amount,
		"category":    draft.Category,
		"description": draft.Description,
		"origin":      Origin,
	})
	if err := result.Err(); err != nil {
		return "", err
	}

	confirmation := fmt.Sprintf("Gasto salvo: %s em %s.", model.FormatBRL(value), draft.Category)
	slog.Info("expense saved", "person", sess.Person, "category", draft.Category, "amount", value)
	draft.Reset()
	return confirmation, nil
}
