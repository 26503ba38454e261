package gateway

import "strings"

// User-facing failure messages for each local failure path.
const (
	msgNoEndpoint  = "API não configurada. Defina HOMEWISE_API_URL."
	msgTimeout     = "Tempo limite de conexão. Verifique sua internet e tente novamente."
	msgConnFailure = "Falha de conexão com a API. Tente novamente."
	msgBadResponse = "Resposta da API não é JSON. Verifique o deploy do Apps Script."
	msgFallback    = "Não foi possível concluir. Tente novamente."
)

// friendlyTable maps known fragments of server error text to user
// phrasing. The script only speaks free-form text, so substring
// matching is the contract with it.
var friendlyTable = []struct {
	needle   string
	friendly string
}{
	{"JSON inválido", "Erro de comunicação. Tente novamente."},
	{"PIN incorreto", "Acesso inválido. Tente novamente."},
	{"Pessoa não cadastrada", "Pessoa não cadastrada na planilha."},
	{"Categoria não cadastrada", "Categoria não cadastrada na planilha."},
	{"Aba Lançamentos", "A planilha está sem a aba Lançamentos."},
	{"Aba Pessoas", "A planilha está sem a aba Pessoas ou ela está vazia."},
	{"PINS não configurados", "A autenticação não foi configurada no script."},
}

// Friendly rewrites a server error message into user phrasing.
// Unrecognized messages pass through trimmed; an empty message gets a
// generic fallback.
func Friendly(serverMessage string) string {
	msg := strings.TrimSpace(serverMessage)
	if msg == "" {
		return msgFallback
	}
	for _, entry := range friendlyTable {
		if strings.Contains(msg, entry.needle) {
			return entry.friendly
		}
	}
	return msg
}
