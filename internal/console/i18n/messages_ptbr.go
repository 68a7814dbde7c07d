package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.MustParse("pt-BR")

	// Layout
	message.SetString(lang, "title.sessions", "%s | Sessões")
	message.SetString(lang, "title.session_detail", "%s | Sessão %s")
	message.SetString(lang, "nav.sessions", "Sessões")
	message.SetString(lang, "nav.refresh", "Atualizar")

	// Session list
	message.SetString(lang, "sessions.heading", "Sessões")
	message.SetString(lang, "sessions.col.id", "ID")
	message.SetString(lang, "sessions.col.status", "Status")
	message.SetString(lang, "sessions.col.start", "Início")
	message.SetString(lang, "sessions.col.end", "Fim")
	message.SetString(lang, "sessions.col.entry_fee", "Taxa de entrada")
	message.SetString(lang, "sessions.col.pot", "Pote")
	message.SetString(lang, "sessions.col.attempts", "Tentativas")
	message.SetString(lang, "sessions.col.winners", "Vencedores")
	message.SetString(lang, "sessions.empty", "Nenhuma sessão ainda")
	message.SetString(lang, "sessions.create.heading", "Criar sessão")
	message.SetString(lang, "sessions.create.entry_fee", "Taxa de entrada (WLDD)")
	message.SetString(lang, "sessions.create.duration", "Duração (horas)")
	message.SetString(lang, "sessions.create.submit", "Criar")
	message.SetString(lang, "sessions.create.success", "Sessão %s criada")

	// Session detail
	message.SetString(lang, "session.heading", "Sessão %s")
	message.SetString(lang, "session.attempts.heading", "Tentativas")
	message.SetString(lang, "session.attempts.none", "Nenhuma tentativa nesta sessão")
	message.SetString(lang, "session.attempt.score", "Pontuação")
	message.SetString(lang, "session.attempt.messages", "Mensagens")
	message.SetString(lang, "session.attempt.remaining", "Restantes")
	message.SetString(lang, "session.attempt.earnings", "Ganhos")
	message.SetString(lang, "session.winning_conversation", "Conversa vencedora")
	message.SetString(lang, "session.count_mismatch", "O total de tentativas na listagem (%d) não corresponde ao detalhe (%d)")

	// Result badges
	message.SetString(lang, "badge.in_progress", "em andamento")
	message.SetString(lang, "badge.winner", "vencedor")
	message.SetString(lang, "badge.not_winner", "não vencedor")

	// Status labels
	message.SetString(lang, "status.active", "ativa")
	message.SetString(lang, "status.completed", "concluída")

	// Actions
	message.SetString(lang, "action.end_session", "Encerrar sessão")
	message.SetString(lang, "action.force_score", "Forçar pontuação")
	message.SetString(lang, "action.end_session.success", "Sessão %s encerrada; pote %s distribuído entre %d tentativas")
	message.SetString(lang, "action.force_score.success", "Tentativa %s pontuada com %s")

	// Errors
	message.SetString(lang, "error.sessions_unavailable", "Não foi possível carregar as sessões: %s")
	message.SetString(lang, "error.session_unavailable", "Não foi possível carregar a sessão: %s")
	message.SetString(lang, "error.partial_fetch", "Alguns detalhes de sessão não puderam ser carregados")
	message.SetString(lang, "error.action_failed", "A ação falhou: %s")
	message.SetString(lang, "error.csrf_invalid", "A origem da requisição não é permitida")
}
