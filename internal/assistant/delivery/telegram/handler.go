package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"propfirm-assistant/internal/assistant"
	"propfirm-assistant/internal/model"
	pkgLog "propfirm-assistant/pkg/log"
	pkgResponse "propfirm-assistant/pkg/response"
	pkgTelegram "propfirm-assistant/pkg/telegram"
)

type handler struct {
	l   pkgLog.Logger
	uc  assistant.UseCase
	bot *pkgTelegram.Bot
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine: Telegram expects an ack within a few seconds, but a
// cache miss means an LLM round trip.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races on gin context
	msg := update.Message

	go func() {
		// Detach from HTTP request context (which gets cancelled after response)
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(msg.Chat.ID, "Ocurrió un error procesando tu pregunta. Inténtalo de nuevo.")
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	if strings.HasPrefix(text, "/") {
		return h.handleCommand(ctx, msg, text)
	}

	// Let the user see the bot is working on a cache miss.
	if err := h.bot.SendChatAction(msg.Chat.ID, "typing"); err != nil {
		h.l.Warnf(ctx, "telegram handler: failed to send typing action: %v", err)
	}

	sc := model.Scope{
		UserID:   fmt.Sprintf("telegram_%d", msg.From.ID),
		Username: msg.From.Username,
	}

	firm, question := h.splitFirmPrefix(ctx, text)

	output, err := h.uc.Answer(ctx, sc, assistant.AnswerInput{
		Question: question,
		Firm:     firm,
	})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Answer failed: %v", err)
		return h.bot.SendMessage(msg.Chat.ID, "No pude responder tu pregunta en este momento. Inténtalo de nuevo en unos minutos.")
	}

	return h.bot.SendMessageWithMode(msg.Chat.ID, output.ResponseText, "Markdown")
}

func (h *handler) handleCommand(ctx context.Context, msg *pkgTelegram.Message, text string) error {
	cmd := strings.Fields(text)[0]
	switch cmd {
	case "/start":
		return h.bot.SendMessageWithMode(msg.Chat.ID,
			"👋 ¡Hola! Soy tu asistente de *prop firms* de futuros.\n\nPregúntame sobre precios, planes, reglas, drawdown, retiros o plataformas de las firmas que conozco.\n\n_Ejemplo: \"¿Cuánto cuesta la cuenta de 50K de Apex?\"_\n\nUsa /firms para ver las firmas disponibles.",
			"Markdown",
		)
	case "/help":
		return h.bot.SendMessageWithMode(msg.Chat.ID,
			"*Cómo usarme:*\n\n• Escribe tu pregunta en lenguaje natural.\n• Para limitar a una firma: `apex: ¿cuál es el drawdown?`\n\n*Comandos:*\n/firms — firmas disponibles\n/stats — métricas del caché de respuestas",
			"Markdown",
		)
	case "/firms":
		firms, err := h.uc.ListFirms(ctx)
		if err != nil {
			h.l.Errorf(ctx, "telegram handler: ListFirms failed: %v", err)
			return h.bot.SendMessage(msg.Chat.ID, "No pude cargar la lista de firmas.")
		}
		if len(firms) == 0 {
			return h.bot.SendMessage(msg.Chat.ID, "Aún no hay firmas cargadas.")
		}
		var b strings.Builder
		b.WriteString("*Firmas disponibles:*\n\n")
		for _, f := range firms {
			fmt.Fprintf(&b, "• *%s* (`%s`)\n", f.Name, f.Slug)
		}
		return h.bot.SendMessageWithMode(msg.Chat.ID, b.String(), "Markdown")
	case "/stats":
		m := h.uc.CacheMetrics(ctx)
		reply := fmt.Sprintf(
			"*Caché de respuestas:*\n\nHits exactos: %d\nHits semánticos: %d\nHits precalculados: %d\nMisses: %d\nHit rate: %.1f%%\nLatencia media: %.0f ms",
			m.ExactHits, m.SemanticHits, m.PrecomputedHits, m.Misses, m.HitRate()*100, m.AvgResponseMs,
		)
		return h.bot.SendMessageWithMode(msg.Chat.ID, reply, "Markdown")
	default:
		return h.bot.SendMessage(msg.Chat.ID, "Comando no reconocido. Usa /help para ver los comandos disponibles.")
	}
}

// splitFirmPrefix recognizes the "slug: question" form. The prefix is only
// honored when it matches a known firm slug; anything else stays part of the
// question.
func (h *handler) splitFirmPrefix(ctx context.Context, text string) (firm, question string) {
	idx := strings.Index(text, ":")
	if idx <= 0 {
		return "", text
	}

	candidate := strings.ToLower(strings.TrimSpace(text[:idx]))
	if candidate == "" || strings.ContainsAny(candidate, " \t") {
		return "", text
	}

	firms, err := h.uc.ListFirms(ctx)
	if err != nil {
		h.l.Warnf(ctx, "telegram handler: firm prefix lookup failed: %v", err)
		return "", text
	}
	for _, f := range firms {
		if f.Slug == candidate {
			return candidate, strings.TrimSpace(text[idx+1:])
		}
	}
	return "", text
}
