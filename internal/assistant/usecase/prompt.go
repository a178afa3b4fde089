package usecase

import (
	"fmt"
	"strings"

	"propfirm-assistant/internal/contextfilter"
	"propfirm-assistant/internal/intent"
)

// buildUserPrompt assembles the final prompt: the question, the intent's
// context label as a section header, and the filtered rows as JSON.
func (uc *implUseCase) buildUserPrompt(question, firm string, res intent.Result, data contextfilter.Data) string {
	var b strings.Builder

	b.WriteString("Pregunta del usuario: ")
	b.WriteString(question)
	b.WriteString("\n")

	if firm != "" {
		fmt.Fprintf(&b, "Firma de interés: %s\n", firm)
	}

	label := uc.classifier.Profile(res.Type).ContextLabel
	fmt.Fprintf(&b, "\nContexto (%s):\n", label)
	b.WriteString(data.Serialize())
	b.WriteString("\n\nResponde la pregunta usando únicamente el contexto anterior.")

	return b.String()
}
