package convo

import (
	"strings"

	"turibot/internal/model/convo"
)

// Preambles prepended to the generated text, one per sentiment.
const (
	preambleNegative = "😕 Parece que no estás del todo conforme. Espero poder ayudarte mejor."
	preamblePositive = "😊 Me alegra tu entusiasmo."
	preambleNeutral  = "🙂 Entendido."
)

// ApologyMessage is the single user-visible recovery path when the pipeline
// fails before a response exists.
const ApologyMessage = "😕 Ocurrió un error al generar la respuesta. Intentalo de nuevo."

// Decorate prepends the sentiment preamble and a blank line to the response.
// Label matching mirrors the classifier's containment policy so a noisy
// label such as "muy positivo!" still picks the positive preamble; the
// negative check runs first, anything else is neutral.
func Decorate(response string, sentiment convo.Sentiment) string {
	label := strings.ToLower(string(sentiment))
	preamble := preambleNeutral
	switch {
	case strings.Contains(label, string(convo.SentimentNegative)):
		preamble = preambleNegative
	case strings.Contains(label, string(convo.SentimentPositive)):
		preamble = preamblePositive
	}
	return preamble + "\n\n" + response
}
