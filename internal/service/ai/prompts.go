package ai

import (
	"strings"

	"turibot/internal/model/convo"
)

// Contextual instruction blocks injected into the generation prompt, one per
// category. Kept as constants so the wording can be tweaked without touching
// the composition logic.
const (
	contextDestinations = "Brindá información turística sobre el destino, historia, atractivos y ubicación."
	contextGastronomy   = "Hablá sobre la gastronomía típica del lugar, platos tradicionales y recomendaciones culinarias."
	contextActivities   = "Describí actividades, excursiones o experiencias que se puedan realizar en el lugar."
	contextGeneral      = "Ofrecé información general de turismo."
)

const (
	mapsInstructionInclude = "Si corresponde, incluí un enlace REAL de Google Maps con el formato:\n" +
		"https://www.google.com/maps/search/?api=1&query=Nombre+del+lugar"
	mapsInstructionOmit = "No incluyas enlaces de Google Maps ni ubicaciones."
)

const classificationInstruction = "Analizá el siguiente texto y respondé solo con 'positivo', 'negativo' o 'neutral': "

// mapKeywords flags messages where the user asks for a location or link.
// Matching is case-insensitive substring containment over the whole text.
var mapKeywords = []string{"mapa", "ubicación", "dónde queda", "cómo llegar", "link", "google maps"}

// WantsMapLink reports whether the user is asking for a map link.
func WantsMapLink(text string) bool {
	lowered := strings.ToLower(text)
	for _, keyword := range mapKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

// BuildPrompt composes the full generation prompt: tour-guide persona,
// brevity and style constraints, link policy, category context and the
// verbatim user text. The output is deterministic for a given input.
func BuildPrompt(userText string, category convo.Category, includeLinks bool) string {
	mapsInstruction := mapsInstructionOmit
	if includeLinks {
		mapsInstruction = mapsInstructionInclude
	}

	var b strings.Builder
	b.WriteString("Actuá como un guía turístico profesional.\n")
	b.WriteString("Respondé de forma breve (máx. 8 líneas), clara y atractiva.\n")
	b.WriteString("Usá emojis y estilo amigable, pero NO saludes ni uses frases iniciales como 'Hola' o 'Bienvenido'.\n")
	b.WriteString(mapsInstruction)
	b.WriteString("\n\nContexto: ")
	b.WriteString(categoryContext(category))
	b.WriteString("\nPregunta del usuario: ")
	b.WriteString(userText)
	return b.String()
}

// categoryContext dispatches over the closed category set; tokens outside it
// (the "info" button, malformed data) get the general block.
func categoryContext(category convo.Category) string {
	switch category {
	case convo.CategoryDestinations:
		return contextDestinations
	case convo.CategoryGastronomy:
		return contextGastronomy
	case convo.CategoryActivities:
		return contextActivities
	default:
		return contextGeneral
	}
}
