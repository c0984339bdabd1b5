package ai

import (
	"context"
	"strings"
	"testing"

	"turibot/internal/model/convo"
)

func TestWantsMapLink(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"dame el link del mapa", true},
		{"¿Cómo llego al museo?", false},
		{"DÓNDE QUEDA el obelisco", true},
		{"pasame la ubicación por favor", true},
		{"buscalo en Google Maps", true},
		{"cómo llegar hasta ahí?", true},
		{"contame sobre la comida típica", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := WantsMapLink(tc.text); got != tc.want {
			t.Fatalf("WantsMapLink(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestBuildPromptCategoryContext(t *testing.T) {
	cases := []struct {
		category convo.Category
		context  string
	}{
		{convo.CategoryDestinations, contextDestinations},
		{convo.CategoryGastronomy, contextGastronomy},
		{convo.CategoryActivities, contextActivities},
		{convo.CategoryGeneral, contextGeneral},
		{convo.Category("info"), contextGeneral},
		{convo.Category(""), contextGeneral},
	}
	for _, tc := range cases {
		got := BuildPrompt("¿Qué puedo hacer?", tc.category, false)
		if !strings.Contains(got, "Contexto: "+tc.context) {
			t.Fatalf("prompt for %q is missing its context block:\n%s", tc.category, got)
		}
	}
}

func TestBuildPromptLinkPolicy(t *testing.T) {
	with := BuildPrompt("dame el link del mapa", convo.CategoryDestinations, true)
	if !strings.Contains(with, "https://www.google.com/maps/search/?api=1&query=Nombre+del+lugar") {
		t.Fatalf("prompt is missing the maps URL format:\n%s", with)
	}

	without := BuildPrompt("contame de Bariloche", convo.CategoryDestinations, false)
	if !strings.Contains(without, mapsInstructionOmit) {
		t.Fatalf("prompt is missing the omission instruction:\n%s", without)
	}
	if strings.Contains(without, "maps/search") {
		t.Fatalf("prompt should not mention the maps format:\n%s", without)
	}
}

func TestBuildPromptEmbedsUserTextVerbatim(t *testing.T) {
	text := "¿Qué actividades hay en El Calafate? 🎿"
	got := BuildPrompt(text, convo.CategoryActivities, false)
	if !strings.Contains(got, "Pregunta del usuario: "+text) {
		t.Fatalf("prompt does not embed the user text verbatim:\n%s", got)
	}
}

func TestBuildPromptIsDeterministic(t *testing.T) {
	a := BuildPrompt("hola", convo.CategoryGeneral, true)
	b := BuildPrompt("hola", convo.CategoryGeneral, true)
	if a != b {
		t.Fatal("prompt composition is not deterministic")
	}
}

type staticClient struct {
	reply string
	err   error
	last  string
}

func (c *staticClient) Complete(_ context.Context, prompt string) (string, error) {
	c.last = prompt
	if c.err != nil {
		return "", c.err
	}
	return c.reply, nil
}

func TestServiceGenerateTrimsReply(t *testing.T) {
	client := &staticClient{reply: "\n  Visitá el Obelisco 🌆  \n"}
	svc := NewService(client)

	got, err := svc.Generate(context.Background(), "qué ver en Buenos Aires", convo.CategoryDestinations, false)
	if err != nil {
		t.Fatalf("Generate err: %v", err)
	}
	if got != "Visitá el Obelisco 🌆" {
		t.Fatalf("unexpected reply: %q", got)
	}
	if !strings.Contains(client.last, contextDestinations) {
		t.Fatal("composed prompt did not reach the client")
	}
}

func TestServiceClassifyNormalizes(t *testing.T) {
	client := &staticClient{reply: " El texto es claramente Positivo. "}
	svc := NewService(client)

	got, err := svc.Classify(context.Background(), "me encanta este lugar")
	if err != nil {
		t.Fatalf("Classify err: %v", err)
	}
	if got != convo.SentimentPositive {
		t.Fatalf("unexpected sentiment: %s", got)
	}
	if !strings.HasPrefix(client.last, classificationInstruction) {
		t.Fatal("classification prompt is missing its instruction")
	}
}
