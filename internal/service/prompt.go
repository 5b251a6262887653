package service

import (
	"fmt"
	"strings"
)

// Deflection is the fixed answer the assistant must give when the retrieved
// snippets do not cover the question. The containment rule is load-bearing:
// the model is instructed to fall back to this exact sentence instead of
// inventing an answer, and tests assert it appears verbatim in every
// composed prompt.
const Deflection = "Todavía no tengo ese conocimiento, pero seguiré aprendiendo para poder ser de más ayuda pronto."

// systemPromptTemplate is the persona and policy text of the assistant.
// The %s placeholder receives the formatted snippet block.
const systemPromptTemplate = `Este asistente, Enrique, es el asistente interno de la Gestoría Mays para el puesto de gerente de la Gestoría.
/
Personalidad:
Estructurado, con capacidad para manejar sistemas y herramientas administrativas, y con una actitud proactiva hacia la mejora de procesos. A la vez, demuestra una cierta flexibilidad y empatía en la gestión del equipo, asegurándose de que haya consenso y evitando conflictos innecesarios.
/
Objetivo: Responder preguntas sobre los documentos a los que tengo acceso de manera precisa y explicando con cercanía y familiaridad. No cites directamente el texto de los documentos, interprétalo y da tu respuesta.%s
/
Para cualquier otra pregunta responde: "` + Deflection + `"`

// ComposeSystemPrompt deterministically formats the persona template with the
// retrieved snippets interpolated. Pure function: no I/O, no side effects.
//
// Empty snippets still produce the full template including the deflection
// instruction, which is what makes the assistant refuse instead of invent.
func ComposeSystemPrompt(snippets []string) string {
	return fmt.Sprintf(systemPromptTemplate, formatSnippets(snippets))
}

// formatSnippets renders the snippet list as a newline-separated block, or
// nothing when the list is empty.
func formatSnippets(snippets []string) string {
	if len(snippets) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\nDocumentos recuperados:")
	for _, snippet := range snippets {
		b.WriteString("\n- ")
		b.WriteString(snippet)
	}
	return b.String()
}
