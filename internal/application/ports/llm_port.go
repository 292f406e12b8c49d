package ports

import "context"

// CompletionRequest petición de texto a un modelo de lenguaje.
type CompletionRequest struct {
	System    string
	Prompt    string
	MaxTokens int
	JSON      bool // pide al modelo responder solo con un objeto JSON
}

// LLMService define el puerto de salida para los servicios de inteligencia artificial.
// Cualquier adaptador (Anthropic, OpenAI/OpenRouter, mock) debe implementar esta interfaz;
// la aplicación solo conoce este contrato.
type LLMService interface {
	// Complete devuelve el texto generado. El contexto debe llevar un timeout.
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
