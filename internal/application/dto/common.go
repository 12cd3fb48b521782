package dto

// Envelope enveloppe de réponse uniforme de l'API.
// Succès: {status: "success", data: ...}. Erreur: {status: "error", message: "..."}.
type Envelope struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// Success construit une enveloppe de succès.
func Success(data any) Envelope {
	return Envelope{Status: "success", Data: data}
}

// Error construit une enveloppe d'erreur.
func Error(message string) Envelope {
	return Envelope{Status: "error", Message: message}
}
