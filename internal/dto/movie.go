package dto

import (
	"time"

	"movies-api/internal/models"
)

// GetMovieRequest represents the path parameters of GET /movies/:id
type GetMovieRequest struct {
	ID string `param:"id" validate:"required"`
}

// MoviesByCategoryRequest represents the query parameters of GET /movies/by_category/.
// Any text is accepted; text no category contains simply matches nothing.
type MoviesByCategoryRequest struct {
	Category string `query:"category"`
}

// ChatbotRequest represents the query parameters of GET /chatbot.
// A missing query is treated as empty. Length is not limited.
type ChatbotRequest struct {
	Query string `query:"query"`
}

// ChatbotResponse represents the chatbot reply
type ChatbotResponse struct {
	StatusMessage string         `json:"status_message"`
	Results       []models.Movie `json:"results"`
}

// NewChatbotResponse converts a chatbot result into its wire form
func NewChatbotResponse(result models.ChatbotResult) ChatbotResponse {
	results := result.Results
	if results == nil {
		results = []models.Movie{}
	}
	return ChatbotResponse{
		StatusMessage: result.StatusMessage,
		Results:       results,
	}
}

// MovieNotFoundResponse is returned when no movie has the requested id
type MovieNotFoundResponse struct {
	Detail string `json:"detalle"`
}

// HealthResponse represents the health check payload
type HealthResponse struct {
	Status   string    `json:"status"`
	Source   string    `json:"source,omitempty"`
	Movies   int       `json:"movies"`
	LoadedAt time.Time `json:"loaded_at"`
	Time     string    `json:"time"`
}
