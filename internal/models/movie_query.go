package models

// Chatbot status messages returned with every chatbot response
const (
	ChatbotResultsFound   = "Aquí tienes algunas películas relacionadas."
	ChatbotNoResultsFound = "No encontré películas en esa categoría"
)

// MovieLookup is the tagged result of an id lookup: either Found with the
// movie, or not found. A miss is a normal outcome, not an error.
type MovieLookup struct {
	Movie Movie
	Found bool
}

// FoundMovie builds a successful lookup
func FoundMovie(movie Movie) MovieLookup {
	return MovieLookup{Movie: movie, Found: true}
}

// MovieNotFound builds a lookup miss
func MovieNotFound() MovieLookup {
	return MovieLookup{}
}

// QueryExpansion describes how a free-text query was expanded into terms
type QueryExpansion struct {
	Query  string
	Tokens []string
	Terms  TermSet
}

// ChatbotResult is the outcome of a chatbot search
type ChatbotResult struct {
	StatusMessage string
	Results       []Movie
	Expansion     QueryExpansion
}

// HasResults reports whether the search matched anything
func (r ChatbotResult) HasResults() bool {
	return len(r.Results) > 0
}

// NewChatbotResult picks the status message for a result set
func NewChatbotResult(expansion QueryExpansion, results []Movie) ChatbotResult {
	message := ChatbotNoResultsFound
	if len(results) > 0 {
		message = ChatbotResultsFound
	}
	if results == nil {
		results = []Movie{}
	}
	return ChatbotResult{
		StatusMessage: message,
		Results:       results,
		Expansion:     expansion,
	}
}
