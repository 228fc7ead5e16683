package models

// Category is a trivia category offered by the question provider.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Question is one trivia question as delivered by the provider.
type Question struct {
	Text             string   `json:"question"`
	CorrectAnswer    string   `json:"correctAnswer"`
	IncorrectAnswers []string `json:"incorrectAnswers"`
	Category         string   `json:"category"`
	Difficulty       string   `json:"difficulty"`
	Type             string   `json:"type"`
}

// Quote is an inspirational quote.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}
