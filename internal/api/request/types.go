package request

// CreateSessionRequest is the request body for starting a session.
// RootWord is optional; when empty one is drawn from the corpus.
type CreateSessionRequest struct {
	RootWord string `json:"root_word,omitempty"`
}

// SubmitWordRequest is the request body for submitting a word
type SubmitWordRequest struct {
	Word string `json:"word"`
}
