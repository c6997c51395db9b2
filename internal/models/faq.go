package models

// FAQ is an answer template matched against customer messages by token
// overlap. Tags are literal match tokens; a multi-word tag is compared
// as a whole, not split.
type FAQ struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Tags     []string `json:"tags"`
}
