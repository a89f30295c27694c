package model

// DefaultStyle is used when the client sends no language_style.
const DefaultStyle = "normal"

// Question is one consultation as received from a client.
type Question struct {
	Text  string
	Style string
}

type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Turn is a single message of the conversation sent to the model.
type Turn struct {
	Role Role
	Text string
}

type Answer struct {
	Text string
}

// LegalQuestionRequest is the body of POST /consultar-abogado.
type LegalQuestionRequest struct {
	Question      string  `json:"question" validate:"required"`
	LanguageStyle *string `json:"language_style,omitempty"`
}

// ToQuestion applies the default style.
func (r LegalQuestionRequest) ToQuestion() Question {
	style := DefaultStyle
	if r.LanguageStyle != nil {
		style = *r.LanguageStyle
	}
	return Question{Text: r.Question, Style: style}
}

type LegalAnswerResponse struct {
	Response string `json:"response"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ValidationIssue mirrors the error items FastAPI-style clients expect.
type ValidationIssue struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

type ValidationErrorResponse struct {
	Detail []ValidationIssue `json:"detail"`
}

type ServiceInfo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Version     string `json:"version"`
}
