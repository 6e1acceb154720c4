package httpapi

import validator "gopkg.in/go-playground/validator.v9"

// validate is shared across handlers, exactly as the teacher wires a
// single *validator.Validate into its config-loading path.
var validate = validator.New()

// MatchRequest is the body of POST /v1/match.
type MatchRequest struct {
	Text    string `json:"text" validate:"required"`
	Pattern string `json:"pattern" validate:"required"`
	First   bool   `json:"first"`
}

// ReplaceRequest is the body of POST /v1/replace.
type ReplaceRequest struct {
	Text        string `json:"text" validate:"required"`
	Pattern     string `json:"pattern" validate:"required"`
	Replacement string `json:"replacement"`
	First       bool   `json:"first"`
}
