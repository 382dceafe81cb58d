package api

import "github.com/samcharles93/intseq/internal/sequence"

// ExpandRequest is the body of POST /v1/expansions.
type ExpandRequest struct {
	Input  string `json:"input"`
	Format string `json:"format,omitempty"`
	// Store set to false skips saving the expansion for later retrieval.
	Store *bool `json:"store,omitempty"`
}

// Expansion is a completed expansion as returned by the API.
type Expansion struct {
	ID        string        `json:"id"`
	Object    string        `json:"object"`
	CreatedAt int64         `json:"created_at"`
	Input     string        `json:"input"`
	Prefix    []int64       `json:"prefix"`
	End       int64         `json:"end"`
	Inclusive bool          `json:"inclusive"`
	Model     sequence.Kind `json:"model"`
	Source    string        `json:"source,omitempty"`
	Terms     []int64       `json:"terms"`
	Format    string        `json:"format"`
	Literal   string        `json:"literal"`
}

type DeletedExpansion struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Deleted bool   `json:"deleted"`
}

type ErrorBody struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code,omitempty"`
	Param   string `json:"param,omitempty"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}
