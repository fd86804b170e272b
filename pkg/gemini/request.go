// Package gemini talks to the generateContent endpoint of the Gemini REST API.
package gemini

import "github.com/minhyannv/gemini-chat-go/pkg/chat"

// --- request types ---

// Request is the generateContent request body.
type Request struct {
	Contents []Content `json:"contents"`
}

// Content is one conversation entry.
type Content struct {
	Role  string `json:"role"`
	Parts []Part `json:"parts"`
}

// Part is a text part. Text is a pointer so a missing key can be told apart
// from an empty string when decoding responses.
type Part struct {
	Text *string `json:"text,omitempty"`
}

// --- response types ---

type apiResponse struct {
	Candidates []apiCandidate `json:"candidates"`
}

type apiCandidate struct {
	Content      *Content `json:"content"`
	FinishReason string   `json:"finishReason"`
}

type apiErrorBody struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// BuildRequest converts turns into a request body, one single-part content
// per turn. It does not retain or modify turns.
func BuildRequest(turns []chat.Turn) Request {
	req := Request{Contents: make([]Content, 0, len(turns))}
	for _, t := range turns {
		text := t.Text
		req.Contents = append(req.Contents, Content{
			Role:  string(t.Role),
			Parts: []Part{{Text: &text}},
		})
	}
	return req
}
