package chat

//go:generate mockgen -destination=./generator_mock_test.go -package=chat -source=session.go Generator

import (
	"context"
	"strings"

	"github.com/google/uuid"
	loggerpkg "github.com/minhyannv/gemini-chat-go/pkg/logger"
)

// ErrorMarker prefixes replies that stand in for a failed request.
const ErrorMarker = "[ERROR]"

// Generator produces the next model reply for a transcript.
type Generator interface {
	Generate(ctx context.Context, turns []Turn) (string, error)
}

// Reply asks gen for the next reply. Failures are folded into a printable
// reply starting with ErrorMarker, so callers never see an error.
func Reply(ctx context.Context, gen Generator, turns []Turn) string {
	text, err := gen.Generate(ctx, turns)
	if err != nil {
		return ErrorMarker + " " + err.Error()
	}
	return text
}

// IsReplyError reports whether reply was produced from a failed request.
func IsReplyError(reply string) bool {
	return strings.HasPrefix(reply, ErrorMarker)
}

// IsExitCommand reports whether input asks to end an interactive session.
func IsExitCommand(input string) bool {
	input = strings.TrimSpace(input)
	return strings.EqualFold(input, "exit") || strings.EqualFold(input, "quit")
}

// Session is an interactive conversation: a transcript plus the generator
// that answers it. The transcript starts with the priming instruction and
// grows by one user and one model turn per Send.
type Session struct {
	id         uuid.UUID
	gen        Generator
	transcript *Transcript
	logger     loggerpkg.Logger
}

// NewSession starts a session primed with instruction.
func NewSession(gen Generator, instruction string, opts ...Option) *Session {
	deps := applyOptions(opts)
	s := &Session{
		id:         uuid.New(),
		gen:        gen,
		transcript: NewTranscript(UserTurn(instruction)),
		logger:     deps.logger,
	}
	s.logger.Debug("session start", map[string]any{"session": s.id.String()})
	return s
}

// ID identifies the session in log records.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Send appends input as a user turn, requests a reply for the whole
// transcript and appends the reply as a model turn. Error replies are
// appended like any other reply.
func (s *Session) Send(ctx context.Context, input string) string {
	s.transcript.Append(UserTurn(input))
	s.logger.Debug("sending transcript", map[string]any{
		"session": s.id.String(),
		"turns":   s.transcript.Len(),
	})

	reply := Reply(ctx, s.gen, s.transcript.Turns())
	if IsReplyError(reply) {
		s.logger.Info("request failed", map[string]any{
			"session": s.id.String(),
			"reply":   reply,
		})
	}

	s.transcript.Append(ModelTurn(reply))
	return reply
}

// Turns returns a copy of the transcript.
func (s *Session) Turns() []Turn {
	return s.transcript.Turns()
}

// OneShotTurns builds the transcript used for a single exchange.
func OneShotTurns(instruction, message string) []Turn {
	return []Turn{UserTurn(instruction), UserTurn(message)}
}

// Once sends instruction and message as a two-turn transcript and returns the reply.
func Once(ctx context.Context, gen Generator, instruction, message string, opts ...Option) string {
	deps := applyOptions(opts)
	deps.logger.Debug("one-shot request", map[string]any{"bytes": len(message)})
	reply := Reply(ctx, gen, OneShotTurns(instruction, message))
	if IsReplyError(reply) {
		deps.logger.Info("request failed", map[string]any{"reply": reply})
	}
	return reply
}
