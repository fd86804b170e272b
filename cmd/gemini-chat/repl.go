package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minhyannv/gemini-chat-go/pkg/chat"
)

// runREPL reads lines from in until an exit keyword or end of input,
// sending the whole transcript on every line.
func runREPL(ctx context.Context, a *app, in io.Reader, out io.Writer) error {
	if a == nil {
		return fmt.Errorf("app is required")
	}
	if in == nil {
		return fmt.Errorf("input reader is required")
	}
	if out == nil {
		out = io.Discard
	}

	pal := newPalette(out)
	session := chat.NewSession(a.generator, a.persona.Instruction, chat.WithLogger(a.logger))

	reader := bufio.NewReader(in)

	var readErr error
	for {
		_, _ = fmt.Fprint(out, pal.userPrompt())
		line, err := reader.ReadString('\n')
		if line == "" && err != nil {
			if err != io.EOF {
				readErr = err
			}
			break
		}

		input := strings.TrimSpace(line)
		if chat.IsExitCommand(input) {
			_, _ = fmt.Fprintln(out, pal.closingMessage())
			return nil
		}

		reply := session.Send(ctx, input)
		_, _ = fmt.Fprintf(out, "%s%s\n", pal.modelLabel(a.persona.Name), reply)
	}

	// End of input leaves the cursor after the prompt.
	_, _ = fmt.Fprintln(out)
	if readErr != nil {
		return fmt.Errorf("read input: %w", readErr)
	}
	return nil
}

// runOnce sends message as a single exchange and prints the reply.
func runOnce(ctx context.Context, a *app, message string, out io.Writer) {
	reply := chat.Once(ctx, a.generator, a.persona.Instruction, message, chat.WithLogger(a.logger))
	_, _ = fmt.Fprintf(out, "%s%s\n", newPalette(out).modelLabel(a.persona.Name), reply)
}
