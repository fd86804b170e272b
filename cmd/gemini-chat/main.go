// Package main provides a command-line chat client for the Gemini API.
//
// With arguments it sends them as one message and prints the reply; without
// arguments it starts an interactive session on standard input.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/minhyannv/gemini-chat-go/pkg/chat"
)

// main is the program entry point.
func main() {
	os.Exit(run(context.Background(), os.Args[1:], processEnvironment(), os.Stdin, os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code.
func run(ctx context.Context, args []string, env environment, in io.Reader, out, errOut io.Writer) int {
	a, err := newApp(env, errOut)
	if err != nil {
		_, _ = fmt.Fprintf(errOut, "%s %v\n", chat.ErrorMarker, err)
		return 1
	}

	if len(args) > 0 {
		runOnce(ctx, a, strings.Join(args, " "), out)
		return 0
	}

	if err := runREPL(ctx, a, in, out); err != nil {
		_, _ = fmt.Fprintf(errOut, "%s %v\n", chat.ErrorMarker, err)
		return 1
	}
	return 0
}
