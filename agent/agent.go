// Package agent implements the interactive Gemini-backed analyst behind
// "flm assist": a chat session equipped with function tools over a matching
// result, so the model answers questions about remaining lots, summaries,
// and diagnostics from the actual data.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent runs the chat session between the user and the analyst.
type Agent struct {
	w       io.Writer
	r       *bufio.Reader
	Analyst *Analyst
}

// New creates a new Agent over the given analyst, writing its output to w
// (e.g. os.Stdout) and reading user input from r (e.g. os.Stdin).
func New(w io.Writer, r io.Reader, analyst *Analyst) *Agent {
	return &Agent{w: w, r: bufio.NewReader(r), Analyst: analyst}
}

const prompt = "assist> "

// Run starts the interactive REPL session with the analyst. Prompts given as
// arguments are consumed before reading from the user.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if err := a.Analyst.Start(ctx, client); err != nil {
		return err
	}

	fmt.Fprintln(a.w, "Welcome to flm assist. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input != "" {
				fmt.Fprintln(a.w, input)
			}
		}
		if input == "" {
			line, err := a.r.ReadString('\n')
			if err != nil {
				return err
			}
			input = strings.TrimSpace(line)
		}
		if input == "" {
			continue
		}
		if input == "bye" || input == "exit" || input == "quit" {
			fmt.Fprintln(a.w, "Goodbye.")
			return nil
		}

		content, err := a.Analyst.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			fmt.Fprintf(a.w, "error: %v\n", err)
			continue
		}
		for _, part := range content.Parts {
			if part.Text != "" {
				fmt.Fprintln(a.w, part.Text)
			}
		}
	}
}
