package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Assistant is the interactive chat session around a Collaborator.
type Assistant struct {
	w io.Writer
	r *bufio.Reader
	c *Collaborator
}

// NewAssistant creates an Assistant writing to w and reading user input
// from r (typically os.Stdout and os.Stdin).
func NewAssistant(w io.Writer, r io.Reader, c *Collaborator) *Assistant {
	return &Assistant{w: w, r: bufio.NewReader(r), c: c}
}

const prompt = "chat> "

// Run starts the interactive REPL session. Initial prompts are consumed
// first, then input is read line by line until 'bye' or EOF.
func (a *Assistant) Run(ctx context.Context, prompts ...string) error {
	fmt.Fprintln(a.w, "Welcome to the daftar assistant. Type 'bye' to exit.")

	var history []*genai.Content
	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		answer, newHistory, err := a.c.Chat(ctx, input, history)
		if err != nil {
			return err
		}
		history = newHistory
		fmt.Fprintln(a.w, answer)
	}
}
