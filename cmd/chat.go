package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/rsaleh/daftar/agent"
	"google.golang.org/genai"
)

type chatCmd struct{}

func (*chatCmd) Name() string     { return "chat" }
func (*chatCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*chatCmd) Usage() string {
	return `dz chat [<first message>]

  Starts an interactive chat with the assistant. Type 'bye' to exit.
`
}

func (*chatCmd) SetFlags(_ *flag.FlagSet) {}

func (c *chatCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := agent.NewAssistant(os.Stdout, os.Stdin, agent.New(client))
	var prompts []string
	if initialPrompt != "" {
		prompts = append(prompts, initialPrompt)
	}
	if err := a.Run(ctx, prompts...); err != nil {
		return reportAIError(err)
	}
	return subcommands.ExitSuccess
}
