package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	"github.com/rsaleh/daftar/agent"
	"google.golang.org/genai"
)

// defaults of the meditation feature, from the original application.
const (
	defaultVisualPrompt = "A serene glowing lotus in a peaceful pond at night, 4k digital art"
	meditationText      = "أغمض عينيك.. خذ نفساً عميقاً.. سجلاتك منظمة.. حساباتك في أمان.. ركز على هدوء أنفاسك الآن."
)

type meditateCmd struct {
	prompt string
	outDir string
}

func (*meditateCmd) Name() string     { return "meditate" }
func (*meditateCmd) Synopsis() string { return "generate a meditation visual and spoken audio" }
func (*meditateCmd) Usage() string {
	return `dz meditate [-prompt <text>] [-o <dir>]

  Asks Gemini for a serene meditation visual and a short spoken meditation
  and writes meditation.png and meditation.wav to the output directory.
  Purely cosmetic: the ledger is never touched.

Usage Examples:
$ dz meditate
$ dz meditate -prompt "a quiet mountain lake at dawn"
`
}

func (c *meditateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.prompt, "prompt", defaultVisualPrompt, "Scene to render as the meditation visual.")
	f.StringVar(&c.outDir, "o", ".", "Directory for the generated artifacts.")
}

func (c *meditateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}
	collab := agent.New(client)

	image, err := collab.GenerateVisual(ctx, c.prompt)
	if err != nil {
		return reportAIError(err)
	}
	if image != nil {
		name := filepath.Join(c.outDir, "meditation.png")
		if err := os.WriteFile(name, image, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", name, err)
			return subcommands.ExitFailure
		}
		fmt.Println("Visual written to", name)
	}

	pcm, err := collab.GenerateSpeech(ctx, meditationText)
	if err != nil {
		return reportAIError(err)
	}
	if pcm != nil {
		name := filepath.Join(c.outDir, "meditation.wav")
		out, err := os.Create(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", name, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
		if err := agent.WriteWAV(out, pcm); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", name, err)
			return subcommands.ExitFailure
		}
		fmt.Println("Audio written to", name)
	}
	return subcommands.ExitSuccess
}

// reportAIError maps an AI failure to one of the two user-visible
// outcomes: a credential problem, or AI features being unavailable.
// Both are non-fatal for the ledger itself.
func reportAIError(err error) subcommands.ExitStatus {
	if agent.IsAuthError(err) {
		fmt.Fprintln(os.Stderr, "Error: invalid or missing API key, please select a valid one (GEMINI_API_KEY).")
	} else {
		fmt.Fprintln(os.Stderr, "Error: AI features are unavailable:", err)
	}
	return subcommands.ExitFailure
}
