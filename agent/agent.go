// Package agent is the AI collaborator behind the cosmetic features of the
// ledger: a chat assistant, meditation visuals and spoken meditation audio.
// It only consumes the Gemini API; it never reads or writes ledger state.
package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const (
	chatModel   = "gemini-3-pro-preview"
	visualModel = "gemini-3-pro-image-preview"
	speechModel = "gemini-2.5-flash-preview-tts"

	// voice used for the spoken meditation.
	speechVoice = "Kore"
)

// systemInstruction keeps the assistant in its role: an Arabic-speaking
// helper for the debt-and-calm application.
const systemInstruction = "أنت مساعد ذكي لتطبيق إدارة الديون والهدوء. تتحدث العربية بطلاقة. ساعد المستخدم في إدارة حساباته أو قدم نصائح حول التوفير والهدوء."

// visualPromptPrefix frames every visual request.
const visualPromptPrefix = "Create a serene, high-quality meditation visual: "

// Collaborator wraps a Gemini client with the three single-shot requests
// the application makes. No streaming, no retry: a failure is reported
// as-is and classified only by IsAuthError.
type Collaborator struct {
	client *genai.Client
}

// New creates a Collaborator from a Gemini client. The client picks its
// credentials up from the environment.
func New(client *genai.Client) *Collaborator {
	return &Collaborator{client: client}
}

// Chat sends one user message with its prior history and returns the
// model's text answer together with the updated history.
func (c *Collaborator) Chat(ctx context.Context, message string, history []*genai.Content) (string, []*genai.Content, error) {
	chat, err := c.client.Chats.Create(ctx, chatModel, &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
	}, history)
	if err != nil {
		return "", history, fmt.Errorf("could not create chat: %w", err)
	}
	resp, err := chat.Send(ctx, &genai.Part{Text: message})
	if err != nil {
		return "", history, fmt.Errorf("chat failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", history, fmt.Errorf("no response from the assistant")
	}
	answer := resp.Candidates[0].Content.Parts[0].Text
	history = append(history,
		&genai.Content{Role: genai.RoleUser, Parts: []*genai.Part{{Text: message}}},
		&genai.Content{Role: genai.RoleModel, Parts: []*genai.Part{{Text: answer}}},
	)
	return answer, history, nil
}

// GenerateVisual asks the image model for a meditation visual and returns
// the raw image bytes, or nil when the response carries no image part.
func (c *Collaborator) GenerateVisual(ctx context.Context, prompt string) ([]byte, error) {
	resp, err := c.client.Models.GenerateContent(ctx, visualModel,
		genai.Text(visualPromptPrefix+prompt),
		&genai.GenerateContentConfig{
			ResponseModalities: []string{"IMAGE", "TEXT"},
		})
	if err != nil {
		return nil, fmt.Errorf("visual generation failed: %w", err)
	}
	// Scan all parts for the inline image, the model may interleave text.
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data, nil
			}
		}
	}
	return nil, nil
}

// GenerateSpeech asks the TTS model to speak the given text and returns
// raw PCM audio: 24kHz, mono, 16-bit little-endian. Use WriteWAV to wrap
// it in a playable container.
func (c *Collaborator) GenerateSpeech(ctx context.Context, text string) ([]byte, error) {
	resp, err := c.client.Models.GenerateContent(ctx, speechModel,
		genai.Text(text),
		&genai.GenerateContentConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: &genai.SpeechConfig{
				VoiceConfig: &genai.VoiceConfig{
					PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: speechVoice},
				},
			},
		})
	if err != nil {
		return nil, fmt.Errorf("speech generation failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, nil
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return part.InlineData.Data, nil
		}
	}
	return nil, nil
}

// IsAuthError reports whether an AI failure is a credential problem, as
// opposed to anything else. The caller prompts for a new API key on the
// former and shows a generic "AI features unavailable" notice otherwise.
func IsAuthError(err error) bool {
	if err == nil {
		return false
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == 401 || apiErr.Code == 403 {
			return true
		}
	}
	// The API reports a missing or revoked key for this model family as a
	// not-found entity.
	return strings.Contains(err.Error(), "Requested entity was not found")
}
