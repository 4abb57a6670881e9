package agent

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"google.golang.org/genai"
)

func TestWriteWAV(t *testing.T) {
	pcm := []byte{0x01, 0x02, 0x03, 0x04}
	var buf bytes.Buffer
	if err := WriteWAV(&buf, pcm); err != nil {
		t.Fatalf("WriteWAV() returned an unexpected error: %v", err)
	}
	out := buf.Bytes()

	if got := len(out); got != 44+len(pcm) {
		t.Fatalf("wav length = %d, want %d", got, 44+len(pcm))
	}
	if string(out[0:4]) != "RIFF" || string(out[8:12]) != "WAVE" {
		t.Errorf("bad container magic: %q %q", out[0:4], out[8:12])
	}
	if got := binary.LittleEndian.Uint32(out[24:28]); got != SampleRate {
		t.Errorf("sample rate = %d, want %d", got, SampleRate)
	}
	if got := binary.LittleEndian.Uint32(out[40:44]); got != uint32(len(pcm)) {
		t.Errorf("data size = %d, want %d", got, len(pcm))
	}
	if !bytes.Equal(out[44:], pcm) {
		t.Error("pcm payload mangled")
	}
}

func TestIsAuthError(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"unauthorized", genai.APIError{Code: 401, Message: "unauthorized"}, true},
		{"forbidden", genai.APIError{Code: 403, Message: "forbidden"}, true},
		{"server error", genai.APIError{Code: 500, Message: "boom"}, false},
		{"missing key entity", errors.New("Requested entity was not found."), true},
		{"anything else", errors.New("context deadline exceeded"), false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsAuthError(tc.err); got != tc.want {
				t.Errorf("IsAuthError(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}
