package agent

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Audio parameters of the Gemini TTS output.
const (
	SampleRate  = 24000
	numChannels = 1
	bitsPerSamp = 16
)

// WriteWAV wraps raw PCM from GenerateSpeech in a RIFF/WAVE container so
// the result is playable by ordinary audio tools. The PCM is assumed to be
// 24kHz mono 16-bit little-endian, which is what the TTS model returns.
func WriteWAV(w io.Writer, pcm []byte) error {
	byteRate := SampleRate * numChannels * bitsPerSamp / 8
	blockAlign := numChannels * bitsPerSamp / 8

	var header [44]byte
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], uint32(36+len(pcm)))
	copy(header[8:12], "WAVE")
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], SampleRate)
	binary.LittleEndian.PutUint32(header[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(header[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSamp)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], uint32(len(pcm)))

	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("cannot write wav header: %w", err)
	}
	if _, err := w.Write(pcm); err != nil {
		return fmt.Errorf("cannot write wav data: %w", err)
	}
	return nil
}
