package advisor

import (
	"context"
	"fmt"

	"github.com/spf13/afero"

	"github.com/tdnguyen/aureus/src/aisdk"
)

// Transcribe reads an audio file and converts it to text via the
// transcription endpoint. Failures come back as user-facing placeholder
// strings, never as errors, matching the translation boundary.
func Transcribe(ctx context.Context, fs afero.Fs, transcriber aisdk.Transcriber, model, path string) string {
	if path == "" {
		return "No audio content provided. Try again."
	}

	audio, err := afero.ReadFile(fs, path)
	if err != nil {
		return fmt.Sprintf("Speech-to-text error: %v", err)
	}

	text, err := transcriber.CreateTranscription(ctx, &aisdk.TranscriptionRequest{
		Model:    model,
		Filename: path,
		Audio:    audio,
	})
	if err != nil {
		return fmt.Sprintf("Speech-to-text error: %v", err)
	}

	return text
}
