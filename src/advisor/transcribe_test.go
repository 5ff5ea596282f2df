package advisor

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdnguyen/aureus/src/aisdk"
)

type fakeTranscriber struct {
	text     string
	err      error
	requests []*aisdk.TranscriptionRequest
}

func (f *fakeTranscriber) CreateTranscription(_ context.Context, req *aisdk.TranscriptionRequest) (string, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func TestTranscribe(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/audio/question.mp3", []byte("fake-audio"), 0o644))

	tr := &fakeTranscriber{text: "what is the gold price in Japan"}
	got := Transcribe(context.Background(), fs, tr, "whisper-1", "/audio/question.mp3")
	assert.Equal(t, "what is the gold price in Japan", got)

	require.Len(t, tr.requests, 1)
	assert.Equal(t, "whisper-1", tr.requests[0].Model)
	assert.Equal(t, []byte("fake-audio"), tr.requests[0].Audio)
}

func TestTranscribeEmptyPath(t *testing.T) {
	tr := &fakeTranscriber{}
	got := Transcribe(context.Background(), afero.NewMemMapFs(), tr, "whisper-1", "")
	assert.Equal(t, "No audio content provided. Try again.", got)
	assert.Empty(t, tr.requests)
}

func TestTranscribeMissingFile(t *testing.T) {
	tr := &fakeTranscriber{}
	got := Transcribe(context.Background(), afero.NewMemMapFs(), tr, "whisper-1", "/nope.mp3")
	assert.Contains(t, got, "Speech-to-text error:")
	assert.Empty(t, tr.requests)
}

func TestTranscribeAPIFailure(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/a.mp3", []byte("x"), 0o644))

	tr := &fakeTranscriber{err: errors.New("service busy")}
	got := Transcribe(context.Background(), fs, tr, "whisper-1", "/a.mp3")
	assert.Equal(t, "Speech-to-text error: service busy", got)
}
