package oaiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/tdnguyen/aureus/src/aisdk"
)

var _ aisdk.Transcriber = (*Client)(nil)

// CreateTranscription sends audio content to the transcriptions endpoint and
// returns the transcribed text.
func (c *Client) CreateTranscription(ctx context.Context, req *aisdk.TranscriptionRequest) (string, error) {
	logger := c.logger.With("method", "CreateTranscription", "model", req.Model)

	responseFormat := req.ResponseFormat
	if responseFormat == "" {
		responseFormat = "text"
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", req.Filename)
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(req.Audio); err != nil {
		return "", fmt.Errorf("failed to write audio content: %w", err)
	}
	if err := writer.WriteField("model", req.Model); err != nil {
		return "", fmt.Errorf("failed to write model field: %w", err)
	}
	if err := writer.WriteField("response_format", responseFormat); err != nil {
		return "", fmt.Errorf("failed to write response_format field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize form: %w", err)
	}

	httpReq, err := c.newRequest(ctx, http.MethodPost, "/audio/transcriptions", body.Bytes())
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.doRequestWithRetry(httpReq)
	if err != nil {
		logger.Error("transcription request failed", "error", err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Error("received error response", "status_code", resp.StatusCode)
		return "", c.handleError(resp)
	}

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read transcription: %w", err)
	}

	logger.Debug("transcription successful", "bytes", len(text))
	return string(text), nil
}
