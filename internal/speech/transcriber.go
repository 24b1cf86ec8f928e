// Package speech turns short recorded voice answers into text using
// Google Cloud Speech-to-Text. Recordings are a few seconds long, so
// synchronous recognition is enough; long-running operations are not
// needed.
package speech

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrNoSpeech means the recognizer returned no transcript: silence,
// background noise, or speech in a language the recognizer could not
// parse. The caller treats this as an incorrect answer, not a failure.
var ErrNoSpeech = errors.New("no speech recognized")

// Transcriber converts a base64-encoded audio clip into text.
type Transcriber interface {
	// Transcribe decodes the clip and returns the recognized text.
	// languageCode is a BCP-47 tag such as "te-IN"; empty means "en-US".
	Transcribe(ctx context.Context, audioB64, languageCode string) (string, error)
}

// GoogleTranscriber implements Transcriber using the Cloud Speech API.
// Credentials come from the ambient GOOGLE_APPLICATION_CREDENTIALS
// environment.
type GoogleTranscriber struct {
	client     *speech.Client
	maxRetries int
}

// NewGoogleTranscriber creates a transcriber backed by a Cloud Speech
// client. Callers own Close. Extra client options (endpoint overrides,
// explicit credentials) are passed through.
func NewGoogleTranscriber(ctx context.Context, opts ...option.ClientOption) (*GoogleTranscriber, error) {
	c, err := speech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("speech client: %w", err)
	}
	return &GoogleTranscriber{client: c, maxRetries: 3}, nil
}

// Close releases the underlying client connection.
func (t *GoogleTranscriber) Close() error {
	if t == nil || t.client == nil {
		return nil
	}
	return t.client.Close()
}

func (t *GoogleTranscriber) Transcribe(ctx context.Context, audioB64, languageCode string) (string, error) {
	audio, err := decodeAudio(audioB64)
	if err != nil {
		return "", fmt.Errorf("decode audio: %w", err)
	}
	if len(audio) == 0 {
		return "", ErrNoSpeech
	}

	if languageCode == "" {
		languageCode = "en-US"
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	req := &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			// Browser MediaRecorder output.
			Encoding:        speechpb.RecognitionConfig_WEBM_OPUS,
			SampleRateHertz: 48000,
			LanguageCode:    languageCode,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	}

	resp, err := t.retryRecognize(ctx, req)
	if err != nil {
		return "", fmt.Errorf("speech recognize: %w", err)
	}

	text := primaryTranscript(resp)
	if text == "" {
		return "", ErrNoSpeech
	}
	return text, nil
}

// decodeAudio accepts both a bare base64 payload and a data URI
// ("data:audio/webm;base64,...") as produced by browser recorders.
func decodeAudio(audioB64 string) ([]byte, error) {
	s := strings.TrimSpace(audioB64)
	if i := strings.Index(s, ";base64,"); i >= 0 {
		s = s[i+len(";base64,"):]
	}
	return base64.StdEncoding.DecodeString(s)
}

// primaryTranscript joins the top alternative of every result.
func primaryTranscript(resp *speechpb.RecognizeResponse) string {
	if resp == nil {
		return ""
	}
	var b strings.Builder
	for _, r := range resp.Results {
		if r == nil || len(r.Alternatives) == 0 || r.Alternatives[0] == nil {
			continue
		}
		text := strings.TrimSpace(r.Alternatives[0].Transcript)
		if text == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(text)
	}
	return strings.TrimSpace(b.String())
}

func (t *GoogleTranscriber) retryRecognize(ctx context.Context, req *speechpb.RecognizeRequest) (*speechpb.RecognizeResponse, error) {
	backoff := 500 * time.Millisecond
	var last error
	for attempt := 0; attempt <= t.maxRetries; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		resp, err := t.client.Recognize(ctx, req)
		if err == nil {
			return resp, nil
		}
		last = err

		switch status.Code(err) {
		case codes.Unavailable, codes.ResourceExhausted, codes.DeadlineExceeded:
			// transient
		default:
			return nil, err
		}
		if attempt == t.maxRetries {
			break
		}
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		backoff *= 2
	}
	return nil, last
}
