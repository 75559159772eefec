package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/julianstephens/punchlit/internal/models"
	"github.com/julianstephens/punchlit/internal/opday"
)

// chatMessage is the push-message envelope the chat API expects.
type chatMessage struct {
	To       string     `json:"to"`
	Messages []textPart `json:"messages"`
}

type textPart struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ChatSink pushes a human-readable message per event to a chat recipient
// (the trainee's supervisor group).
type ChatSink struct {
	URL       string
	Token     string
	Recipient string
	Client    *http.Client
}

func NewChatSink(url, token, recipient string) *ChatSink {
	return &ChatSink{
		URL:       url,
		Token:     token,
		Recipient: recipient,
		Client:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *ChatSink) Name() string { return "chat" }

func (s *ChatSink) Send(ctx context.Context, ev models.Event) error {
	text, err := FormatMessage(ev)
	if err != nil {
		return err
	}

	body, err := json.Marshal(chatMessage{
		To:       s.Recipient,
		Messages: []textPart{{Type: "text", Text: text}},
	})
	if err != nil {
		return fmt.Errorf("failed to serialize chat message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.Token)

	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("chat push rejected: %s", resp.Status)
	}

	return nil
}

// FormatMessage renders the per-event chat template. Times use the
// operational date label and the 30-hour display clock.
func FormatMessage(ev models.Event) (string, error) {
	switch ev.Type {
	case models.EventClockIn:
		return fmt.Sprintf("[Clock-in]\nName: %s\nTime: %s",
			ev.UserName, opday.DateTime(ev.Timestamp)), nil

	case models.EventClockOut:
		worked := "--"
		if ev.WorkDuration != nil {
			worked = opday.FormatDuration(*ev.WorkDuration)
		}
		return fmt.Sprintf("[Clock-out]\nName: %s\nTime: %s\nWorked: %s",
			ev.UserName, opday.DateTime(ev.Timestamp), worked), nil

	case models.EventTaskCompleted:
		return fmt.Sprintf("[Task complete]\nName: %s\nTime: %s\nApp URL: %s",
			ev.UserName, opday.DateTime(ev.Timestamp), ev.AppURL), nil

	default:
		return "", fmt.Errorf("unknown event type: %q", ev.Type)
	}
}
