package notify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/punchlit/internal/models"
)

func TestFormatMessage(t *testing.T) {
	in := time.Date(2025, 11, 29, 9, 0, 0, 0, time.Local)
	out := time.Date(2025, 11, 29, 18, 0, 0, 0, time.Local)

	tests := []struct {
		name  string
		event models.Event
		want  string
	}{
		{
			name: "clock in",
			event: models.Event{
				Type: models.EventClockIn, UserName: "Alice", Timestamp: in,
			},
			want: "[Clock-in]\nName: Alice\nTime: 2025/11/29 9:00",
		},
		{
			name: "clock out",
			event: models.Event{
				Type: models.EventClockOut, UserName: "Alice", Timestamp: out,
				ClockInTime: timePtr(in), WorkDuration: intPtr(540),
			},
			want: "[Clock-out]\nName: Alice\nTime: 2025/11/29 18:00\nWorked: 9h0m",
		},
		{
			name: "task complete",
			event: models.Event{
				Type: models.EventTaskCompleted, UserName: "Alice", Timestamp: out,
				AppURL: "https://example.com/app",
			},
			want: "[Task complete]\nName: Alice\nTime: 2025/11/29 18:00\nApp URL: https://example.com/app",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatMessage(tt.event)
			if err != nil {
				t.Fatalf("FormatMessage failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("message = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatMessage_EarlyMorningUsesThirtyHourClock(t *testing.T) {
	got, err := FormatMessage(models.Event{
		Type:      models.EventClockOut,
		UserName:  "Alice",
		Timestamp: time.Date(2025, 11, 30, 2, 15, 0, 0, time.Local),
	})
	if err != nil {
		t.Fatalf("FormatMessage failed: %v", err)
	}
	if !strings.Contains(got, "2025/11/29 26:15") {
		t.Errorf("message %q does not use 30-hour clock", got)
	}
}

func TestChatSink_SendsPushEnvelope(t *testing.T) {
	var got chatMessage
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &got)
	}))
	defer server.Close()

	sink := NewChatSink(server.URL, "secret-token", "C4287")
	err := sink.Send(context.Background(), clockInEvent())
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if auth != "Bearer secret-token" {
		t.Errorf("Authorization = %q", auth)
	}
	if got.To != "C4287" {
		t.Errorf("to = %q, want C4287", got.To)
	}
	if len(got.Messages) != 1 || got.Messages[0].Type != "text" {
		t.Fatalf("messages = %+v", got.Messages)
	}
	if !strings.HasPrefix(got.Messages[0].Text, "[Clock-in]") {
		t.Errorf("text = %q", got.Messages[0].Text)
	}
}

func TestChatSink_RejectedPushIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	sink := NewChatSink(server.URL, "bad-token", "C4287")
	if err := sink.Send(context.Background(), clockInEvent()); err == nil {
		t.Error("expected error for rejected push")
	}
}
