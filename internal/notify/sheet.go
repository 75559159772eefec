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

// sheetPayload is the wire document the spreadsheet endpoint expects: a
// required action discriminator plus action-specific fields. Field names
// and time formats match what the backend stores, so they are camelCase
// and 30-hour-clock formatted.
type sheetPayload struct {
	Action       string `json:"action"`
	UserID       string `json:"userId"`
	UserName     string `json:"userName"`
	Date         string `json:"date,omitempty"`
	ClockInTime  string `json:"clockInTime,omitempty"`
	ClockOutTime string `json:"clockOutTime,omitempty"`
	WorkDuration string `json:"workDuration,omitempty"`
	CompletedAt  string `json:"completedAt,omitempty"`
	AppURL       string `json:"appUrl,omitempty"`
}

// SheetSink posts attendance events to the spreadsheet-backed HTTP
// endpoint.
type SheetSink struct {
	URL    string
	Client *http.Client
}

func NewSheetSink(url string) *SheetSink {
	return &SheetSink{
		URL:    url,
		Client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *SheetSink) Name() string { return "sheet" }

func (s *SheetSink) Send(ctx context.Context, ev models.Event) error {
	payload, err := buildSheetPayload(ev)
	if err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to serialize sheet payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build sheet request: %w", err)
	}
	// text/plain avoids the endpoint's CORS preflight; the backend parses
	// the body as JSON regardless.
	req.Header.Set("Content-Type", "text/plain")

	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("sheet request failed: %w", err)
	}
	defer resp.Body.Close()

	// Best-effort contract: a completed round trip counts as sent. The
	// response body is drained but not required to parse as a success
	// document.
	io.Copy(io.Discard, resp.Body)

	return nil
}

func buildSheetPayload(ev models.Event) (sheetPayload, error) {
	switch ev.Type {
	case models.EventClockIn:
		return sheetPayload{
			Action:      "clockIn",
			UserID:      ev.UserID,
			UserName:    ev.UserName,
			Date:        opday.Date(ev.Timestamp),
			ClockInTime: opday.Clock(ev.Timestamp),
		}, nil

	case models.EventClockOut:
		p := sheetPayload{
			Action:       "clockOut",
			UserID:       ev.UserID,
			UserName:     ev.UserName,
			Date:         opday.Date(ev.Timestamp),
			ClockOutTime: opday.Clock(ev.Timestamp),
		}
		if ev.ClockInTime != nil {
			p.ClockInTime = opday.Clock(*ev.ClockInTime)
		}
		if ev.WorkDuration != nil {
			p.WorkDuration = opday.FormatDuration(*ev.WorkDuration)
		}
		return p, nil

	case models.EventTaskCompleted:
		return sheetPayload{
			Action:      "taskComplete",
			UserID:      ev.UserID,
			UserName:    ev.UserName,
			CompletedAt: opday.DateTime(ev.Timestamp),
			AppURL:      ev.AppURL,
		}, nil

	default:
		return sheetPayload{}, fmt.Errorf("unknown event type: %q", ev.Type)
	}
}
