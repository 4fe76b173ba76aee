package core

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	noon := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"Zulu", "2024-05-01T12:00:00Z", noon},
		{"Offset", "2024-05-01T21:00:00+09:00", noon},
		{"Zulu Fraction", "2024-05-01T12:00:00.5Z", noon.Add(500 * time.Millisecond)},
		{"Naive", "2024-05-01T12:00:00", time.Date(2024, 5, 1, 12, 0, 0, 0, time.Local)},
		{"Naive Micros", "2024-05-01T12:00:00.123456", time.Date(2024, 5, 1, 12, 0, 0, 123456000, time.Local)},
		{"Naive Space", "2024-05-01 12:00:00", time.Date(2024, 5, 1, 12, 0, 0, 0, time.Local)},
		{"Space Offset", "2024-05-01 21:00:00+09:00", noon},
		{"Date Only", "2024-05-01", time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			if err != nil {
				t.Fatalf("ParseTimestamp(%q) error = %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseTimestamp(%q) = %v, want %v", tt.input, got.Time, tt.want)
			}
		})
	}

	if _, err := ParseTimestamp("yesterday"); err == nil {
		t.Error("expected error for unrecognized input")
	}
}

func TestTimestamp_DecodeRecords(t *testing.T) {
	var items []Item
	body := `[{"id":1,"location":"Library","status":"보관","registered_at":"2024-05-01T12:00:00.123456","tags":[]},
	          {"id":2,"location":"Gym","status":"찾음","registered_at":"2024-05-01T13:00:00Z","tags":[]}]`
	if err := json.Unmarshal([]byte(body), &items); err != nil {
		t.Fatalf("decoding items: %v", err)
	}
	if want := time.Date(2024, 5, 1, 12, 0, 0, 123456000, time.Local); !items[0].RegisteredAt.Equal(want) {
		t.Errorf("items[0].RegisteredAt = %v, want %v", items[0].RegisteredAt.Time, want)
	}
	if got := RecentItems(items, 1); len(got) != 1 {
		t.Errorf("RecentItems() len = %d", len(got))
	}

	var logs []PickupLog
	body = `[{"id":1,"code":"123456","is_used":false,"generated_at":"2024-05-01T12:00:00",
	          "expires_at":"2024-05-01 12:30:00","cancelled_at":null,"item_id":3}]`
	if err := json.Unmarshal([]byte(body), &logs); err != nil {
		t.Fatalf("decoding pickup logs: %v", err)
	}
	if logs[0].CancelledAt != nil {
		t.Error("null cancelled_at must stay nil")
	}
	if want := time.Date(2024, 5, 1, 12, 30, 0, 0, time.Local); !logs[0].ExpiresAt.Equal(want) {
		t.Errorf("ExpiresAt = %v, want %v", logs[0].ExpiresAt.Time, want)
	}
}

func TestTimestamp_EmptyAndInvalid(t *testing.T) {
	var ts Timestamp
	if err := json.Unmarshal([]byte(`""`), &ts); err != nil || !ts.IsZero() {
		t.Errorf("empty string: ts = %v, err = %v", ts.Time, err)
	}
	if err := json.Unmarshal([]byte(`null`), &ts); err != nil || !ts.IsZero() {
		t.Errorf("null: ts = %v, err = %v", ts.Time, err)
	}
	if err := json.Unmarshal([]byte(`"01/05/2024"`), &ts); err == nil {
		t.Error("expected error for unsupported format")
	}
	if err := json.Unmarshal([]byte(`12345`), &ts); err == nil {
		t.Error("expected error for a number")
	}
}
