// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

package models

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestParsePlaydateTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "valid date",
			input: "31-12-2026 18:30:00",
			want:  time.Date(2026, 12, 31, 18, 30, 0, 0, time.UTC),
		},
		{
			name:  "midnight",
			input: "01-01-2027 00:00:00",
			want:  time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "RFC3339 rejected",
			input:   "2026-12-31T18:30:00Z",
			wantErr: true,
		},
		{
			name:    "month-day order rejected",
			input:   "12-31-2026 18:30:00",
			wantErr: true,
		},
		{
			name:    "missing time component",
			input:   "31-12-2026",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParsePlaydateTime(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePlaydateTime(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePlaydateTime(%q) unexpected error: %v", tt.input, err)
			}
			if !got.Time.Equal(tt.want) {
				t.Errorf("ParsePlaydateTime(%q) = %v, want %v", tt.input, got.Time, tt.want)
			}
		})
	}
}

func TestPlaydateTimeJSONRoundTrip(t *testing.T) {
	t.Parallel()

	original := NewPlaydateTime(time.Date(2026, 6, 15, 9, 45, 30, 0, time.UTC))

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	want := `"15-06-2026 09:45:30"`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var decoded PlaydateTime
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !decoded.Time.Equal(original.Time) {
		t.Errorf("round trip = %v, want %v", decoded.Time, original.Time)
	}
}

func TestPlaydateTimeUnmarshalRejectsNonString(t *testing.T) {
	t.Parallel()

	var pt PlaydateTime
	if err := json.Unmarshal([]byte(`1735689600`), &pt); err == nil {
		t.Error("expected error unmarshaling numeric date")
	}
}

func TestPlaydateTimeNormalizesToUTC(t *testing.T) {
	t.Parallel()

	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("timezone data unavailable: %v", err)
	}

	local := time.Date(2026, 3, 10, 14, 0, 0, 0, loc)
	pt := NewPlaydateTime(local)

	if pt.Time.Location() != time.UTC {
		t.Errorf("NewPlaydateTime location = %v, want UTC", pt.Time.Location())
	}
	if !pt.Time.Equal(local) {
		t.Errorf("NewPlaydateTime changed the instant: %v != %v", pt.Time, local)
	}
}

func TestUserHasLocation(t *testing.T) {
	t.Parallel()

	lat, lon := 52.52, 13.405

	tests := []struct {
		name string
		user User
		want bool
	}{
		{name: "both set", user: User{Latitude: &lat, Longitude: &lon}, want: true},
		{name: "latitude only", user: User{Latitude: &lat}, want: false},
		{name: "longitude only", user: User{Longitude: &lon}, want: false},
		{name: "neither", user: User{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.user.HasLocation(); got != tt.want {
				t.Errorf("HasLocation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUserJSONNeverExposesPasswordHash(t *testing.T) {
	t.Parallel()

	user := User{
		ID:           1,
		Username:     "annika",
		PasswordHash: "$2a$10$secret",
	}

	data, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if _, ok := raw["password_hash"]; ok {
		t.Error("password_hash leaked into JSON output")
	}
	for _, v := range raw {
		if s, ok := v.(string); ok && s == user.PasswordHash {
			t.Error("bcrypt hash value leaked into JSON output")
		}
	}
}

func TestUserSummary(t *testing.T) {
	t.Parallel()

	user := User{ID: 42, Username: "bjorn", FirstName: "Bjorn", Email: "b@example.com"}
	summary := user.Summary()

	if summary.ID != 42 || summary.Username != "bjorn" {
		t.Errorf("Summary() = %+v, want ID=42 Username=bjorn", summary)
	}
}
