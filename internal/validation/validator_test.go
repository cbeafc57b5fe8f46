// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

package validation

import (
	"strings"
	"testing"
)

// ===================================================================================================
// Singleton Validator Tests
// ===================================================================================================

func TestGetValidator_Singleton(t *testing.T) {
	// Test that GetValidator returns the same instance
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}

	if v1 == nil {
		t.Error("GetValidator() should not return nil")
	}
}

// ===================================================================================================
// ValidateStruct Tests
// ===================================================================================================

// signupForm mirrors the shape of a user registration request.
type signupForm struct {
	Username string `validate:"required,min=3,max=32,alphanum"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8,max=72"`
}

func TestValidateStruct_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input signupForm
	}{
		{
			name: "all valid fields",
			input: signupForm{
				Username: "alice42",
				Email:    "alice@example.com",
				Password: "correct-horse-battery",
			},
		},
		{
			name: "minimum lengths",
			input: signupForm{
				Username: "bob",
				Email:    "b@e.co",
				Password: "12345678",
			},
		},
		{
			name: "maximum username length",
			input: signupForm{
				Username: strings.Repeat("a", 32),
				Email:    "long@example.com",
				Password: "12345678",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			if err != nil {
				t.Errorf("ValidateStruct() returned unexpected error: %v", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		input     signupForm
		wantField string
		wantTag   string
	}{
		{
			name: "missing username",
			input: signupForm{
				Email:    "alice@example.com",
				Password: "12345678",
			},
			wantField: "Username",
			wantTag:   "required",
		},
		{
			name: "username too short",
			input: signupForm{
				Username: "ab",
				Email:    "alice@example.com",
				Password: "12345678",
			},
			wantField: "Username",
			wantTag:   "min",
		},
		{
			name: "username with symbols",
			input: signupForm{
				Username: "alice!42",
				Email:    "alice@example.com",
				Password: "12345678",
			},
			wantField: "Username",
			wantTag:   "alphanum",
		},
		{
			name: "invalid email",
			input: signupForm{
				Username: "alice42",
				Email:    "not-an-email",
				Password: "12345678",
			},
			wantField: "Email",
			wantTag:   "email",
		},
		{
			name: "password too short",
			input: signupForm{
				Username: "alice42",
				Email:    "alice@example.com",
				Password: "1234567",
			},
			wantField: "Password",
			wantTag:   "min",
		},
		{
			name: "password over bcrypt limit",
			input: signupForm{
				Username: "alice42",
				Email:    "alice@example.com",
				Password: strings.Repeat("x", 73),
			},
			wantField: "Password",
			wantTag:   "max",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			if err == nil {
				t.Fatal("ValidateStruct() should have returned an error")
			}

			errs := err.Errors()
			if len(errs) == 0 {
				t.Fatal("ValidationErrors should contain at least one error")
			}

			found := false
			for _, e := range errs {
				if e.Field() == tt.wantField && e.Tag() == tt.wantTag {
					found = true
					break
				}
			}

			if !found {
				t.Errorf("Expected error on field %s with tag %s, got: %v", tt.wantField, tt.wantTag, errs)
			}
		})
	}
}

// ===================================================================================================
// ToAPIError Tests
// ===================================================================================================

func TestToAPIError_SingleError(t *testing.T) {
	input := signupForm{
		Username: "alice42",
		Email:    "alice@example.com",
		Password: "short",
	}

	err := ValidateStruct(&input)
	if err == nil {
		t.Fatal("Expected validation error")
	}

	apiErr := err.ToAPIError()

	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Expected code VALIDATION_ERROR, got %s", apiErr.Code)
	}

	if apiErr.Message == "" {
		t.Error("Expected non-empty message")
	}

	// Should contain field name in details
	if apiErr.Details == nil {
		t.Error("Expected details to be set")
	}
}

func TestToAPIError_MultipleErrors(t *testing.T) {
	input := signupForm{
		Username: "a",
		Email:    "broken",
		Password: "",
	}

	err := ValidateStruct(&input)
	if err == nil {
		t.Fatal("Expected validation error")
	}

	apiErr := err.ToAPIError()

	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Expected code VALIDATION_ERROR, got %s", apiErr.Code)
	}

	// Details should contain field information
	if apiErr.Details == nil {
		t.Error("Expected details to contain field information")
	}

	if _, ok := apiErr.Details["fields"]; !ok {
		t.Error("Expected details to contain 'fields' key")
	}
}

// ===================================================================================================
// Oneof Validation Tests - Sport Type
// ===================================================================================================

type sportTypeStruct struct {
	Type string `validate:"omitempty,oneof=Single Team Both"`
}

func TestOneofValidation_Valid(t *testing.T) {
	tests := []struct {
		name     string
		typeName string
	}{
		{"empty", ""},
		{"Single", "Single"},
		{"Team", "Team"},
		{"Both", "Both"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := sportTypeStruct{Type: tt.typeName}
			err := ValidateStruct(&input)
			if err != nil {
				t.Errorf("ValidateStruct() returned unexpected error for type %q: %v", tt.typeName, err)
			}
		})
	}
}

func TestOneofValidation_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		typeName string
	}{
		{"invalid type", "Tennis"},
		{"partial match", "Singles"},
		{"case sensitive", "single"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := sportTypeStruct{Type: tt.typeName}
			err := ValidateStruct(&input)
			if err == nil {
				t.Errorf("ValidateStruct() should have returned error for type %q", tt.typeName)
			}
		})
	}
}

// ===================================================================================================
// WithRequiredStructEnabled Tests
// ===================================================================================================

type nestedStruct struct {
	Inner innerStruct `validate:"required"`
}

type innerStruct struct {
	Value string `validate:"required"`
}

func TestNestedStructValidation(t *testing.T) {
	// Valid nested struct
	valid := nestedStruct{
		Inner: innerStruct{Value: "test"},
	}

	err := ValidateStruct(&valid)
	if err != nil {
		t.Errorf("ValidateStruct() returned unexpected error for valid nested struct: %v", err)
	}

	// Invalid - missing inner value
	invalid := nestedStruct{
		Inner: innerStruct{Value: ""},
	}

	err = ValidateStruct(&invalid)
	if err == nil {
		t.Error("ValidateStruct() should have returned error for invalid nested struct")
	}
}

// ===================================================================================================
// Latitude/Longitude Validation Tests
// ===================================================================================================

// coordinatesStruct mirrors the optional location pair on users: nil
// pointers are skipped, set values are range-checked.
type coordinatesStruct struct {
	Lat *float64 `validate:"omitempty,latitude"`
	Lon *float64 `validate:"omitempty,longitude"`
}

func floatPtr(f float64) *float64 { return &f }

func TestCoordinateValidation_Valid(t *testing.T) {
	tests := []struct {
		name string
		lat  *float64
		lon  *float64
	}{
		{"both nil", nil, nil},
		{"origin", floatPtr(0), floatPtr(0)},
		{"amsterdam", floatPtr(52.3676), floatPtr(4.9041)},
		{"sydney", floatPtr(-33.8688), floatPtr(151.2093)},
		{"max lat", floatPtr(90), floatPtr(0)},
		{"min lat", floatPtr(-90), floatPtr(0)},
		{"max lon", floatPtr(0), floatPtr(180)},
		{"min lon", floatPtr(0), floatPtr(-180)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := coordinatesStruct{Lat: tt.lat, Lon: tt.lon}
			err := ValidateStruct(&input)
			if err != nil {
				t.Errorf("ValidateStruct() returned unexpected error for lat=%v, lon=%v: %v", tt.lat, tt.lon, err)
			}
		})
	}
}

func TestCoordinateValidation_Invalid(t *testing.T) {
	tests := []struct {
		name string
		lat  *float64
		lon  *float64
	}{
		{"lat too high", floatPtr(91), floatPtr(0)},
		{"lat too low", floatPtr(-91), floatPtr(0)},
		{"lon too high", floatPtr(0), floatPtr(181)},
		{"lon too low", floatPtr(0), floatPtr(-181)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := coordinatesStruct{Lat: tt.lat, Lon: tt.lon}
			err := ValidateStruct(&input)
			if err == nil {
				t.Errorf("ValidateStruct() should have returned error for lat=%v, lon=%v", tt.lat, tt.lon)
			}
		})
	}
}

// ===================================================================================================
// Integer Range Validation Tests
// ===================================================================================================

// rangeStruct mirrors playdate capacity and nearby-radius parameters.
type rangeStruct struct {
	MaxParticipants int     `validate:"omitempty,gte=2,lte=1000"`
	Radius          float64 `validate:"gte=0,lte=180"`
}

func TestRangeValidation_Valid(t *testing.T) {
	tests := []struct {
		name            string
		maxParticipants int
		radius          float64
	}{
		{"zero values", 0, 0},
		{"typical values", 10, 10},
		{"max capacity", 1000, 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := rangeStruct{MaxParticipants: tt.maxParticipants, Radius: tt.radius}
			err := ValidateStruct(&input)
			if err != nil {
				t.Errorf("ValidateStruct() returned unexpected error: %v", err)
			}
		})
	}
}

func TestRangeValidation_Invalid(t *testing.T) {
	tests := []struct {
		name            string
		maxParticipants int
		radius          float64
		wantField       string
	}{
		{"capacity of one", 1, 10, "MaxParticipants"},
		{"capacity too high", 5000, 10, "MaxParticipants"},
		{"negative radius", 10, -1, "Radius"},
		{"radius too wide", 10, 181, "Radius"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := rangeStruct{MaxParticipants: tt.maxParticipants, Radius: tt.radius}
			err := ValidateStruct(&input)
			if err == nil {
				t.Errorf("ValidateStruct() should have returned error for capacity=%d, radius=%f", tt.maxParticipants, tt.radius)
			}
		})
	}
}

// ===================================================================================================
// Error Message Translation Tests
// ===================================================================================================

func TestErrorMessages(t *testing.T) {
	input := signupForm{
		Username: "",
		Email:    "alice@example.com",
		Password: "short",
	}

	err := ValidateStruct(&input)
	if err == nil {
		t.Fatal("Expected validation error")
	}

	// Error message should be human-readable
	msg := err.Error()
	if msg == "" {
		t.Error("Error message should not be empty")
	}

	// Should contain field name
	if !strings.Contains(msg, "Username") && !strings.Contains(msg, "Password") {
		t.Errorf("Error message should reference failed field: %s", msg)
	}

	// min on a string reports characters, not a bare number
	if !strings.Contains(msg, "characters") {
		t.Errorf("Expected string min message to mention characters: %s", msg)
	}
}
