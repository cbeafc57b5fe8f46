// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCompression_ClientWithoutGzip(t *testing.T) {
	payload := `{"status":"success","data":[]}`
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(payload))
	})

	wrapped := Compression(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sports", nil)
	rec := httptest.NewRecorder()

	wrapped(rec, req)

	if rec.Header().Get("Content-Encoding") != "" {
		t.Error("Expected no Content-Encoding for client without gzip support")
	}
	if rec.Body.String() != payload {
		t.Errorf("Expected identity body, got %q", rec.Body.String())
	}
}

func TestCompression_ClientWithGzip(t *testing.T) {
	payload := strings.Repeat(`{"sport_name":"Tennis","sport_type":"Both"},`, 50)
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(payload))
	})

	wrapped := Compression(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sports", nil)
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	rec := httptest.NewRecorder()

	wrapped(rec, req)

	if rec.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("Expected Content-Encoding gzip, got %q", rec.Header().Get("Content-Encoding"))
	}
	if !strings.Contains(rec.Header().Get("Vary"), "Accept-Encoding") {
		t.Error("Expected Vary: Accept-Encoding header")
	}

	// Body must decompress back to the original payload
	gz, err := gzip.NewReader(rec.Body)
	if err != nil {
		t.Fatalf("Failed to create gzip reader: %v", err)
	}
	defer gz.Close()

	decompressed, err := io.ReadAll(gz)
	if err != nil {
		t.Fatalf("Failed to decompress body: %v", err)
	}
	if string(decompressed) != payload {
		t.Error("Decompressed body does not match original payload")
	}

	// Compression should actually shrink a repetitive payload
	if rec.Body.Len() >= len(payload) {
		t.Errorf("Compressed size %d not smaller than original %d", rec.Body.Len(), len(payload))
	}
}

func TestCompression_PreservesStatusCode(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status":"error"}`))
	})

	wrapped := Compression(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/999", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	wrapped(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
	if rec.Header().Get("Content-Encoding") != "gzip" {
		t.Error("Expected gzip encoding for error responses too")
	}
}

func TestCompression_ConcurrentRequests(t *testing.T) {
	// Pooled writers must not leak state across requests
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(r.URL.Path))
	})

	wrapped := Compression(handler)

	done := make(chan struct{})
	for i := 0; i < 20; i++ {
		go func(n int) {
			defer func() { done <- struct{}{} }()

			req := httptest.NewRequest(http.MethodGet, "/path", nil)
			req.Header.Set("Accept-Encoding", "gzip")
			rec := httptest.NewRecorder()

			wrapped(rec, req)

			gz, err := gzip.NewReader(rec.Body)
			if err != nil {
				t.Errorf("goroutine %d: gzip reader: %v", n, err)
				return
			}
			body, err := io.ReadAll(gz)
			_ = gz.Close()
			if err != nil {
				t.Errorf("goroutine %d: decompress: %v", n, err)
				return
			}
			if string(body) != "/path" {
				t.Errorf("goroutine %d: body = %q", n, body)
			}
		}(i)
	}
	for i := 0; i < 20; i++ {
		<-done
	}
}
