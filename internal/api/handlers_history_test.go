// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tomtom215/engagepredict/internal/history"
	"github.com/tomtom215/engagepredict/internal/models"
)

var historyBase = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// seedHistory stores n records for userID, one minute apart, oldest first.
func seedHistory(t *testing.T, ts *testServer, userID string, n int) []*history.Record {
	t.Helper()

	records := make([]*history.Record, n)
	for i := range n {
		rec := history.NewRecord(userID, models.Post{
			Caption:  "post",
			Platform: "tiktok",
		}, &models.EngagementResult{Score: 40 + i, Tier: models.TierLow, Source: models.SourceFallback}, []string{"tip"})
		rec.ID = userID + "-" + string(rune('a'+i))
		rec.CreatedAt = historyBase.Add(time.Duration(i) * time.Minute)
		if err := ts.store.Save(context.Background(), rec); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		records[i] = rec
	}
	return records
}

func historyRequest(method, path, userID string) *http.Request {
	req := httptest.NewRequest(method, path, http.NoBody)
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	return req
}

func TestListHistory(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, serverOptions{})
	seedHistory(t, ts, "alice", 3)
	seedHistory(t, ts, "bob", 1)

	tests := []struct {
		name       string
		user       string
		query      string
		wantStatus int
		wantIDs    []string
	}{
		{"newest first", "alice", "", http.StatusOK, []string{"alice-c", "alice-b", "alice-a"}},
		{"limit", "alice", "?limit=2", http.StatusOK, []string{"alice-c", "alice-b"}},
		{"other user", "bob", "", http.StatusOK, []string{"bob-a"}},
		{"no records", "carol", "", http.StatusOK, []string{}},
		{"zero limit", "alice", "?limit=0", http.StatusBadRequest, nil},
		{"non-numeric limit", "alice", "?limit=ten", http.StatusBadRequest, nil},
		{"anonymous", "", "", http.StatusUnauthorized, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := ts.do(t, historyRequest(http.MethodGet, "/api/v1/history"+tt.query, tt.user))
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantIDs == nil {
				return
			}

			env := decodeEnvelope(t, rec)
			var got []history.Record
			decodeData(t, env, &got)
			if got == nil {
				t.Fatal("data is null, want a list")
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d records, want %d", len(got), len(tt.wantIDs))
			}
			for i, r := range got {
				if r.ID != tt.wantIDs[i] {
					t.Errorf("records[%d] = %s, want %s", i, r.ID, tt.wantIDs[i])
				}
			}
			if env.Meta.Count == nil || *env.Meta.Count != len(tt.wantIDs) {
				t.Errorf("meta.count = %v", env.Meta.Count)
			}
		})
	}
}

func TestGetHistory(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, serverOptions{})
	seedHistory(t, ts, "alice", 1)

	tests := []struct {
		name       string
		user       string
		id         string
		wantStatus int
		wantCode   string
	}{
		{"owner", "alice", "alice-a", http.StatusOK, ""},
		{"other user", "bob", "alice-a", http.StatusForbidden, ErrCodeForbidden},
		{"unknown id", "alice", "missing", http.StatusNotFound, ErrCodeNotFound},
		{"anonymous", "", "alice-a", http.StatusUnauthorized, ErrCodeUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := ts.do(t, historyRequest(http.MethodGet, "/api/v1/history/"+tt.id, tt.user))
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			env := decodeEnvelope(t, rec)
			if tt.wantCode != "" {
				if env.Error == nil || env.Error.Code != tt.wantCode {
					t.Errorf("envelope = %s", rec.Body.String())
				}
				return
			}

			var got history.Record
			decodeData(t, env, &got)
			if got.ID != tt.id || got.UserID != "alice" || got.Platform != "tiktok" || got.CaptionLength != 4 {
				t.Errorf("record = %+v", got)
			}
		})
	}
}

func TestDeleteHistory(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, serverOptions{})
	seedHistory(t, ts, "alice", 2)

	if rec := ts.do(t, historyRequest(http.MethodDelete, "/api/v1/history/alice-a", "bob")); rec.Code != http.StatusForbidden {
		t.Fatalf("delete by other user status = %d, want 403", rec.Code)
	}

	rec := ts.do(t, historyRequest(http.MethodDelete, "/api/v1/history/alice-a", "alice"))
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Deleted bool   `json:"deleted"`
		ID      string `json:"id"`
	}
	decodeData(t, decodeEnvelope(t, rec), &body)
	if !body.Deleted || body.ID != "alice-a" {
		t.Errorf("body = %+v", body)
	}

	if rec := ts.do(t, historyRequest(http.MethodGet, "/api/v1/history/alice-a", "alice")); rec.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", rec.Code)
	}
	if rec := ts.do(t, historyRequest(http.MethodDelete, "/api/v1/history/alice-a", "alice")); rec.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", rec.Code)
	}

	var remaining []history.Record
	decodeData(t, decodeEnvelope(t, ts.do(t, historyRequest(http.MethodGet, "/api/v1/history", "alice"))), &remaining)
	if len(remaining) != 1 || remaining[0].ID != "alice-b" {
		t.Errorf("remaining = %+v", remaining)
	}
}

func TestHistory_Disabled(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, serverOptions{noHistory: true})
	rec := ts.do(t, historyRequest(http.MethodGet, "/api/v1/history", "alice"))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Error == nil || env.Error.Code != ErrCodeServiceUnavailable {
		t.Errorf("envelope = %s", rec.Body.String())
	}
}

func TestHistory_JWT(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, serverOptions{jwt: true})
	seedHistory(t, ts, "alice", 1)

	// The identity header is ignored when JWT is configured.
	if rec := ts.do(t, historyRequest(http.MethodGet, "/api/v1/history", "alice")); rec.Code != http.StatusUnauthorized {
		t.Fatalf("header-only status = %d, want 401", rec.Code)
	}

	req := historyRequest(http.MethodGet, "/api/v1/history/alice-a", "")
	req.Header.Set("Authorization", "Bearer "+ts.token(t, "alice"))
	if rec := ts.do(t, req); rec.Code != http.StatusOK {
		t.Fatalf("bearer status = %d: %s", rec.Code, rec.Body.String())
	}
}

func TestPredictThenHistory(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, serverOptions{})
	req := jsonRequest(t, http.MethodPost, "/api/v1/predict", map[string]any{"caption": "Morning run", "platform": "youtube"})
	req.Header.Set("X-User-ID", "dave")
	rec := ts.do(t, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("predict status = %d", rec.Code)
	}
	var pred predictData
	decodeData(t, decodeEnvelope(t, rec), &pred)

	// The recorder normally consumes the event; save it directly here.
	published := ts.publisher.published()
	if len(published) != 1 {
		t.Fatalf("published %d events", len(published))
	}
	if err := ts.store.Save(context.Background(), published[0]); err != nil {
		t.Fatal(err)
	}

	rec = ts.do(t, historyRequest(http.MethodGet, "/api/v1/history/"+pred.ID, "dave"))
	if rec.Code != http.StatusOK {
		t.Fatalf("history status = %d: %s", rec.Code, rec.Body.String())
	}
	var got history.Record
	decodeData(t, decodeEnvelope(t, rec), &got)
	if got.Score != pred.Score || got.Platform != "youtube" || len(got.Tips) != len(pred.Tips) {
		t.Errorf("record = %+v, prediction = %+v", got, pred)
	}
}
