// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/courtside/internal/cache"
	"github.com/tomtom215/courtside/internal/config"
	"github.com/tomtom215/courtside/internal/dashboard"
	"github.com/tomtom215/courtside/internal/database"
	"github.com/tomtom215/courtside/internal/database/query"
	"github.com/tomtom215/courtside/internal/models"
)

// fakeStore is an in-memory Store. err, when set, fails every data call.
type fakeStore struct {
	mu sync.Mutex

	rows         []models.CompetitorRanking
	competitions []models.Competition
	summary      models.SummaryMetrics

	err     error
	pingErr error
	breaker string

	cacheEnabled bool
	cacheStats   cache.Stats
	cacheEntries int

	competitorsCalls int
	allCalls         int
	lastFilter       query.CompetitorFilter
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		rows: []models.CompetitorRanking{
			{CompetitorID: "sr:competitor:1", Name: "Ann Smith", Country: "USA", CountryCode: "USA", Rank: 1, Points: 12000, Movement: 0, CompetitionsPlayed: 18},
			{CompetitorID: "sr:competitor:2", Name: "Bea Jones", Country: "USA", CountryCode: "USA", Rank: 2, Points: 11000, Movement: -1, CompetitionsPlayed: 20},
			{CompetitorID: "sr:competitor:3", Name: "Carlos Ruiz", Country: "ESP", CountryCode: "ESP", Rank: 3, Points: 9000, Movement: 1, CompetitionsPlayed: 21},
			{CompetitorID: "sr:competitor:4", Name: "Dario Conti", Country: "ITA", CountryCode: "ITA", Rank: 4, Points: 8500, Movement: 0, CompetitionsPlayed: 19},
		},
		competitions: []models.Competition{
			{Name: "Wimbledon", Gender: "men", Type: "singles", CategoryName: "ATP"},
			{Name: "Australian Open", Gender: "women", Type: "singles", CategoryName: "WTA"},
		},
		summary: models.SummaryMetrics{Competitors: 4, Countries: 3, MaxPoints: 12000},
		breaker: database.BreakerClosed,
	}
}

func (s *fakeStore) Ping(context.Context) error { return s.pingErr }

func (s *fakeStore) Driver() string { return config.DriverSQLite }

func (s *fakeStore) BreakerState() string { return s.breaker }

func (s *fakeStore) CacheStats() (cache.Stats, bool) { return s.cacheStats, s.cacheEnabled }

func (s *fakeStore) InvalidateCache() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.cacheEntries
	s.cacheEntries = 0
	return n
}

func (s *fakeStore) SummaryMetrics(context.Context) (models.SummaryMetrics, error) {
	if s.err != nil {
		return models.SummaryMetrics{}, s.err
	}
	return s.summary, nil
}

func (s *fakeStore) Competitors(_ context.Context, f query.CompetitorFilter) ([]models.CompetitorRanking, error) {
	s.mu.Lock()
	s.competitorsCalls++
	s.lastFilter = f
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return dashboard.FilterRows(s.rows, f), nil
}

func (s *fakeStore) AllCompetitors(context.Context) ([]models.CompetitorRanking, error) {
	s.mu.Lock()
	s.allCalls++
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.rows, nil
}

func (s *fakeStore) Countries(context.Context) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	countries := make([]string, len(s.rows))
	for i, r := range s.rows {
		countries[i] = r.Country
	}
	return countries, nil
}

func (s *fakeStore) Competitions(context.Context) ([]models.Competition, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.competitions, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Dashboard: config.DashboardConfig{
			FilterMode:       config.FilterModeSQL,
			LeaderboardSize:  10,
			DefaultMinRank:   1,
			DefaultMaxRank:   50,
			DefaultMinPoints: 1000,
		},
	}
}

// testEnvelope mirrors models.APIResponse with the payload left raw.
type testEnvelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) testEnvelope {
	t.Helper()
	var env testEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return env
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) testEnvelope {
	t.Helper()
	env := decodeEnvelope(t, rec)
	if env.Status != "success" {
		t.Fatalf("status = %q, error = %+v", env.Status, env.Error)
	}
	if err := json.Unmarshal(env.Data, v); err != nil {
		t.Fatalf("decode data %s: %v", env.Data, err)
	}
	return env
}

func serve(h http.HandlerFunc, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}
