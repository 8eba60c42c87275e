// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

package database

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/tomtom215/courtside/internal/config"
	"github.com/tomtom215/courtside/internal/dashboard"
	"github.com/tomtom215/courtside/internal/database/query"
	"github.com/tomtom215/courtside/internal/models"
)

// matchesFilter evaluates the filter predicates directly on a row.
func matchesFilter(r models.CompetitorRanking, f query.CompetitorFilter) bool {
	if f.MinRank > 0 && r.Rank < f.MinRank {
		return false
	}
	if f.MaxRank > 0 && r.Rank > f.MaxRank {
		return false
	}
	if f.MinPoints > 0 && r.Points < f.MinPoints {
		return false
	}
	return true
}

func sampleCountries() []string {
	seen := map[string]bool{}
	var out []string
	for _, c := range sampleCompetitors {
		if !seen[c.Country] {
			seen[c.Country] = true
			out = append(out, c.Country)
		}
	}
	sort.Strings(out)
	return out
}

func TestSummaryMetrics(t *testing.T) {
	db := setupTestDB(t)

	got, err := db.SummaryMetrics(context.Background())
	if err != nil {
		t.Fatalf("SummaryMetrics() error = %v", err)
	}

	want := models.SummaryMetrics{
		Competitors: int64(len(sampleCompetitors)),
		Countries:   int64(len(sampleCountries())),
		MaxPoints:   11830,
	}
	if got != want {
		t.Errorf("SummaryMetrics() = %+v, want %+v", got, want)
	}
}

func TestSummaryMetrics_EmptyStore(t *testing.T) {
	db := setupTestDBWithRows(t, nil)

	got, err := db.SummaryMetrics(context.Background())
	if err != nil {
		t.Fatalf("SummaryMetrics() error = %v", err)
	}
	if got != (models.SummaryMetrics{}) {
		t.Errorf("SummaryMetrics() = %+v, want zero values", got)
	}
}

func TestCompetitors_Example(t *testing.T) {
	db := setupTestDBWithRows(t, []models.CompetitorRanking{
		{CompetitorID: "c3", Name: "Third", Country: "ESP", Rank: 3, Points: 9000},
		{CompetitorID: "c2", Name: "Second", Country: "USA", Rank: 2, Points: 11000},
		{CompetitorID: "c1", Name: "First", Country: "USA", Rank: 1, Points: 12000},
	})

	rows, err := db.Competitors(context.Background(), query.CompetitorFilter{MinRank: 1, MaxRank: 2, MinPoints: 10000})
	if err != nil {
		t.Fatalf("Competitors() error = %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2: %+v", len(rows), rows)
	}
	if rows[0].Rank != 1 || rows[0].Points != 12000 || rows[1].Rank != 2 || rows[1].Points != 11000 {
		t.Errorf("rows = %+v, want rank 1 then rank 2", rows)
	}
}

func TestCompetitors_RankRangesMatchPredicate(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	for _, minRank := range []int{0, 1, 5, 20, 26, 50} {
		for _, maxRank := range []int{0, 2, 10, 25, 60, 100} {
			for _, minPoints := range []int{0, 1000, 3000} {
				f := query.CompetitorFilter{MinRank: minRank, MaxRank: maxRank, MinPoints: minPoints}
				t.Run(fmt.Sprintf("rank_%d_%d_points_%d", minRank, maxRank, minPoints), func(t *testing.T) {
					rows, err := db.Competitors(ctx, f)
					if err != nil {
						t.Fatalf("Competitors() error = %v", err)
					}

					want := 0
					for _, r := range sampleCompetitors {
						if matchesFilter(r, f) {
							want++
						}
					}
					if len(rows) != want {
						t.Errorf("got %d rows, want %d", len(rows), want)
					}
					for i := 1; i < len(rows); i++ {
						if rows[i-1].Rank > rows[i].Rank {
							t.Errorf("rows not sorted by rank at %d: %d > %d", i, rows[i-1].Rank, rows[i].Rank)
						}
					}
					for _, r := range rows {
						if !matchesFilter(r, f) {
							t.Errorf("row %+v does not satisfy %+v", r, f)
						}
					}
				})
			}
		}
	}
}

func TestCompetitors_NameAndCountry(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		filter query.CompetitorFilter
		want   []string
	}{
		{"name case insensitive", query.CompetitorFilter{Name: "ALCA"}, []string{"Alcaraz, Carlos"}},
		{"name substring", query.CompetitorFilter{Name: "de min"}, []string{"de Minaur, Alex"}},
		{"country", query.CompetitorFilter{Country: "Italy"}, []string{"Sinner, Jannik", "Musetti, Lorenzo", "Berrettini, Matteo"}},
		{"country All ignored", query.CompetitorFilter{Country: "All", MaxRank: 2}, []string{"Sinner, Jannik", "Alcaraz, Carlos"}},
		{"country and points", query.CompetitorFilter{Country: "USA", MinPoints: 3000}, []string{"Fritz, Taylor", "Paul, Tommy"}},
		{"no match", query.CompetitorFilter{Name: "federer"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := db.Competitors(ctx, tt.filter)
			if err != nil {
				t.Fatalf("Competitors() error = %v", err)
			}
			if len(rows) != len(tt.want) {
				t.Fatalf("got %d rows, want %d: %+v", len(rows), len(tt.want), rows)
			}
			for i, name := range tt.want {
				if rows[i].Name != name {
					t.Errorf("rows[%d].Name = %q, want %q", i, rows[i].Name, name)
				}
			}
		})
	}
}

func TestCompetitors_NonASCIINamesMatchMemoryFilter(t *testing.T) {
	rows := []models.CompetitorRanking{
		{CompetitorID: "c1", Name: "Alcaraz, Carlos", Country: "Spain", Rank: 1, Points: 11000},
		{CompetitorID: "c2", Name: "Čilić, Marin", Country: "Croatia", Rank: 2, Points: 4000},
		{CompetitorID: "c3", Name: "Ôlafsson, Ásgeir", Country: "Iceland", Rank: 3, Points: 1200},
	}
	names := []string{"ČILIĆ", "čilić", "ôlafsson", "ÁSGEIR", "ić, m", "ALCA", "zz"}

	for _, driver := range []string{config.DriverSQLite, config.DriverDuckDB} {
		t.Run(driver, func(t *testing.T) {
			db := setupDriverDBWithRows(t, driver, rows)
			ctx := context.Background()

			for _, name := range names {
				f := query.CompetitorFilter{Name: name}
				got, err := db.Competitors(ctx, f)
				if err != nil {
					t.Fatalf("Competitors(%q) error = %v", name, err)
				}
				want := dashboard.FilterRows(rows, f)
				if len(got) != len(want) {
					t.Errorf("name %q: sql returned %d rows, memory filter %d", name, len(got), len(want))
					continue
				}
				for i := range want {
					if got[i].Name != want[i].Name {
						t.Errorf("name %q: rows[%d] = %q, want %q", name, i, got[i].Name, want[i].Name)
					}
				}
			}
		})
	}
}

func TestAllCompetitors(t *testing.T) {
	db := setupTestDB(t)

	rows, err := db.AllCompetitors(context.Background())
	if err != nil {
		t.Fatalf("AllCompetitors() error = %v", err)
	}
	if len(rows) != len(sampleCompetitors) {
		t.Fatalf("got %d rows, want %d", len(rows), len(sampleCompetitors))
	}
	if rows[0] != sampleCompetitors[0] {
		t.Errorf("rows[0] = %+v, want %+v", rows[0], sampleCompetitors[0])
	}
}

func TestCountries(t *testing.T) {
	db := setupTestDB(t)

	got, err := db.Countries(context.Background())
	if err != nil {
		t.Fatalf("Countries() error = %v", err)
	}
	want := sampleCountries()
	if len(got) != len(want) {
		t.Fatalf("got %d countries, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("countries[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCompetitions(t *testing.T) {
	db := setupTestDB(t)

	got, err := db.Competitions(context.Background())
	if err != nil {
		t.Fatalf("Competitions() error = %v", err)
	}
	if len(got) != len(sampleCompetitions) {
		t.Fatalf("got %d competitions, want %d", len(got), len(sampleCompetitions))
	}

	if !sort.SliceIsSorted(got, func(i, j int) bool { return got[i].Name < got[j].Name }) {
		t.Errorf("competitions not ordered by name: %+v", got)
	}

	byName := map[string]models.Competition{}
	for _, c := range got {
		byName[c.Name] = c
	}
	if c := byName["Australian Open Men Singles"]; c.CategoryName != "ATP" || c.Gender != "men" || c.Type != "singles" {
		t.Errorf("Australian Open Men Singles = %+v", c)
	}
	if c, ok := byName["US Open Mixed Doubles"]; !ok || c.CategoryName != "" {
		t.Errorf("competition without category = %+v (present %v)", c, ok)
	}
}

func TestSQLiteDriver(t *testing.T) {
	db := newTestDB(t, testOptions{driver: config.DriverSQLite, seed: true, cache: true})
	ctx := context.Background()

	summary, err := db.SummaryMetrics(ctx)
	if err != nil {
		t.Fatalf("SummaryMetrics() error = %v", err)
	}
	if summary.Competitors != int64(len(sampleCompetitors)) || summary.MaxPoints != 11830 {
		t.Errorf("SummaryMetrics() = %+v", summary)
	}

	f := query.CompetitorFilter{MinRank: 1, MaxRank: 20, Name: "SIN", MinPoints: 1000}
	rows, err := db.Competitors(ctx, f)
	if err != nil {
		t.Fatalf("Competitors() error = %v", err)
	}
	if len(rows) != 1 || rows[0].Name != "Sinner, Jannik" || rows[0].CountryCode != "ITA" {
		t.Errorf("Competitors() = %+v", rows)
	}

	competitions, err := db.Competitions(ctx)
	if err != nil {
		t.Fatalf("Competitions() error = %v", err)
	}
	if len(competitions) != len(sampleCompetitions) {
		t.Errorf("got %d competitions", len(competitions))
	}
}
