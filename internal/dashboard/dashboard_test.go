// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

package dashboard

import (
	"reflect"
	"testing"

	"github.com/tomtom215/courtside/internal/database/query"
	"github.com/tomtom215/courtside/internal/models"
)

// exampleRows is the three competitor table used throughout the tests.
func exampleRows() []models.CompetitorRanking {
	return []models.CompetitorRanking{
		{CompetitorID: "c3", Name: "Carlos Ruiz", Country: "ESP", Rank: 3, Points: 9000, Movement: 1},
		{CompetitorID: "c1", Name: "Ann Smith", Country: "USA", Rank: 1, Points: 12000, Movement: 0},
		{CompetitorID: "c2", Name: "Bea Jones", Country: "USA", Rank: 2, Points: 11000, Movement: -1},
	}
}

func ranks(rows []models.CompetitorRanking) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = r.Rank
	}
	return out
}

func TestSummarizeRows(t *testing.T) {
	t.Parallel()

	got := SummarizeRows(exampleRows())
	want := models.SummaryMetrics{Competitors: 3, Countries: 2, MaxPoints: 12000}
	if got != want {
		t.Errorf("SummarizeRows() = %+v, want %+v", got, want)
	}

	if got := SummarizeRows(nil); got != (models.SummaryMetrics{}) {
		t.Errorf("SummarizeRows(nil) = %+v, want zero", got)
	}
}

func TestFilterRows_Example(t *testing.T) {
	t.Parallel()

	got := FilterRows(exampleRows(), query.CompetitorFilter{MinRank: 1, MaxRank: 2, MinPoints: 10000})
	if !reflect.DeepEqual(ranks(got), []int{1, 2}) {
		t.Errorf("FilterRows() ranks = %v, want [1 2]", ranks(got))
	}
	if got[0].Points != 12000 || got[1].Points != 11000 {
		t.Errorf("FilterRows() = %+v", got)
	}
}

func TestFilterRows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		filter query.CompetitorFilter
		want   []int
	}{
		{"no filter sorts by rank", query.CompetitorFilter{}, []int{1, 2, 3}},
		{"name case insensitive", query.CompetitorFilter{Name: "  JONES "}, []int{2}},
		{"country", query.CompetitorFilter{Country: "USA"}, []int{1, 2}},
		{"country All", query.CompetitorFilter{Country: "All"}, []int{1, 2, 3}},
		{"country exact match", query.CompetitorFilter{Country: "usa"}, []int{}},
		{"min points", query.CompetitorFilter{MinPoints: 11000}, []int{1, 2}},
		{"min rank only", query.CompetitorFilter{MinRank: 2}, []int{2, 3}},
		{"inverted range", query.CompetitorFilter{MinRank: 3, MaxRank: 1}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ranks(FilterRows(exampleRows(), tt.filter))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterRows(%+v) = %v, want %v", tt.filter, got, tt.want)
			}
		})
	}
}

func TestFilterRows_RankRangeCount(t *testing.T) {
	t.Parallel()

	rows := make([]models.CompetitorRanking, 0, 60)
	for i := 1; i <= 60; i++ {
		rows = append(rows, models.CompetitorRanking{Rank: i, Points: 6000 - i*90})
	}

	for minRank := 0; minRank <= 60; minRank += 7 {
		for maxRank := 0; maxRank <= 60; maxRank += 9 {
			for _, minPoints := range []int{0, 1000, 4000} {
				f := query.CompetitorFilter{MinRank: minRank, MaxRank: maxRank, MinPoints: minPoints}
				want := 0
				for _, r := range rows {
					if (minRank <= 0 || r.Rank >= minRank) && (maxRank <= 0 || r.Rank <= maxRank) && r.Points >= minPoints {
						want++
					}
				}
				if got := len(FilterRows(rows, f)); got != want {
					t.Errorf("FilterRows(%+v) returned %d rows, want %d", f, got, want)
				}
			}
		}
	}
}

func TestFilterRows_DoesNotModifyInput(t *testing.T) {
	t.Parallel()

	in := exampleRows()
	before := ranks(in)
	FilterRows(in, query.CompetitorFilter{})
	SortByRank(in)
	TopByPoints(in, 2)
	if !reflect.DeepEqual(ranks(in), before) {
		t.Errorf("input reordered: %v, want %v", ranks(in), before)
	}
}

func TestSortByRank_Stable(t *testing.T) {
	t.Parallel()

	rows := []models.CompetitorRanking{
		{Name: "b", Rank: 2}, {Name: "a", Rank: 1}, {Name: "c", Rank: 2}, {Name: "d", Rank: 1},
	}
	got := SortByRank(rows)
	names := []string{got[0].Name, got[1].Name, got[2].Name, got[3].Name}
	if !reflect.DeepEqual(names, []string{"a", "d", "b", "c"}) {
		t.Errorf("SortByRank() order = %v", names)
	}
}

func TestDetail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		rows      []models.CompetitorRanking
		selection string
		wantFound bool
		wantMsg   string
		wantRank  int
	}{
		{"empty table", nil, "Ann Smith", false, MsgNoSelection, 0},
		{"empty table no selection", []models.CompetitorRanking{}, "", false, MsgNoSelection, 0},
		{"blank selection", exampleRows(), "   ", false, MsgNoSelection, 0},
		{"found", exampleRows(), "Bea Jones", true, "", 2},
		{"found trimmed", exampleRows(), " Ann Smith ", true, "", 1},
		{"not found", exampleRows(), "Nobody", false, MsgNotFound, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Detail(tt.rows, tt.selection)
			if got.Found != tt.wantFound || got.Message != tt.wantMsg {
				t.Fatalf("Detail() = %+v, want found=%v message=%q", got, tt.wantFound, tt.wantMsg)
			}
			if tt.wantFound && (got.Competitor == nil || got.Competitor.Rank != tt.wantRank) {
				t.Errorf("Detail().Competitor = %+v, want rank %d", got.Competitor, tt.wantRank)
			}
			if !tt.wantFound && got.Competitor != nil {
				t.Errorf("Detail().Competitor = %+v, want nil", got.Competitor)
			}
		})
	}
}

func TestDetail_FirstMatchWins(t *testing.T) {
	t.Parallel()

	rows := []models.CompetitorRanking{
		{Name: "Twin", Rank: 7},
		{Name: "Twin", Rank: 3},
	}
	got := Detail(rows, "Twin")
	if !got.Found || got.Competitor.Rank != 7 {
		t.Errorf("Detail() = %+v, want the first row", got.Competitor)
	}

	got.Competitor.Rank = 99
	if rows[0].Rank != 7 {
		t.Error("Detail() returned a pointer into the input")
	}
}

func TestAggregateByCountry(t *testing.T) {
	t.Parallel()

	got := AggregateByCountry(exampleRows())
	want := []models.CountryStat{
		{Country: "USA", Competitors: 2, AvgPoints: 11500},
		{Country: "ESP", Competitors: 1, AvgPoints: 9000},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AggregateByCountry() = %+v, want %+v", got, want)
	}
}

func TestAggregateByCountry_RoundingAndTies(t *testing.T) {
	t.Parallel()

	rows := []models.CompetitorRanking{
		{Country: "ITA", Points: 1000},
		{Country: "ITA", Points: 1001},
		{Country: "ITA", Points: 1001},
		{Country: "FRA", Points: 10},
		{Country: "ARG", Points: 5},
		{Country: "", Points: 1},
	}
	got := AggregateByCountry(rows)

	if got[0].Country != "ITA" || got[0].AvgPoints != 1000.67 {
		t.Errorf("got[0] = %+v, want ITA with avg 1000.67", got[0])
	}
	order := []string{got[1].Country, got[2].Country, got[3].Country}
	if !reflect.DeepEqual(order, []string{"ARG", "FRA", UnknownCountry}) {
		t.Errorf("tie order = %v, want alphabetical", order)
	}
}

func TestAggregateByCountry_CountsPartitionRows(t *testing.T) {
	t.Parallel()

	countries := []string{"USA", "ESP", "ITA", "", "FRA", "USA", "ITA", "USA"}
	for n := 0; n <= 40; n += 5 {
		rows := make([]models.CompetitorRanking, n)
		for i := range rows {
			rows[i] = models.CompetitorRanking{Rank: i + 1, Points: i * 37, Country: countries[i%len(countries)]}
		}
		total := 0
		for _, s := range AggregateByCountry(rows) {
			total += s.Competitors
		}
		if total != n {
			t.Errorf("counts sum to %d, want %d", total, n)
		}
	}
}

func TestLeaderboards_TopPointsExample(t *testing.T) {
	t.Parallel()

	got := TopByPoints(exampleRows(), 2)
	if !reflect.DeepEqual(ranks(got), []int{1, 2}) {
		t.Errorf("TopByPoints(2) ranks = %v, want [1 2]", ranks(got))
	}
	if got[0].Points != 12000 || got[1].Points != 11000 {
		t.Errorf("TopByPoints(2) = %+v", got)
	}
}

func TestLeaderboards(t *testing.T) {
	t.Parallel()

	rows := []models.CompetitorRanking{
		{Rank: 4, Points: 500, Movement: 0},
		{Rank: 1, Points: 900, Movement: 2},
		{Rank: 3, Points: 700, Movement: 0},
		{Rank: 2, Points: 700, Movement: -1},
	}

	tests := []struct {
		name string
		got  []models.CompetitorRanking
		want []int
	}{
		{"top by rank", TopByRank(rows, 3), []int{1, 2, 3}},
		{"top by points ties by rank", TopByPoints(rows, 0), []int{1, 2, 3, 4}},
		{"stable rank", StableRank(rows, 10), []int{3, 4}},
		{"stable rank limited", StableRank(rows, 1), []int{3}},
		{"n larger than rows", TopByRank(rows, 99), []int{1, 2, 3, 4}},
		{"negative n", TopByRank(rows, -1), []int{1, 2, 3, 4}},
		{"empty input", TopByPoints(nil, 10), []int{}},
	}
	for _, tt := range tests {
		if !reflect.DeepEqual(ranks(tt.got), tt.want) {
			t.Errorf("%s: ranks = %v, want %v", tt.name, ranks(tt.got), tt.want)
		}
	}

	boards := Leaderboards(rows, DefaultLeaderboardSize)
	keys := []string{boards[0].Key, boards[1].Key, boards[2].Key}
	if !reflect.DeepEqual(keys, []string{models.LeaderboardTopRanked, models.LeaderboardTopPoints, models.LeaderboardStable}) {
		t.Errorf("Leaderboards() keys = %v", keys)
	}
}

func TestLeaderboardByKey(t *testing.T) {
	t.Parallel()

	board, ok := LeaderboardByKey(exampleRows(), models.LeaderboardStable, 10)
	if !ok || board.Title != TitleStable || len(board.Rows) != 1 || board.Rows[0].Rank != 1 {
		t.Errorf("LeaderboardByKey(stable) = %+v, %v", board, ok)
	}
	if _, ok := LeaderboardByKey(exampleRows(), "worst", 10); ok {
		t.Error("LeaderboardByKey(unknown) ok = true")
	}
}

func TestCountryOptions(t *testing.T) {
	t.Parallel()

	got := CountryOptions([]string{"USA", "Spain", "", "USA", "All", " Italy "})
	want := []string{"All", "Italy", "Spain", "USA"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CountryOptions() = %v, want %v", got, want)
	}
	if got := CountryOptions(nil); !reflect.DeepEqual(got, []string{"All"}) {
		t.Errorf("CountryOptions(nil) = %v", got)
	}
}

func TestPages(t *testing.T) {
	t.Parallel()

	pages := Pages()
	if len(pages) != 4 {
		t.Fatalf("len(Pages()) = %d, want 4", len(pages))
	}
	titles := []string{pages[0].Title, pages[1].Title, pages[2].Title, pages[3].Title}
	if !reflect.DeepEqual(titles, []string{"Dashboard", "Competitors", "Country Insights", "Leaderboard"}) {
		t.Errorf("titles = %v", titles)
	}
}

func TestSortCompetitions(t *testing.T) {
	t.Parallel()

	in := []models.Competition{{Name: "Wimbledon"}, {Name: "Australian Open"}, {Name: "Roland Garros"}}
	got := SortCompetitions(in)
	if got[0].Name != "Australian Open" || got[2].Name != "Wimbledon" {
		t.Errorf("SortCompetitions() = %+v", got)
	}
	if in[0].Name != "Wimbledon" {
		t.Error("SortCompetitions() modified its input")
	}
}
