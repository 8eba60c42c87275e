// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

package database

import (
	"context"
	"fmt"

	"github.com/tomtom215/courtside/internal/database/query"
	"github.com/tomtom215/courtside/internal/models"
)

// SummaryMetrics returns the competitor count, the distinct country count and
// the highest points total, each from its own query.
func (db *DB) SummaryMetrics(ctx context.Context) (models.SummaryMetrics, error) {
	var summary models.SummaryMetrics

	scalars := []struct {
		sql  string
		dest *int64
		name string
	}{
		{countCompetitorsSQL, &summary.Competitors, "competitor count"},
		{countCountriesSQL, &summary.Countries, "country count"},
		{maxPointsSQL, &summary.MaxPoints, "max points"},
	}

	for _, s := range scalars {
		table, err := db.Load(ctx, query.New(s.sql))
		if err != nil {
			return models.SummaryMetrics{}, fmt.Errorf("load %s: %w", s.name, err)
		}
		v, err := table.Scalar()
		if err != nil {
			return models.SummaryMetrics{}, fmt.Errorf("read %s: %w", s.name, err)
		}
		*s.dest = v
	}
	return summary, nil
}

// Competitors returns the competitors matching f, ordered by rank ascending.
func (db *DB) Competitors(ctx context.Context, f query.CompetitorFilter) ([]models.CompetitorRanking, error) {
	q := query.BuildWithLower(CompetitorRankingsBase, f, OrderByRank, db.lowerFunc)
	table, err := db.Load(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("load competitors: %w", err)
	}
	rows, err := table.CompetitorRankings()
	if err != nil {
		return nil, fmt.Errorf("read competitors: %w", err)
	}
	return rows, nil
}

// AllCompetitors returns the full joined competitors table ordered by rank.
func (db *DB) AllCompetitors(ctx context.Context) ([]models.CompetitorRanking, error) {
	return db.Competitors(ctx, query.CompetitorFilter{})
}

// Countries returns the distinct competitor countries in ascending order.
func (db *DB) Countries(ctx context.Context) ([]string, error) {
	table, err := db.Load(ctx, query.New(countriesSQL))
	if err != nil {
		return nil, fmt.Errorf("load countries: %w", err)
	}
	countries, err := table.Strings("country")
	if err != nil {
		return nil, fmt.Errorf("read countries: %w", err)
	}
	return countries, nil
}

// Competitions returns the competitions overview ordered by competition name.
func (db *DB) Competitions(ctx context.Context) ([]models.Competition, error) {
	table, err := db.Load(ctx, query.New(competitionsSQL))
	if err != nil {
		return nil, fmt.Errorf("load competitions: %w", err)
	}
	competitions, err := table.Competitions()
	if err != nil {
		return nil, fmt.Errorf("read competitions: %w", err)
	}
	return competitions, nil
}
