// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

package database

import (
	"fmt"
	"math"
	"strconv"

	"github.com/tomtom215/courtside/internal/models"
)

// Column sets required by the typed accessors.
var (
	competitorRankingColumns = []string{
		"competitor_id", "name", "country", "country_code",
		"rank", "points", "movement", "competitions_played",
	}
	competitionColumns = []string{"competition_name", "gender", "type", "category_name"}
)

// requireColumns returns ErrColumnMissing naming the first absent column.
func (t *Table) requireColumns(columns ...string) error {
	for _, c := range columns {
		if !t.HasColumn(c) {
			return fmt.Errorf("%w: %s", ErrColumnMissing, c)
		}
	}
	return nil
}

// Scalar returns the first column of the first row as an integer.
// An empty result or a NULL aggregate yields 0.
func (t *Table) Scalar() (int64, error) {
	if len(t.Columns) == 0 {
		return 0, fmt.Errorf("%w: scalar result has no columns", ErrColumnMissing)
	}
	if len(t.Rows) == 0 {
		return 0, nil
	}
	v := t.Rows[0][t.Columns[0]]
	if v == nil {
		return 0, nil
	}
	n, ok := asInt(v)
	if !ok {
		return 0, fmt.Errorf("%w: %s is %T, not an integer", ErrColumnMissing, t.Columns[0], v)
	}
	return n, nil
}

// Strings returns column as strings, in row order. NULL becomes "".
func (t *Table) Strings(column string) ([]string, error) {
	if err := t.requireColumns(column); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(t.Rows))
	for i, row := range t.Rows {
		s, ok := asString(row[column])
		if !ok {
			return nil, fmt.Errorf("%w: row %d %s is %T", ErrColumnMissing, i, column, row[column])
		}
		out = append(out, s)
	}
	return out, nil
}

// CompetitorRankings converts the result of a CompetitorRankingsBase query.
func (t *Table) CompetitorRankings() ([]models.CompetitorRanking, error) {
	if err := t.requireColumns(competitorRankingColumns...); err != nil {
		return nil, err
	}

	out := make([]models.CompetitorRanking, 0, len(t.Rows))
	for i, row := range t.Rows {
		var (
			cr  models.CompetitorRanking
			err error
		)
		if cr.CompetitorID, err = rowString(row, "competitor_id"); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if cr.Name, err = rowString(row, "name"); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if cr.Country, err = rowString(row, "country"); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if cr.CountryCode, err = rowString(row, "country_code"); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if cr.Rank, err = rowInt(row, "rank"); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if cr.Points, err = rowInt(row, "points"); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if cr.Movement, err = rowInt(row, "movement"); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if cr.CompetitionsPlayed, err = rowInt(row, "competitions_played"); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out = append(out, cr)
	}
	return out, nil
}

// Competitions converts the result of the competitions overview query.
func (t *Table) Competitions() ([]models.Competition, error) {
	if err := t.requireColumns(competitionColumns...); err != nil {
		return nil, err
	}

	out := make([]models.Competition, 0, len(t.Rows))
	for i, row := range t.Rows {
		var (
			c   models.Competition
			err error
		)
		if c.Name, err = rowString(row, "competition_name"); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if c.Gender, err = rowString(row, "gender"); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if c.Type, err = rowString(row, "type"); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if c.CategoryName, err = rowString(row, "category_name"); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}

func rowString(row Row, column string) (string, error) {
	s, ok := asString(row[column])
	if !ok {
		return "", fmt.Errorf("%w: %s is %T, not text", ErrColumnMissing, column, row[column])
	}
	return s, nil
}

// rowInt reads an integer column. NULL is read as 0.
func rowInt(row Row, column string) (int, error) {
	v := row[column]
	if v == nil {
		return 0, nil
	}
	n, ok := asInt(v)
	if !ok || n > math.MaxInt32 || n < math.MinInt32 {
		return 0, fmt.Errorf("%w: %s is %T, not an integer", ErrColumnMissing, column, v)
	}
	return int(n), nil
}

func asString(v interface{}) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", true
	case string:
		return t, true
	case int64:
		return strconv.FormatInt(t, 10), true
	default:
		return "", false
	}
}

func asInt(v interface{}) (int64, bool) {
	switch t := v.(type) {
	case int64:
		return t, true
	case float64:
		if t != math.Trunc(t) {
			return 0, false
		}
		return int64(t), true
	case string:
		n, err := strconv.ParseInt(t, 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}
