// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

package dashboard

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tomtom215/courtside/internal/models"
)

// UnknownCountry labels competitors without a country.
const UnknownCountry = "Unknown"

// avgPointsPlaces is the precision of CountryStat.AvgPoints.
const avgPointsPlaces = 2

// AggregateByCountry groups rows by country with the competitor count and
// mean points of each group, ordered by count descending then country name.
// The counts always sum to len(rows).
func AggregateByCountry(rows []models.CompetitorRanking) []models.CountryStat {
	type group struct {
		count int
		sum   int64
	}
	groups := make(map[string]*group)
	for _, r := range rows {
		country := r.Country
		if country == "" {
			country = UnknownCountry
		}
		g, ok := groups[country]
		if !ok {
			g = &group{}
			groups[country] = g
		}
		g.count++
		g.sum += int64(r.Points)
	}

	stats := make([]models.CountryStat, 0, len(groups))
	for country, g := range groups {
		avg := decimal.NewFromInt(g.sum).
			Div(decimal.NewFromInt(int64(g.count))).
			Round(avgPointsPlaces)
		stats = append(stats, models.CountryStat{
			Country:     country,
			Competitors: g.count,
			AvgPoints:   avg.InexactFloat64(),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Competitors != stats[j].Competitors {
			return stats[i].Competitors > stats[j].Competitors
		}
		return stats[i].Country < stats[j].Country
	})
	return stats
}
