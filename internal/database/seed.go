// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tomtom215/courtside/internal/logging"
	"github.com/tomtom215/courtside/internal/models"
)

// sampleCompetitors is a small singles ranking snapshot used for local
// development and tests.
var sampleCompetitors = []models.CompetitorRanking{
	{CompetitorID: "sr:competitor:225050", Name: "Sinner, Jannik", Country: "Italy", CountryCode: "ITA", Rank: 1, Points: 11830, Movement: 0, CompetitionsPlayed: 19},
	{CompetitorID: "sr:competitor:407573", Name: "Alcaraz, Carlos", Country: "Spain", CountryCode: "ESP", Rank: 2, Points: 8850, Movement: 1, CompetitionsPlayed: 20},
	{CompetitorID: "sr:competitor:57163", Name: "Zverev, Alexander", Country: "Germany", CountryCode: "DEU", Rank: 3, Points: 7595, Movement: -1, CompetitionsPlayed: 23},
	{CompetitorID: "sr:competitor:136042", Name: "Fritz, Taylor", Country: "USA", CountryCode: "USA", Rank: 4, Points: 5350, Movement: 0, CompetitionsPlayed: 22},
	{CompetitorID: "sr:competitor:14882", Name: "Djokovic, Novak", Country: "Serbia", CountryCode: "SRB", Rank: 5, Points: 4830, Movement: 2, CompetitionsPlayed: 15},
	{CompetitorID: "sr:competitor:352776", Name: "Draper, Jack", Country: "United Kingdom", CountryCode: "GBR", Rank: 6, Points: 4460, Movement: -1, CompetitionsPlayed: 21},
	{CompetitorID: "sr:competitor:253467", Name: "de Minaur, Alex", Country: "Australia", CountryCode: "AUS", Rank: 7, Points: 3735, Movement: 1, CompetitionsPlayed: 24},
	{CompetitorID: "sr:competitor:196474", Name: "Paul, Tommy", Country: "USA", CountryCode: "USA", Rank: 8, Points: 3420, Movement: -2, CompetitionsPlayed: 25},
	{CompetitorID: "sr:competitor:263576", Name: "Musetti, Lorenzo", Country: "Italy", CountryCode: "ITA", Rank: 9, Points: 3305, Movement: 0, CompetitionsPlayed: 23},
	{CompetitorID: "sr:competitor:122366", Name: "Ruud, Casper", Country: "Norway", CountryCode: "NOR", Rank: 10, Points: 3275, Movement: 1, CompetitionsPlayed: 24},
	{CompetitorID: "sr:competitor:163504", Name: "Medvedev, Daniil", Country: "Russia", CountryCode: "RUS", Rank: 11, Points: 3130, Movement: -3, CompetitionsPlayed: 23},
	{CompetitorID: "sr:competitor:293186", Name: "Rune, Holger", Country: "Denmark", CountryCode: "DNK", Rank: 12, Points: 2910, Movement: 0, CompetitionsPlayed: 22},
	{CompetitorID: "sr:competitor:133090", Name: "Tiafoe, Frances", Country: "USA", CountryCode: "USA", Rank: 13, Points: 2790, Movement: 4, CompetitionsPlayed: 25},
	{CompetitorID: "sr:competitor:645498", Name: "Shelton, Ben", Country: "USA", CountryCode: "USA", Rank: 14, Points: 2780, Movement: -1, CompetitionsPlayed: 24},
	{CompetitorID: "sr:competitor:23679", Name: "Dimitrov, Grigor", Country: "Bulgaria", CountryCode: "BGR", Rank: 15, Points: 2720, Movement: 0, CompetitionsPlayed: 19},
	{CompetitorID: "sr:competitor:592104", Name: "Fils, Arthur", Country: "France", CountryCode: "FRA", Rank: 16, Points: 2650, Movement: 2, CompetitionsPlayed: 24},
	{CompetitorID: "sr:competitor:116434", Name: "Cerundolo, Francisco", Country: "Argentina", CountryCode: "ARG", Rank: 17, Points: 2495, Movement: -2, CompetitionsPlayed: 26},
	{CompetitorID: "sr:competitor:229916", Name: "Humbert, Ugo", Country: "France", CountryCode: "FRA", Rank: 18, Points: 2360, Movement: 0, CompetitionsPlayed: 25},
	{CompetitorID: "sr:competitor:229970", Name: "Davidovich Fokina, Alejandro", Country: "Spain", CountryCode: "ESP", Rank: 19, Points: 2245, Movement: 3, CompetitionsPlayed: 27},
	{CompetitorID: "sr:competitor:471004", Name: "Lehecka, Jiri", Country: "Czech Republic", CountryCode: "CZE", Rank: 20, Points: 2180, Movement: -1, CompetitionsPlayed: 22},
	{CompetitorID: "sr:competitor:122368", Name: "Tsitsipas, Stefanos", Country: "Greece", CountryCode: "GRC", Rank: 21, Points: 2165, Movement: 0, CompetitionsPlayed: 23},
	{CompetitorID: "sr:competitor:89040", Name: "Hurkacz, Hubert", Country: "Poland", CountryCode: "POL", Rank: 22, Points: 2050, Movement: -4, CompetitionsPlayed: 21},
	{CompetitorID: "sr:competitor:770522", Name: "Mensik, Jakub", Country: "Czech Republic", CountryCode: "CZE", Rank: 23, Points: 1878, Movement: 6, CompetitionsPlayed: 24},
	{CompetitorID: "sr:competitor:413960", Name: "Machac, Tomas", Country: "Czech Republic", CountryCode: "CZE", Rank: 24, Points: 1820, Movement: 1, CompetitionsPlayed: 25},
	{CompetitorID: "sr:competitor:93318", Name: "Berrettini, Matteo", Country: "Italy", CountryCode: "ITA", Rank: 25, Points: 1735, Movement: 0, CompetitionsPlayed: 20},
	{CompetitorID: "sr:competitor:206570", Name: "Auger-Aliassime, Felix", Country: "Canada", CountryCode: "CAN", Rank: 26, Points: 1710, Movement: -2, CompetitionsPlayed: 22},
	{CompetitorID: "sr:competitor:505550", Name: "Fonseca, Joao", Country: "Brazil", CountryCode: "BRA", Rank: 48, Points: 980, Movement: 9, CompetitionsPlayed: 18},
	{CompetitorID: "sr:competitor:45379", Name: "Monfils, Gael", Country: "France", CountryCode: "FRA", Rank: 61, Points: 860, Movement: 0, CompetitionsPlayed: 17},
	{CompetitorID: "sr:competitor:14486", Name: "Wawrinka, Stan", Country: "Switzerland", CountryCode: "SUI", Rank: 75, Points: 702, Movement: -5, CompetitionsPlayed: 16},
}

type sampleCategory struct {
	id, name string
}

type sampleCompetition struct {
	id, name, gender, typ, categoryID string
}

var sampleCategories = []sampleCategory{
	{"sr:category:3", "ATP"},
	{"sr:category:6", "WTA"},
	{"sr:category:72", "Challenger"},
	{"sr:category:785", "ITF Men"},
}

var sampleCompetitions = []sampleCompetition{
	{"sr:competition:2567", "Australian Open Men Singles", "men", "singles", "sr:category:3"},
	{"sr:competition:2571", "Australian Open Women Singles", "women", "singles", "sr:category:6"},
	{"sr:competition:2555", "Roland Garros Men Doubles", "men", "doubles", "sr:category:3"},
	{"sr:competition:2579", "Wimbledon Women Doubles", "women", "doubles", "sr:category:6"},
	{"sr:competition:3001", "Challenger Bergamo", "men", "singles", "sr:category:72"},
	{"sr:competition:3010", "M25 Antalya", "men", "singles", "sr:category:785"},
	{"sr:competition:2649", "US Open Mixed Doubles", "mixed", "mixed", ""},
}

// seed creates the canonical schema and loads the sample dataset when the
// competitors table is empty. Safe to call repeatedly.
func (db *DB) seed(ctx context.Context) (err error) {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logging.Warn().Err(rbErr).Msg("Failed to roll back seed transaction")
			}
		}
	}()

	if err = createSchema(ctx, tx, db.driver); err != nil {
		return err
	}

	var existing int64
	if err = tx.QueryRowContext(ctx, countCompetitorsSQL).Scan(&existing); err != nil {
		return fmt.Errorf("count competitors: %w", err)
	}
	if existing > 0 {
		logging.Info().Int64("competitors", existing).Msg("Store already populated, skipping sample data")
		return tx.Commit()
	}

	if err = db.insertSampleData(ctx, tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit sample data: %w", err)
	}

	logging.Info().
		Int("competitors", len(sampleCompetitors)).
		Int("competitions", len(sampleCompetitions)).
		Msg("Seeded store with sample data")
	return nil
}

func (db *DB) insertSampleData(ctx context.Context, tx *sql.Tx) error {
	stmts := make(map[string]string, len(canonicalSchema))
	for _, t := range canonicalSchema {
		stmts[t.name] = insertStatement(db.driver, t)
	}

	for i, c := range sampleCompetitors {
		if _, err := tx.ExecContext(ctx, stmts[TableCompetitors],
			c.CompetitorID, c.Name, c.Country, c.CountryCode); err != nil {
			return fmt.Errorf("insert competitor %s: %w", c.CompetitorID, err)
		}
		if _, err := tx.ExecContext(ctx, stmts[TableCompetitorRankings],
			i+1, c.CompetitorID, c.Rank, c.Points, c.Movement, c.CompetitionsPlayed); err != nil {
			return fmt.Errorf("insert ranking %s: %w", c.CompetitorID, err)
		}
	}

	for _, c := range sampleCategories {
		if _, err := tx.ExecContext(ctx, stmts[TableCategories], c.id, c.name); err != nil {
			return fmt.Errorf("insert category %s: %w", c.id, err)
		}
	}

	for _, c := range sampleCompetitions {
		var categoryID interface{}
		if c.categoryID != "" {
			categoryID = c.categoryID
		}
		if _, err := tx.ExecContext(ctx, stmts[TableCompetitions],
			c.id, c.name, c.gender, c.typ, categoryID); err != nil {
			return fmt.Errorf("insert competition %s: %w", c.id, err)
		}
	}
	return nil
}
