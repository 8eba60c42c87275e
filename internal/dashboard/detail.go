// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

package dashboard

import (
	"strings"

	"github.com/tomtom215/courtside/internal/models"
)

// Placeholder messages of the detail panel.
const (
	MsgNoSelection = "No competitor selected."
	MsgNotFound    = "Competitor not found."
)

// Detail returns the first row whose name equals name. It never fails: an
// empty table or a blank selection yields MsgNoSelection and an unknown name
// yields MsgNotFound.
func Detail(rows []models.CompetitorRanking, name string) models.DetailView {
	name = strings.TrimSpace(name)
	if len(rows) == 0 || name == "" {
		return models.DetailView{Message: MsgNoSelection}
	}

	for i := range rows {
		if rows[i].Name == name {
			found := rows[i]
			return models.DetailView{Found: true, Competitor: &found}
		}
	}
	return models.DetailView{Message: MsgNotFound}
}
