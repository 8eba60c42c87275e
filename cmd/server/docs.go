// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

// Package main provides the Courtside HTTP server
//
// Courtside API serves a read-only analytics dashboard over tennis
// competitor rankings.
//
// @title Courtside API
// @version 1.0
// @description Read-only analytics over tennis competitor rankings
// @description
// @description ## Pages
// @description
// @description - **Dashboard**: competitor count, country count, highest points, competitions
// @description - **Competitors**: rank range, name, country and minimum points filters
// @description - **Country Insights**: competitor count and average points per country
// @description - **Leaderboard**: top ranked, highest points and stable rank boards
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "ERROR_CODE",
// @description     "message": "Human-readable error message",
// @description     "details": {}
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-03-02T12:34:56Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/courtside/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:3860
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Health
// @tag.description Liveness, readiness and store health
//
// @tag.name Admin
// @tag.description Cache administration
//
// @tag.name Dashboard
// @tag.description Dashboard pages as JSON
//
// @tag.name Charts
// @tag.description Dashboard charts as SVG
package main
