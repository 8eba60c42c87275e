// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

// Package testinfra provides container-backed infrastructure for integration tests.
//
// Everything here is compiled only with the integration build tag:
//
//	go test -tags integration ./internal/database/...
//
// # MySQL Container
//
// MySQLContainer runs the same engine as the production rankings database, so
// the canonical schema, the quoted DDL and the parameterized filters are
// exercised against a real MySQL server:
//
//	func TestStoreMySQL(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    mysql, err := testinfra.NewMySQLContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    t.Cleanup(func() { testinfra.CleanupContainer(t, mysql) })
//
//	    cfg := mysql.DatabaseConfig()
//	    db, err := database.New(&cfg, &config.CacheConfig{Enabled: true, TTL: time.Minute}, nil)
//	    // ...
//	}
//
// # CI Considerations
//
// These tests require Docker. They are skipped when the daemon is unreachable.
// The first run downloads the image; later runs use the local cache.
package testinfra
