// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

//go:build integration

package testinfra

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/tomtom215/courtside/internal/config"
)

const (
	// DefaultMySQLImage matches the production rankings database major version.
	DefaultMySQLImage = "mysql:8.4"

	mysqlPort = "3306/tcp"
)

// MySQLContainer is a disposable MySQL server holding an empty database.
type MySQLContainer struct {
	testcontainers.Container
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

// MySQLOption configures the MySQL container.
type MySQLOption func(*mysqlConfig)

type mysqlConfig struct {
	image        string
	database     string
	user         string
	password     string
	startTimeout time.Duration
}

// WithMySQLImage sets a custom MySQL Docker image.
func WithMySQLImage(image string) MySQLOption {
	return func(c *mysqlConfig) {
		c.image = image
	}
}

// WithMySQLDatabase sets the database created at startup.
func WithMySQLDatabase(name string) MySQLOption {
	return func(c *mysqlConfig) {
		c.database = name
	}
}

// WithMySQLStartTimeout sets how long to wait for the server to accept connections.
func WithMySQLStartTimeout(timeout time.Duration) MySQLOption {
	return func(c *mysqlConfig) {
		c.startTimeout = timeout
	}
}

// NewMySQLContainer starts a MySQL server for integration tests.
//
// Example:
//
//	mysql, err := testinfra.NewMySQLContainer(ctx)
//	if err != nil {
//	    t.Fatal(err)
//	}
//	t.Cleanup(func() { testinfra.CleanupContainer(t, mysql) })
//
//	cfg := mysql.DatabaseConfig()
//	db, err := database.New(&cfg, nil, nil)
func NewMySQLContainer(ctx context.Context, opts ...MySQLOption) (*MySQLContainer, error) {
	cfg := &mysqlConfig{
		image:        DefaultMySQLImage,
		database:     "rankings",
		user:         "courtside",
		password:     "courtside-integration",
		startTimeout: 2 * time.Minute,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	req := testcontainers.ContainerRequest{
		Image:        cfg.image,
		ExposedPorts: []string{mysqlPort},
		Env: map[string]string{
			"MYSQL_DATABASE":      cfg.database,
			"MYSQL_USER":          cfg.user,
			"MYSQL_PASSWORD":      cfg.password,
			"MYSQL_ROOT_PASSWORD": cfg.password + "-root",
		},
		// The entrypoint starts a temporary server for initialization first,
		// so the second "ready" line is the real one.
		WaitingFor: wait.ForAll(
			wait.ForLog("ready for connections").WithOccurrence(2),
			wait.ForListeningPort(mysqlPort),
		).WithStartupTimeout(cfg.startTimeout),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("create mysql container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get container host: %w", err)
	}
	mapped, err := container.MappedPort(ctx, mysqlPort)
	if err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get mapped port: %w", err)
	}

	return &MySQLContainer{
		Container: container,
		Host:      host,
		Port:      mapped.Int(),
		User:      cfg.user,
		Password:  cfg.password,
		Database:  cfg.database,
	}, nil
}

// DatabaseConfig returns a mysql store configuration pointing at the container.
func (c *MySQLContainer) DatabaseConfig() config.DatabaseConfig {
	return config.DatabaseConfig{
		Driver:          config.DriverMySQL,
		Host:            c.Host,
		Port:            c.Port,
		User:            c.User,
		Password:        c.Password,
		Name:            c.Database,
		MaxOpenConns:    4,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Minute,
		QueryTimeout:    10 * time.Second,
	}
}
