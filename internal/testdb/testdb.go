// Package testdb starts a throwaway PostgreSQL container with the schema applied.
package testdb

import (
	"context"
	"fmt"

	"github.com/nikolayk812/podstudio/internal/migrations"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

const image = "postgres:17.6-alpine3.22"

type Container struct {
	pc      *postgres.PostgresContainer
	ConnStr string
}

func Start(ctx context.Context) (*Container, error) {
	pc, err := postgres.Run(ctx, image,
		postgres.WithDatabase("podstudio"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		return nil, fmt.Errorf("postgres.Run: %w", err)
	}

	connStr, err := pc.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = testcontainers.TerminateContainer(pc)
		return nil, fmt.Errorf("pc.ConnectionString: %w", err)
	}

	if _, err := migrations.Up(connStr); err != nil {
		_ = testcontainers.TerminateContainer(pc)
		return nil, fmt.Errorf("migrations.Up: %w", err)
	}

	return &Container{pc: pc, ConnStr: connStr}, nil
}

func (c *Container) Terminate() error {
	if c == nil || c.pc == nil {
		return nil
	}
	return testcontainers.TerminateContainer(c.pc)
}
