// Package pgtest starts a disposable Postgres for integration tests and applies
// the hotel schema to it.
package pgtest

import (
	"context"
	"hotel/helper"
	"hotel/infras/postgres"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	image    = "postgres:15"
	user     = "hotel"
	password = "hotel"
	database = "hotel"
)

// Start runs a container, migrates it up and returns a connection that uses the
// same pool for reads and writes. Everything is torn down with t.Cleanup.
func Start(t *testing.T) *postgres.Connection {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        image,
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": password,
			"POSTGRES_DB":       database,
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get postgres host: %v", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("failed to get postgres port: %v", err)
	}

	dbURL := postgres.Descriptor(user, password, host, port.Port(), database, "disable")

	if err := helper.RunnerURL(dbURL, helper.ActionUp); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	db, err := sqlx.Connect("postgres", dbURL)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })

	return postgres.NewSingle(db)
}

// Truncate empties the hotel tables and restarts their sequences.
func Truncate(t *testing.T, conn *postgres.Connection) {
	t.Helper()

	_, err := conn.Write.Exec("TRUNCATE bookings, customers, rooms RESTART IDENTITY CASCADE")
	if err != nil {
		t.Fatalf("failed to truncate: %v", err)
	}
}
