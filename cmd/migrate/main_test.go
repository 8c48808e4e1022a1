package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunRejectsBadInput(t *testing.T) {
	err := run(context.Background(), "postgres://localhost/store", "drop-everything", 1)
	assert.ErrorContains(t, err, "unknown command")

	err = run(context.Background(), "", "up", 1)
	assert.ErrorContains(t, err, "DATABASE_URL is required")
}
