//go:build integration

package app

import (
	"context"
	"os"
	"testing"

	"github.com/guttosm/kol-client/internal/testutil"
)

// TestMain shares one MongoDB container across the package's integration tests.
func TestMain(m *testing.M) {
	os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
}
