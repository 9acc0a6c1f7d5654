//go:build integration

package repository

import (
	"os"
	"testing"

	"github.com/guttosm/cart-pricing-service/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Exit(testutil.RunWithMongoDB(m))
}

// setupTestDBFromSharedContainer connects to a fresh database on the shared server.
func setupTestDBFromSharedContainer(t *testing.T) *MongoDB {
	t.Helper()
	db, err := NewMongoDB(testutil.SharedMongoURI(), testutil.DatabaseName(t.Name()))
	require.NoError(t, err)
	return db
}
