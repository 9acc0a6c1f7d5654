//go:build integration

// Package testutil starts throwaway MongoDB servers for integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

const defaultMongoImage = "mongo:7.0"

// MongoImage is the image under test, overridable with TEST_MONGO_IMAGE.
func MongoImage() string {
	if image := os.Getenv("TEST_MONGO_IMAGE"); image != "" {
		return image
	}
	return defaultMongoImage
}

// MongoDBContainer is a running MongoDB testcontainer.
type MongoDBContainer struct {
	container *mongodb.MongoDBContainer
	URI       string
}

// StartMongoDB starts a dedicated MongoDB container. Prefer the shared one
// from RunWithMongoDB unless a test needs to stop the server.
func StartMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	container, err := mongodb.Run(ctx, MongoImage())
	if err != nil {
		return nil, fmt.Errorf("start mongodb container: %w", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("mongodb connection string: %w", err)
	}
	return &MongoDBContainer{container: container, URI: uri}, nil
}

// Terminate stops and removes the container.
func (m *MongoDBContainer) Terminate(ctx context.Context) error {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Terminate(ctx)
}

var (
	sharedMu  sync.RWMutex
	shared    *MongoDBContainer
	dbCounter atomic.Int64
)

// RunWithMongoDB runs a package's tests against one shared container.
// Call it from TestMain and pass the result to os.Exit.
func RunWithMongoDB(m *testing.M) int {
	ctx := context.Background()

	container, err := StartMongoDB(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	sharedMu.Lock()
	shared = container
	sharedMu.Unlock()

	code := m.Run()

	if err := container.Terminate(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "terminate shared mongodb: %v\n", err)
	}
	return code
}

// SharedMongoURI returns the URI of the container started by RunWithMongoDB.
func SharedMongoURI() string {
	sharedMu.RLock()
	defer sharedMu.RUnlock()
	if shared == nil {
		panic("testutil: shared mongodb not started; call RunWithMongoDB from TestMain")
	}
	return shared.URI
}

// DatabaseName derives a unique database name from a test name so parallel
// tests sharing a container never see each other's data.
func DatabaseName(testName string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, testName)
	if len(name) > 40 {
		name = name[:40]
	}
	return fmt.Sprintf("%s_%d", name, dbCounter.Add(1))
}
