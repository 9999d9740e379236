//go:build integration

// Package testutil starts the containers integration tests run against.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

const mongoImage = "mongo:7.0"

// MongoDBContainer wraps a MongoDB testcontainer.
type MongoDBContainer struct {
	Container testcontainers.Container
	URI       string
}

// SetupMongoDB starts a MongoDB container and returns its connection URI.
func SetupMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	container, err := mongodb.Run(ctx, mongoImage)
	if err != nil {
		return nil, fmt.Errorf("start MongoDB container: %w", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("get connection string: %w", err)
	}

	return &MongoDBContainer{Container: container, URI: uri}, nil
}

// Cleanup terminates the container.
func (m *MongoDBContainer) Cleanup(ctx context.Context) error {
	if m.Container == nil {
		return nil
	}
	if err := m.Container.Terminate(ctx); err != nil {
		return fmt.Errorf("terminate container: %w", err)
	}
	return nil
}

var (
	shared     *MongoDBContainer
	sharedErr  error
	sharedOnce sync.Once
	sharedMu   sync.RWMutex
)

// GetSharedMongoDB starts the package-wide container on first use.
func GetSharedMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	sharedOnce.Do(func() {
		sharedMu.Lock()
		defer sharedMu.Unlock()
		shared, sharedErr = SetupMongoDB(ctx)
	})

	sharedMu.RLock()
	defer sharedMu.RUnlock()
	return shared, sharedErr
}

// SetupTestMainWithMongoDB runs m against a shared container and tears it down.
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
//	}
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	if _, err := GetSharedMongoDB(ctx); err != nil {
		panic(err)
	}

	code := m.Run()

	sharedMu.Lock()
	defer sharedMu.Unlock()
	if shared != nil {
		if err := shared.Cleanup(ctx); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: failed to cleanup shared MongoDB container: %v\n", err)
		}
	}
	return code
}

// GetSharedContainerURI returns the shared container's URI. It panics when
// the container was never started.
func GetSharedContainerURI() string {
	sharedMu.RLock()
	defer sharedMu.RUnlock()
	if shared == nil {
		panic("shared MongoDB container not initialized - call GetSharedMongoDB first")
	}
	return shared.URI
}

// SanitizeDBName turns a test name into a unique, valid database name.
func SanitizeDBName(testName string) string {
	name := strings.NewReplacer("/", "_", "\\", "_", " ", "_", ".", "_").Replace(testName)
	if len(name) > 40 {
		name = name[:40]
	}
	return fmt.Sprintf("%s_%d", name, time.Now().UnixNano()%1000000)
}
