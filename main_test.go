package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"linkbio/pkg/blobstore"
)

func TestBuildAppSmoke(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:main_test?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	if err := autoMigrate(db); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	blobs, err := blobstore.NewLocalStore(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("failed to initialize blob store: %v", err)
	}

	app := buildApp(db, blobs, nil, "test_jwt_secret", t.TempDir())

	// Health endpoint responds without authentication.
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var health map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "healthy", health["status"])
	resp.Body.Close()

	// Protected routes reject anonymous callers.
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/links", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Public routes bypass the auth middleware.
	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestOpenDatabaseFallsBackToSQLite(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("failed to change working directory: %v", err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	db, err := openDatabase("")
	assert.NoError(t, err)
	assert.NotNil(t, db)
}
