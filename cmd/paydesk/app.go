package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/paydesk/paydesk/internal/api"
	"github.com/paydesk/paydesk/internal/config"
	"github.com/paydesk/paydesk/internal/service"
	"github.com/paydesk/paydesk/internal/session"
	"github.com/paydesk/paydesk/internal/storage"
)

// app bundles the per-command wiring: session store, decoded claims,
// authenticated API client, and the offline cache.
type app struct {
	store   service.SessionStore
	claims  *session.Claims
	client  *api.Client
	cache   *storage.SQLiteCache
	dataDir string
}

// newApp runs the session guard and builds an authenticated client.
// Guard failures are terminal for the command: nothing renders and the
// user is told to log in again.
func newApp() (*app, error) {
	dir, err := config.DataDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory: %w", err)
	}

	store := session.NewFileStore(dir)
	claims, token, err := session.Guard(store, viper.GetString("session.required_role"), time.Now())
	if err != nil {
		return nil, fmt.Errorf("%w (run `paydesk login`)", err)
	}

	client, err := api.NewClient(api.Config{
		BaseURL: viper.GetString("api.base_url"),
		Token:   token,
	})
	if err != nil {
		return nil, err
	}

	cache, err := storage.NewSQLiteCache(filepath.Join(dir, "cache.db"))
	if err != nil {
		return nil, fmt.Errorf("failed to open offline cache: %w", err)
	}

	return &app{
		store:   store,
		claims:  claims,
		client:  client,
		cache:   cache,
		dataDir: dir,
	}, nil
}

// newAnonymousApp builds the wiring available before login.
func newAnonymousApp() (*app, error) {
	dir, err := config.DataDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory: %w", err)
	}

	client, err := api.NewClient(api.Config{
		BaseURL: viper.GetString("api.base_url"),
	})
	if err != nil {
		return nil, err
	}

	return &app{
		store:   session.NewFileStore(dir),
		client:  client,
		dataDir: dir,
	}, nil
}

// close releases held resources.
func (a *app) close() {
	if a.cache != nil {
		_ = a.cache.Close()
	}
}

// exportDir is where artifacts land: the configured directory or the
// current one.
func exportDir() string {
	dir := viper.GetString("export.dir")
	if dir == "" {
		return "."
	}
	return config.ExpandPath(dir)
}

func pageSize() int {
	size := viper.GetInt("list.page_size")
	if size <= 0 {
		size = 10
	}
	return size
}
