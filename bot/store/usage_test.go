package store

import (
	"sync"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()

	db, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func TestGetUserUsageUnknownUser(t *testing.T) {
	db := openTestDB(t)

	usage, err := GetUserUsage(db, "123")
	require.NoError(t, err)
	assert.Zero(t, usage.TotalCommandsExecuted())
	assert.Empty(t, usage.GetCommandStats())
}

func TestUpdateUserUsageAppends(t *testing.T) {
	db := openTestDB(t)
	now := time.Now().Unix()

	require.NoError(t, UpdateUserUsage(db, "123", "town", UsageCommandEntry{Timestamp: now, Success: true}))
	require.NoError(t, UpdateUserUsage(db, "123", "town", UsageCommandEntry{Timestamp: now, Success: false}))
	require.NoError(t, UpdateUserUsage(db, "123", "player", UsageCommandEntry{Timestamp: now, Success: true}))
	require.NoError(t, UpdateUserUsage(db, "456", "status", UsageCommandEntry{Timestamp: now, Success: true}))

	usage, err := GetUserUsage(db, "123")
	require.NoError(t, err)

	assert.Equal(t, 3, usage.TotalCommandsExecuted())
	assert.Equal(t, []UsageCommandStat{
		{Name: "town", Count: 2},
		{Name: "player", Count: 1},
	}, usage.GetCommandStats())
	assert.False(t, usage.CommandHistory["town"][1].Success)
}

func TestGetCommandStatsTiesSortByName(t *testing.T) {
	usage := UserUsage{CommandHistory: map[string][]UsageCommandEntry{
		"town":   {{}},
		"nation": {{}},
		"empty":  {},
	}}

	assert.Equal(t, []UsageCommandStat{
		{Name: "nation", Count: 1},
		{Name: "town", Count: 1},
	}, usage.GetCommandStats())
}

func TestGetCommandStatsSince(t *testing.T) {
	cutoff := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	before := cutoff.Add(-time.Hour).Unix()
	after := cutoff.Add(time.Hour).Unix()

	usage := UserUsage{CommandHistory: map[string][]UsageCommandEntry{
		"town":   {{Timestamp: before}, {Timestamp: after}},
		"player": {{Timestamp: after}, {Timestamp: after}},
		"status": {{Timestamp: before}},
	}}

	assert.Equal(t, []UsageCommandStat{
		{Name: "player", Count: 2},
		{Name: "town", Count: 1},
	}, usage.GetCommandStatsSince(cutoff))
}

func TestUpdateUserUsageConcurrent(t *testing.T) {
	db := openTestDB(t)

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			// Conflicting transactions are retried, the way the bot would on the next command.
			var err error
			for range 100 {
				if err = UpdateUserUsage(db, "123", "ping", UsageCommandEntry{Success: true}); err != badger.ErrConflict {
					break
				}
			}
			errs <- err
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	usage, err := GetUserUsage(db, "123")
	require.NoError(t, err)
	assert.Equal(t, workers, usage.TotalCommandsExecuted())
}
