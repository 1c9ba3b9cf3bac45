package store

import (
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

type UsageCommandStat struct {
	Name  string
	Count int
}

type UsageCommandEntry struct {
	Timestamp int64 `json:"timestamp"`
	Success   bool  `json:"success"`
}

type UserUsage struct {
	CommandHistory map[string][]UsageCommandEntry `json:"slash_command_history"` // key = command name
}

func (u *UserUsage) TotalCommandsExecuted() (total int) {
	for _, execs := range u.CommandHistory {
		total += len(execs)
	}

	return
}

// Retrieves the command entries sorted in order of most times executed first.
func (u *UserUsage) GetCommandStats() []UsageCommandStat {
	stats := make([]UsageCommandStat, 0, len(u.CommandHistory))
	for name, entries := range u.CommandHistory {
		if len(entries) > 0 {
			stats = append(stats, UsageCommandStat{Name: name, Count: len(entries)})
		}
	}

	sortStats(stats)
	return stats
}

// Same as GetCommandStats, only counting executions strictly after t.
func (u *UserUsage) GetCommandStatsSince(t time.Time) []UsageCommandStat {
	executionCounts := make(map[string]int) // key = command name | value = times executed since t
	for name, entries := range u.CommandHistory {
		for _, entry := range entries {
			if time.Unix(entry.Timestamp, 0).After(t) {
				executionCounts[name]++
			}
		}
	}

	stats := make([]UsageCommandStat, 0, len(executionCounts))
	for name, count := range executionCounts {
		stats = append(stats, UsageCommandStat{Name: name, Count: count})
	}

	sortStats(stats)
	return stats
}

// Most executed first, ties broken by name so output is stable.
func sortStats(stats []UsageCommandStat) {
	slices.SortFunc(stats, func(a, b UsageCommandStat) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}

		return strings.Compare(a.Name, b.Name)
	})
}

const USER_USAGE_KEY_PREFIX = "usage/users/"

// Returns an empty usage (not an error) for users that never ran a command.
func GetUserUsage(db *badger.DB, discordID string) (*UserUsage, error) {
	usage, err := GetInsensitive[UserUsage](db, USER_USAGE_KEY_PREFIX+discordID)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return &UserUsage{CommandHistory: map[string][]UsageCommandEntry{}}, nil
	}

	return usage, err
}

// Updates the user's usage using discordID as the key, adding entry to the history slice associated with the cmdName.
//
// All of this is done in a single transaction as opposed to two transactions (View-Get + Update-Set).
func UpdateUserUsage(db *badger.DB, discordID, cmdName string, entry UsageCommandEntry) error {
	return db.Update(func(txn *badger.Txn) error {
		key := USER_USAGE_KEY_PREFIX + discordID

		usage, err := GetInsensitiveTxn[UserUsage](txn, key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			usage, err = &UserUsage{}, nil
		}
		if err != nil {
			return err
		}
		if usage.CommandHistory == nil {
			usage.CommandHistory = make(map[string][]UsageCommandEntry)
		}

		usage.CommandHistory[cmdName] = append(usage.CommandHistory[cmdName], entry)

		data, err := json.Marshal(usage)
		if err != nil {
			return err
		}

		return txn.Set([]byte(strings.ToLower(key)), data)
	})
}
