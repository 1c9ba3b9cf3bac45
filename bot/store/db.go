package store

import (
	"encoding/json"
	"strings"

	"github.com/dgraph-io/badger/v4"
	log "github.com/sirupsen/logrus"
)

// Opens (or creates) the badger database in dir.
func Open(dir string) (*badger.DB, error) {
	opts := badger.DefaultOptions(dir)
	opts.ZSTDCompressionLevel = 2
	opts.NumLevelZeroTables = 1
	opts.NumVersionsToKeep = 1
	opts.CompactL0OnClose = true
	opts.Logger = nil

	return badger.Open(opts)
}

// Opens a database that lives only in memory. Nothing is ever written to disk.
func OpenInMemory() (*badger.DB, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil

	return badger.Open(opts)
}

func GetInsensitiveTxn[T any](txn *badger.Txn, key string) (*T, error) {
	item, err := txn.Get([]byte(strings.ToLower(key)))
	if err != nil {
		return nil, err
	}

	out := new(T)
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, out)
	})

	return out, err
}

// Gets the value at key (lowercased) and decodes it into a new T.
// Returns [badger.ErrKeyNotFound] when nothing is stored there.
func GetInsensitive[T any](db *badger.DB, key string) (out *T, err error) {
	err = db.View(func(txn *badger.Txn) error {
		out, err = GetInsensitiveTxn[T](txn, key)
		return err
	})

	log.WithField("key", key).Trace("store get")
	return
}
