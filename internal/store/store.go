// Package store is the durable session store: one record per normalized
// participant name, written whole on every persist. The interface is
// injected so tests can run against the in-memory implementation.
package store

import "github.com/nnsriram27/physpropprior-study/internal/models"

// SessionStore persists session records keyed by normalized participant
// name. Put overwrites the full record for its key; there is no merge, the
// later writer wins.
type SessionStore interface {
	Get(key string) (*models.SessionRecord, bool, error)
	Put(key string, record *models.SessionRecord) error
	All() (map[string]*models.SessionRecord, error)
}
