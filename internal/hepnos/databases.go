package hepnos

import (
	"fmt"
	"maps"
	"path/filepath"

	"github.com/vk/hepnos-wizard/internal/backend"
)

// DatabaseParams are the inputs of PartitionDatabases.
type DatabaseParams struct {
	Counts DatabaseCounts
	// Type overrides the per-kind default backend when non-empty.
	Type       string
	PathPrefix string
}

// NewDatabase describes the index-th database of the given kind. The config map
// is copied so that descriptors never share state.
func NewDatabase(kind string, index int, typ string, config map[string]any) (Database, error) {
	k, err := ParseObjectKind(kind)
	if err != nil {
		return Database{}, err
	}
	cfg := make(map[string]any, len(config))
	maps.Copy(cfg, config)
	return Database{
		Name:   k.DatabaseName(index),
		Kind:   k,
		Type:   typ,
		Config: cfg,
	}, nil
}

// PartitionDatabases returns every database in kind-major order: all dataset
// databases, then run, subrun, event and product databases.
func PartitionDatabases(p DatabaseParams, backends *backend.Registry) ([]Database, error) {
	dbs := make([]Database, 0, p.Counts.Total())
	for _, kind := range ObjectKinds() {
		typ := p.Type
		if typ == "" {
			typ = kind.DefaultBackend()
		}
		diskBacked := backends.IsDiskBacked(typ)
		if diskBacked && p.PathPrefix == "" {
			return nil, fmt.Errorf("%w: database type %q", ErrMissingPathPrefix, typ)
		}

		for i := 0; i < p.Counts.Of(kind); i++ {
			db, err := NewDatabase(string(kind), i, typ, nil)
			if err != nil {
				return nil, err
			}
			if diskBacked {
				db.Config["create_if_missing"] = true
				db.Config["path"] = filepath.Join(p.PathPrefix, db.Name)
			}
			dbs = append(dbs, db)
		}
	}
	return dbs, nil
}
