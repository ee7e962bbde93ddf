package hepnos

import (
	"context"

	"github.com/vk/hepnos-wizard/internal/backend"
	"github.com/vk/hepnos-wizard/internal/ctxlog"
)

// Generator turns Params into a Document. It holds no per-call state and may
// be shared.
type Generator struct {
	backends *backend.Registry
}

// New returns a Generator resolving database types against backends. A nil
// registry selects backend.Default().
func New(backends *backend.Registry) *Generator {
	if backends == nil {
		backends = backend.Default()
	}
	return &Generator{backends: backends}
}

// Generate runs a generation with the default backend registry.
func Generate(ctx context.Context, p Params) (*Document, error) {
	return New(nil).Generate(ctx, p)
}

// Generate validates p and builds the document. No document is returned on error.
func (g *Generator) Generate(ctx context.Context, p Params) (*Document, error) {
	logger := ctxlog.FromContext(ctx)

	if err := p.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("Parameters validated.", "databases", p.Databases.Total(), "providers", p.NumProviders, "queue_providers", p.NumQueueProviders)

	if p.DatabaseType != "" {
		if _, known := g.backends.Lookup(p.DatabaseType); !known {
			logger.Warn("Unknown database type, assuming it does not need a path.", "database_type", p.DatabaseType, "known", g.backends.Names())
		}
	}

	topo, err := BuildTopology(p.topology())
	if err != nil {
		return nil, err
	}
	logger.Debug("Topology built.", "pools", len(topo.Pools), "xstreams", len(topo.XStreams), "rotation", topo.Rotation)

	dbs, err := PartitionDatabases(p.databases(), g.backends)
	if err != nil {
		return nil, err
	}
	logger.Debug("Databases partitioned.", "count", len(dbs))

	providers, err := AssignProviders(p.providers(), topo.Rotation, dbs)
	if err != nil {
		return nil, err
	}
	logger.Debug("Providers assigned.", "count", len(providers))

	doc := assemble(p, topo, providers)
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

func assemble(p Params, topo Topology, providers []Provider) *Document {
	libraries := map[string]string{StorageProviderType: StorageLibrary}
	if p.NumQueueProviders > 0 {
		libraries[QueueProviderType] = QueueLibrary
	}

	return &Document{
		Margo: Margo{
			Address: p.Address,
			Argobots: Argobots{
				Pools:    topo.Pools,
				XStreams: topo.XStreams,
			},
			ProgressPool: topo.ProgressPool,
			RPCPool:      topo.RPCPool,
		},
		Libraries: libraries,
		Groups: []Group{{
			Name:      GroupName,
			Bootstrap: GroupBootstrap,
			GroupFile: p.GroupFile,
			Pool:      topo.Pools[0].Name,
			Swim:      Swim{Disabled: true},
		}},
		Providers: providers,
	}
}
