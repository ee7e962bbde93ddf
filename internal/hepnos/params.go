package hepnos

import "fmt"

// DatabaseCounts holds the number of databases per object kind.
type DatabaseCounts struct {
	Dataset int
	Run     int
	Subrun  int
	Event   int
	Product int
}

// Of returns the count for kind k.
func (c DatabaseCounts) Of(k ObjectKind) int {
	switch k {
	case KindDataset:
		return c.Dataset
	case KindRun:
		return c.Run
	case KindSubrun:
		return c.Subrun
	case KindEvent:
		return c.Event
	case KindProduct:
		return c.Product
	}
	return 0
}

// Total returns the number of databases over all kinds.
func (c DatabaseCounts) Total() int {
	return c.Dataset + c.Run + c.Subrun + c.Event + c.Product
}

// Params holds every input of a generation.
type Params struct {
	// Address is the Mercury protocol or address, e.g. "na+sm".
	Address string

	UseProgressXStream bool
	NumRPCXStreams     int
	NumRPCPools        int

	NumProviders      int
	NumQueueProviders int

	Databases DatabaseCounts
	// DatabaseType overrides the per-kind default backend when non-empty.
	DatabaseType string
	// PathPrefix is the directory under which disk-backed databases live.
	PathPrefix string

	// GroupFile is the SSG group file written by the service at bootstrap.
	GroupFile string
}

// DefaultParams returns the defaults of the hepnos-gen-config command line.
// Address has no default and must be set by the caller.
func DefaultParams() Params {
	return Params{
		NumProviders: 1,
		Databases: DatabaseCounts{
			Dataset: 1,
			Run:     1,
			Subrun:  1,
			Event:   1,
			Product: 1,
		},
		GroupFile: "hepnos.ssg",
	}
}

// Validate checks the consistency of the parameters. The first three checks run
// in a fixed order so that inputs violating several constraints always report
// the same one.
func (p Params) Validate() error {
	total := p.Databases.Total()
	if total < p.NumProviders {
		return fmt.Errorf("%w: total number of databases (%d) is smaller than the number of providers (%d)",
			ErrConstraintViolation, total, p.NumProviders)
	}
	if p.NumRPCPools > p.NumRPCXStreams {
		return fmt.Errorf("%w: number of RPC pools (%d) exceeds number of RPC xstreams (%d)",
			ErrConstraintViolation, p.NumRPCPools, p.NumRPCXStreams)
	}
	if p.NumProviders < p.NumRPCPools {
		return fmt.Errorf("%w: number of RPC pools (%d) exceeds the number of providers (%d)",
			ErrConstraintViolation, p.NumRPCPools, p.NumProviders)
	}

	counts := []struct {
		name  string
		value int
	}{
		{"rpc xstreams", p.NumRPCXStreams},
		{"rpc pools", p.NumRPCPools},
		{"queue providers", p.NumQueueProviders},
		{"dataset databases", p.Databases.Dataset},
		{"run databases", p.Databases.Run},
		{"subrun databases", p.Databases.Subrun},
		{"event databases", p.Databases.Event},
		{"product databases", p.Databases.Product},
	}
	for _, c := range counts {
		if c.value < 0 {
			return fmt.Errorf("%w: number of %s cannot be negative (%d)", ErrConstraintViolation, c.name, c.value)
		}
	}
	if p.NumProviders < 1 {
		return fmt.Errorf("%w: at least one provider is required (%d)", ErrConstraintViolation, p.NumProviders)
	}
	if p.Address == "" {
		return ErrMissingAddress
	}
	return nil
}

func (p Params) topology() TopologyParams {
	return TopologyParams{
		UseProgressXStream: p.UseProgressXStream,
		NumRPCXStreams:     p.NumRPCXStreams,
		NumRPCPools:        p.NumRPCPools,
	}
}

func (p Params) databases() DatabaseParams {
	return DatabaseParams{
		Counts:     p.Databases,
		Type:       p.DatabaseType,
		PathPrefix: p.PathPrefix,
	}
}

func (p Params) providers() ProviderParams {
	return ProviderParams{
		NumProviders:      p.NumProviders,
		NumQueueProviders: p.NumQueueProviders,
		NumRPCPools:       p.NumRPCPools,
	}
}
