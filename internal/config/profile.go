package config

import "github.com/vk/hepnos-wizard/internal/hepnos"

// Profile is a partial set of generation parameters. Nil fields are unset.
type Profile struct {
	Address            *string
	UseProgressXStream *bool
	NumRPCXStreams     *int
	NumRPCPools        *int

	NumProviders      *int
	NumQueueProviders *int

	NumDatasetDatabases *int
	NumRunDatabases     *int
	NumSubrunDatabases  *int
	NumEventDatabases   *int
	NumProductDatabases *int
	DatabaseType        *string
	DatabasePathPrefix  *string

	GroupFile *string
}

// ApplyTo overwrites the fields of p that are set in the profile.
func (pr *Profile) ApplyTo(p *hepnos.Params) {
	if pr == nil {
		return
	}
	apply(&p.Address, pr.Address)
	apply(&p.UseProgressXStream, pr.UseProgressXStream)
	apply(&p.NumRPCXStreams, pr.NumRPCXStreams)
	apply(&p.NumRPCPools, pr.NumRPCPools)
	apply(&p.NumProviders, pr.NumProviders)
	apply(&p.NumQueueProviders, pr.NumQueueProviders)
	apply(&p.Databases.Dataset, pr.NumDatasetDatabases)
	apply(&p.Databases.Run, pr.NumRunDatabases)
	apply(&p.Databases.Subrun, pr.NumSubrunDatabases)
	apply(&p.Databases.Event, pr.NumEventDatabases)
	apply(&p.Databases.Product, pr.NumProductDatabases)
	apply(&p.DatabaseType, pr.DatabaseType)
	apply(&p.PathPrefix, pr.DatabasePathPrefix)
	apply(&p.GroupFile, pr.GroupFile)
}

// Merge copies the fields set in other into pr; other wins on conflicts.
func (pr *Profile) Merge(other *Profile) {
	if other == nil {
		return
	}
	override(&pr.Address, other.Address)
	override(&pr.UseProgressXStream, other.UseProgressXStream)
	override(&pr.NumRPCXStreams, other.NumRPCXStreams)
	override(&pr.NumRPCPools, other.NumRPCPools)
	override(&pr.NumProviders, other.NumProviders)
	override(&pr.NumQueueProviders, other.NumQueueProviders)
	override(&pr.NumDatasetDatabases, other.NumDatasetDatabases)
	override(&pr.NumRunDatabases, other.NumRunDatabases)
	override(&pr.NumSubrunDatabases, other.NumSubrunDatabases)
	override(&pr.NumEventDatabases, other.NumEventDatabases)
	override(&pr.NumProductDatabases, other.NumProductDatabases)
	override(&pr.DatabaseType, other.DatabaseType)
	override(&pr.DatabasePathPrefix, other.DatabasePathPrefix)
	override(&pr.GroupFile, other.GroupFile)
}

// Params returns hepnos.DefaultParams() with the given profiles applied in order.
func Params(profiles ...*Profile) hepnos.Params {
	p := hepnos.DefaultParams()
	for _, pr := range profiles {
		pr.ApplyTo(&p)
	}
	return p
}

func apply[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func override[T any](dst **T, src *T) {
	if src != nil {
		v := *src
		*dst = &v
	}
}
