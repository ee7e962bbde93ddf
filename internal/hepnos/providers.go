package hepnos

import "fmt"

// ProviderParams are the inputs of AssignProviders.
type ProviderParams struct {
	NumProviders      int
	NumQueueProviders int
	NumRPCPools       int
}

// AssignProviders creates the storage providers, deals the databases out to
// them and appends the queue providers.
//
// Database i goes to storage provider i mod NumProviders regardless of its
// kind, so uneven per-kind counts give providers an uneven mix of kinds.
// Providers take pools from rotation in turn; queue providers continue the
// rotation where storage providers stopped.
func AssignProviders(p ProviderParams, rotation []string, dbs []Database) ([]Provider, error) {
	if len(dbs) < p.NumProviders {
		return nil, fmt.Errorf("%w: total number of databases (%d) is smaller than the number of providers (%d)",
			ErrConstraintViolation, len(dbs), p.NumProviders)
	}
	if p.NumProviders < p.NumRPCPools {
		return nil, fmt.Errorf("%w: number of RPC pools (%d) exceeds the number of providers (%d)",
			ErrConstraintViolation, p.NumRPCPools, p.NumProviders)
	}
	if p.NumProviders < 1 {
		return nil, fmt.Errorf("%w: at least one provider is required (%d)", ErrConstraintViolation, p.NumProviders)
	}
	if p.NumQueueProviders < 0 {
		return nil, fmt.Errorf("%w: number of queue providers cannot be negative (%d)", ErrConstraintViolation, p.NumQueueProviders)
	}
	if len(rotation) == 0 {
		return nil, fmt.Errorf("%w: no pool to bind providers to", ErrConstraintViolation)
	}

	providers := make([]Provider, 0, p.NumProviders+p.NumQueueProviders)
	for i := 0; i < p.NumProviders; i++ {
		providers = append(providers, Provider{
			Name:       fmt.Sprintf("hepnos_%d", i),
			Type:       StorageProviderType,
			Kind:       StorageProvider,
			ProviderID: i,
			Pool:       rotation[i%len(rotation)],
			Databases:  []Database{},
		})
	}

	for i, db := range dbs {
		target := &providers[i%p.NumProviders]
		target.Databases = append(target.Databases, db)
	}

	for i := 0; i < p.NumQueueProviders; i++ {
		providers = append(providers, Provider{
			Name:       fmt.Sprintf("hepnos_queues_%d", i),
			Type:       QueueProviderType,
			Kind:       QueueProvider,
			ProviderID: i,
			Pool:       rotation[(i+p.NumProviders)%len(rotation)],
		})
	}

	return providers, nil
}
