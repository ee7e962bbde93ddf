package hepnos

import "fmt"

// Names and constants shared with the Bedrock/Margo runtime.
const (
	PrimaryPool   = "__primary__"
	ProgressPool  = "__progress__"
	PoolKindFIFO  = "fifo_wait"
	PoolAccess    = "mpmc"
	SchedulerType = "basic_wait"

	GroupName      = "hepnos"
	GroupBootstrap = "mpi"

	StorageProviderType = "yokan"
	QueueProviderType   = "hepnos-queue"
	StorageLibrary      = "libyokan-bedrock-module.so"
	QueueLibrary        = "libhepnos-queue-bedrock-module.so"
)

// Document is the root of a generated Bedrock configuration.
type Document struct {
	Margo     Margo
	Libraries map[string]string
	Groups    []Group
	Providers []Provider
}

// Margo holds the communication layer settings.
type Margo struct {
	Address      string
	Argobots     Argobots
	ProgressPool string
	RPCPool      string
}

// Argobots holds the pools and execution streams.
type Argobots struct {
	Pools    []Pool
	XStreams []XStream
}

// Pool is a named work queue.
type Pool struct {
	Name   string
	Kind   string
	Access string
}

// XStream is an execution stream draining one or more pools.
type XStream struct {
	Name      string
	Scheduler Scheduler
}

// Scheduler binds an execution stream to pools, referenced by name.
type Scheduler struct {
	Type  string
	Pools []string
}

// Group is an SSG membership group.
type Group struct {
	Name      string
	Bootstrap string
	GroupFile string
	Pool      string
	Swim      Swim
}

// Swim holds the failure detector settings of a group.
type Swim struct {
	Disabled bool
}

// ProviderKind tells storage providers from queue providers.
type ProviderKind int

const (
	StorageProvider ProviderKind = iota
	QueueProvider
)

func (k ProviderKind) String() string {
	switch k {
	case StorageProvider:
		return "storage"
	case QueueProvider:
		return "queue"
	}
	return fmt.Sprintf("ProviderKind(%d)", int(k))
}

// Provider is a service endpoint bound to one pool.
type Provider struct {
	Name       string
	Type       string
	Kind       ProviderKind
	ProviderID int
	Pool       string
	// Databases is only populated for storage providers.
	Databases []Database
}

// Database describes one Yokan database.
type Database struct {
	Name   string
	Kind   ObjectKind
	Type   string
	Config map[string]any
}

// StorageProviders returns the storage providers in order.
func (d *Document) StorageProviders() []Provider {
	return d.providersOf(StorageProvider)
}

// QueueProviders returns the queue providers in order.
func (d *Document) QueueProviders() []Provider {
	return d.providersOf(QueueProvider)
}

func (d *Document) providersOf(kind ProviderKind) []Provider {
	var out []Provider
	for _, p := range d.Providers {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	return out
}

// Validate checks that every pool referenced by the document exists.
func (d *Document) Validate() error {
	pools := make(map[string]struct{}, len(d.Margo.Argobots.Pools))
	for _, p := range d.Margo.Argobots.Pools {
		if _, dup := pools[p.Name]; dup {
			return fmt.Errorf("%w: duplicate pool %q", ErrConstraintViolation, p.Name)
		}
		pools[p.Name] = struct{}{}
	}

	check := func(owner, pool string) error {
		if _, ok := pools[pool]; !ok {
			return fmt.Errorf("%w: %s references unknown pool %q", ErrConstraintViolation, owner, pool)
		}
		return nil
	}

	if err := check("progress pool", d.Margo.ProgressPool); err != nil {
		return err
	}
	if err := check("rpc pool", d.Margo.RPCPool); err != nil {
		return err
	}
	for _, xs := range d.Margo.Argobots.XStreams {
		for _, pool := range xs.Scheduler.Pools {
			if err := check("xstream "+xs.Name, pool); err != nil {
				return err
			}
		}
	}
	for _, g := range d.Groups {
		if err := check("group "+g.Name, g.Pool); err != nil {
			return err
		}
	}
	for _, p := range d.Providers {
		if err := check("provider "+p.Name, p.Pool); err != nil {
			return err
		}
	}
	return nil
}
