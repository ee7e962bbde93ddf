package hepnos

import "fmt"

// TopologyParams are the inputs of BuildTopology.
type TopologyParams struct {
	UseProgressXStream bool
	NumRPCXStreams     int
	NumRPCPools        int
}

// Topology is the pool and execution stream layout of a document.
type Topology struct {
	Pools        []Pool
	XStreams     []XStream
	ProgressPool string
	RPCPool      string
	// Rotation lists the pools RPC work is dealt to, in order. It falls back to
	// the margo RPC pool when no dedicated RPC pool is requested.
	Rotation []string
}

func newPool(name string) Pool {
	return Pool{Name: name, Kind: PoolKindFIFO, Access: PoolAccess}
}

func newXStream(name string, pools ...string) XStream {
	return XStream{Name: name, Scheduler: Scheduler{Type: SchedulerType, Pools: pools}}
}

func rpcName(i int) string {
	return fmt.Sprintf("__rpc_%d__", i)
}

// BuildTopology lays out the pools and execution streams.
func BuildTopology(p TopologyParams) (Topology, error) {
	if p.NumRPCPools > p.NumRPCXStreams {
		return Topology{}, fmt.Errorf("%w: number of RPC pools (%d) exceeds number of RPC xstreams (%d)",
			ErrConstraintViolation, p.NumRPCPools, p.NumRPCXStreams)
	}
	if p.NumRPCPools < 0 || p.NumRPCXStreams < 0 {
		return Topology{}, fmt.Errorf("%w: RPC pool and xstream counts cannot be negative", ErrConstraintViolation)
	}

	t := Topology{
		Pools:        []Pool{newPool(PrimaryPool)},
		XStreams:     []XStream{newXStream(PrimaryPool, PrimaryPool)},
		ProgressPool: PrimaryPool,
		RPCPool:      PrimaryPool,
	}

	if p.UseProgressXStream {
		t.Pools = append(t.Pools, newPool(ProgressPool))
		t.XStreams = append(t.XStreams, newXStream(ProgressPool, ProgressPool))
		t.ProgressPool = ProgressPool
	}

	for i := 0; i < p.NumRPCPools; i++ {
		pool := newPool(rpcName(i))
		t.Pools = append(t.Pools, pool)
		t.Rotation = append(t.Rotation, pool.Name)
	}
	if p.NumRPCPools == 0 {
		t.Rotation = []string{t.RPCPool}
	}

	for i := 0; i < p.NumRPCXStreams; i++ {
		t.XStreams = append(t.XStreams, newXStream(rpcName(i), t.Rotation[i%len(t.Rotation)]))
	}

	return t, nil
}
