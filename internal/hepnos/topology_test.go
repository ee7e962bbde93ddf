package hepnos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func poolNames(pools []Pool) []string {
	names := make([]string, len(pools))
	for i, p := range pools {
		names[i] = p.Name
	}
	return names
}

func TestBuildTopology_Defaults(t *testing.T) {
	topo, err := BuildTopology(TopologyParams{})
	require.NoError(t, err)

	assert.Equal(t, []string{PrimaryPool}, poolNames(topo.Pools))
	require.Len(t, topo.XStreams, 1)
	assert.Equal(t, PrimaryPool, topo.XStreams[0].Name)
	assert.Equal(t, PrimaryPool, topo.ProgressPool)
	assert.Equal(t, PrimaryPool, topo.RPCPool)
	assert.Equal(t, []string{PrimaryPool}, topo.Rotation)
}

func TestBuildTopology_ProgressXStream(t *testing.T) {
	topo, err := BuildTopology(TopologyParams{UseProgressXStream: true})
	require.NoError(t, err)

	assert.Equal(t, []string{PrimaryPool, ProgressPool}, poolNames(topo.Pools))
	assert.Equal(t, ProgressPool, topo.ProgressPool)
	require.Len(t, topo.XStreams, 2)
	assert.Equal(t, XStream{
		Name:      ProgressPool,
		Scheduler: Scheduler{Type: SchedulerType, Pools: []string{ProgressPool}},
	}, topo.XStreams[1])
}

func TestBuildTopology_RPCPoolBinding(t *testing.T) {
	topo, err := BuildTopology(TopologyParams{NumRPCXStreams: 5, NumRPCPools: 2})
	require.NoError(t, err)

	assert.Equal(t, []string{PrimaryPool, "__rpc_0__", "__rpc_1__"}, poolNames(topo.Pools))
	for _, p := range topo.Pools {
		assert.Equal(t, PoolKindFIFO, p.Kind)
		assert.Equal(t, PoolAccess, p.Access)
	}
	assert.Equal(t, []string{"__rpc_0__", "__rpc_1__"}, topo.Rotation)

	rpc := topo.XStreams[1:]
	require.Len(t, rpc, 5)
	for i, xs := range rpc {
		assert.Equal(t, rpcName(i), xs.Name)
		assert.Equal(t, SchedulerType, xs.Scheduler.Type)
		assert.Equal(t, []string{topo.Rotation[i%2]}, xs.Scheduler.Pools)
	}
}

func TestBuildTopology_XStreamsWithoutRPCPools(t *testing.T) {
	topo, err := BuildTopology(TopologyParams{NumRPCXStreams: 3})
	require.NoError(t, err)

	assert.Equal(t, []string{PrimaryPool}, poolNames(topo.Pools))
	require.Len(t, topo.XStreams, 4)
	for _, xs := range topo.XStreams[1:] {
		assert.Equal(t, []string{PrimaryPool}, xs.Scheduler.Pools)
	}
}

func TestBuildTopology_MorePoolsThanXStreams(t *testing.T) {
	_, err := BuildTopology(TopologyParams{NumRPCXStreams: 1, NumRPCPools: 2})
	require.ErrorIs(t, err, ErrConstraintViolation)
}
