package hcl

import "github.com/vk/hepnos-wizard/internal/config"

// fileRoot is the shape of a profile file.
type fileRoot struct {
	Address         *string         `hcl:"address,optional"`
	ProgressXStream *bool           `hcl:"progress_xstream,optional"`
	GroupFile       *string         `hcl:"group_file,optional"`
	RPC             *rpcBlock       `hcl:"rpc,block"`
	Providers       *providersBlock `hcl:"providers,block"`
	Databases       *databasesBlock `hcl:"databases,block"`
}

type rpcBlock struct {
	XStreams *int `hcl:"xstreams,optional"`
	Pools    *int `hcl:"pools,optional"`
}

type providersBlock struct {
	Storage *int `hcl:"storage,optional"`
	Queue   *int `hcl:"queue,optional"`
}

type databasesBlock struct {
	Type       *string `hcl:"type,optional"`
	PathPrefix *string `hcl:"path_prefix,optional"`
	Dataset    *int    `hcl:"dataset,optional"`
	Run        *int    `hcl:"run,optional"`
	Subrun     *int    `hcl:"subrun,optional"`
	Event      *int    `hcl:"event,optional"`
	Product    *int    `hcl:"product,optional"`
}

// translate converts a decoded file into the format-agnostic profile.
func (r *fileRoot) translate() *config.Profile {
	pr := &config.Profile{
		Address:            r.Address,
		UseProgressXStream: r.ProgressXStream,
		GroupFile:          r.GroupFile,
	}
	if r.RPC != nil {
		pr.NumRPCXStreams = r.RPC.XStreams
		pr.NumRPCPools = r.RPC.Pools
	}
	if r.Providers != nil {
		pr.NumProviders = r.Providers.Storage
		pr.NumQueueProviders = r.Providers.Queue
	}
	if r.Databases != nil {
		pr.DatabaseType = r.Databases.Type
		pr.DatabasePathPrefix = r.Databases.PathPrefix
		pr.NumDatasetDatabases = r.Databases.Dataset
		pr.NumRunDatabases = r.Databases.Run
		pr.NumSubrunDatabases = r.Databases.Subrun
		pr.NumEventDatabases = r.Databases.Event
		pr.NumProductDatabases = r.Databases.Product
	}
	return pr
}
