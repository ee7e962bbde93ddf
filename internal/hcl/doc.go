// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. Profiles look like:
//
//	address          = "ofi+tcp"
//	progress_xstream = true
//	group_file       = "hepnos.ssg"
//
//	rpc {
//	  xstreams = 4
//	  pools    = 2
//	}
//
//	providers {
//	  storage = 4
//	  queue   = 1
//	}
//
//	databases {
//	  type        = "rocksdb"
//	  path_prefix = format("%s/hepnos", env.SCRATCH)
//	  event       = 16
//	}
//
// Expressions may read environment variables through env.NAME and call
// upper, lower, format, join, min and max.
package hcl
