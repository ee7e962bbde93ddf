// Package hepnos derives the Bedrock deployment document of a HEPnOS service
// from a handful of sizing parameters.
//
// Generation runs in three stages, each a pure function over its inputs:
//
//   - [BuildTopology] lays out the Argobots pools and execution streams.
//   - [PartitionDatabases] names the Yokan databases, kind by kind.
//   - [AssignProviders] creates the providers and deals the databases out
//     to them round-robin by global position.
//
// [Generate] validates the parameters, runs the stages and assembles the
// resulting [Document]. Identical parameters always yield identical documents.
//
// # Errors
//
//   - [ErrInvalidObjectKind] - object kind outside dataset/run/subrun/event/product
//   - [ErrMissingPathPrefix] - disk-backed backend without a path prefix
//   - [ErrConstraintViolation] - inconsistent pool, xstream, provider or database counts
//   - [ErrMissingAddress] - no Mercury address given
package hepnos
