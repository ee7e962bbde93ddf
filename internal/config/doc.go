// Package config defines the format-agnostic generation profile, along with
// the Loader interface for reading profiles from files.
//
// A Profile only carries the settings it mentions. Profiles are layered on top
// of hepnos.DefaultParams(), lowest precedence first, so a file profile can
// be overridden by environment variables and command-line flags. Concrete
// loaders, such as for HCL, are provided in separate packages.
package config
