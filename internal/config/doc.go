// Package config provides configuration loading, merging, and validation
// facilities for franny-sync.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. JSON config file
//  2. Environment variables
//  3. Command-line flags
//
// Fields left empty by every source are filled from the profile directory
// and the platform defaults (see [StructuredConfig.applyDefaults]).
//
// The main entry points are [BindFlags], which registers the flags on a
// cobra/pflag flag set, and [GetStructuredConfig].
package config
