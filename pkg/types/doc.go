// Package types contains the shared interfaces used across the filter.
//
// Keeping the filesystem interface here lets pkg/copier and pkg/config
// depend on an abstraction while pkg/filesystem provides the OS and
// in-memory implementations.
package types
