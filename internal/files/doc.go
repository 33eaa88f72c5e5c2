// Package files provides file system discovery for .SIM simulation output
// documents. All operations are relative to a base path to keep callers
// portable.
package files
