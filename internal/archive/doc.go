// Package archive unpacks uploaded course packages onto the filesystem,
// preserving the archive's internal directory layout.
package archive
