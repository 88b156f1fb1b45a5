// Package server wires the HTTP surface: course management under /api, the
// tokenless player shell and runtime endpoints, and static content delivery.
package server
