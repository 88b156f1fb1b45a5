// Package preflight runs environment checks before the server starts serving.
package preflight
