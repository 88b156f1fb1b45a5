// Package testsupport provides shared helpers for wiring configs, stores, and
// fixture archives in tests.
package testsupport
