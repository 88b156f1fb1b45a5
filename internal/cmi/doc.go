// Package cmi validates SCORM 1.2 tracking writes before persistence.
//
// Only a small safety-relevant subset of the CMI 1.2 data model is handled:
// six allow-listed elements with per-element length limits and a closed
// vocabulary for lesson status. Everything here is a pure function; the
// caller owns persistence and attempt state transitions.
package cmi
