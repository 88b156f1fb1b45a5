// Package player renders the HTML shell that hosts a SCO in an embedded frame
// and bridges the SCORM 1.2 JavaScript API to the runtime endpoints.
package player
