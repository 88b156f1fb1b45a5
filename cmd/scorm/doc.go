// Command scorm is the CLI for the SCORM 1.2 content service: it runs the
// server in the foreground and manages courses and attempts over its HTTP API.
package main
