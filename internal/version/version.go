// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - HTTP/WebSocket server, Prometheus metrics, config hot reload
// 0.2.0 - Pass plans and elevation traces, Sun and Moon ephemerides
// 0.1.0 - Initial release: time scales, observed places, TUI clock and star table
