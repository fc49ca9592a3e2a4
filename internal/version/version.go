// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Full two-layer refraction model, noise power helpers, summary mode
// 0.2.0 - Barycentric Earth ephemeris, LSRK velocity corrections, source catalog
// 0.1.0 - Initial release: TUI dashboard, Sun/Moon positions, coordinate transforms
