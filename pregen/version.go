/*

Package pregen contains values which are pre-generated for the build process.

*/
package pregen

const (
	// Version is auto-generated from ChangeLog.md
	Version = "v0.3.0"
	// ReleaseDate is also auto-generated from ChangeLog.md
	ReleaseDate = "2026-10-18"
)
