package main

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/markdingo/dnsrecon/pregen"
)

const (
	programName = "dnsrecon"

	// Uppercase HTTPS implies BuildInfo was empty.
	defaultProjectURL = "HTTPS://github.com/markdingo/dnsrecon"
)

// config holds the settings from the command line. It is populated by cobra and never
// changed once a subcommand starts running.
type config struct {
	projectURL string

	server    string // Send all queries here rather than to the system resolvers
	outputDir string // Where nameserver lists are saved

	logMinorFlag bool // Details of each lookup
	logDebugFlag bool // Developer flag
	noColorFlag  bool
	versionFlag  bool
}

func newConfig() *config {
	t := &config{projectURL: defaultProjectURL}
	info, ok := debug.ReadBuildInfo()
	if ok && len(info.Main.Path) > 0 {
		t.projectURL = info.Main.Path // Override with embedded if present
	}

	return t
}

func (t *config) printVersion(w io.Writer) {
	fmt.Fprintf(w, "Program:     %s %s (%s)\n",
		programName, pregen.Version, pregen.ReleaseDate)
	fmt.Fprintf(w, "Project:     %s\n", t.projectURL)
}
