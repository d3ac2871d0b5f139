package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-restviews/internal/cli"
)

// Set via ldflags at build time.
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := cli.Execute(buildVersion, buildDate, buildCommit); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
