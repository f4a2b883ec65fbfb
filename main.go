// Package main provides the entrypoint for gh-jira-bridge.
package main

import (
	"os"

	"github.com/isometry/gh-jira-bridge/cmd"
)

func main() {
	if err := cmd.New().Execute(); err != nil {
		os.Exit(1)
	}
}
