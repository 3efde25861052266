// Package main is the entry point for the tfinv CLI.
//
// tfinv converts Terraform/OpenTofu outputs describing provisioned
// cluster machines into a Kubespray-compatible Ansible inventory.
//
// For detailed usage information, run:
//
//	tfinv --help
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Kosenuel/protocoast-ansible/cmd/tfinv/commands"
	"github.com/Kosenuel/protocoast-ansible/cmd/tfinv/handlers"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Exit codes. An outputs document that yields no hosts gets its own
// code so wrapper scripts can tell it apart from I/O failures.
const (
	exitFailure = 1
	exitNoHosts = 2
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, handlers.ErrNoHosts) {
			os.Exit(exitNoHosts)
		}
		os.Exit(exitFailure)
	}
}
