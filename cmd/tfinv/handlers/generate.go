// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic
// and can be tested independently of the CLI framework.
package handlers

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/Kosenuel/protocoast-ansible/internal/inventory"
	"github.com/Kosenuel/protocoast-ansible/internal/terraform"
	"github.com/Kosenuel/protocoast-ansible/internal/util/pathutil"
)

// ErrNoHosts is returned when the outputs document yields no hosts at
// all. main maps it to a dedicated exit code so callers can tell a bad
// outputs document apart from an I/O failure.
var ErrNoHosts = errors.New("no hosts discovered in outputs")

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// loadOutputs reads and normalizes the Terraform outputs document.
	loadOutputs = terraform.LoadOutputs

	// writeInventory renders and persists the inventory YAML.
	writeInventory = inventory.Write
)

// GenerateOptions carries the generate command's flag values.
type GenerateOptions struct {
	OutputsPath    string
	User           string
	PrivateKeyPath string
	InventoryPath  string
}

// Generate converts a Terraform outputs document into a Kubespray
// inventory file.
//
// The pipeline is load, build, write: outputs are read and normalized,
// hosts and groups are derived in memory, and the inventory is written
// in a single pass. Builder warnings never abort the run; they are
// printed after the success line. An outputs document that produces
// zero hosts returns ErrNoHosts before anything is written.
func Generate(opts GenerateOptions) error {
	outputs, err := loadOutputs(opts.OutputsPath)
	if err != nil {
		return err
	}

	result := inventory.Build(outputs, opts.User, pathutil.ExpandHome(opts.PrivateKeyPath))
	if len(result.Hosts) == 0 {
		printWarnings(result.Warnings)
		return fmt.Errorf("%w; check the outputs JSON for control_plane/worker/bastion keys", ErrNoHosts)
	}

	outPath, err := filepath.Abs(opts.InventoryPath)
	if err != nil {
		return fmt.Errorf("failed to resolve inventory path: %w", err)
	}
	if err := writeInventory(outPath, result.Hosts, result.Groups); err != nil {
		return err
	}

	fmt.Printf("Inventory written to %s\n", outPath)
	printWarnings(result.Warnings)
	return nil
}

func printWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}
	fmt.Println()
	fmt.Println("Warnings:")
	for _, w := range warnings {
		fmt.Printf("- %s\n", w)
	}
}
