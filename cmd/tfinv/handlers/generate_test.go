package handlers

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kosenuel/protocoast-ansible/internal/inventory"
	"github.com/Kosenuel/protocoast-ansible/internal/terraform"
)

// saveAndRestoreGenerateFactories saves and restores generate factory functions.
func saveAndRestoreGenerateFactories(t *testing.T) {
	origLoadOutputs := loadOutputs
	origWriteInventory := writeInventory

	t.Cleanup(func() {
		loadOutputs = origLoadOutputs
		writeInventory = origWriteInventory
	})
}

func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func defaultOpts() GenerateOptions {
	return GenerateOptions{
		OutputsPath:    "outputs.json",
		User:           "ubuntu",
		PrivateKeyPath: "/k/id",
		InventoryPath:  "inventory/mycluster/hosts.yaml",
	}
}

func TestGenerate_Success(t *testing.T) {
	saveAndRestoreGenerateFactories(t)

	loadOutputs = func(path string) (terraform.Outputs, error) {
		assert.Equal(t, "outputs.json", path)
		return terraform.Outputs{
			"control_plane_ips": []any{"10.0.0.1", "10.0.0.2"},
		}, nil
	}

	var wrotePath string
	var wroteHosts []inventory.Host
	var wroteGroups []inventory.Group
	writeInventory = func(path string, hosts []inventory.Host, groups []inventory.Group) error {
		wrotePath = path
		wroteHosts = hosts
		wroteGroups = groups
		return nil
	}

	var err error
	output := captureOutput(func() {
		err = Generate(defaultOpts())
	})

	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(wrotePath))
	require.Len(t, wroteHosts, 2)
	assert.Equal(t, "k8s-cp-1", wroteHosts[0].Name)
	assert.Equal(t, "/k/id", wroteHosts[0].PrivateKeyFile)
	assert.Len(t, wroteGroups, 3)
	assert.Contains(t, output, "Inventory written to ")
	assert.NotContains(t, output, "Warnings:")
}

func TestGenerate_PrintsWarnings(t *testing.T) {
	saveAndRestoreGenerateFactories(t)

	loadOutputs = func(string) (terraform.Outputs, error) {
		return terraform.Outputs{
			"worker_names": []any{"w-a", "w-b"},
			"worker_ips":   []any{"10.0.1.1"},
		}, nil
	}
	writeInventory = func(string, []inventory.Host, []inventory.Group) error {
		return nil
	}

	var err error
	output := captureOutput(func() {
		err = Generate(defaultOpts())
	})

	require.NoError(t, err)
	assert.Contains(t, output, "Warnings:")
	assert.Contains(t, output, "- Missing IP for host w-b")
}

func TestGenerate_NoHosts(t *testing.T) {
	saveAndRestoreGenerateFactories(t)

	loadOutputs = func(string) (terraform.Outputs, error) {
		return terraform.Outputs{"control_plane_count": float64(3)}, nil
	}
	writeCalled := false
	writeInventory = func(string, []inventory.Host, []inventory.Group) error {
		writeCalled = true
		return nil
	}

	var err error
	output := captureOutput(func() {
		err = Generate(defaultOpts())
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoHosts)
	assert.Contains(t, err.Error(), "check the outputs JSON")
	assert.False(t, writeCalled, "nothing should be written on an empty result")
	assert.Contains(t, output, "control_plane_ips missing but control_plane_count present")
}

func TestGenerate_LoadErrorPropagates(t *testing.T) {
	saveAndRestoreGenerateFactories(t)

	loadErr := errors.New("failed to read outputs file: boom")
	loadOutputs = func(string) (terraform.Outputs, error) {
		return nil, loadErr
	}
	writeInventory = func(string, []inventory.Host, []inventory.Group) error {
		t.Fatal("write must not be called when loading fails")
		return nil
	}

	err := Generate(defaultOpts())

	assert.ErrorIs(t, err, loadErr)
}

func TestGenerate_WriteErrorPropagates(t *testing.T) {
	saveAndRestoreGenerateFactories(t)

	loadOutputs = func(string) (terraform.Outputs, error) {
		return terraform.Outputs{"worker_ips": []any{"10.0.1.1"}}, nil
	}
	writeErr := errors.New("failed to write inventory: disk full")
	writeInventory = func(string, []inventory.Host, []inventory.Group) error {
		return writeErr
	}

	var err error
	captureOutput(func() {
		err = Generate(defaultOpts())
	})

	assert.ErrorIs(t, err, writeErr)
}

func TestGenerate_ExpandsKeyPath(t *testing.T) {
	saveAndRestoreGenerateFactories(t)

	home := t.TempDir()
	t.Setenv("HOME", home)

	loadOutputs = func(string) (terraform.Outputs, error) {
		return terraform.Outputs{"worker_ips": []any{"10.0.1.1"}}, nil
	}
	var wroteHosts []inventory.Host
	writeInventory = func(_ string, hosts []inventory.Host, _ []inventory.Group) error {
		wroteHosts = hosts
		return nil
	}

	opts := defaultOpts()
	opts.PrivateKeyPath = "~/.ssh/id_rsa"

	var err error
	captureOutput(func() {
		err = Generate(opts)
	})

	require.NoError(t, err)
	require.Len(t, wroteHosts, 1)
	assert.Equal(t, filepath.Join(home, ".ssh", "id_rsa"), wroteHosts[0].PrivateKeyFile)
}
