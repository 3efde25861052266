// Package inventory derives a Kubespray-compatible host inventory from
// flattened Terraform outputs and renders it as YAML.
//
// Building is a pure in-memory transformation: the builder never fails,
// it only accumulates warnings and skips hosts it cannot place. Whether
// an empty result is acceptable is the caller's decision.
package inventory

// Host is a single inventory entry with its Ansible connection settings.
type Host struct {
	Name           string
	Address        string // connection IP, rendered as ansible_host and ip
	AccessAddress  string // public IP for bastion hosts, rendered as access_ip when set
	User           string
	PrivateKeyFile string
}

// Group classifies hosts by role. A leaf group lists host names
// directly; a composite group lists child group names and holds no
// hosts of its own.
type Group struct {
	Name     string
	Hosts    []string
	Children []string
}

// Result is the outcome of a build: hosts and groups in the order they
// should appear in the rendered inventory, plus the non-fatal
// diagnostics accumulated along the way.
type Result struct {
	Hosts    []Host
	Groups   []Group
	Warnings []string
}
