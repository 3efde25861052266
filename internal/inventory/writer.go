package inventory

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Write renders the inventory as YAML and writes it to path, creating
// missing parent directories. The document is assembled as an explicit
// node tree because hosts and groups must appear in build order;
// marshaling plain Go maps would alphabetize the keys.
func Write(path string, hosts []Host, groups []Group) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(document(hosts, groups)); err != nil {
		return fmt.Errorf("failed to marshal inventory: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to marshal inventory: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create inventory directory: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write inventory: %w", err)
	}
	return nil
}

// document builds the root node: one "all" group holding every host's
// connection attributes plus a children mapping with the role groups.
func document(hosts []Host, groups []Group) *yaml.Node {
	hostsNode := mapping()
	for _, h := range hosts {
		hostsNode.Content = append(hostsNode.Content, scalar(h.Name), hostAttrs(h))
	}

	childrenNode := mapping()
	for _, g := range groups {
		childrenNode.Content = append(childrenNode.Content, scalar(g.Name), groupNode(g))
	}

	all := mapping()
	all.Content = append(all.Content, scalar("hosts"), hostsNode)
	all.Content = append(all.Content, scalar("children"), childrenNode)

	root := mapping()
	root.Content = append(root.Content, scalar("all"), all)
	return root
}

func hostAttrs(h Host) *yaml.Node {
	n := mapping()
	n.Content = append(n.Content, scalar("ansible_host"), scalar(h.Address))
	n.Content = append(n.Content, scalar("ip"), scalar(h.Address))
	if h.AccessAddress != "" {
		n.Content = append(n.Content, scalar("access_ip"), scalar(h.AccessAddress))
	}
	n.Content = append(n.Content, scalar("ansible_user"), scalar(h.User))
	n.Content = append(n.Content, scalar("ansible_ssh_private_key_file"), scalar(h.PrivateKeyFile))
	return n
}

// groupNode renders a leaf group as a hosts mapping with empty
// per-host overrides, and a composite group as a children mapping with
// empty child entries. Placement is the only information conveyed.
func groupNode(g Group) *yaml.Node {
	n := mapping()
	if g.Children != nil {
		children := mapping()
		for _, c := range g.Children {
			children.Content = append(children.Content, scalar(c), mapping())
		}
		n.Content = append(n.Content, scalar("children"), children)
		return n
	}
	hostsNode := mapping()
	for _, name := range g.Hosts {
		hostsNode.Content = append(hostsNode.Content, scalar(name), mapping())
	}
	n.Content = append(n.Content, scalar("hosts"), hostsNode)
	return n
}

func mapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
