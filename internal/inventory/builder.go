package inventory

import (
	"fmt"

	"github.com/Kosenuel/protocoast-ansible/internal/terraform"
	"github.com/Kosenuel/protocoast-ansible/internal/util/naming"
)

// Output key aliases, in lookup priority order. Different versions of
// the Terraform modules in this repo exported these under slightly
// different names; the first key present wins.
var (
	controlPlaneNameKeys = []string{"control_plane_names", "control_plane_node_names", "cp_names"}
	controlPlaneIPKeys   = []string{"control_plane_ips", "control_plane_private_ips", "cp_ips"}
	workerNameKeys       = []string{"worker_names", "worker_node_names"}
	workerIPKeys         = []string{"worker_ips", "worker_private_ips"}
	bastionPrivateKeys   = []string{"bastion_private_ip", "bastion_private_ips"}
	bastionPublicKeys    = []string{"bastion_public_ip", "bastion_public_ips"}
)

// Group names understood by Kubespray.
const (
	GroupControlPlane = "kube_control_plane"
	GroupNode         = "kube_node"
	GroupEtcd         = "etcd"
	GroupCluster      = "k8s_cluster"
)

type builder struct {
	outputs  terraform.Outputs
	user     string
	keyFile  string
	warnings []string
}

// Build derives hosts and groups from the output set. It never fails:
// anything suspicious becomes a warning and the affected host is
// skipped rather than emitted with a missing address.
func Build(outputs terraform.Outputs, user, keyFile string) Result {
	b := &builder{outputs: outputs, user: user, keyFile: keyFile}

	if _, ok := b.pick(controlPlaneIPKeys); !ok {
		if _, present := outputs["control_plane_count"]; present {
			b.warnf("control_plane_ips missing but control_plane_count present")
		}
	}

	bastion := b.bastionHosts()
	controlPlane := b.roleHosts(controlPlaneNameKeys, controlPlaneIPKeys, naming.ControlPlanePrefix)
	workers := b.roleHosts(workerNameKeys, workerIPKeys, naming.WorkerPrefix)

	return Result{
		Hosts:    b.merge(bastion, controlPlane, workers),
		Groups:   buildGroups(controlPlane, workers),
		Warnings: b.warnings,
	}
}

// pick returns the first output present among the candidate keys.
func (b *builder) pick(candidates []string) (any, bool) {
	for _, key := range candidates {
		if v, ok := b.outputs[key]; ok {
			return v, true
		}
	}
	return nil, false
}

func (b *builder) warnf(format string, args ...any) {
	b.warnings = append(b.warnings, fmt.Sprintf(format, args...))
}

// roleHosts builds the hosts for one role from its name and address
// outputs. Hostnames missing at an index are synthesized from the role
// prefix; hosts missing an address at their index are skipped with a
// warning. A role with neither output present yields no hosts and no
// warning, since absent roles are normal.
func (b *builder) roleHosts(nameKeys, ipKeys []string, prefix string) []Host {
	namesVal, namesPresent := b.pick(nameKeys)
	ipsVal, ipsPresent := b.pick(ipKeys)
	if !namesPresent && !ipsPresent {
		return nil
	}

	names := stringList(namesVal)
	ips := stringList(ipsVal)

	count := max(len(names), len(ips))
	hosts := make([]Host, 0, count)
	for i := 0; i < count; i++ {
		name := naming.Host(prefix, i)
		if i < len(names) && names[i] != "" {
			name = names[i]
		}
		if i >= len(ips) || ips[i] == "" {
			b.warnf("Missing IP for host %s", name)
			continue
		}
		hosts = append(hosts, Host{
			Name:           name,
			Address:        ips[i],
			User:           b.user,
			PrivateKeyFile: b.keyFile,
		})
	}
	return hosts
}

// bastionHosts handles the bastion outputs, which do not go through the
// generic role synthesis: a bastion is expected to be singular or a
// short list, and it carries an extra access address for NAT/public-IP
// setups. The private address may be a scalar or a sequence; the public
// address is paired index-wise only when it is a sequence of sufficient
// length (scalar public addresses pair with a scalar private address
// only). No bastion outputs at all is normal and produces nothing.
func (b *builder) bastionHosts() []Host {
	privVal, _ := b.pick(bastionPrivateKeys)
	pubVal, _ := b.pick(bastionPublicKeys)

	if list, isList := privVal.([]any); isList {
		var pubs []string
		if pubList, ok := pubVal.([]any); ok {
			pubs = stringList(pubList)
		}
		hosts := make([]Host, 0, len(list))
		for i, entry := range list {
			h := Host{
				Name:           naming.Bastion(i),
				Address:        scalarString(entry),
				User:           b.user,
				PrivateKeyFile: b.keyFile,
			}
			if i < len(pubs) {
				h.AccessAddress = pubs[i]
			}
			hosts = append(hosts, h)
		}
		return hosts
	}

	priv := scalarString(privVal)
	if priv == "" {
		return nil
	}
	h := Host{
		Name:           naming.Bastion(0),
		Address:        priv,
		User:           b.user,
		PrivateKeyFile: b.keyFile,
	}
	switch pub := pubVal.(type) {
	case string:
		h.AccessAddress = pub
	case []any:
		if len(pub) > 0 {
			h.AccessAddress = scalarString(pub[0])
		}
	}
	return []Host{h}
}

// merge flattens the role host lists into one ordered collection:
// bastion first, then control plane, then workers. Later entries win on
// a name collision, which well-formed outputs never produce, so an
// actual collision is surfaced as a warning.
func (b *builder) merge(lists ...[]Host) []Host {
	var ordered []Host
	index := make(map[string]int)
	for _, list := range lists {
		for _, h := range list {
			if at, seen := index[h.Name]; seen {
				b.warnf("duplicate host name %q (keeping later definition)", h.Name)
				ordered[at] = h
				continue
			}
			index[h.Name] = len(ordered)
			ordered = append(ordered, h)
		}
	}
	return ordered
}

// buildGroups assigns the role groups. Every control-plane host is also
// an etcd host; k8s_cluster is always present and references whichever
// of the two leaf role groups exist. Bastion hosts belong to no group.
func buildGroups(controlPlane, workers []Host) []Group {
	cpNames := hostNames(controlPlane)
	workerNames := hostNames(workers)

	var groups []Group
	if len(cpNames) > 0 {
		groups = append(groups, Group{Name: GroupControlPlane, Hosts: cpNames})
	}
	if len(workerNames) > 0 {
		groups = append(groups, Group{Name: GroupNode, Hosts: workerNames})
	}
	if len(cpNames) > 0 {
		groups = append(groups, Group{Name: GroupEtcd, Hosts: cpNames})
	}

	cluster := Group{Name: GroupCluster, Children: []string{}}
	if len(cpNames) > 0 {
		cluster.Children = append(cluster.Children, GroupControlPlane)
	}
	if len(workerNames) > 0 {
		cluster.Children = append(cluster.Children, GroupNode)
	}
	return append(groups, cluster)
}

func hostNames(hosts []Host) []string {
	if len(hosts) == 0 {
		return nil
	}
	names := make([]string, len(hosts))
	for i, h := range hosts {
		names[i] = h.Name
	}
	return names
}

// stringList coerces an output value into a list of strings. A scalar
// becomes a single-element list, a sequence is converted element-wise
// (preserving indices so names and addresses stay aligned), and null or
// absent values yield nil.
func stringList(v any) []string {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		if t == "" {
			return nil
		}
		return []string{t}
	case []string:
		return t
	case []any:
		out := make([]string, len(t))
		for i, e := range t {
			out[i] = scalarString(e)
		}
		return out
	}
	return nil
}

// scalarString renders a scalar output value as a string; null and
// non-scalar values become the empty string.
func scalarString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case map[string]any, []any:
		return ""
	}
	return fmt.Sprint(v)
}
