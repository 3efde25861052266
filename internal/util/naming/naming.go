package naming

import "fmt"

// Role prefixes for synthesized hostnames. These match the hostnames
// used in Kubespray's sample inventories so operators recognize them.
const (
	ControlPlanePrefix = "k8s-cp"
	WorkerPrefix       = "k8s-worker"
	BastionPrefix      = "bastion"
)

// Host returns the synthesized hostname for the zero-based index within
// a role. Numbering in the inventory is 1-based.
func Host(prefix string, index int) string {
	return fmt.Sprintf("%s-%d", prefix, index+1)
}

func ControlPlane(index int) string {
	return Host(ControlPlanePrefix, index)
}

func Worker(index int) string {
	return Host(WorkerPrefix, index)
}

func Bastion(index int) string {
	return Host(BastionPrefix, index)
}
