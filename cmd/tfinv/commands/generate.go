package commands

import (
	"github.com/spf13/cobra"

	"github.com/Kosenuel/protocoast-ansible/cmd/tfinv/handlers"
)

// Generate returns the command that converts Terraform outputs into a
// Kubespray inventory.
//
// Required flags:
//
//	--outputs, -o: Path to the outputs JSON (terraform output -json)
//
// Optional flags:
//
//	--user, -u: SSH user for Ansible (default: ubuntu)
//	--key, -k:  Private SSH key for Ansible (default: ~/.ssh/id_rsa)
//	--out:      Inventory YAML destination (default: inventory/mycluster/hosts.yaml)
func Generate() *cobra.Command {
	var opts handlers.GenerateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the inventory YAML",
		Long: `Generate a Kubespray-compatible hosts.yaml from Terraform or OpenTofu
outputs.

The outputs document is the result of 'terraform output -json'; a full
terraform.tfstate file works too. Common output names exported by the
modules in this repo are recognized, for example:

  control_plane_names / control_plane_ips
  worker_names / worker_ips
  bastion_public_ip / bastion_private_ip

Hostnames are synthesized when the name outputs are missing, and hosts
without an IP are skipped with a warning.

Examples:
  # Generate from a fresh outputs dump
  terraform output -json > outputs.json
  tfinv generate -o outputs.json

  # Different SSH settings and destination
  tfinv generate -o outputs.json -u core -k ~/.ssh/cluster --out inventory/prod/hosts.yaml`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Generate(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.OutputsPath, "outputs", "o", "", "Path to terraform/tofu outputs JSON (terraform output -json)")
	cmd.Flags().StringVarP(&opts.User, "user", "u", "ubuntu", "SSH user for Ansible")
	cmd.Flags().StringVarP(&opts.PrivateKeyPath, "key", "k", "~/.ssh/id_rsa", "Path to private SSH key for Ansible")
	cmd.Flags().StringVar(&opts.InventoryPath, "out", "inventory/mycluster/hosts.yaml", "Output inventory YAML path")
	_ = cmd.MarkFlagRequired("outputs")

	return cmd
}
