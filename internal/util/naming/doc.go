// Package naming provides consistent naming for synthesized inventory hosts.
//
// Terraform outputs do not always export hostnames alongside addresses;
// hosts without a name are numbered 1-based within their role
// ({prefix}-1, {prefix}-2, ...) so the generated inventory stays stable
// across runs for the same outputs.
package naming
