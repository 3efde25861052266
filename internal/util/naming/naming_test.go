package naming

import "testing"

func TestNamingFunctions(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "Host",
			got:      Host("k8s-cp", 0),
			expected: "k8s-cp-1",
		},
		{
			name:     "ControlPlane",
			got:      ControlPlane(2),
			expected: "k8s-cp-3",
		},
		{
			name:     "Worker",
			got:      Worker(0),
			expected: "k8s-worker-1",
		},
		{
			name:     "Bastion",
			got:      Bastion(1),
			expected: "bastion-2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %q, expected %q", tt.got, tt.expected)
			}
		})
	}
}
