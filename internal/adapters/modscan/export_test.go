package modscan

import "testing"

// DescriptorBytesForTest exposes the synthetic descriptor builder to external
// test packages.
func DescriptorBytesForTest(t *testing.T, name string) []byte {
	return descriptorBytes(t, name)
}
