package id

import "github.com/segmentio/ksuid"

// Prefixes for each entity's identifiers.
const (
	BrandPrefix    = "brand_"
	CategoryPrefix = "cat_"
)

// GenerateIDWithPrefix creates a new KSUID with the given prefix. KSUIDs sort
// by creation time, so ordering by id is insertion order.
//
// Format: <prefix><27-char-ksuid>
// Example: brand_2ArTLVPddDx8vZk7CqEbiYp1
func GenerateIDWithPrefix(prefix string) string {
	return prefix + ksuid.New().String()
}

// Generator returns a function producing ids with prefix.
func Generator(prefix string) func() string {
	return func() string {
		return GenerateIDWithPrefix(prefix)
	}
}
