package capacity

// Resource represents a countable resource type.
type Resource string

// Predefined resource types.
const (
	ResourceUsers      Resource = "users"
	ResourceCategories Resource = "categories"
	ResourceProducts   Resource = "products"
)

// Unlimited represents a resource with no limit (-1).
const Unlimited int64 = -1

// Snapshot is the usage of a resource at the moment it was read.
type Snapshot struct {
	Resource Resource `json:"resource" yaml:"resource"`
	Total    int64    `json:"total" yaml:"total"`
	Max      int64    `json:"max" yaml:"max"`
}

// Full reports whether no more instances of the resource may be created.
func (s Snapshot) Full() bool {
	return s.Max != Unlimited && s.Total >= s.Max
}

// Remaining returns how many instances may still be created, or Unlimited.
func (s Snapshot) Remaining() int64 {
	if s.Max == Unlimited {
		return Unlimited
	}
	return max(s.Max-s.Total, 0)
}
