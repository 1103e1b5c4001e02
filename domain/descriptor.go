package domain

import "github.com/samber/lo"

// PropertyVersion is the descriptor property holding an initial Version ("owner@seq").
const PropertyVersion = "version"

// Descriptor is what a host sends to a remote container so that it can build a
// matching replica.
type Descriptor struct {
	Kind       string   `validate:"required"`
	ID         ObjectID `validate:"required"`
	Home       MemberID `validate:"required"`
	Properties map[string]string
}

// Clone returns a copy that shares no map with d.
func (d Descriptor) Clone() Descriptor {
	d.Properties = lo.Assign(map[string]string{}, d.Properties)
	return d
}
