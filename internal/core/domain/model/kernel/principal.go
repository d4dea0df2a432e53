package kernel

import "strconv"

// PrincipalID identifies the authenticated account acting on a request.
// The zero value means no principal was authenticated.
type PrincipalID int64

const NoPrincipal PrincipalID = 0

func (p PrincipalID) IsAuthenticated() bool {
	return p > 0
}

func (p PrincipalID) String() string {
	return strconv.FormatInt(int64(p), 10)
}

type ownership int

const (
	ownershipNone ownership = iota
	ownershipResolved
	ownershipAmbiguous
)

// Owner is the result of resolving who an entity belongs to.
// It is exactly one of resolved, ambiguous or none.
type Owner struct {
	ownership ownership
	principal PrincipalID
}

// OwnedBy resolves to principal. A non-authenticated principal yields NoOwner.
func OwnedBy(principal PrincipalID) Owner {
	if !principal.IsAuthenticated() {
		return NoOwner()
	}
	return Owner{ownership: ownershipResolved, principal: principal}
}

func NoOwner() Owner {
	return Owner{ownership: ownershipNone}
}

func AmbiguousOwner() Owner {
	return Owner{ownership: ownershipAmbiguous}
}

// AgreeingOwner combines two owner chains. The result is resolved only when both
// resolve to the same principal; a disagreement is ambiguous.
func AgreeingOwner(a, b Owner) Owner {
	pa, okA := a.Principal()
	pb, okB := b.Principal()
	switch {
	case okA && okB && pa == pb:
		return a
	case okA && okB:
		return AmbiguousOwner()
	case a.IsAmbiguous() || b.IsAmbiguous():
		return AmbiguousOwner()
	default:
		return NoOwner()
	}
}

// Principal returns the owning principal. Ambiguous and none both report false.
func (o Owner) Principal() (PrincipalID, bool) {
	if o.ownership != ownershipResolved {
		return NoPrincipal, false
	}
	return o.principal, true
}

func (o Owner) IsAmbiguous() bool {
	return o.ownership == ownershipAmbiguous
}

// Is reports whether principal is the single resolved owner.
func (o Owner) Is(principal PrincipalID) bool {
	p, ok := o.Principal()
	return ok && principal.IsAuthenticated() && p == principal
}

func (o Owner) String() string {
	switch o.ownership {
	case ownershipResolved:
		return "principal:" + o.principal.String()
	case ownershipAmbiguous:
		return "ambiguous"
	default:
		return "none"
	}
}

// Ownable is implemented by every entity that takes part in ownership checks.
type Ownable interface {
	ResolveOwner() Owner
}
