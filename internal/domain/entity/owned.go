package entity

import "github.com/google/uuid"

// OwnedResource is any persisted entity that records the principal who created it.
// Mutations on an OwnedResource are only allowed for that principal.
type OwnedResource interface {
	ResourceID() uuid.UUID
	OwnerRef() uuid.UUID
}

// IsOwnedBy compares owner and principal by canonical string form, so ids that arrive
// through different representations of the same value still match.
func IsOwnedBy(resource OwnedResource, principalID uuid.UUID) bool {
	if resource == nil {
		return false
	}

	return resource.OwnerRef().String() == principalID.String()
}
