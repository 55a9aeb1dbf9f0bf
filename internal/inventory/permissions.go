package inventory

import "github.com/osse101/Stashkeeper_Go/internal/domain"

// IsOwner reports whether the user owns the inventory. Shared inventories have no owner.
func IsOwner(user domain.User, inv domain.Inventory) bool {
	return !inv.IsShared() && user.ID == inv.OwnerID
}

// IsAdmin reports whether the user bypasses ownership checks
func IsAdmin(user domain.User) bool {
	return user.IsGM()
}

// CanView applies the view rule. A nil user is anonymous and sees only shared inventories.
func CanView(user *domain.User, inv domain.Inventory) bool {
	if inv.IsShared() {
		return true
	}
	if user == nil {
		return false
	}
	return IsAdmin(*user) || user.ID == inv.OwnerID
}

// CanMutate applies the owner-or-gm rule used by mutating operations
func CanMutate(user *domain.User, inv domain.Inventory) bool {
	if user == nil {
		return false
	}
	return IsOwner(*user, inv) || IsAdmin(*user)
}

// IsStorageBucket reports whether a fixed category displays sub-categories and items.
// This is a display policy; the tree may hold items under any bucket.
func IsStorageBucket(fc domain.FixedCategory) bool {
	return containsAny(fc.Name, domain.StorageBucketKeywords)
}
