package models

// Role is the coarse-grained permission tier a user holds on a vacation.
// Exactly one role exists per user per vacation.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleEditor, RoleViewer:
		return true
	}
	return false
}

// PermissionTier is an ordered capability level: view < edit < manage.
type PermissionTier string

const (
	PermissionView   PermissionTier = "view"
	PermissionEdit   PermissionTier = "edit"
	PermissionManage PermissionTier = "manage"
)

// IsValid reports whether t is one of the known tiers.
func (t PermissionTier) IsValid() bool {
	switch t {
	case PermissionView, PermissionEdit, PermissionManage:
		return true
	}
	return false
}

// Satisfies reports whether the role meets or exceeds the required tier.
// The role-to-tier table is fixed: owner satisfies all tiers, editor
// satisfies edit and view, viewer satisfies only view. Unknown tiers and
// unknown roles never satisfy anything.
func (r Role) Satisfies(tier PermissionTier) bool {
	switch tier {
	case PermissionView:
		return r == RoleOwner || r == RoleEditor || r == RoleViewer
	case PermissionEdit:
		return r == RoleOwner || r == RoleEditor
	case PermissionManage:
		return r == RoleOwner
	}
	return false
}

// MemberOverrides are optional fine-grained grants layered on top of a role.
type MemberOverrides struct {
	InviteOthers bool `json:"inviteOthers,omitempty"`
	ManageBudget bool `json:"manageBudget,omitempty"`
}

// Membership associates a user with a vacation. Absence of a membership
// entry is the only representation of "not a member"; there is no separate
// banned or revoked state.
type Membership struct {
	Role        Role             `json:"role"`
	Permissions *MemberOverrides `json:"permissions,omitempty"`
}

// Vacation is a planning unit (trip) with a bounded set of member users.
// Stored in the Realtime Database under vacations/{id}; the Members map is
// keyed by Firebase Auth UID.
type Vacation struct {
	ID      string                `json:"-"`
	Name    string                `json:"name,omitempty"`
	OwnerID string                `json:"ownerId,omitempty"`
	Members map[string]Membership `json:"members"`
}

// DerivedPermissions is the capability set computed on a successful access
// verification. CanView is always true for a member.
type DerivedPermissions struct {
	CanView         bool `json:"canView"`
	CanEdit         bool `json:"canEdit"`
	CanManage       bool `json:"canManage"`
	CanInvite       bool `json:"canInvite"`
	CanManageBudget bool `json:"canManageBudget"`
}

// Derived computes the capability set granted by this membership. Invite and
// budget capabilities come from the explicit override or from the owner role.
func (m Membership) Derived() DerivedPermissions {
	p := DerivedPermissions{
		CanView:         true,
		CanEdit:         m.Role == RoleOwner || m.Role == RoleEditor,
		CanManage:       m.Role == RoleOwner,
		CanInvite:       m.Role == RoleOwner,
		CanManageBudget: m.Role == RoleOwner,
	}
	if m.Permissions != nil {
		p.CanInvite = p.CanInvite || m.Permissions.InviteOthers
		p.CanManageBudget = p.CanManageBudget || m.Permissions.ManageBudget
	}
	return p
}

// MemberInfo is the API-facing view of a single vacation member.
type MemberInfo struct {
	UserID      string             `json:"userId"`
	Role        Role               `json:"role"`
	Permissions DerivedPermissions `json:"permissions"`
}
