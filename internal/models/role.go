package models

// Role represents a member's coarse-grained authority level
type Role string

const (
	// RoleMember is the default rank for a registered guild member
	RoleMember Role = "member"

	// RoleLeader indicates a squad leader
	RoleLeader Role = "leader"

	// RoleEditor is declared in the data model but never assigned by any
	// transition; it carries no elevated authority
	RoleEditor Role = "editor"

	// RoleSubAdmin indicates a junior administrator
	RoleSubAdmin Role = "sub_admin"

	// RoleSuperAdmin indicates the guild owner with full authority
	RoleSuperAdmin Role = "super_admin"
)

// Valid reports whether the role is one of the declared role values
func (r Role) Valid() bool {
	switch r {
	case RoleMember, RoleLeader, RoleEditor, RoleSubAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// IsAdmin reports whether the role carries administrative authority.
// Both sub_admin and super_admin count; this predicate gates every
// admin-only surface and mutation.
func (r Role) IsAdmin() bool {
	return r == RoleSubAdmin || r == RoleSuperAdmin
}

// Capability names a fine-grained permission grant, independent of role
type Capability string

const (
	// CapabilityEditSite allows editing site settings
	CapabilityEditSite Capability = "can_edit_site"

	// CapabilityManageMembers allows adding, editing and banning members
	CapabilityManageMembers Capability = "can_manage_members"

	// CapabilityBuildSquads allows creating squads and assigning members
	CapabilityBuildSquads Capability = "can_build_squads"

	// CapabilityManageSlots allows verifying tournament slot payments
	CapabilityManageSlots Capability = "can_manage_slots"

	// CapabilityViewAccounts allows viewing the finance ledger
	CapabilityViewAccounts Capability = "can_view_accounts"

	// CapabilityPostNotices allows publishing notices
	CapabilityPostNotices Capability = "can_post_notices"
)

// Permissions is a member's capability bag. The set of capabilities is
// closed: an unknown capability name can never evaluate to a grant.
type Permissions struct {
	// CanEditSite allows editing site settings
	CanEditSite bool `json:"can_edit_site"`

	// CanManageMembers allows adding, editing and banning members
	CanManageMembers bool `json:"can_manage_members"`

	// CanBuildSquads allows creating squads and assigning members
	CanBuildSquads bool `json:"can_build_squads"`

	// CanManageSlots allows verifying tournament slot payments
	CanManageSlots bool `json:"can_manage_slots"`

	// CanViewAccounts allows viewing the finance ledger
	CanViewAccounts bool `json:"can_view_accounts"`

	// CanPostNotices allows publishing notices
	CanPostNotices bool `json:"can_post_notices"`
}

// Allows reports whether the bag grants the named capability. A nil bag
// grants nothing.
func (p *Permissions) Allows(c Capability) bool {
	if p == nil {
		return false
	}

	switch c {
	case CapabilityEditSite:
		return p.CanEditSite
	case CapabilityManageMembers:
		return p.CanManageMembers
	case CapabilityBuildSquads:
		return p.CanBuildSquads
	case CapabilityManageSlots:
		return p.CanManageSlots
	case CapabilityViewAccounts:
		return p.CanViewAccounts
	case CapabilityPostNotices:
		return p.CanPostNotices
	}

	return false
}
