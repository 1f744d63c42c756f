package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoleSatisfies(t *testing.T) {
	cases := []struct {
		role Role
		tier PermissionTier
		want bool
	}{
		{RoleOwner, PermissionView, true},
		{RoleOwner, PermissionEdit, true},
		{RoleOwner, PermissionManage, true},
		{RoleEditor, PermissionView, true},
		{RoleEditor, PermissionEdit, true},
		{RoleEditor, PermissionManage, false},
		{RoleViewer, PermissionView, true},
		{RoleViewer, PermissionEdit, false},
		{RoleViewer, PermissionManage, false},
		{Role("admin"), PermissionView, false},
		{RoleOwner, PermissionTier("superuser"), false},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, tc.role.Satisfies(tc.tier),
			"role %q against tier %q", tc.role, tc.tier)
	}
}

func TestRoleIsValid(t *testing.T) {
	require.True(t, RoleOwner.IsValid())
	require.True(t, RoleEditor.IsValid())
	require.True(t, RoleViewer.IsValid())
	require.False(t, Role("admin").IsValid())
	require.False(t, Role("").IsValid())
}

func TestPermissionTierIsValid(t *testing.T) {
	require.True(t, PermissionView.IsValid())
	require.True(t, PermissionEdit.IsValid())
	require.True(t, PermissionManage.IsValid())
	require.False(t, PermissionTier("write").IsValid())
	require.False(t, PermissionTier("").IsValid())
}

func TestMembershipDerived(t *testing.T) {
	owner := Membership{Role: RoleOwner}.Derived()
	require.Equal(t, DerivedPermissions{
		CanView: true, CanEdit: true, CanManage: true,
		CanInvite: true, CanManageBudget: true,
	}, owner)

	editor := Membership{Role: RoleEditor}.Derived()
	require.Equal(t, DerivedPermissions{
		CanView: true, CanEdit: true,
	}, editor)

	viewer := Membership{Role: RoleViewer}.Derived()
	require.Equal(t, DerivedPermissions{
		CanView: true,
	}, viewer)
}

func TestMembershipDerivedOverrides(t *testing.T) {
	// Explicit overrides grant invite/budget capabilities regardless of role.
	viewer := Membership{
		Role:        RoleViewer,
		Permissions: &MemberOverrides{InviteOthers: true},
	}.Derived()
	require.True(t, viewer.CanInvite)
	require.False(t, viewer.CanManageBudget)
	require.False(t, viewer.CanEdit)

	editor := Membership{
		Role:        RoleEditor,
		Permissions: &MemberOverrides{ManageBudget: true},
	}.Derived()
	require.True(t, editor.CanManageBudget)
	require.False(t, editor.CanInvite)

	// Owners keep full capabilities even with overrides unset.
	owner := Membership{
		Role:        RoleOwner,
		Permissions: &MemberOverrides{},
	}.Derived()
	require.True(t, owner.CanInvite)
	require.True(t, owner.CanManageBudget)
}

func TestMessageOperationIsValid(t *testing.T) {
	require.True(t, OperationRead.IsValid())
	require.True(t, OperationSend.IsValid())
	require.True(t, OperationEdit.IsValid())
	require.True(t, OperationDelete.IsValid())
	require.False(t, MessageOperation("moderate").IsValid())
	require.False(t, MessageOperation("").IsValid())
}

func TestMessageTypeIsValid(t *testing.T) {
	require.True(t, MessageTypeText.IsValid())
	require.True(t, MessageTypeLocation.IsValid())
	require.True(t, MessageTypePhoto.IsValid())
	require.True(t, MessageTypePoll.IsValid())
	require.False(t, MessageType("video").IsValid())
}
