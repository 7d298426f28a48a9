// Copyright (C) 2025 Justin Grote
//
// This file is part of PIMFast.
//
// PIMFast is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// PIMFast is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package resourceid

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JustinGrote/PIMFast/enums"
)

func TestParse(t *testing.T) {
	t.Run("tenant scope", func(t *testing.T) {
		identity, err := Parse("/tenants/6c12b0b0-b2cc-4a73-8252-0b94bfca2145")
		require.NoError(t, err)
		require.Equal(t, Tenant{ID: "6c12b0b0-b2cc-4a73-8252-0b94bfca2145"}, identity)
		require.Equal(t, enums.ScopeTenant, identity.ScopeType())
	})

	t.Run("management group scope", func(t *testing.T) {
		identity, err := Parse("/providers/Microsoft.Management/managementGroups/contoso-root")
		require.NoError(t, err)
		require.Equal(t, ManagementGroup{ID: "contoso-root"}, identity)
		require.Equal(t, enums.ScopeManagementGroup, identity.ScopeType())
	})

	t.Run("subscription scope", func(t *testing.T) {
		identity, err := Parse("/subscriptions/9b6781b8-0a17-4086-9cb2-1d4c4c1ca34b")
		require.NoError(t, err)
		require.Equal(t, Subscription{ID: "9b6781b8-0a17-4086-9cb2-1d4c4c1ca34b"}, identity)
	})

	t.Run("resource group scope", func(t *testing.T) {
		identity, err := Parse("/subscriptions/9b6781b8-0a17-4086-9cb2-1d4c4c1ca34b/resourceGroups/prod-rg")
		require.NoError(t, err)
		require.Equal(t, ResourceGroup{
			Name:           "prod-rg",
			SubscriptionID: "9b6781b8-0a17-4086-9cb2-1d4c4c1ca34b",
		}, identity)
	})

	t.Run("resource scope", func(t *testing.T) {
		identity, err := Parse("/subscriptions/9b6781b8-0a17-4086-9cb2-1d4c4c1ca34b/resourceGroups/prod-rg/providers/Microsoft.KeyVault/vaults/prod-kv")
		require.NoError(t, err)
		require.Equal(t, Resource{
			Name:           "prod-kv",
			SubscriptionID: "9b6781b8-0a17-4086-9cb2-1d4c4c1ca34b",
			ResourceGroup:  "prod-rg",
			Provider:       "Microsoft.KeyVault",
			Type:           "vaults",
		}, identity)
	})

	t.Run("child resource scope", func(t *testing.T) {
		identity, err := Parse("/subscriptions/9b6781b8-0a17-4086-9cb2-1d4c4c1ca34b/resourceGroups/prod-rg/providers/Microsoft.Storage/storageAccounts/prodsa/blobServices/default")
		require.NoError(t, err)

		child, ok := identity.(ChildResource)
		require.True(t, ok)
		require.Equal(t, "default", child.ChildName)
		require.Equal(t, "blobServices", child.ChildType)
		require.Equal(t, "prodsa", child.ParentResourceName())
		require.Equal(t, enums.ScopeChildResource, child.ScopeType())
	})

	t.Run("keywords match case-insensitively", func(t *testing.T) {
		identity, err := Parse("/SUBSCRIPTIONS/9b6781b8-0a17-4086-9cb2-1d4c4c1ca34b/resourcegroups/Prod-RG")
		require.NoError(t, err)

		rg, ok := identity.(ResourceGroup)
		require.True(t, ok)
		// ids keep their original casing
		require.Equal(t, "Prod-RG", rg.Name)
	})

	t.Run("round trips through String", func(t *testing.T) {
		scopes := []string{
			"/tenants/6c12b0b0-b2cc-4a73-8252-0b94bfca2145",
			"/providers/Microsoft.Management/managementGroups/contoso-root",
			"/subscriptions/9b6781b8-0a17-4086-9cb2-1d4c4c1ca34b",
			"/subscriptions/9b6781b8-0a17-4086-9cb2-1d4c4c1ca34b/resourceGroups/prod-rg",
			"/subscriptions/9b6781b8-0a17-4086-9cb2-1d4c4c1ca34b/resourceGroups/prod-rg/providers/Microsoft.KeyVault/vaults/prod-kv",
			"/subscriptions/9b6781b8-0a17-4086-9cb2-1d4c4c1ca34b/resourceGroups/prod-rg/providers/Microsoft.Storage/storageAccounts/prodsa/blobServices/default",
		}
		for _, scope := range scopes {
			identity, err := Parse(scope)
			require.NoError(t, err)
			require.Equal(t, scope, identity.String())
		}
	})

	t.Run("malformed scopes", func(t *testing.T) {
		scopes := []string{
			"",
			"subscriptions/9b6781b8",
			"/",
			"/subscriptions/",
			"/subscriptions//resourceGroups/rg",
			"/tenants/a/b",
			"/providers/Microsoft.Management/managementGroups",
			"/subscriptions/a/resourceGroups/rg/providers/Microsoft.KeyVault/vaults",
			"/foo/bar",
		}
		for _, scope := range scopes {
			_, err := Parse(scope)
			require.ErrorIs(t, err, ErrMalformedScope, "scope %q", scope)
		}
	})
}

func TestSubscriptionID(t *testing.T) {
	t.Run("subscription-rooted identities", func(t *testing.T) {
		for _, scope := range []string{
			"/subscriptions/sub-1",
			"/subscriptions/sub-1/resourceGroups/rg",
			"/subscriptions/sub-1/resourceGroups/rg/providers/Microsoft.KeyVault/vaults/kv",
			"/subscriptions/sub-1/resourceGroups/rg/providers/Microsoft.KeyVault/vaults/kv/keys/signing",
		} {
			identity, err := Parse(scope)
			require.NoError(t, err)

			id, ok := SubscriptionID(identity)
			require.True(t, ok)
			require.Equal(t, "sub-1", id)
		}
	})

	t.Run("tenant and management group have none", func(t *testing.T) {
		for _, scope := range []string{
			"/tenants/tid",
			"/providers/Microsoft.Management/managementGroups/mg",
		} {
			identity, err := Parse(scope)
			require.NoError(t, err)

			_, ok := SubscriptionID(identity)
			require.False(t, ok)
		}
	})
}
