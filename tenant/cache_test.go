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

package tenant

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JustinGrote/PIMFast/models"
)

func TestSessionCache(t *testing.T) {
	t.Run("tenants are cached per account", func(t *testing.T) {
		cache := NewSessionCache()
		record := models.TenantRecord{TenantId: "tid", DisplayName: "Contoso"}

		cache.PutTenant("acct-1", record)

		got, ok := cache.Tenant("acct-1", "tid")
		require.True(t, ok)
		require.Equal(t, record, got)

		_, ok = cache.Tenant("acct-2", "tid")
		require.False(t, ok)
	})

	t.Run("placeholder does not overwrite a real record", func(t *testing.T) {
		cache := NewSessionCache()
		cache.PutTenant("acct-1", models.TenantRecord{TenantId: "tid", DisplayName: "Contoso"})

		cache.PutTenant("acct-1", models.TenantRecord{TenantId: "tid"})

		got, ok := cache.Tenant("acct-1", "tid")
		require.True(t, ok)
		require.Equal(t, "Contoso", got.DisplayName)
	})

	t.Run("real record upgrades a placeholder", func(t *testing.T) {
		cache := NewSessionCache()
		cache.PutTenant("acct-1", models.TenantRecord{TenantId: "tid"})

		got, ok := cache.Tenant("acct-1", "tid")
		require.True(t, ok)
		require.True(t, got.IsPlaceholder())

		cache.PutTenant("acct-1", models.TenantRecord{TenantId: "tid", DisplayName: "Contoso"})

		got, ok = cache.Tenant("acct-1", "tid")
		require.True(t, ok)
		require.Equal(t, "Contoso", got.DisplayName)
	})

	t.Run("sign out drops only that account", func(t *testing.T) {
		cache := NewSessionCache()
		cache.PutTenant("acct-1", models.TenantRecord{TenantId: "tid", DisplayName: "Contoso"})
		cache.PutTenant("acct-2", models.TenantRecord{TenantId: "tid", DisplayName: "Contoso"})

		cache.SignOut("acct-1")

		_, ok := cache.Tenant("acct-1", "tid")
		require.False(t, ok)

		_, ok = cache.Tenant("acct-2", "tid")
		require.True(t, ok)
	})
}
