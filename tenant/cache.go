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

// Package tenant resolves which tenant a role's scope belongs to, caching
// tenant and subscription lookups for the lifetime of an account's session.
package tenant

import (
	"sync"

	gocache "github.com/patrickmn/go-cache"

	"github.com/JustinGrote/PIMFast/models"
	"github.com/JustinGrote/PIMFast/models/azure"
)

// SessionCache holds per-account tenant records and subscription lists.
// Entries are only ever added or upgraded while an account stays signed in;
// SignOut drops everything the account accumulated.
type SessionCache struct {
	mu       sync.Mutex
	accounts map[string]*accountCache
}

type accountCache struct {
	tenants *gocache.Cache

	mu             sync.Mutex
	subs           []azure.Subscription
	subsFetched    bool
	tenantsFetched bool
}

func NewSessionCache() *SessionCache {
	return &SessionCache{accounts: make(map[string]*accountCache)}
}

func (s *SessionCache) forAccount(accountId string) *accountCache {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.accounts[accountId]; ok {
		return entry
	}
	entry := &accountCache{tenants: gocache.New(gocache.NoExpiration, 0)}
	s.accounts[accountId] = entry
	return entry
}

func (s *SessionCache) Tenant(accountId string, tenantId string) (models.TenantRecord, bool) {
	if value, ok := s.forAccount(accountId).tenants.Get(tenantId); !ok {
		return models.TenantRecord{}, false
	} else {
		return value.(models.TenantRecord), true
	}
}

// PutTenant stores a tenant record. A placeholder never overwrites a record
// that already carries a display name, so a failed lookup cannot erase data
// learned earlier in the session.
func (s *SessionCache) PutTenant(accountId string, record models.TenantRecord) {
	entry := s.forAccount(accountId)
	if existing, ok := entry.tenants.Get(record.TenantId); ok {
		if record.IsPlaceholder() && !existing.(models.TenantRecord).IsPlaceholder() {
			return
		}
	}
	entry.tenants.Set(record.TenantId, record, gocache.NoExpiration)
}

// SignOut discards all cached state for the account.
func (s *SessionCache) SignOut(accountId string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.accounts, accountId)
}
