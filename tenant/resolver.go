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
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-logr/logr"

	"github.com/JustinGrote/PIMFast/client"
	"github.com/JustinGrote/PIMFast/enums"
	"github.com/JustinGrote/PIMFast/models"
	"github.com/JustinGrote/PIMFast/models/azure"
	"github.com/JustinGrote/PIMFast/resourceid"
)

// ErrScopeSubscriptionNotFound reports a subscription-rooted scope whose
// subscription is not visible to the account, typically because the role was
// granted in a tenant the account has not signed in to.
var ErrScopeSubscriptionNotFound = errors.New("pimfast: subscription for scope not visible to account")

// Resolver maps role scopes to tenant records using the directory API,
// memoizing per account in a SessionCache.
type Resolver struct {
	dir   client.DirectoryClient
	cache *SessionCache
	log   logr.Logger
}

func NewResolver(dir client.DirectoryClient, cache *SessionCache, log logr.Logger) *Resolver {
	return &Resolver{dir: dir, cache: cache, log: log}
}

// ResolveRole returns the tenant the role's scope lives in. Directory and
// group roles always live in the account's home tenant; Azure resource roles
// are resolved from their scope.
func (s *Resolver) ResolveRole(ctx context.Context, account models.Account, role models.EligibleRole) (models.TenantRecord, error) {
	if role.Schedule.SourceType != enums.SourceArm {
		return s.homeTenant(ctx, account)
	}
	return s.ResolveScope(ctx, account, role.Schedule.Scope)
}

// ResolveScope returns the tenant record owning the given scope string.
func (s *Resolver) ResolveScope(ctx context.Context, account models.Account, scope string) (models.TenantRecord, error) {
	// Directory-style scopes ("/", administrative units) have no ARM
	// identity and belong to the home tenant.
	if scope == "" || scope == "/" || strings.HasPrefix(scope, "/administrativeUnits") {
		return s.homeTenant(ctx, account)
	}

	identity, err := resourceid.Parse(scope)
	if err != nil {
		return models.TenantRecord{}, err
	}

	switch id := identity.(type) {
	case resourceid.Tenant:
		return s.tenantById(ctx, account, id.ID)
	case resourceid.ManagementGroup:
		group, err := s.dir.GetManagementGroup(ctx, account, id.ID)
		if err != nil {
			return models.TenantRecord{}, fmt.Errorf("resolving management group %s: %w", id.ID, err)
		}
		return s.tenantById(ctx, account, group.Properties.TenantId)
	default:
		subscriptionId, ok := resourceid.SubscriptionID(identity)
		if !ok {
			return s.homeTenant(ctx, account)
		}
		subscription, err := s.subscription(ctx, account, subscriptionId)
		if err != nil {
			return models.TenantRecord{}, err
		}
		return s.tenantById(ctx, account, subscription.TenantId)
	}
}

func (s *Resolver) homeTenant(ctx context.Context, account models.Account) (models.TenantRecord, error) {
	return s.tenantById(ctx, account, account.TenantId)
}

// tenantById consults the session cache, then the account's tenants list,
// then a direct graph lookup. A tenant that cannot be read at all yields a
// cached placeholder carrying only the id.
func (s *Resolver) tenantById(ctx context.Context, account models.Account, tenantId string) (models.TenantRecord, error) {
	if record, ok := s.cache.Tenant(account.Id, tenantId); ok && !record.IsPlaceholder() {
		return record, nil
	}

	if err := s.seedTenants(ctx, account); err != nil {
		s.log.V(1).Info("unable to list tenants", "account", account.Id, "error", err)
	} else if record, ok := s.cache.Tenant(account.Id, tenantId); ok && !record.IsPlaceholder() {
		return record, nil
	}

	if azureTenant, err := s.dir.GetTenantById(ctx, account, tenantId); err != nil {
		s.log.V(1).Info("tenant lookup failed, caching placeholder", "tenantId", tenantId, "error", err)
		record := models.TenantRecord{TenantId: tenantId}
		s.cache.PutTenant(account.Id, record)
		return record, nil
	} else {
		record := newTenantRecord(azureTenant)
		if record.TenantId == "" {
			record.TenantId = tenantId
		}
		s.cache.PutTenant(account.Id, record)
		return record, nil
	}
}

// seedTenants loads the account's tenants list into the cache once per
// session.
func (s *Resolver) seedTenants(ctx context.Context, account models.Account) error {
	entry := s.cache.forAccount(account.Id)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.tenantsFetched {
		return nil
	}

	for result := range s.dir.ListTenants(ctx, account) {
		if result.Error != nil {
			return result.Error
		}
		s.cache.PutTenant(account.Id, newTenantRecord(result.Ok))
	}

	entry.tenantsFetched = true
	return nil
}

// subscription finds the subscription in the account's cached list, fetching
// the list once per session.
func (s *Resolver) subscription(ctx context.Context, account models.Account, subscriptionId string) (azure.Subscription, error) {
	entry := s.cache.forAccount(account.Id)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if !entry.subsFetched {
		var subs []azure.Subscription
		for result := range s.dir.ListSubscriptions(ctx, account) {
			if result.Error != nil {
				return azure.Subscription{}, result.Error
			}
			subs = append(subs, result.Ok)
		}
		entry.subs = subs
		entry.subsFetched = true
	}

	for _, sub := range entry.subs {
		if strings.EqualFold(sub.SubscriptionId, subscriptionId) {
			return sub, nil
		}
	}
	return azure.Subscription{}, fmt.Errorf("%w: %s", ErrScopeSubscriptionNotFound, subscriptionId)
}

func newTenantRecord(azureTenant azure.Tenant) models.TenantRecord {
	return models.TenantRecord{
		TenantId:      azureTenant.TenantId,
		DisplayName:   azureTenant.DisplayName,
		DefaultDomain: azureTenant.PrimaryDomain(),
		Domains:       azureTenant.Domains,
	}
}
