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

// Package pimfast surfaces the privileged roles a signed-in account may
// activate, reconciled against its currently active assignments, across
// Azure resources, Entra directory roles and PIM for Groups.
package pimfast

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/JustinGrote/PIMFast/client"
	"github.com/JustinGrote/PIMFast/enums"
	"github.com/JustinGrote/PIMFast/models"
	"github.com/JustinGrote/PIMFast/resourceid"
	"github.com/JustinGrote/PIMFast/tenant"
)

// Session owns the per-account caches accumulated while accounts stay
// signed in. One Session serves any number of accounts.
type Session struct {
	azure    client.AzureClient
	cache    *tenant.SessionCache
	resolver *tenant.Resolver
	log      logr.Logger
}

func NewSession(azureClient client.AzureClient, log logr.Logger) *Session {
	cache := tenant.NewSessionCache()
	return &Session{
		azure:    azureClient,
		cache:    cache,
		resolver: tenant.NewResolver(azureClient, cache, log),
		log:      log,
	}
}

// ResolveRoleTenant returns the tenant record for the tenant the role's
// scope belongs to.
func (s *Session) ResolveRoleTenant(ctx context.Context, account models.Account, role models.EligibleRole) (models.TenantRecord, error) {
	return s.resolver.ResolveRole(ctx, account, role)
}

// ResolveScopeTenant returns the tenant record owning an arbitrary scope
// string.
func (s *Session) ResolveScopeTenant(ctx context.Context, account models.Account, scope string) (models.TenantRecord, error) {
	return s.resolver.ResolveScope(ctx, account, scope)
}

// RolePortalURL builds the Azure portal deep link for the role's scope,
// addressed to the owning tenant so the portal opens the right directory.
// Only Azure resource roles have a portal resource view.
func (s *Session) RolePortalURL(ctx context.Context, account models.Account, role models.EligibleRole) (string, error) {
	if role.Schedule.SourceType != enums.SourceArm {
		return "", fmt.Errorf("no portal resource view for %s roles", role.Schedule.SourceType)
	}

	record, err := s.resolver.ResolveRole(ctx, account, role)
	if err != nil {
		return "", err
	}

	domain := record.DefaultDomain
	if domain == "" {
		domain = record.TenantId
	}
	return resourceid.ToPortalURL(role.Schedule.Scope, domain, role.Schedule.ScopeType)
}

// SignOut discards everything cached for the account.
func (s *Session) SignOut(account models.Account) {
	s.cache.SignOut(account.Id)
}

func (s *Session) Close() {
	s.azure.CloseIdleConnections()
}
