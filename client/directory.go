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

package client

import (
	"context"
	"fmt"

	"github.com/JustinGrote/PIMFast/client/query"
	"github.com/JustinGrote/PIMFast/models"
	"github.com/JustinGrote/PIMFast/models/azure"
)

// https://learn.microsoft.com/en-us/rest/api/resources/subscriptions/list
func (s *azureClient) ListSubscriptions(ctx context.Context, account models.Account) <-chan AzureResult[azure.Subscription] {
	var (
		out    = make(chan AzureResult[azure.Subscription])
		path   = "/subscriptions"
		params = query.RMParams{ApiVersion: rmSubscriptionsApiVersion}
	)

	go getAzureObjectList[azure.Subscription](s.resourceManager, s.tokens, ctx, account, s.managementAudience, path, params, out)
	return out
}

// ListTenants enumerates every tenant the account's credential can reach,
// including ones it is only a guest in.
// https://learn.microsoft.com/en-us/rest/api/resources/tenants/list
func (s *azureClient) ListTenants(ctx context.Context, account models.Account) <-chan AzureResult[azure.Tenant] {
	var (
		out    = make(chan AzureResult[azure.Tenant])
		path   = "/tenants"
		params = query.RMParams{ApiVersion: rmTenantsApiVersion}
	)

	go getAzureObjectList[azure.Tenant](s.resourceManager, s.tokens, ctx, account, s.managementAudience, path, params, out)
	return out
}

// GetTenantById reads a single tenant's metadata through MS Graph. The
// tenants list only covers tenants the account belongs to, so this is the
// fallback for foreign tenants referenced by cross-tenant scopes.
// https://learn.microsoft.com/en-us/graph/api/tenantrelationship-findtenantinformationbytenantid
func (s *azureClient) GetTenantById(ctx context.Context, account models.Account, tenantId string) (azure.Tenant, error) {
	path := fmt.Sprintf("/%s/tenantRelationships/findTenantInformationByTenantId(tenantId='%s')", graphApiVersion, tenantId)
	return getAzureObject[azure.Tenant](s.msgraph, s.tokens, ctx, account, s.graphAudience, path, nil)
}

// https://learn.microsoft.com/en-us/rest/api/managementgroups/management-groups/get
func (s *azureClient) GetManagementGroup(ctx context.Context, account models.Account, groupId string) (azure.ManagementGroup, error) {
	var (
		path   = fmt.Sprintf("/providers/Microsoft.Management/managementGroups/%s", groupId)
		params = query.RMParams{ApiVersion: rmManagementGroupsApiVersion}
	)
	return getAzureObject[azure.ManagementGroup](s.resourceManager, s.tokens, ctx, account, s.managementAudience, path, params)
}
