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

// Package client lists PIM schedule instances and directory metadata from
// Azure Resource Manager and Microsoft Graph on behalf of signed-in accounts.
package client

//go:generate go run go.uber.org/mock/mockgen -destination=./mocks/client.go -package=mocks github.com/JustinGrote/PIMFast/client DirectoryClient

import (
	"context"

	"github.com/JustinGrote/PIMFast/client/config"
	"github.com/JustinGrote/PIMFast/client/query"
	"github.com/JustinGrote/PIMFast/client/rest"
	"github.com/JustinGrote/PIMFast/models"
	"github.com/JustinGrote/PIMFast/models/azure"
)

// AzureResult carries one list item or the error that ended the stream.
type AzureResult[T any] struct {
	Error error
	Ok    T
}

// TokenProvider resolves a bearer value for an account against an audience.
// Every request is made with the credentials of a specific account, so all
// client methods take the account explicitly.
type TokenProvider interface {
	GetToken(ctx context.Context, account models.Account, audience string) (string, error)
}

// RoleManagementClient lists the Azure resource role schedule instances that
// target the signed-in account.
type RoleManagementClient interface {
	ListRoleEligibilityScheduleInstances(ctx context.Context, account models.Account, params query.RMParams) <-chan AzureResult[azure.RoleEligibilityScheduleInstance]
	ListRoleAssignmentScheduleInstances(ctx context.Context, account models.Account, params query.RMParams) <-chan AzureResult[azure.RoleAssignmentScheduleInstance]
}

// DirectoryRoleClient lists Entra directory role schedule instances.
type DirectoryRoleClient interface {
	ListUnifiedRoleEligibilityScheduleInstances(ctx context.Context, account models.Account, params query.GraphParams) <-chan AzureResult[azure.UnifiedRoleEligibilityScheduleInstance]
	ListUnifiedRoleAssignmentScheduleInstances(ctx context.Context, account models.Account, params query.GraphParams) <-chan AzureResult[azure.UnifiedRoleAssignmentScheduleInstance]
}

// GroupRoleClient lists PIM for Groups schedule instances.
type GroupRoleClient interface {
	ListGroupEligibilityScheduleInstances(ctx context.Context, account models.Account, params query.GraphParams) <-chan AzureResult[azure.PrivilegedAccessGroupEligibilityScheduleInstance]
	ListGroupAssignmentScheduleInstances(ctx context.Context, account models.Account, params query.GraphParams) <-chan AzureResult[azure.PrivilegedAccessGroupAssignmentScheduleInstance]
}

// DirectoryClient reads the tenant and subscription metadata needed to place
// a role's scope in the right tenant.
type DirectoryClient interface {
	ListSubscriptions(ctx context.Context, account models.Account) <-chan AzureResult[azure.Subscription]
	ListTenants(ctx context.Context, account models.Account) <-chan AzureResult[azure.Tenant]
	GetTenantById(ctx context.Context, account models.Account, tenantId string) (azure.Tenant, error)
	GetManagementGroup(ctx context.Context, account models.Account, groupId string) (azure.ManagementGroup, error)
}

// PolicyClient reads the activation policies governing eligible roles.
type PolicyClient interface {
	ListRoleManagementPolicyAssignments(ctx context.Context, account models.Account, params query.GraphParams) <-chan AzureResult[azure.UnifiedRoleManagementPolicyAssignment]
}

type AzureClient interface {
	RoleManagementClient
	DirectoryRoleClient
	GroupRoleClient
	DirectoryClient
	PolicyClient

	TokenProvider() TokenProvider
	CloseIdleConnections()
}

func NewClient(cfg config.Config) (AzureClient, error) {
	if tokens, err := rest.NewTokenService(cfg); err != nil {
		return nil, err
	} else {
		return initClient(cfg, tokens)
	}
}

// NewClientWithTokenProvider wires an externally managed credential source,
// such as a broker that holds tokens for already signed-in accounts.
func NewClientWithTokenProvider(cfg config.Config, tokens TokenProvider) (AzureClient, error) {
	return initClient(cfg, tokens)
}

func initClient(cfg config.Config, tokens TokenProvider) (AzureClient, error) {
	if msgraph, err := rest.NewRestClient(cfg.GraphUrl(), cfg.ProxyUrl); err != nil {
		return nil, err
	} else if resourceManager, err := rest.NewRestClient(cfg.ManagementUrl(), cfg.ProxyUrl); err != nil {
		return nil, err
	} else {
		return &azureClient{
			msgraph:            msgraph,
			resourceManager:    resourceManager,
			tokens:             tokens,
			graphAudience:      cfg.GraphUrl(),
			managementAudience: cfg.ManagementUrl(),
		}, nil
	}
}
