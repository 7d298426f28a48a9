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

	"github.com/JustinGrote/PIMFast/client/query"
	"github.com/JustinGrote/PIMFast/models"
	"github.com/JustinGrote/PIMFast/models/azure"
)

// https://learn.microsoft.com/en-us/rest/api/authorization/role-eligibility-schedule-instances/list-for-scope
func (s *azureClient) ListRoleEligibilityScheduleInstances(ctx context.Context, account models.Account, params query.RMParams) <-chan AzureResult[azure.RoleEligibilityScheduleInstance] {
	var (
		out  = make(chan AzureResult[azure.RoleEligibilityScheduleInstance])
		path = "/providers/Microsoft.Authorization/roleEligibilityScheduleInstances"
	)

	if params.ApiVersion == "" {
		params.ApiVersion = rmPimApiVersion
	}
	if params.Filter == "" {
		params.Filter = "asTarget()"
	}

	go getAzureObjectList[azure.RoleEligibilityScheduleInstance](s.resourceManager, s.tokens, ctx, account, s.managementAudience, path, params, out)
	return out
}

// https://learn.microsoft.com/en-us/rest/api/authorization/role-assignment-schedule-instances/list-for-scope
func (s *azureClient) ListRoleAssignmentScheduleInstances(ctx context.Context, account models.Account, params query.RMParams) <-chan AzureResult[azure.RoleAssignmentScheduleInstance] {
	var (
		out  = make(chan AzureResult[azure.RoleAssignmentScheduleInstance])
		path = "/providers/Microsoft.Authorization/roleAssignmentScheduleInstances"
	)

	if params.ApiVersion == "" {
		params.ApiVersion = rmPimApiVersion
	}
	if params.Filter == "" {
		params.Filter = "asTarget()"
	}

	go getAzureObjectList[azure.RoleAssignmentScheduleInstance](s.resourceManager, s.tokens, ctx, account, s.managementAudience, path, params, out)
	return out
}
