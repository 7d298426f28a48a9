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

// https://learn.microsoft.com/en-us/graph/api/rbacapplication-list-roleeligibilityscheduleinstances
func (s *azureClient) ListUnifiedRoleEligibilityScheduleInstances(ctx context.Context, account models.Account, params query.GraphParams) <-chan AzureResult[azure.UnifiedRoleEligibilityScheduleInstance] {
	var (
		out  = make(chan AzureResult[azure.UnifiedRoleEligibilityScheduleInstance])
		path = fmt.Sprintf("/%s/roleManagement/directory/roleEligibilityScheduleInstances", graphApiVersion)
	)

	if params.Filter == "" {
		params.Filter = fmt.Sprintf("principalId eq '%s'", account.ObjectId)
	}
	if params.Expand == "" {
		params.Expand = "roleDefinition"
	}

	go getAzureObjectList[azure.UnifiedRoleEligibilityScheduleInstance](s.msgraph, s.tokens, ctx, account, s.graphAudience, path, params, out)
	return out
}

// https://learn.microsoft.com/en-us/graph/api/rbacapplication-list-roleassignmentscheduleinstances
func (s *azureClient) ListUnifiedRoleAssignmentScheduleInstances(ctx context.Context, account models.Account, params query.GraphParams) <-chan AzureResult[azure.UnifiedRoleAssignmentScheduleInstance] {
	var (
		out  = make(chan AzureResult[azure.UnifiedRoleAssignmentScheduleInstance])
		path = fmt.Sprintf("/%s/roleManagement/directory/roleAssignmentScheduleInstances", graphApiVersion)
	)

	if params.Filter == "" {
		params.Filter = fmt.Sprintf("principalId eq '%s'", account.ObjectId)
	}
	if params.Expand == "" {
		params.Expand = "roleDefinition"
	}

	go getAzureObjectList[azure.UnifiedRoleAssignmentScheduleInstance](s.msgraph, s.tokens, ctx, account, s.graphAudience, path, params, out)
	return out
}
