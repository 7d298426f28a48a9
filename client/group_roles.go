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

// https://learn.microsoft.com/en-us/graph/api/privilegedaccessgroup-list-eligibilityscheduleinstances
func (s *azureClient) ListGroupEligibilityScheduleInstances(ctx context.Context, account models.Account, params query.GraphParams) <-chan AzureResult[azure.PrivilegedAccessGroupEligibilityScheduleInstance] {
	var (
		out  = make(chan AzureResult[azure.PrivilegedAccessGroupEligibilityScheduleInstance])
		path = fmt.Sprintf("/%s/identityGovernance/privilegedAccess/group/eligibilityScheduleInstances", graphApiVersion)
	)

	if params.Filter == "" {
		params.Filter = fmt.Sprintf("principalId eq '%s'", account.ObjectId)
	}
	if params.Expand == "" {
		params.Expand = "group"
	}

	go getAzureObjectList[azure.PrivilegedAccessGroupEligibilityScheduleInstance](s.msgraph, s.tokens, ctx, account, s.graphAudience, path, params, out)
	return out
}

// https://learn.microsoft.com/en-us/graph/api/privilegedaccessgroup-list-assignmentscheduleinstances
func (s *azureClient) ListGroupAssignmentScheduleInstances(ctx context.Context, account models.Account, params query.GraphParams) <-chan AzureResult[azure.PrivilegedAccessGroupAssignmentScheduleInstance] {
	var (
		out  = make(chan AzureResult[azure.PrivilegedAccessGroupAssignmentScheduleInstance])
		path = fmt.Sprintf("/%s/identityGovernance/privilegedAccess/group/assignmentScheduleInstances", graphApiVersion)
	)

	if params.Filter == "" {
		params.Filter = fmt.Sprintf("principalId eq '%s'", account.ObjectId)
	}
	if params.Expand == "" {
		params.Expand = "group"
	}

	go getAzureObjectList[azure.PrivilegedAccessGroupAssignmentScheduleInstance](s.msgraph, s.tokens, ctx, account, s.graphAudience, path, params, out)
	return out
}
