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

// ListRoleManagementPolicyAssignments streams the policy assignments matching
// params.Filter. Graph requires a filter naming the scope, for example
// "scopeId eq '/' and scopeType eq 'DirectoryRole'".
// https://learn.microsoft.com/en-us/graph/api/policyroot-list-rolemanagementpolicyassignments
func (s *azureClient) ListRoleManagementPolicyAssignments(ctx context.Context, account models.Account, params query.GraphParams) <-chan AzureResult[azure.UnifiedRoleManagementPolicyAssignment] {
	var (
		out  = make(chan AzureResult[azure.UnifiedRoleManagementPolicyAssignment])
		path = fmt.Sprintf("/%s/policies/roleManagementPolicyAssignments", graphApiVersion)
	)

	if params.Expand == "" {
		params.Expand = "policy($expand=rules)"
	}

	go getAzureObjectList[azure.UnifiedRoleManagementPolicyAssignment](s.msgraph, s.tokens, ctx, account, s.graphAudience, path, params, out)
	return out
}
