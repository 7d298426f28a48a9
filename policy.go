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

package pimfast

import (
	"context"
	"fmt"

	"github.com/JustinGrote/PIMFast/client/query"
	"github.com/JustinGrote/PIMFast/enums"
	"github.com/JustinGrote/PIMFast/models"
	"github.com/JustinGrote/PIMFast/models/azure"
)

// ActivationPolicy fetches the policy governing activation of an eligible
// directory or group role: maximum duration, approval, MFA and justification
// requirements. Azure resource role policies live in a separate ARM surface
// this client does not cover.
func (s *Session) ActivationPolicy(ctx context.Context, account models.Account, role models.EligibleRole) (models.RoleActivationPolicy, error) {
	var filter string

	switch role.Schedule.SourceType {
	case enums.SourceGraph:
		filter = fmt.Sprintf("scopeId eq '%s' and scopeType eq 'DirectoryRole' and roleDefinitionId eq '%s'",
			role.Schedule.Scope, role.Schedule.RoleDefinitionId)
	case enums.SourceGroup:
		filter = fmt.Sprintf("scopeId eq '%s' and scopeType eq 'Group' and roleDefinitionId eq '%s'",
			role.Schedule.Scope, role.Schedule.RoleDefinitionId)
	default:
		return models.RoleActivationPolicy{}, fmt.Errorf("no activation policy lookup for %s roles", role.Schedule.SourceType)
	}

	// The producer blocks until its channel is drained, so consume the whole
	// stream even though the filter should match a single assignment.
	var (
		assignment azure.UnifiedRoleManagementPolicyAssignment
		found      bool
		listErr    error
	)
	for result := range s.azure.ListRoleManagementPolicyAssignments(ctx, account, query.GraphParams{Filter: filter}) {
		if result.Error != nil && listErr == nil {
			listErr = result.Error
		} else if result.Error == nil && !found {
			assignment = result.Ok
			found = true
		}
	}

	if listErr != nil {
		return models.RoleActivationPolicy{}, listErr
	} else if !found {
		return models.RoleActivationPolicy{}, fmt.Errorf("no activation policy found for role %s", role.Schedule.Id)
	}

	return models.NewRoleActivationPolicy(assignment)
}
