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

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JustinGrote/PIMFast/models/azure"
)

func TestNewRoleActivationPolicy(t *testing.T) {
	rules := []json.RawMessage{
		json.RawMessage(`{
			"@odata.type": "#microsoft.graph.unifiedRoleManagementPolicyApprovalRule",
			"id": "Approval_EndUser_Assignment",
			"setting": {
				"isApprovalRequired": true,
				"approvalStages": [{
					"primaryApprovers": [
						{"@odata.type": "#microsoft.graph.singleUser", "userId": "approver-1"},
						{"@odata.type": "#microsoft.graph.groupMembers", "groupId": "approver-group-1"}
					]
				}]
			}
		}`),
		json.RawMessage(`{
			"@odata.type": "#microsoft.graph.unifiedRoleManagementPolicyExpirationRule",
			"id": "Expiration_EndUser_Assignment",
			"isExpirationRequired": true,
			"maximumDuration": "PT8H",
			"target": {"caller": "EndUser", "operations": ["all"]}
		}`),
		json.RawMessage(`{
			"@odata.type": "#microsoft.graph.unifiedRoleManagementPolicyExpirationRule",
			"id": "Expiration_Admin_Assignment",
			"maximumDuration": "P365D",
			"target": {"caller": "Admin", "operations": ["all"]}
		}`),
		json.RawMessage(`{
			"@odata.type": "#microsoft.graph.unifiedRoleManagementPolicyEnablementRule",
			"id": "Enablement_EndUser_Assignment",
			"enabledRules": ["MultiFactorAuthentication", "Justification"],
			"target": {"caller": "EndUser"}
		}`),
		json.RawMessage(`{
			"@odata.type": "#microsoft.graph.unifiedRoleManagementPolicyEnablementRule",
			"id": "Enablement_Admin_Assignment",
			"target": {"caller": "Admin"}
		}`),
		json.RawMessage(`{
			"@odata.type": "#microsoft.graph.unifiedRoleManagementPolicyNotificationRule",
			"id": "Notification_Admin_Admin_Eligibility"
		}`),
	}

	assignment := azure.UnifiedRoleManagementPolicyAssignment{
		Entity:           azure.Entity{Id: "assignment-1"},
		PolicyId:         "policy-1",
		RoleDefinitionId: "def-1",
		ScopeId:          "/",
		ScopeType:        "DirectoryRole",
		Policy: azure.UnifiedRoleManagementPolicy{
			Entity: azure.Entity{Id: "policy-1"},
			Rules:  rules,
		},
	}

	t.Run("flattens the end-user activation requirements", func(t *testing.T) {
		policy, err := NewRoleActivationPolicy(assignment)
		require.NoError(t, err)

		require.Equal(t, "assignment-1", policy.Id)
		require.Equal(t, "def-1", policy.RoleDefinitionId)
		require.True(t, policy.RequiresApproval)
		require.Equal(t, []string{"approver-1"}, policy.UserApprovers)
		require.Equal(t, []string{"approver-group-1"}, policy.GroupApprovers)
		// EndUser window wins over the Admin assignment window
		require.Equal(t, "PT8H", policy.MaximumDuration)
		// the later Admin enablement rule must not clear these
		require.True(t, policy.RequiresMFA)
		require.True(t, policy.RequiresJustification)
		require.False(t, policy.RequiresTicketInformation)
		require.False(t, policy.RequiresAuthenticationContext)
	})

	t.Run("no rules yields an empty policy", func(t *testing.T) {
		policy, err := NewRoleActivationPolicy(azure.UnifiedRoleManagementPolicyAssignment{
			Entity: azure.Entity{Id: "assignment-2"},
		})
		require.NoError(t, err)
		require.False(t, policy.RequiresApproval)
		require.Empty(t, policy.MaximumDuration)
	})

	t.Run("malformed rule fails", func(t *testing.T) {
		_, err := NewRoleActivationPolicy(azure.UnifiedRoleManagementPolicyAssignment{
			Policy: azure.UnifiedRoleManagementPolicy{
				Rules: []json.RawMessage{json.RawMessage(`{"@odata.type": 42}`)},
			},
		})
		require.Error(t, err)
	})
}
