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

package enums

type RoleManagementPolicyRuleType string

const (
	PolicyRuleApproval              = "#microsoft.graph.unifiedRoleManagementPolicyApprovalRule"
	PolicyRuleExpiration            = "#microsoft.graph.unifiedRoleManagementPolicyExpirationRule"
	PolicyRuleEnablement            = "#microsoft.graph.unifiedRoleManagementPolicyEnablementRule"
	PolicyRuleNotification          = "#microsoft.graph.unifiedRoleManagementPolicyNotificationRule"
	PolicyRuleAuthenticationContext = "#microsoft.graph.unifiedRoleManagementPolicyAuthenticationContextRule"
)

type ApprovalStageApprover string

const (
	ApprovalStageSingleUser   = "#microsoft.graph.singleUser"
	ApprovalStageGroupMembers = "#microsoft.graph.groupMembers"
)
