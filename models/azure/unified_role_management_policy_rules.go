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

package azure

// UnifiedRoleManagementPolicyApprovalRule represents the unifiedRoleManagementPolicyApprovalRule resource type
// https://learn.microsoft.com/en-us/graph/api/resources/unifiedrolemanagementpolicyapprovalrule?view=graph-rest-1.0
type UnifiedRoleManagementPolicyApprovalRule struct {
	Entity

	Target  RoleManagementPolicyRuleTarget `json:"target,omitempty"`
	Setting ApprovalSettings               `json:"setting,omitempty"`
}

// UnifiedRoleManagementPolicyExpirationRule represents the unifiedRoleManagementPolicyExpirationRule resource type
// https://learn.microsoft.com/en-us/graph/api/resources/unifiedrolemanagementpolicyexpirationrule?view=graph-rest-1.0
type UnifiedRoleManagementPolicyExpirationRule struct {
	Entity

	IsExpirationRequired bool                           `json:"isExpirationRequired,omitempty"`
	MaximumDuration      string                         `json:"maximumDuration,omitempty"`
	Target               RoleManagementPolicyRuleTarget `json:"target,omitempty"`
}

// UnifiedRoleManagementPolicyEnablementRule represents the unifiedRoleManagementPolicyEnablementRule resource type
// https://learn.microsoft.com/en-us/graph/api/resources/unifiedrolemanagementpolicyenablementrule?view=graph-rest-1.0
type UnifiedRoleManagementPolicyEnablementRule struct {
	Entity

	EnabledRules []string                       `json:"enabledRules,omitempty"`
	Target       RoleManagementPolicyRuleTarget `json:"target,omitempty"`
}

// UnifiedRoleManagementPolicyAuthenticationContextRule represents the unifiedRoleManagementPolicyAuthenticationContextRule resource type
// https://learn.microsoft.com/en-us/graph/api/resources/unifiedrolemanagementpolicyauthenticationcontextrule?view=graph-rest-1.0
type UnifiedRoleManagementPolicyAuthenticationContextRule struct {
	Entity

	IsEnabled  bool                           `json:"isEnabled,omitempty"`
	ClaimValue string                         `json:"claimValue,omitempty"`
	Target     RoleManagementPolicyRuleTarget `json:"target,omitempty"`
}

// RoleManagementPolicyRuleTarget represents the unifiedRoleManagementPolicyRuleTarget resource type
// https://learn.microsoft.com/en-us/graph/api/resources/unifiedrolemanagementpolicyruletarget?view=graph-rest-1.0
type RoleManagementPolicyRuleTarget struct {
	Caller     string   `json:"caller,omitempty"`
	Operations []string `json:"operations,omitempty"`
	Level      string   `json:"level,omitempty"`
}
