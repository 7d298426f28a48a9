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

import "encoding/json"

// UnifiedRoleManagementPolicy represents the unifiedRoleManagementPolicy resource type
// https://learn.microsoft.com/en-us/graph/api/resources/unifiedrolemanagementpolicy?view=graph-rest-1.0
type UnifiedRoleManagementPolicy struct {
	Entity

	DisplayName           string `json:"displayName,omitempty"`
	Description           string `json:"description,omitempty"`
	IsOrganizationDefault bool   `json:"isOrganizationDefault,omitempty"`
	ScopeId               string `json:"scopeId,omitempty"`
	ScopeType             string `json:"scopeType,omitempty"`
	LastModifiedDateTime  string `json:"lastModifiedDateTime,omitempty"`

	// Rules is an abstract collection; the concrete rule type of each element
	// is determined at runtime from its @odata.type discriminator.
	// https://learn.microsoft.com/en-us/graph/api/resources/unifiedrolemanagementpolicyrule?view=graph-rest-1.0
	Rules []json.RawMessage `json:"rules,omitempty"`
}

// UnifiedRoleManagementPolicyAssignment represents the unifiedRoleManagementPolicyAssignment resource type
// https://learn.microsoft.com/en-us/graph/api/resources/unifiedrolemanagementpolicyassignment?view=graph-rest-1.0
type UnifiedRoleManagementPolicyAssignment struct {
	Entity

	PolicyId         string `json:"policyId,omitempty"`
	ScopeId          string `json:"scopeId,omitempty"`
	RoleDefinitionId string `json:"roleDefinitionId,omitempty"`
	ScopeType        string `json:"scopeType,omitempty"`

	Policy UnifiedRoleManagementPolicy `json:"policy,omitempty"`
}
