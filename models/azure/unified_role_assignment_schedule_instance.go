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

// UnifiedRoleAssignmentScheduleInstance is the Entra PIM record for a
// currently-held directory role. AssignmentType distinguishes a PIM
// activation ("Activated") from a standing assignment ("Assigned"); there is
// no link back to the eligibility instance it was activated from.
// https://learn.microsoft.com/en-us/graph/api/resources/unifiedroleassignmentscheduleinstance?view=graph-rest-1.0
type UnifiedRoleAssignmentScheduleInstance struct {
	Entity

	PrincipalId string `json:"principalId,omitempty"`

	RoleDefinitionId string `json:"roleDefinitionId,omitempty"`

	DirectoryScopeId string `json:"directoryScopeId,omitempty"`

	AssignmentType string `json:"assignmentType,omitempty"`

	StartDateTime string `json:"startDateTime,omitempty"`

	EndDateTime string `json:"endDateTime,omitempty"`

	MemberType string `json:"memberType,omitempty"`

	RoleAssignmentScheduleId string `json:"roleAssignmentScheduleId,omitempty"`

	RoleAssignmentOriginId string `json:"roleAssignmentOriginId,omitempty"`

	RoleDefinition UnifiedRoleDefinition `json:"roleDefinition,omitempty"`

	Principal DirectoryObject `json:"principal,omitempty"`
}
