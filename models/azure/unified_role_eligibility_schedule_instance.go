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

// UnifiedRoleEligibilityScheduleInstance is the Entra PIM record describing a
// directory role a principal may activate.
// https://learn.microsoft.com/en-us/graph/api/resources/unifiedroleeligibilityscheduleinstance?view=graph-rest-1.0
type UnifiedRoleEligibilityScheduleInstance struct {
	Entity

	PrincipalId string `json:"principalId,omitempty"`

	RoleDefinitionId string `json:"roleDefinitionId,omitempty"`

	// DirectoryScopeId is "/" for tenant-wide roles or an
	// "/administrativeUnits/{id}" path for scoped ones.
	DirectoryScopeId string `json:"directoryScopeId,omitempty"`

	StartDateTime string `json:"startDateTime,omitempty"`

	EndDateTime string `json:"endDateTime,omitempty"`

	MemberType string `json:"memberType,omitempty"`

	RoleEligibilityScheduleId string `json:"roleEligibilityScheduleId,omitempty"`

	RoleDefinition UnifiedRoleDefinition `json:"roleDefinition,omitempty"`

	Principal DirectoryObject `json:"principal,omitempty"`
}
