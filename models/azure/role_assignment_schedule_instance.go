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

// RoleAssignmentScheduleInstance is the ARM PIM record for a currently-held
// role assignment. For PIM-activated assignments
// LinkedRoleEligibilityScheduleInstanceId points back at the eligibility
// instance the activation came from.
// https://learn.microsoft.com/en-us/rest/api/authorization/role-assignment-schedule-instances
type RoleAssignmentScheduleInstance struct {
	Id   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	Type string `json:"type,omitempty"`

	Properties RoleAssignmentScheduleInstanceProperties `json:"properties,omitempty"`
}

type RoleAssignmentScheduleInstanceProperties struct {
	Scope                                   string `json:"scope,omitempty"`
	RoleDefinitionId                        string `json:"roleDefinitionId,omitempty"`
	PrincipalId                             string `json:"principalId,omitempty"`
	PrincipalType                           string `json:"principalType,omitempty"`
	RoleAssignmentScheduleId                string `json:"roleAssignmentScheduleId,omitempty"`
	OriginRoleAssignmentId                  string `json:"originRoleAssignmentId,omitempty"`
	LinkedRoleEligibilityScheduleId         string `json:"linkedRoleEligibilityScheduleId,omitempty"`
	LinkedRoleEligibilityScheduleInstanceId string `json:"linkedRoleEligibilityScheduleInstanceId,omitempty"`
	AssignmentType                          string `json:"assignmentType,omitempty"`
	StartDateTime                           string `json:"startDateTime,omitempty"`
	EndDateTime                             string `json:"endDateTime,omitempty"`
	MemberType                              string `json:"memberType,omitempty"`
	Status                                  string `json:"status,omitempty"`

	ExpandedProperties ExpandedProperties `json:"expandedProperties,omitempty"`
}
