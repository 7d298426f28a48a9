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

// RoleEligibilityScheduleInstance is the ARM PIM record describing a role a
// principal may activate at a scope.
// https://learn.microsoft.com/en-us/rest/api/authorization/role-eligibility-schedule-instances
type RoleEligibilityScheduleInstance struct {
	Id   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	Type string `json:"type,omitempty"`

	Properties RoleEligibilityScheduleInstanceProperties `json:"properties,omitempty"`
}

type RoleEligibilityScheduleInstanceProperties struct {
	Scope                     string `json:"scope,omitempty"`
	RoleDefinitionId          string `json:"roleDefinitionId,omitempty"`
	PrincipalId               string `json:"principalId,omitempty"`
	PrincipalType             string `json:"principalType,omitempty"`
	RoleEligibilityScheduleId string `json:"roleEligibilityScheduleId,omitempty"`
	StartDateTime             string `json:"startDateTime,omitempty"`
	EndDateTime               string `json:"endDateTime,omitempty"`
	MemberType                string `json:"memberType,omitempty"`
	Status                    string `json:"status,omitempty"`

	ExpandedProperties ExpandedProperties `json:"expandedProperties,omitempty"`
}

// ExpandedProperties carries the display names ARM resolves server-side when
// a schedule instance is requested with $expand.
type ExpandedProperties struct {
	Principal      ExpandedProperty `json:"principal,omitempty"`
	RoleDefinition ExpandedProperty `json:"roleDefinition,omitempty"`
	Scope          ExpandedProperty `json:"scope,omitempty"`
}

type ExpandedProperty struct {
	Id          string `json:"id,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Type        string `json:"type,omitempty"`
}
