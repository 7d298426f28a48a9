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

// PrivilegedAccessGroupEligibilityScheduleInstance is the PIM-for-groups
// record describing group membership or ownership a principal may activate.
// https://learn.microsoft.com/en-us/graph/api/resources/privilegedaccessgroupeligibilityscheduleinstance?view=graph-rest-1.0
type PrivilegedAccessGroupEligibilityScheduleInstance struct {
	Entity

	// AccessId is "member" or "owner".
	AccessId string `json:"accessId,omitempty"`

	GroupId string `json:"groupId,omitempty"`

	PrincipalId string `json:"principalId,omitempty"`

	MemberType string `json:"memberType,omitempty"`

	EligibilityScheduleId string `json:"eligibilityScheduleId,omitempty"`

	StartDateTime string `json:"startDateTime,omitempty"`

	EndDateTime string `json:"endDateTime,omitempty"`

	Group DirectoryObject `json:"group,omitempty"`

	Principal DirectoryObject `json:"principal,omitempty"`
}

// PrivilegedAccessGroupAssignmentScheduleInstance is the PIM-for-groups
// record for currently-held group access.
// https://learn.microsoft.com/en-us/graph/api/resources/privilegedaccessgroupassignmentscheduleinstance?view=graph-rest-1.0
type PrivilegedAccessGroupAssignmentScheduleInstance struct {
	Entity

	AccessId string `json:"accessId,omitempty"`

	GroupId string `json:"groupId,omitempty"`

	PrincipalId string `json:"principalId,omitempty"`

	MemberType string `json:"memberType,omitempty"`

	// AssignmentType is "Activated" for PIM activations or "Assigned" for
	// standing access.
	AssignmentType string `json:"assignmentType,omitempty"`

	AssignmentScheduleId string `json:"assignmentScheduleId,omitempty"`

	StartDateTime string `json:"startDateTime,omitempty"`

	EndDateTime string `json:"endDateTime,omitempty"`

	Group DirectoryObject `json:"group,omitempty"`

	Principal DirectoryObject `json:"principal,omitempty"`
}
