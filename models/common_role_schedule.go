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
	"time"

	"github.com/JustinGrote/PIMFast/enums"
)

// UnknownDisplayName stands in for display names a provider did not return.
// Missing display names are cosmetic and must never fail normalization.
const UnknownDisplayName = "Unknown"

// CommonRoleSchedule is the provider-neutral shape of an eligible role. One
// record is produced per provider-native eligibility schedule instance; the
// SourceType tag selects the reconciliation join rule and the tenant
// resolution path and is fixed at construction.
type CommonRoleSchedule struct {
	// Id is the provider-native instance id: the full ARM resource id for arm
	// records, the Graph object id for graph and group records.
	Id string `json:"id"`

	// Scope is the ARM scope path for arm records. Graph records use the
	// directory scope id ("/" for tenant-wide); group records use the group
	// object id.
	Scope string `json:"scope"`

	RoleDefinitionId          string `json:"roleDefinitionId"`
	RoleDefinitionDisplayName string `json:"roleDefinitionDisplayName"`

	ScopeDisplayName string          `json:"scopeDisplayName"`
	ScopeType        enums.ScopeType `json:"scopeType"`

	PrincipalId          string `json:"principalId"`
	PrincipalDisplayName string `json:"principalDisplayName,omitempty"`

	StartDateTime *time.Time `json:"startDateTime,omitempty"`
	EndDateTime   *time.Time `json:"endDateTime,omitempty"`

	SourceType enums.SourceType `json:"sourceType"`

	// Source retains the provider-native record for operations that need
	// provider-specific fields (activation requests, policy lookups).
	Source any `json:"-"`
}

// CommonRoleAssignmentScheduleInstance is the provider-neutral shape of a
// currently-active role assignment, structurally parallel to
// CommonRoleSchedule.
type CommonRoleAssignmentScheduleInstance struct {
	CommonRoleSchedule

	// Status is the provider-native status string; compare against
	// SourceType.ActiveStatus.
	Status string `json:"status"`

	// LinkedRoleEligibilityScheduleInstanceId joins an arm assignment back to
	// the eligibility instance it was activated from. Empty for graph and
	// group records, which have no reverse linkage upstream.
	LinkedRoleEligibilityScheduleInstanceId string `json:"linkedRoleEligibilityScheduleInstanceId,omitempty"`
}

// EligibleRole pairs a normalized schedule with the account that holds it.
// Sets of EligibleRole are replaced wholesale on refresh, never mutated.
type EligibleRole struct {
	AccountId string             `json:"accountId"`
	Schedule  CommonRoleSchedule `json:"schedule"`
}

// Key identifies an eligible role across refreshes. Instance ids are only
// unique within a provider, so the source type is part of the key.
func (r EligibleRole) Key() string {
	return r.AccountId + "/" + string(r.Schedule.SourceType) + "/" + r.Schedule.Id
}
