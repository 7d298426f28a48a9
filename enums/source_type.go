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

// SourceType tags which role-management provider a normalized record came
// from. It selects the reconciliation join rule and the tenant resolution
// path, so it is fixed at normalization time and never changes afterwards.
type SourceType string

const (
	// SourceArm is Azure Resource Manager PIM (subscription-scoped roles).
	SourceArm SourceType = "arm"

	// SourceGraph is Entra ID PIM for directory roles.
	SourceGraph SourceType = "graph"

	// SourceGroup is Entra ID PIM for groups.
	SourceGroup SourceType = "group"
)

// ActiveStatus returns the provider-native status value an assignment
// schedule instance carries while the role is activated.
func (s SourceType) ActiveStatus() string {
	switch s {
	case SourceArm:
		return StatusProvisioned
	default:
		return StatusActivated
	}
}

const (
	// StatusProvisioned is the ARM roleAssignmentScheduleInstance status once
	// activation has completed.
	StatusProvisioned = "Provisioned"

	// StatusActivated is the Graph assignmentType for a PIM-activated role as
	// opposed to a standing "Assigned" one.
	StatusActivated = "Activated"
)
