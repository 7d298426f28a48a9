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

// ScopeType classifies the resource-hierarchy level a role's scope points at.
// The first six values correspond to the ARM scope grammar; Directory and
// Group are synthetic levels for role sources that have no ARM-style scope.
type ScopeType string

const (
	ScopeTenant          ScopeType = "tenant"
	ScopeManagementGroup ScopeType = "managementgroup"
	ScopeSubscription    ScopeType = "subscription"
	ScopeResourceGroup   ScopeType = "resourcegroup"
	ScopeResource        ScopeType = "resource"
	ScopeChildResource   ScopeType = "childresource"

	// ScopeDirectory is a directory-role scope ("/" or an administrative unit).
	ScopeDirectory ScopeType = "directory"

	// ScopeGroup is a PIM-for-groups scope, identified by the group object id.
	ScopeGroup ScopeType = "group"
)
