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

// ManagementGroup defines the model for an Azure management group. The
// Properties.TenantId field identifies the tenant that owns the group.
// https://learn.microsoft.com/en-us/rest/api/managementgroups/management-groups/get
type ManagementGroup struct {
	Id   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	Type string `json:"type,omitempty"`

	Properties ManagementGroupProperties `json:"properties,omitempty"`
}

type ManagementGroupProperties struct {
	TenantId    string `json:"tenantId,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
}
