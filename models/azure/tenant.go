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

// Tenant defines the model for a tenant visible to the signed-in account,
// either a home/guest tenant from the tenants list or a foreign tenant
// resolved by id.
// https://learn.microsoft.com/en-us/rest/api/resources/tenants/list
type Tenant struct {
	Id             string   `json:"id,omitempty"`
	TenantId       string   `json:"tenantId,omitempty"`
	DisplayName    string   `json:"displayName,omitempty"`
	DefaultDomain  string   `json:"defaultDomain,omitempty"`
	Domains        []string `json:"domains,omitempty"`
	TenantCategory string   `json:"tenantCategory,omitempty"`

	// DefaultDomainName is the graph spelling of DefaultDomain, set when the
	// tenant was fetched by id rather than listed.
	// https://learn.microsoft.com/en-us/graph/api/resources/tenantinformation
	DefaultDomainName string `json:"defaultDomainName,omitempty"`
}

// PrimaryDomain returns the default domain regardless of which API produced
// the record.
func (s Tenant) PrimaryDomain() string {
	if s.DefaultDomain != "" {
		return s.DefaultDomain
	}
	return s.DefaultDomainName
}
