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

// TenantRecord is the resolved, human-readable identity of a tenant. A
// record holding only the tenant id is a placeholder awaiting a directory
// lookup.
type TenantRecord struct {
	TenantId      string   `json:"tenantId"`
	DisplayName   string   `json:"displayName,omitempty"`
	DefaultDomain string   `json:"defaultDomain,omitempty"`
	Domains       []string `json:"domains,omitempty"`
}

// IsPlaceholder reports whether the record still awaits a directory lookup.
func (t TenantRecord) IsPlaceholder() bool {
	return t.DisplayName == ""
}
