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

// Account identifies an authenticated identity. Credentials themselves live
// behind the client.TokenProvider seam; this carries only the join keys the
// core needs.
type Account struct {
	// Id is the stable per-session account key (home account id).
	Id string `json:"id"`

	// ObjectId is the principal's directory object id, used to filter
	// provider queries to the signed-in user.
	ObjectId string `json:"objectId"`

	// TenantId is the account's home tenant.
	TenantId string `json:"tenantId"`

	Username string `json:"username,omitempty"`
}
