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

// DirectoryObject carries the identifying fields shared by users, groups and
// other directory objects expanded inline on schedule instances.
// https://learn.microsoft.com/en-us/graph/api/resources/directoryobject?view=graph-rest-1.0
type DirectoryObject struct {
	Entity

	DisplayName string `json:"displayName,omitempty"`
}

// UnifiedRoleDefinition defines the model for a directory role definition
// https://learn.microsoft.com/en-us/graph/api/resources/unifiedroledefinition?view=graph-rest-1.0
type UnifiedRoleDefinition struct {
	Entity

	DisplayName string `json:"displayName,omitempty"`
	Description string `json:"description,omitempty"`
	TemplateId  string `json:"templateId,omitempty"`
	IsBuiltIn   bool   `json:"isBuiltIn,omitempty"`
}
