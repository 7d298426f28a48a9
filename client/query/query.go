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

// Package query models the request parameters of the MS Graph and Azure
// Resource Manager list APIs.
package query

import (
	"strconv"
	"strings"
)

type Params interface {
	AsMap() map[string]string
	NeedsEventualConsistencyHeaderFlag() bool
}

// GraphParams are the OData query parameters accepted by MS Graph.
// https://learn.microsoft.com/en-us/graph/query-parameters
type GraphParams struct {
	Count  bool
	Expand string
	Filter string
	Select []string
	Top    int
}

func (s GraphParams) AsMap() map[string]string {
	params := make(map[string]string)
	if s.Count {
		params["$count"] = "true"
	}
	if s.Expand != "" {
		params["$expand"] = s.Expand
	}
	if s.Filter != "" {
		params["$filter"] = s.Filter
	}
	if len(s.Select) > 0 {
		params["$select"] = strings.Join(s.Select, ",")
	}
	if s.Top > 0 {
		params["$top"] = strconv.Itoa(s.Top)
	}
	return params
}

// Graph requires the eventual-consistency header for advanced queries such
// as $count and $filter on certain properties.
func (s GraphParams) NeedsEventualConsistencyHeaderFlag() bool {
	return s.Count || s.Filter != ""
}

// RMParams are the query parameters accepted by Azure Resource Manager.
type RMParams struct {
	ApiVersion string
	Filter     string
	Expand     string
}

func (s RMParams) AsMap() map[string]string {
	params := make(map[string]string)
	if s.ApiVersion != "" {
		params["api-version"] = s.ApiVersion
	}
	if s.Filter != "" {
		params["$filter"] = s.Filter
	}
	if s.Expand != "" {
		params["$expand"] = s.Expand
	}
	return params
}

func (s RMParams) NeedsEventualConsistencyHeaderFlag() bool {
	return false
}
