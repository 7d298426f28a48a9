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

package resourceid

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/JustinGrote/PIMFast/enums"
)

var (
	// ErrNotAzurePortalHost is returned when a URL does not point at an
	// Azure portal host.
	ErrNotAzurePortalHost = errors.New("pimfast: not an azure portal host")

	// ErrUnrecognizedPortalURL is returned when a portal URL carries no
	// scope this package can recover.
	ErrUnrecognizedPortalURL = errors.New("pimfast: unrecognized portal url")
)

const portalBaseURL = "https://portal.azure.com/#"

// Management groups have no generic resource view; the portal routes them
// through the drilldown blade keyed by the management group id.
const managementGroupBlade = "view/Microsoft_Azure_ManagementGroups/ManagementGroupDrilldownMenuBlade/~/overview/mgId/"

var portalHosts = map[string]struct{}{
	"portal.azure.com":         {},
	"preview.portal.azure.com": {},
	"portal.azure.us":          {},
	"portal.azure.cn":          {},
}

// ToPortalURL builds the Azure portal deep link for a scope. tenantDomain
// selects the directory the portal signs into; empty falls back to the
// portal's default directory. An empty scopeType is classified by parsing
// the scope.
func ToPortalURL(scope string, tenantDomain string, scopeType enums.ScopeType) (string, error) {
	if scopeType == "" {
		identity, err := Parse(scope)
		if err != nil {
			return "", err
		}
		scopeType = identity.ScopeType()
	}

	if scopeType == enums.ScopeManagementGroup {
		mgId := scope[strings.LastIndex(scope, "/")+1:]
		return portalBaseURL + managementGroupBlade + url.PathEscape(mgId), nil
	}

	return portalBaseURL + "@" + tenantDomain + "/resource" + scope, nil
}

// FromPortalURL recovers the scope a portal URL points at. It reverses the
// generic resource view route and the management group drilldown route.
// Copied portal URLs often append a view name after the scope, so a
// candidate that fails to parse is retried once with its trailing segment
// trimmed.
func FromPortalURL(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnrecognizedPortalURL, rawURL)
	}

	if _, ok := portalHosts[strings.ToLower(parsed.Hostname())]; !ok {
		return "", fmt.Errorf("%w: %q", ErrNotAzurePortalHost, parsed.Hostname())
	}

	fragment := parsed.Fragment

	if rest, ok := strings.CutPrefix(fragment, managementGroupBlade); ok {
		mgId, _, _ := strings.Cut(rest, "/")
		if mgId == "" {
			return "", fmt.Errorf("%w: %q", ErrUnrecognizedPortalURL, rawURL)
		}
		return ManagementGroup{ID: mgId}.String(), nil
	}

	idx := strings.Index(fragment, "/resource/")
	if idx < 0 {
		return "", fmt.Errorf("%w: %q", ErrUnrecognizedPortalURL, rawURL)
	}

	candidate := fragment[idx+len("/resource"):]
	if _, err := Parse(candidate); err == nil {
		return candidate, nil
	}

	if cut := strings.LastIndex(candidate, "/"); cut > 0 {
		trimmed := candidate[:cut]
		if _, err := Parse(trimmed); err == nil {
			return trimmed, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnrecognizedPortalURL, rawURL)
}
