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

// Package resourceid classifies and decomposes Azure scope strings. Parsing
// is pure and total over the six-form scope grammar; everything else fails
// with ErrMalformedScope.
package resourceid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/JustinGrote/PIMFast/enums"
)

// ErrMalformedScope is returned when a scope string matches none of the
// recognized grammar forms.
var ErrMalformedScope = errors.New("pimfast: malformed scope")

// ResourceIdentity is a classified scope. Exactly one variant matches any
// valid scope string. Variants are immutable values; String reconstructs the
// canonical scope the variant was parsed from.
type ResourceIdentity interface {
	ScopeType() enums.ScopeType
	String() string

	sealed()
}

// Tenant is a "/tenants/{id}" scope.
type Tenant struct {
	ID string
}

func (t Tenant) ScopeType() enums.ScopeType { return enums.ScopeTenant }
func (t Tenant) String() string             { return "/tenants/" + t.ID }
func (Tenant) sealed()                      {}

// ManagementGroup is a "/providers/Microsoft.Management/managementGroups/{id}" scope.
type ManagementGroup struct {
	ID string
}

func (m ManagementGroup) ScopeType() enums.ScopeType { return enums.ScopeManagementGroup }
func (m ManagementGroup) String() string {
	return "/providers/Microsoft.Management/managementGroups/" + m.ID
}
func (ManagementGroup) sealed() {}

// Subscription is a "/subscriptions/{id}" scope.
type Subscription struct {
	ID string
}

func (s Subscription) ScopeType() enums.ScopeType { return enums.ScopeSubscription }
func (s Subscription) String() string             { return "/subscriptions/" + s.ID }
func (Subscription) sealed()                      {}

// ResourceGroup is a "/subscriptions/{sub}/resourceGroups/{rg}" scope.
type ResourceGroup struct {
	Name           string
	SubscriptionID string
}

func (r ResourceGroup) ScopeType() enums.ScopeType { return enums.ScopeResourceGroup }
func (r ResourceGroup) String() string {
	return "/subscriptions/" + r.SubscriptionID + "/resourceGroups/" + r.Name
}
func (ResourceGroup) sealed() {}

// Resource is a resource-group scope extended with a
// "/providers/{provider}/{type}/{name}" segment.
type Resource struct {
	Name           string
	SubscriptionID string
	ResourceGroup  string
	Provider       string
	Type           string
}

func (r Resource) ScopeType() enums.ScopeType { return enums.ScopeResource }
func (r Resource) String() string {
	return "/subscriptions/" + r.SubscriptionID + "/resourceGroups/" + r.ResourceGroup +
		"/providers/" + r.Provider + "/" + r.Type + "/" + r.Name
}
func (Resource) sealed() {}

// ChildResource is a resource scope extended with one trailing
// "{childType}/{childName}" pair. The embedded Resource describes the parent.
type ChildResource struct {
	Resource

	ChildType string
	ChildName string
}

func (c ChildResource) ScopeType() enums.ScopeType { return enums.ScopeChildResource }
func (c ChildResource) String() string {
	return c.Resource.String() + "/" + c.ChildType + "/" + c.ChildName
}
func (ChildResource) sealed() {}

// ParentResourceName returns the name of the resource the child hangs off.
func (c ChildResource) ParentResourceName() string { return c.Resource.Name }

// Parse classifies a scope string into exactly one ResourceIdentity variant.
// Segment keywords are matched case-insensitively, the way ARM treats them;
// ids are preserved verbatim. The most specific matching form wins, so
// classification is unambiguous.
func Parse(scope string) (ResourceIdentity, error) {
	if !strings.HasPrefix(scope, "/") {
		return nil, fmt.Errorf("%w: %q", ErrMalformedScope, scope)
	}

	segments := strings.Split(strings.TrimPrefix(scope, "/"), "/")
	for _, segment := range segments {
		if segment == "" {
			return nil, fmt.Errorf("%w: %q", ErrMalformedScope, scope)
		}
	}

	switch {
	case len(segments) == 2 && segmentIs(segments[0], "tenants"):
		return Tenant{ID: segments[1]}, nil

	case len(segments) == 4 && segmentIs(segments[0], "providers") &&
		segmentIs(segments[1], "Microsoft.Management") && segmentIs(segments[2], "managementGroups"):
		return ManagementGroup{ID: segments[3]}, nil

	case len(segments) == 2 && segmentIs(segments[0], "subscriptions"):
		return Subscription{ID: segments[1]}, nil

	case len(segments) == 4 && segmentIs(segments[0], "subscriptions") && segmentIs(segments[2], "resourceGroups"):
		return ResourceGroup{
			Name:           segments[3],
			SubscriptionID: segments[1],
		}, nil

	case len(segments) == 8 && segmentIs(segments[0], "subscriptions") &&
		segmentIs(segments[2], "resourceGroups") && segmentIs(segments[4], "providers"):
		return Resource{
			Name:           segments[7],
			SubscriptionID: segments[1],
			ResourceGroup:  segments[3],
			Provider:       segments[5],
			Type:           segments[6],
		}, nil

	case len(segments) == 10 && segmentIs(segments[0], "subscriptions") &&
		segmentIs(segments[2], "resourceGroups") && segmentIs(segments[4], "providers"):
		return ChildResource{
			Resource: Resource{
				Name:           segments[7],
				SubscriptionID: segments[1],
				ResourceGroup:  segments[3],
				Provider:       segments[5],
				Type:           segments[6],
			},
			ChildType: segments[8],
			ChildName: segments[9],
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrMalformedScope, scope)
	}
}

// SubscriptionID extracts the subscription id from a subscription-rooted
// identity. The second return is false for tenant and management-group
// scopes, which have no owning subscription.
func SubscriptionID(identity ResourceIdentity) (string, bool) {
	switch v := identity.(type) {
	case Subscription:
		return v.ID, true
	case ResourceGroup:
		return v.SubscriptionID, true
	case Resource:
		return v.SubscriptionID, true
	case ChildResource:
		return v.SubscriptionID, true
	default:
		return "", false
	}
}

func segmentIs(segment, keyword string) bool {
	return strings.EqualFold(segment, keyword)
}
