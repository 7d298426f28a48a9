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

package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/JustinGrote/PIMFast/client/query"
	"github.com/JustinGrote/PIMFast/client/rest"
	"github.com/JustinGrote/PIMFast/models"
)

const (
	graphApiVersion = "v1.0"

	rmPimApiVersion              = "2020-10-01"
	rmSubscriptionsApiVersion    = "2022-12-01"
	rmTenantsApiVersion          = "2022-12-01"
	rmManagementGroupsApiVersion = "2021-04-01"
)

type azureClient struct {
	msgraph         rest.RestClient
	resourceManager rest.RestClient

	tokens             TokenProvider
	graphAudience      string
	managementAudience string
}

func (s *azureClient) TokenProvider() TokenProvider {
	return s.tokens
}

func (s *azureClient) CloseIdleConnections() {
	s.msgraph.CloseIdleConnections()
	s.resourceManager.CloseIdleConnections()
}

// azureList is the paged response envelope shared by Graph and Resource
// Manager list operations. Graph pages with @odata.nextLink, ARM with
// nextLink.
type azureList[T any] struct {
	Count         int    `json:"@odata.count,omitempty"`
	OdataNextLink string `json:"@odata.nextLink,omitempty"`
	NextLink      string `json:"nextLink,omitempty"`
	Value         []T    `json:"value"`
}

func (s azureList[T]) next() string {
	if s.OdataNextLink != "" {
		return s.OdataNextLink
	}
	return s.NextLink
}

// getAzureObjectList streams every page of a list operation into out, which
// it closes when the listing ends. A request or decode failure is sent as
// the final result.
func getAzureObjectList[T any](restClient rest.RestClient, tokens TokenProvider, ctx context.Context, account models.Account, audience string, path string, params query.Params, out chan AzureResult[T]) {
	defer close(out)

	var (
		errResult AzureResult[T]
		nextLink  string
	)

	bearer, err := tokens.GetToken(ctx, account, audience)
	if err != nil {
		errResult.Error = err
		send(ctx, out, errResult)
		return
	}

	headers := map[string]string{"Authorization": bearer}
	if params != nil && params.NeedsEventualConsistencyHeaderFlag() {
		headers["ConsistencyLevel"] = "eventual"
	}

	for {
		var (
			list azureList[T]
			res  *http.Response
		)

		if nextLink == "" {
			var queryParams map[string]string
			if params != nil {
				queryParams = params.AsMap()
			}
			res, err = restClient.Get(ctx, path, queryParams, headers)
		} else if nextUrl, parseErr := url.Parse(nextLink); parseErr != nil {
			errResult.Error = parseErr
			send(ctx, out, errResult)
			return
		} else if req, reqErr := rest.NewRequest(ctx, http.MethodGet, nextUrl, nil, nil, headers); reqErr != nil {
			errResult.Error = reqErr
			send(ctx, out, errResult)
			return
		} else {
			res, err = restClient.Send(req)
		}

		if err != nil {
			errResult.Error = err
			send(ctx, out, errResult)
			return
		}

		if err := rest.Decode(res.Body, &list); err != nil {
			errResult.Error = err
			send(ctx, out, errResult)
			return
		}

		for _, item := range list.Value {
			if !send(ctx, out, AzureResult[T]{Ok: item}) {
				return
			}
		}

		if nextLink = list.next(); nextLink == "" {
			return
		}
	}
}

// getAzureObject fetches a single resource.
func getAzureObject[T any](restClient rest.RestClient, tokens TokenProvider, ctx context.Context, account models.Account, audience string, path string, params query.Params) (T, error) {
	var value T

	bearer, err := tokens.GetToken(ctx, account, audience)
	if err != nil {
		return value, err
	}

	var queryParams map[string]string
	if params != nil {
		queryParams = params.AsMap()
	}

	res, err := restClient.Get(ctx, path, queryParams, map[string]string{"Authorization": bearer})
	if err != nil {
		return value, err
	}

	if err := rest.Decode(res.Body, &value); err != nil {
		return value, err
	}
	return value, nil
}

func send[T any](ctx context.Context, out chan AzureResult[T], result AzureResult[T]) bool {
	select {
	case out <- result:
		return true
	case <-ctx.Done():
		return false
	}
}
