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
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JustinGrote/PIMFast/client/query"
	"github.com/JustinGrote/PIMFast/client/rest"
	"github.com/JustinGrote/PIMFast/models"
)

type staticTokens struct{}

func (staticTokens) GetToken(ctx context.Context, account models.Account, audience string) (string, error) {
	return "Bearer test-token", nil
}

var testAccount = models.Account{
	Id:       "alex@contoso.onmicrosoft.com",
	ObjectId: "user-1",
	TenantId: "home-tid",
}

func newTestClient(t *testing.T, serverUrl string) *azureClient {
	t.Helper()

	restClient, err := rest.NewRestClient(serverUrl, "")
	require.NoError(t, err)

	return &azureClient{
		msgraph:            restClient,
		resourceManager:    restClient,
		tokens:             staticTokens{},
		graphAudience:      serverUrl,
		managementAudience: serverUrl,
	}
}

func TestListRoleEligibilityScheduleInstances(t *testing.T) {
	t.Run("follows nextLink across pages", func(t *testing.T) {
		var testServer *httptest.Server
		testServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

			if r.URL.Path == "/page2" {
				fmt.Fprint(w, `{"value":[{"id":"inst-2"}]}`)
				return
			}

			require.Equal(t, "2020-10-01", r.URL.Query().Get("api-version"))
			require.Equal(t, "asTarget()", r.URL.Query().Get("$filter"))
			fmt.Fprintf(w, `{"value":[{"id":"inst-1"}],"nextLink":%q}`, testServer.URL+"/page2")
		}))
		defer testServer.Close()

		azClient := newTestClient(t, testServer.URL)

		var ids []string
		for result := range azClient.ListRoleEligibilityScheduleInstances(context.Background(), testAccount, query.RMParams{}) {
			require.NoError(t, result.Error)
			ids = append(ids, result.Ok.Id)
		}
		require.Equal(t, []string{"inst-1", "inst-2"}, ids)
	})

	t.Run("request failure ends the stream with an error", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			fmt.Fprint(w, `{"error":"authorization failed"}`)
		}))
		defer testServer.Close()

		azClient := newTestClient(t, testServer.URL)

		var errs []error
		for result := range azClient.ListRoleEligibilityScheduleInstances(context.Background(), testAccount, query.RMParams{}) {
			errs = append(errs, result.Error)
		}
		require.Len(t, errs, 1)
		require.Error(t, errs[0])
	})
}

func TestListUnifiedRoleEligibilityScheduleInstances(t *testing.T) {
	t.Run("filters to the account and follows odata paging", func(t *testing.T) {
		var testServer *httptest.Server
		testServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/page2" {
				fmt.Fprint(w, `{"value":[{"id":"g-2"}]}`)
				return
			}

			require.Equal(t, "/v1.0/roleManagement/directory/roleEligibilityScheduleInstances", r.URL.Path)
			require.Equal(t, "principalId eq 'user-1'", r.URL.Query().Get("$filter"))
			require.Equal(t, "eventual", r.Header.Get("ConsistencyLevel"))
			fmt.Fprintf(w, `{"value":[{"id":"g-1"}],"@odata.nextLink":%q}`, testServer.URL+"/page2")
		}))
		defer testServer.Close()

		azClient := newTestClient(t, testServer.URL)

		var ids []string
		for result := range azClient.ListUnifiedRoleEligibilityScheduleInstances(context.Background(), testAccount, query.GraphParams{}) {
			require.NoError(t, result.Error)
			ids = append(ids, result.Ok.Id)
		}
		require.Equal(t, []string{"g-1", "g-2"}, ids)
	})
}

func TestGetManagementGroup(t *testing.T) {
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/providers/Microsoft.Management/managementGroups/contoso-root", r.URL.Path)
		fmt.Fprint(w, `{"name":"contoso-root","properties":{"tenantId":"home-tid","displayName":"Contoso Root"}}`)
	}))
	defer testServer.Close()

	azClient := newTestClient(t, testServer.URL)

	group, err := azClient.GetManagementGroup(context.Background(), testAccount, "contoso-root")
	require.NoError(t, err)
	require.Equal(t, "home-tid", group.Properties.TenantId)
	require.Equal(t, "Contoso Root", group.Properties.DisplayName)
}
