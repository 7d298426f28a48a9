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

package rest

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/http2"
	"golang.org/x/net/proxy"
)

func TestDial(t *testing.T) {
	t.Run("reachable target returns the local address", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer testServer.Close()

		addr, err := Dial(logr.Discard(), "", testServer.URL)
		require.NoError(t, err)
		require.NotEmpty(t, addr)
	})

	t.Run("invalid proxy url fails", func(t *testing.T) {
		_, err := Dial(logr.Discard(), "://not-a-url", "https://graph.microsoft.com")
		require.Error(t, err)
	})
}

func TestGetDialer(t *testing.T) {
	t.Run("no proxy yields the direct dialer", func(t *testing.T) {
		dialer, err := GetDialer("")
		require.NoError(t, err)
		require.NotNil(t, dialer)
	})

	t.Run("proxy url yields the registered proxy dialer", func(t *testing.T) {
		proxy.RegisterDialerType("http", NewProxyDialer)
		proxy.RegisterDialerType("https", NewProxyDialer)

		dialer, err := GetDialer("http://proxy.local:8080")
		require.NoError(t, err)
		require.NotNil(t, dialer)

		dialer, err = GetDialer("https://proxy.local:8443")
		require.NoError(t, err)
		require.NotNil(t, dialer)
	})
}

func TestIsGoAwayErr(t *testing.T) {
	goAway := &url.Error{
		Op:  "Get",
		URL: "https://graph.microsoft.com",
		Err: &http2.GoAwayError{
			LastStreamID: 1,
			ErrCode:      http2.ErrCodeNo,
		},
	}
	require.True(t, IsGoAwayErr(goAway))
	require.False(t, IsGoAwayErr(errors.New("EOF")))
}
