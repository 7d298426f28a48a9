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

package config

const (
	defaultAuthorityUrl  = "https://login.microsoftonline.com"
	defaultGraphUrl      = "https://graph.microsoft.com"
	defaultManagementUrl = "https://management.azure.com"
)

// Config carries the connection settings for the Azure client. Zero-value
// URL fields fall back to the public cloud endpoints.
type Config struct {
	// ApplicationId is the client id of the app registration requesting
	// tokens on the user's behalf.
	ApplicationId string

	// Authority overrides the token authority URL.
	Authority string

	// ClientSecret, or ClientCert/ClientKey/ClientKeyPass, authenticate the
	// application itself when a confidential client flow is used.
	ClientSecret  string
	ClientCert    string
	ClientKey     string
	ClientKeyPass string

	// RefreshToken drives the delegated flow used for signed-in accounts.
	RefreshToken string

	// Username and Password drive the resource-owner flow; discouraged, kept
	// for parity with automation scenarios.
	Username string
	Password string

	Graph      string
	Management string

	ProxyUrl string
}

func (s Config) AuthorityUrl() string {
	if s.Authority != "" {
		return s.Authority
	}
	return defaultAuthorityUrl
}

func (s Config) GraphUrl() string {
	if s.Graph != "" {
		return s.Graph
	}
	return defaultGraphUrl
}

func (s Config) ManagementUrl() string {
	if s.Management != "" {
		return s.Management
	}
	return defaultManagementUrl
}
