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
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/JustinGrote/PIMFast/client/config"
	"github.com/JustinGrote/PIMFast/models"
)

type Token struct {
	AccessToken  string         `json:"access_token"`
	ExpiresIn    IntOrStringInt `json:"expires_in"`
	TokenType    string         `json:"token_type"`
	RefreshToken string         `json:"refresh_token,omitempty"`

	expires time.Time
}

func (s Token) IsExpired() bool {
	return time.Now().After(s.expires)
}

func (s Token) String() string {
	return fmt.Sprintf("%s %s", s.TokenType, s.AccessToken)
}

// TokenService acquires and caches tokens per account and audience. It is
// the default implementation of the client's credential provider seam.
type TokenService struct {
	config config.Config
	http   *http.Client

	mu            sync.Mutex
	tokens        map[string]Token
	refreshTokens map[string]string
}

func NewTokenService(cfg config.Config) (*TokenService, error) {
	httpClient, err := NewHTTPClient(cfg.ProxyUrl)
	if err != nil {
		return nil, err
	}
	return &TokenService{
		config:        cfg,
		http:          httpClient,
		tokens:        make(map[string]Token),
		refreshTokens: make(map[string]string),
	}, nil
}

// GetToken returns a bearer value ("Bearer eyJ...") for the account against
// the given audience, refreshing lazily on expiry.
func (s *TokenService) GetToken(ctx context.Context, account models.Account, audience string) (string, error) {
	key := account.Id + "|" + audience

	s.mu.Lock()
	defer s.mu.Unlock()

	if token, ok := s.tokens[key]; ok && !token.IsExpired() {
		return token.String(), nil
	}

	token, err := s.requestToken(ctx, account, audience)
	if err != nil {
		return "", err
	}
	s.tokens[key] = token
	if token.RefreshToken != "" {
		s.refreshTokens[account.Id] = token.RefreshToken
	}
	return token.String(), nil
}

func (s *TokenService) requestToken(ctx context.Context, account models.Account, audience string) (Token, error) {
	tenant := account.TenantId
	if tenant == "" {
		tenant = "organizations"
	}

	var (
		tokenUrl = fmt.Sprintf("%s/%s/oauth2/v2.0/token", s.config.AuthorityUrl(), tenant)
		body     = url.Values{}
	)

	body.Set("client_id", s.config.ApplicationId)
	body.Set("scope", strings.TrimSuffix(audience, "/")+"/.default offline_access")

	refreshToken := s.refreshTokens[account.Id]
	if refreshToken == "" {
		refreshToken = s.config.RefreshToken
	}

	if refreshToken != "" {
		body.Set("grant_type", "refresh_token")
		body.Set("refresh_token", refreshToken)
	} else if s.config.ClientSecret != "" {
		body.Set("grant_type", "client_credentials")
		body.Set("client_secret", s.config.ClientSecret)
	} else if s.config.ClientCert != "" && s.config.ClientKey != "" {
		if assertion, err := NewClientAssertion(tokenUrl, s.config.ApplicationId, s.config.ClientCert, s.config.ClientKey, s.config.ClientKeyPass); err != nil {
			return Token{}, err
		} else {
			body.Set("grant_type", "client_credentials")
			body.Set("client_assertion_type", "urn:ietf:params:oauth:client-assertion-type:jwt-bearer")
			body.Set("client_assertion", assertion)
		}
	} else if s.config.Username != "" && s.config.Password != "" {
		body.Set("grant_type", "password")
		body.Set("username", s.config.Username)
		body.Set("password", s.config.Password)
	} else {
		return Token{}, fmt.Errorf("no credential configured for account %s", account.Id)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenUrl, strings.NewReader(body.Encode()))
	if err != nil {
		return Token{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := s.http.Do(req)
	if err != nil {
		return Token{}, err
	}

	if res.StatusCode != http.StatusOK {
		var errRes map[string]interface{}
		if err := Decode(res.Body, &errRes); err != nil {
			return Token{}, fmt.Errorf("token request failed, status code: %d", res.StatusCode)
		}
		return Token{}, fmt.Errorf("token request failed: %v", errRes["error_description"])
	}

	var token Token
	if err := Decode(res.Body, &token); err != nil {
		return Token{}, err
	}
	if token.TokenType == "" {
		token.TokenType = "Bearer"
	}
	token.expires = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second).Add(-30 * time.Second)
	return token, nil
}
