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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// RestClient is the transport seam under the Azure client. Authorization is
// carried in request headers by the caller; the transport handles request
// construction, retries and throttling responses.
type RestClient interface {
	Get(ctx context.Context, path string, params map[string]string, headers map[string]string) (*http.Response, error)
	Post(ctx context.Context, path string, body interface{}, params map[string]string, headers map[string]string) (*http.Response, error)
	Send(req *http.Request) (*http.Response, error)
	CloseIdleConnections()
}

func NewRestClient(apiUrl string, proxyUrl string) (RestClient, error) {
	if api, err := url.Parse(apiUrl); err != nil {
		return nil, err
	} else if httpClient, err := NewHTTPClient(proxyUrl); err != nil {
		return nil, err
	} else {
		return &restClient{
			api:  *api,
			http: httpClient,
		}, nil
	}
}

type restClient struct {
	api  url.URL
	http *http.Client
}

func (s *restClient) Get(ctx context.Context, path string, params map[string]string, headers map[string]string) (*http.Response, error) {
	endpoint := s.api.ResolveReference(&url.URL{Path: path})
	if req, err := NewRequest(ctx, http.MethodGet, endpoint, nil, params, headers); err != nil {
		return nil, err
	} else {
		return s.Send(req)
	}
}

func (s *restClient) Post(ctx context.Context, path string, body interface{}, params map[string]string, headers map[string]string) (*http.Response, error) {
	endpoint := s.api.ResolveReference(&url.URL{Path: path})
	if req, err := NewRequest(ctx, http.MethodPost, endpoint, body, params, headers); err != nil {
		return nil, err
	} else {
		return s.Send(req)
	}
}

func (s *restClient) Send(req *http.Request) (*http.Response, error) {
	// copy the bytes in case we need to retry the request
	if body, err := CopyBody(req); err != nil {
		return nil, err
	} else {
		var (
			res        *http.Response
			err        error
			maxRetries = 3
		)
		for retry := 0; retry < maxRetries; retry++ {

			// Reusing http.Request requires rewinding the request body
			// back to a working state
			if body != nil && retry > 0 {
				req.Body = io.NopCloser(bytes.NewBuffer(body))
			}

			if res, err = s.http.Do(req); err != nil {
				// GOAWAY means the server is recycling the connection; the
				// retry reconnects.
				if IsClosedConnectionErr(err) || IsGoAwayErr(err) {
					ExponentialBackoff(retry)
					continue
				}
				return nil, err
			} else if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusBadRequest {
				// Retry guidance: https://learn.microsoft.com/en-us/azure/architecture/best-practices/retry-service-specific#retry-usage-guidance
				if res.StatusCode == http.StatusTooManyRequests {
					retryAfterHeader := res.Header.Get("Retry-After")
					if retryAfter, err := strconv.ParseInt(retryAfterHeader, 10, 64); err != nil {
						return nil, fmt.Errorf("attempting to handle 429 but unable to parse retry-after header: %w", err)
					} else {
						time.Sleep(time.Second * time.Duration(retryAfter))
						continue
					}
				} else if res.StatusCode >= http.StatusInternalServerError {
					ExponentialBackoff(retry)
					continue
				} else {
					var errRes map[string]interface{}
					if err := Decode(res.Body, &errRes); err != nil {
						return nil, fmt.Errorf("malformed error response, status code: %d", res.StatusCode)
					} else {
						return nil, fmt.Errorf("%v", errRes)
					}
				}
			} else {
				return res, nil
			}
		}
		return nil, fmt.Errorf("unable to complete the request after %d attempts: %w", maxRetries, err)
	}
}

func (s *restClient) CloseIdleConnections() {
	s.http.CloseIdleConnections()
}

// NewRequest builds a request against an endpoint, JSON-encoding a non-nil
// body and applying query params and headers.
func NewRequest(ctx context.Context, method string, endpoint *url.URL, body interface{}, params map[string]string, headers map[string]string) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return nil, err
		}
		reader = buf
	}

	if len(params) > 0 {
		values := endpoint.Query()
		for key, value := range params {
			values.Set(key, value)
		}
		endpoint.RawQuery = values.Encode()
	}

	if req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader); err != nil {
		return nil, err
	} else {
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		for key, value := range headers {
			req.Header.Set(key, value)
		}
		return req, nil
	}
}

// NewHTTPClient builds the underlying http.Client, routing through a proxy
// when one is configured.
func NewHTTPClient(proxyUrl string) (*http.Client, error) {
	transport := &http.Transport{
		MaxIdleConnsPerHost: 10,
	}

	if proxyUrl != "" {
		if parsed, err := url.Parse(proxyUrl); err != nil {
			return nil, err
		} else if !strings.HasPrefix(parsed.Scheme, "http") {
			return nil, fmt.Errorf("unsupported proxy scheme: %s", parsed.Scheme)
		} else {
			transport.Proxy = http.ProxyURL(parsed)
		}
	}

	return &http.Client{Transport: transport}, nil
}
