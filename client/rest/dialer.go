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
	"bufio"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"net/url"

	"github.com/go-logr/logr"
	"golang.org/x/net/proxy"
)

type HttpsDialer struct{}

func (s HttpsDialer) Dial(network string, addr string) (net.Conn, error) {
	return tls.Dial(network, addr, &tls.Config{})
}

func NewProxyDialer(url *url.URL, forward proxy.Dialer) (proxy.Dialer, error) {
	dialer := &proxyDialer{
		host:    url.Host,
		forward: forward,
	}

	if url.User != nil {
		dialer.user = url.User.Username()
		dialer.pass, _ = url.User.Password()
	}

	return dialer, nil
}

type proxyDialer struct {
	host    string
	user    string
	pass    string
	forward proxy.Dialer
}

func (s proxyDialer) Dial(network string, addr string) (net.Conn, error) {
	if s.forward == nil {
		return nil, fmt.Errorf("unable to connect to %s: forward dialer not set", s.host)
	} else if conn, err := s.forward.Dial(network, s.host); err != nil {
		return nil, fmt.Errorf("unable to connect to %s: %w", s.host, err)
	} else if req, err := http.NewRequest("CONNECT", "//"+addr, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("unable to connect to %s: %w", addr, err)
	} else {
		req.Close = false
		if s.user != "" {
			req.SetBasicAuth(s.user, s.pass)
		}

		if err := req.Write(conn); err != nil {
			conn.Close()
			return nil, fmt.Errorf("unable to connect to %s: %w", addr, err)
		}

		res, err := http.ReadResponse(bufio.NewReader(conn), req)
		if err != nil {
			conn.Close()
			return nil, fmt.Errorf("unable to connect to %s: %w", addr, err)
		} else if res.StatusCode != http.StatusOK {
			if res.Body != nil {
				res.Body.Close()
			}
			conn.Close()
			return nil, fmt.Errorf("unable to connect to %s via proxy (%s): statusCode %d", addr, s.host, res.StatusCode)
		} else {
			if res.Body != nil {
				res.Body.Close()
			}
			return conn, nil
		}
	}
}

// GetDialer returns a proxy-aware dialer for preflight connectivity checks.
func GetDialer(proxyUrl string) (proxy.Dialer, error) {
	if proxyUrl == "" {
		return proxy.Direct, nil
	} else if url, err := url.Parse(proxyUrl); err != nil {
		return nil, err
	} else if url.Scheme == "https" {
		return proxy.FromURL(url, HttpsDialer{})
	} else {
		return proxy.FromURL(url, proxy.Direct)
	}
}

// Dial verifies a target URL is reachable and returns the local address the
// connection was made from.
func Dial(log logr.Logger, proxyUrl string, targetUrl string) (string, error) {
	log.V(2).Info("dialing...", "targetUrl", targetUrl)
	if dialer, err := GetDialer(proxyUrl); err != nil {
		return "", err
	} else if url, err := url.Parse(targetUrl); err != nil {
		return "", err
	} else {
		port := url.Port()

		if port == "" {
			port = "443"
		}

		if conn, err := dialer.Dial("tcp", fmt.Sprintf("%s:%s", url.Hostname(), port)); err != nil {
			return "", err
		} else {
			defer conn.Close()
			addr := conn.LocalAddr().(*net.TCPAddr)
			return addr.IP.String(), nil
		}
	}
}
