package nzbrpc

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
)

// Transport selects the NZBGet endpoint and wire format.
type Transport string

const (
	// TransportXMLRPC talks to NZBGet's own /xmlrpc endpoint.
	TransportXMLRPC Transport = "xmlrpc"
	// TransportJSONRPC talks to a JSON-RPC 2.0 proxy at /jsonrpc. It does
	// not work against NZBGet's native /jsonrpc, which answers in 1.1.
	TransportJSONRPC Transport = "jsonrpc"
)

// ParseTransport validates a transport name.
func ParseTransport(s string) (Transport, error) {
	switch t := Transport(s); t {
	case TransportXMLRPC, TransportJSONRPC:
		return t, nil
	}
	return "", fmt.Errorf("%w: unknown transport %q", ErrConnectionConfig, s)
}

// Credentials are the control settings NZBGet hands to its scripts.
type Credentials struct {
	Host     string
	Port     string
	Username string
	Password string
}

// Normalize returns a copy with a wildcard listen address replaced by the
// matching loopback address. NZBGet reports the address it listens on,
// which clients cannot connect to when it is 0.0.0.0 or ::.
func (c Credentials) Normalize() Credentials {
	switch c.Host {
	case "0.0.0.0":
		c.Host = "127.0.0.1"
	case "::", "[::]":
		c.Host = "::1"
	}
	return c
}

// Validate reports missing or malformed fields.
func (c Credentials) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("%w: control address is empty", ErrConnectionConfig)
	}
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: control port %q is not a valid port", ErrConnectionConfig, c.Port)
	}
	return nil
}

// URL returns the endpoint URL for transport t, carrying the username and
// password as escaped userinfo.
func (c Credentials) URL(t Transport) *url.URL {
	c = c.Normalize()
	u := &url.URL{
		Scheme: "http",
		Host:   net.JoinHostPort(c.Host, c.Port),
		Path:   "/" + string(t),
	}
	if c.Username != "" || c.Password != "" {
		u.User = url.UserPassword(c.Username, c.Password)
	}
	return u
}

// Dial builds a client for the control API. No connection is made until
// the first call.
func Dial(c Credentials, t Transport) (Client, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	endpoint := c.URL(t).String()
	switch t {
	case TransportXMLRPC:
		return newXMLRPCClient(endpoint)
	case TransportJSONRPC:
		return newJSONRPCClient(endpoint), nil
	}
	_, err := ParseTransport(string(t))
	return nil, err
}
