// Package handle implements parsing and formatting of Handle System
// identifiers.
package handle

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultProxyBase is the canonical public handle resolver.
const DefaultProxyBase = "http://hdl.handle.net/"

// Handle is a parsed handle identifier.
type Handle struct {
	Prefix string
	Suffix string
}

// Parse attempts to parse value as a handle. Recognized forms are
// "hdl:{prefix}/{suffix}", "info:hdl/{prefix}/{suffix}",
// "{proxyBase}{prefix}/{suffix}" and the bare "{prefix}/{suffix}". An
// empty proxyBase falls back to DefaultProxyBase.
func Parse(value, proxyBase string) (Handle, error) {
	if proxyBase == "" {
		proxyBase = DefaultProxyBase
	}

	switch {
	case value == "":
		return Handle{}, errors.New("cannot parse an empty handle value")
	case strings.HasPrefix(value, "hdl:"):
		return split(value[4:])
	case strings.HasPrefix(value, "info:hdl/"):
		return split(value[9:])
	case strings.HasPrefix(value, proxyBase):
		return split(value[len(proxyBase):])
	case strings.Contains(value, "/"):
		return split(value)
	}

	return Handle{}, fmt.Errorf("%q does not look like a handle", value)
}

func split(value string) (Handle, error) {
	prefix, suffix, _ := strings.Cut(value, "/")
	if strings.TrimSpace(prefix) == "" {
		return Handle{}, errors.New("handle prefix cannot be empty")
	}
	if strings.TrimSpace(suffix) == "" {
		return Handle{}, errors.New("handle suffix cannot be empty")
	}
	return Handle{Prefix: prefix, Suffix: suffix}, nil
}

// String formats the handle as "{prefix}/{suffix}".
func (h Handle) String() string {
	return h.Prefix + "/" + h.Suffix
}

// HdlURI formats the handle as "hdl:{prefix}/{suffix}".
func (h Handle) HdlURI() string {
	return "hdl:" + h.String()
}

// InfoURI formats the handle as "info:hdl/{prefix}/{suffix}".
func (h Handle) InfoURI() string {
	return "info:hdl/" + h.String()
}

// ProxyURL formats the handle as a resolvable URL under proxyBase.
func (h Handle) ProxyURL(proxyBase string) string {
	if proxyBase == "" {
		proxyBase = DefaultProxyBase
	}
	return proxyBase + h.String()
}
