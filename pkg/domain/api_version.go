package domain

import (
	"fmt"
)

// APIVersion is a route prefix version of the draft API.
type APIVersion string

const (
	APIVersionV1 APIVersion = "v1"
)

var supportedVersions = map[APIVersion]struct{}{
	APIVersionV1: {},
}

// ParseAPIVersion validates and returns an APIVersion.
func ParseAPIVersion(s string) (APIVersion, error) {
	v := APIVersion(s)
	if _, ok := supportedVersions[v]; !ok {
		return "", fmt.Errorf("unknown API version: %s", s)
	}
	return v, nil
}

func (v APIVersion) String() string {
	return string(v)
}

// Prefix returns the route prefix for the version, e.g. "/v1".
func (v APIVersion) Prefix() string {
	return "/" + string(v)
}

// DefaultVersion is the version mounted by the server.
func DefaultVersion() APIVersion {
	return APIVersionV1
}
