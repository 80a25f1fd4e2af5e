// Package manifest reads the release version from a cargo project manifest.
//
// Only the package.version key is consulted. The value is returned with one
// pair of surrounding double quotes removed, so manifests that store an
// already-quoted version string produce the same result as plain ones.
package manifest
