// Package activation resolves a device's self-reported identification to
// its provisioning artifact on disk.
package activation

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"syscall"
)

// ArtifactName is the filename served to the device. It is a fixed
// literal, never derived from client input.
const ArtifactName = "patched.plist"

var (
	// ErrMissingIdentification means the model or build token was absent.
	ErrMissingIdentification = errors.New("missing model or build identification")
	// ErrTraversal means a token contained a path traversal sequence.
	ErrTraversal = errors.New("identification contains a traversal sequence")
	// ErrNotFound means no artifact exists for the identification.
	ErrNotFound = errors.New("no artifact for identification")
)

var (
	modelRegex = regexp.MustCompile(`model/([A-Za-z0-9,]+)`)
	buildRegex = regexp.MustCompile(`build/([A-Za-z0-9]+)`)
)

// Identification is a device's self-reported hardware model and firmware
// build. An empty field means the token was absent from the header; the
// extraction patterns cannot capture an empty string.
type Identification struct {
	Model string `json:"model,omitempty"`
	Build string `json:"build,omitempty"`
}

// Complete reports whether both tokens were present.
func (id Identification) Complete() bool {
	return id.Model != "" && id.Build != ""
}

// ParseIdentification extracts the model and build tokens from a client
// identification header (conventionally the User-Agent). Surrounding
// content is ignored.
func ParseIdentification(header string) Identification {
	var id Identification
	if m := modelRegex.FindStringSubmatch(header); m != nil {
		id.Model = m[1]
	}
	if m := buildRegex.FindStringSubmatch(header); m != nil {
		id.Build = m[1]
	}
	return id
}

// Resolver maps identifications to artifact paths under a trusted asset
// root. The zero value is not usable; use NewResolver.
type Resolver struct {
	Root string

	stat func(string) (os.FileInfo, error)
}

// NewResolver creates a new resolver for the given asset root.
func NewResolver(root string) *Resolver {
	return &Resolver{Root: root, stat: os.Stat}
}

// Resolve returns the on-disk artifact path for id. The traversal check
// runs before any path composition or filesystem access; it and the
// existence check are independent guards.
func (r *Resolver) Resolve(id Identification) (string, error) {
	if !id.Complete() {
		return "", ErrMissingIdentification
	}
	if strings.Contains(id.Model, "..") || strings.Contains(id.Build, "..") {
		return "", ErrTraversal
	}
	path := filepath.Join(r.Root, id.Model, id.Build, ArtifactName)
	fi, err := r.stat(path)
	if err != nil {
		// ENOTDIR happens when a token names a regular file that shadows
		// a directory component; caller-controlled, so a denial
		if os.IsNotExist(err) || errors.Is(err, syscall.ENOTDIR) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("activation: failed to stat %s: %w", path, err)
	}
	if !fi.Mode().IsRegular() {
		return "", ErrNotFound
	}
	return path, nil
}

// Denied reports whether err is a caller-controlled denial rather than an
// operational failure. Denials are all surfaced to the client identically.
func Denied(err error) bool {
	return errors.Is(err, ErrMissingIdentification) ||
		errors.Is(err, ErrTraversal) ||
		errors.Is(err, ErrNotFound)
}
