// Package assets scans and verifies the on-disk artifact tree.
package assets

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/blacktop/go-plist"

	"github.com/overcast302/activationd/internal/commands/activation"
	"github.com/overcast302/activationd/pkg/devices"
)

// Artifact describes one provisioning artifact found in the asset tree.
// Supported reports whether the model/build pair is inside the supported
// device matrix; an artifact outside it is never served less strictly, it
// is just flagged for the operator.
type Artifact struct {
	Model     string `json:"model"`
	Build     string `json:"build"`
	Path      string `json:"path"`
	Size      int64  `json:"size"`
	Valid     bool   `json:"valid"`
	Supported bool   `json:"supported"`
	Error     string `json:"error,omitempty"`
}

// Scan walks the asset tree at root and checks that every artifact
// decodes as a property list. Directories without an artifact are
// skipped; a malformed artifact is reported, not fatal.
func Scan(root string) ([]Artifact, error) {
	models, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("assets: failed to read asset root %s: %v", root, err)
	}
	var artifacts []Artifact
	for _, m := range models {
		if !m.IsDir() {
			continue
		}
		builds, err := os.ReadDir(filepath.Join(root, m.Name()))
		if err != nil {
			return nil, fmt.Errorf("assets: failed to read model directory %s: %v", m.Name(), err)
		}
		for _, b := range builds {
			if !b.IsDir() {
				continue
			}
			path := filepath.Join(root, m.Name(), b.Name(), activation.ArtifactName)
			fi, err := os.Stat(path)
			if err != nil || !fi.Mode().IsRegular() {
				continue
			}
			art := Artifact{
				Model:     m.Name(),
				Build:     b.Name(),
				Path:      path,
				Size:      fi.Size(),
				Supported: devices.SupportedBuild(m.Name(), b.Name()),
			}
			if err := verify(path); err != nil {
				art.Error = err.Error()
			} else {
				art.Valid = true
			}
			log.WithFields(log.Fields{
				"model": art.Model,
				"build": art.Build,
				"valid": art.Valid,
			}).Debug("scanned artifact")
			artifacts = append(artifacts, art)
		}
	}
	return artifacts, nil
}

func verify(path string) error {
	dat, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var v any
	if err := plist.NewDecoder(bytes.NewReader(dat)).Decode(&v); err != nil {
		return fmt.Errorf("not a valid property list: %v", err)
	}
	return nil
}
