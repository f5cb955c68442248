package packs

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
)

// ManifestFile is the manifest location relative to the data root.
const ManifestFile = "packs/manifest.json"

// ParseManifest accepts both manifest forms: a plain array of pack names, or
// an object with a packs field. Anything else yields an empty manifest so
// assignment degrades to the default question set instead of blocking the
// participant.
func ParseManifest(data []byte) []string {
	var names []string
	if err := json.Unmarshal(data, &names); err == nil {
		return names
	}

	var wrapped struct {
		Packs []string `json:"packs"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Packs != nil {
		return wrapped.Packs
	}

	log.Printf("packs: malformed manifest, using empty manifest")
	return nil
}

// LoadManifest reads the pack manifest under dataRoot. A missing or
// unreadable file degrades to an empty manifest; it is never a user-facing
// error.
func LoadManifest(dataRoot string) []string {
	data, err := os.ReadFile(filepath.Join(dataRoot, filepath.FromSlash(ManifestFile)))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("packs: read manifest: %v", err)
		}
		return nil
	}
	return ParseManifest(data)
}
