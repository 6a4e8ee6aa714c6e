package catalog

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/packlink/pkg/errors"
	"github.com/arthur-debert/packlink/pkg/loader"
	"github.com/tidwall/gjson"
)

const (
	// ManifestFile is the per-instance manifest name
	ManifestFile = "instance.json"

	// IconFile is the optional instance icon next to the manifest
	IconFile = "folder.jpg"
)

// Manifest field names
const (
	fieldUUID      = "uuid"
	fieldName      = "name"
	fieldVersion   = "version"
	fieldMCVersion = "mcVersion"
	fieldModLoader = "modLoader"
)

// Instance is one modpack instance from the Catalog
type Instance struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	PackVersion string           `json:"packVersion"`
	GameVersion string           `json:"gameVersion"`
	Loader      loader.ModLoader `json:"-"`
}

// DisplayName returns the name followed by the first segment of the id,
// which disambiguates instances sharing a name
func (i Instance) DisplayName() string {
	short, _, _ := strings.Cut(i.ID, "-")
	return fmt.Sprintf("%s [%s...]", i.Name, short)
}

// Dir returns the instance directory below the Catalog root
func Dir(root string, inst Instance) string {
	return filepath.Join(root, inst.ID)
}

// IconPath returns where the instance icon would live
func IconPath(root string, inst Instance) string {
	return filepath.Join(Dir(root, inst), IconFile)
}

// ParseManifest decodes a Catalog manifest. All five fields must be
// present as strings and the loader must be recognized.
func ParseManifest(data []byte) (Instance, error) {
	if !gjson.ValidBytes(data) {
		return Instance{}, errors.New(errors.ErrInvalidInput, "manifest is not valid JSON")
	}

	keys := []string{fieldUUID, fieldName, fieldVersion, fieldMCVersion, fieldModLoader}
	results := gjson.GetManyBytes(data, keys...)
	values := make(map[string]string, len(keys))
	for i, key := range keys {
		if results[i].Type != gjson.String {
			return Instance{}, errors.Newf(errors.ErrInvalidInput, "manifest field %q missing or not a string", key).
				WithDetail("field", key)
		}
		values[key] = results[i].String()
	}

	// The id names a directory on both sides, so it must be one path element
	id := values[fieldUUID]
	if id == "" || id == "." || id == ".." || filepath.Base(id) != id || strings.ContainsAny(id, `/\`) {
		return Instance{}, errors.Newf(errors.ErrInvalidInput, "manifest uuid %q is not a plain directory name", id).
			WithDetail("field", fieldUUID)
	}

	modLoader, err := loader.Parse(values[fieldModLoader])
	if err != nil {
		return Instance{}, err
	}

	return Instance{
		ID:          values[fieldUUID],
		Name:        values[fieldName],
		PackVersion: values[fieldVersion],
		GameVersion: values[fieldMCVersion],
		Loader:      modLoader,
	}, nil
}
