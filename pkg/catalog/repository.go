package catalog

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/arthur-debert/packlink/pkg/errors"
	"github.com/arthur-debert/packlink/pkg/logging"
	"github.com/arthur-debert/packlink/pkg/types"
)

// Enumerate lists every readable instance below root. It never fails:
// unreadable roots and broken entries are skipped. Order follows the
// directory listing.
func Enumerate(fsys types.FS, root string) []Instance {
	logger := logging.GetLogger("catalog")

	if root == "" {
		return nil
	}

	entries, err := fsys.ReadDir(root)
	if err != nil {
		logger.Debug().Err(err).Str("root", root).Msg("Cannot read catalog root")
		return nil
	}

	var instances []Instance
	for _, entry := range entries {
		manifestPath := filepath.Join(root, entry.Name(), ManifestFile)

		data, err := fsys.ReadFile(manifestPath)
		if err != nil {
			logger.Trace().Err(err).Str("path", manifestPath).Msg("Skipping entry without readable manifest")
			continue
		}

		inst, err := ParseManifest(data)
		if err != nil {
			logger.Debug().Err(err).Str("path", manifestPath).Msg("Skipping malformed manifest")
			continue
		}

		instances = append(instances, inst)
	}

	logger.Debug().Str("root", root).Int("count", len(instances)).Msg("Catalog enumerated")
	return instances
}

// Find selects one instance by exact id, exact name, or unique id prefix
func Find(instances []Instance, query string) (Instance, error) {
	if query == "" {
		return Instance{}, errors.New(errors.ErrInvalidInput, "no instance given")
	}

	for _, inst := range instances {
		if inst.ID == query {
			return inst, nil
		}
	}

	if match, ok, err := unique(instances, query, func(i Instance) bool { return i.Name == query }); ok || err != nil {
		return match, err
	}

	if match, ok, err := unique(instances, query, func(i Instance) bool { return strings.HasPrefix(i.ID, query) }); ok || err != nil {
		return match, err
	}

	return Instance{}, errors.Newf(errors.ErrInstanceNotFound, "no instance matches %q", query).
		WithDetail("query", query)
}

func unique(instances []Instance, query string, match func(Instance) bool) (Instance, bool, error) {
	var found []Instance
	for _, inst := range instances {
		if match(inst) {
			found = append(found, inst)
		}
	}

	switch len(found) {
	case 0:
		return Instance{}, false, nil
	case 1:
		return found[0], true, nil
	default:
		ids := make([]string, len(found))
		for i, inst := range found {
			ids[i] = inst.ID
		}
		return Instance{}, false, errors.Newf(errors.ErrInvalidInput, "%q matches %d instances, use the id", query, len(found)).
			WithDetail("matches", ids)
	}
}

// SortByName orders instances by case-insensitive name, then id
func SortByName(instances []Instance) {
	sort.SliceStable(instances, func(i, j int) bool {
		a, b := strings.ToLower(instances[i].Name), strings.ToLower(instances[j].Name)
		if a != b {
			return a < b
		}
		return instances[i].ID < instances[j].ID
	})
}

// SortByGameVersion orders instances by Minecraft version, newest first.
// Versions that are not semver compare as plain strings after the rest.
func SortByGameVersion(instances []Instance) {
	sort.SliceStable(instances, func(i, j int) bool {
		a, errA := semver.NewVersion(instances[i].GameVersion)
		b, errB := semver.NewVersion(instances[j].GameVersion)

		switch {
		case errA == nil && errB == nil:
			if !a.Equal(b) {
				return a.GreaterThan(b)
			}
		case errA == nil:
			return true
		case errB == nil:
			return false
		case instances[i].GameVersion != instances[j].GameVersion:
			return instances[i].GameVersion > instances[j].GameVersion
		}

		return strings.ToLower(instances[i].Name) < strings.ToLower(instances[j].Name)
	})
}
