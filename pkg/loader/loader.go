// Package loader models the mod loader bundled with a Catalog instance.
//
// A loader is a closed two-variant sum: Fabric or Forge, each carrying a
// version string. Values are only produced by Parse; consumers switch on
// Kind exhaustively so that adding a loader kind is visible everywhere it
// is consumed.
package loader

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/packlink/pkg/errors"
)

// Kind identifies the mod loader runtime
type Kind int

const (
	// Fabric is the Fabric mod loader
	Fabric Kind = iota + 1
	// Forge is the Minecraft Forge mod loader
	Forge
)

const (
	fabricPrefix = "fabric-loader"
	forgeMarker  = "forge"
)

// String returns the lowercase name of the loader kind
func (k Kind) String() string {
	switch k {
	case Fabric:
		return "fabric"
	case Forge:
		return "forge"
	default:
		return "unknown"
	}
}

// ModLoader is a loader kind together with its version
type ModLoader struct {
	Kind    Kind
	Version string
}

// Parse converts a raw Catalog loader string into a ModLoader.
//
// Recognized shapes are fabric-loader-{mc}-{version} and
// {mc}-forge-{version}; the version is always the last dash-separated
// segment.
func Parse(raw string) (ModLoader, error) {
	switch {
	case strings.HasPrefix(raw, fabricPrefix):
		return withLastSegment(raw, Fabric)
	case strings.Contains(raw, forgeMarker):
		return withLastSegment(raw, Forge)
	default:
		return ModLoader{}, errors.Newf(errors.ErrUnknownLoader, "no mod loader type found in %q", raw).
			WithDetail("raw", raw)
	}
}

func withLastSegment(raw string, kind Kind) (ModLoader, error) {
	segments := strings.Split(raw, "-")
	version := segments[len(segments)-1]
	if version == "" {
		return ModLoader{}, errors.Newf(errors.ErrMissingLoaderVersion, "couldn't find %s version in %q", kind, raw).
			WithDetail("raw", raw)
	}
	return ModLoader{Kind: kind, Version: version}, nil
}

// UID returns the Host component identifier for the loader
func (m ModLoader) UID() string {
	switch m.Kind {
	case Fabric:
		return "net.fabricmc.fabric-loader"
	case Forge:
		return "net.minecraftforge"
	default:
		return ""
	}
}

// CachedName returns the human-readable component name the Host caches
func (m ModLoader) CachedName() string {
	switch m.Kind {
	case Fabric:
		return "Fabric Loader"
	case Forge:
		return "Forge"
	default:
		return ""
	}
}

func (m ModLoader) String() string {
	return fmt.Sprintf("%s %s", m.Kind, m.Version)
}
