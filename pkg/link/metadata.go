package link

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/arthur-debert/packlink/pkg/catalog"
)

const (
	minecraftUID  = "net.minecraft"
	minecraftName = "Minecraft"

	packFormatVersion = 1
)

// fixedInstanceSettings are written verbatim; every override is disabled
// so the instance follows the Host's global settings
var fixedInstanceSettings = []string{
	"InstanceType=OneSix",
	"JoinServerOnLaunch=false",
	"OverrideCommands=false",
	"OverrideConsole=false",
	"OverrideGameTime=false",
	"OverrideJavaArgs=false",
	"OverrideJavaLocation=false",
	"OverrideMemory=false",
	"OverrideNativeWorkarounds=false",
	"OverrideWindow=false",
}

// Pack is the Host pack descriptor (mmc-pack.json)
type Pack struct {
	Components    []Component `json:"components"`
	FormatVersion int         `json:"formatVersion"`
}

// Component is one entry of the Host component list
type Component struct {
	CachedName     string         `json:"cachedName"`
	CachedRequires *[]Requirement `json:"cachedRequires,omitempty"`
	CachedVersion  string         `json:"cachedVersion,omitempty"`
	Important      bool           `json:"important,omitempty"`
	UID            string         `json:"uid"`
	Version        string         `json:"version"`
}

// Requirement is a cached component dependency
type Requirement struct {
	UID    string `json:"uid"`
	Equals string `json:"equals,omitempty"`
}

// InstanceConfig renders instance.cfg. iconKey references the copied icon
// when there is one and is left empty otherwise.
func InstanceConfig(inst catalog.Instance, hasIcon bool) string {
	var b strings.Builder
	for _, line := range fixedInstanceSettings {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	iconKey := ""
	if hasIcon {
		iconKey = inst.ID
	}
	fmt.Fprintf(&b, "iconKey=%s\n", iconKey)
	fmt.Fprintf(&b, "name=%s\n", inst.Name)
	b.WriteString("notes=\n")

	return b.String()
}

// PackDescriptor builds the component list: Minecraft first, then exactly
// one loader component
func PackDescriptor(inst catalog.Instance) Pack {
	noRequires := []Requirement{}

	return Pack{
		Components: []Component{
			{
				CachedName:     minecraftName,
				CachedRequires: &noRequires,
				CachedVersion:  inst.GameVersion,
				Important:      true,
				UID:            minecraftUID,
				Version:        inst.GameVersion,
			},
			{
				CachedName: inst.Loader.CachedName(),
				UID:        inst.Loader.UID(),
				Version:    inst.Loader.Version,
			},
		},
		FormatVersion: packFormatVersion,
	}
}

// MarshalPack renders the descriptor as indented JSON
func MarshalPack(pack Pack) ([]byte, error) {
	data, err := json.MarshalIndent(pack, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
