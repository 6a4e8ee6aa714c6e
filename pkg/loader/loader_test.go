package loader

import (
	"testing"

	"github.com/arthur-debert/packlink/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    ModLoader
		wantErr errors.ErrorCode
	}{
		{
			name: "fabric",
			raw:  "fabric-loader-1.20.1-0.14.21",
			want: ModLoader{Kind: Fabric, Version: "0.14.21"},
		},
		{
			name: "forge",
			raw:  "1.20.1-forge-47.2.0",
			want: ModLoader{Kind: Forge, Version: "47.2.0"},
		},
		{
			name: "old forge",
			raw:  "1.12.2-forge-14.23.5.2860",
			want: ModLoader{Kind: Forge, Version: "14.23.5.2860"},
		},
		{
			name: "fabric prefix wins over forge substring",
			raw:  "fabric-loader-forge-0.15.0",
			want: ModLoader{Kind: Fabric, Version: "0.15.0"},
		},
		{
			name: "bare prefix takes itself as segment",
			raw:  "fabric-loader",
			want: ModLoader{Kind: Fabric, Version: "loader"},
		},
		{
			name:    "trailing dash has no version",
			raw:     "1.20.1-forge-",
			wantErr: errors.ErrMissingLoaderVersion,
		},
		{
			name:    "quilt is unknown",
			raw:     "quilt-loader-1.20.1-0.19.0",
			wantErr: errors.ErrUnknownLoader,
		},
		{
			name:    "neoforge style without forge marker",
			raw:     "1.20.1-neo-47.1.0",
			wantErr: errors.ErrUnknownLoader,
		},
		{
			name:    "empty",
			raw:     "",
			wantErr: errors.ErrUnknownLoader,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, tt.wantErr), "got %v", err)
				assert.Equal(t, tt.raw, errors.GetErrorDetails(err)["raw"])
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModLoader_HostIdentifiers(t *testing.T) {
	fabric := ModLoader{Kind: Fabric, Version: "0.14.21"}
	assert.Equal(t, "net.fabricmc.fabric-loader", fabric.UID())
	assert.Equal(t, "Fabric Loader", fabric.CachedName())
	assert.Equal(t, "fabric 0.14.21", fabric.String())

	forge := ModLoader{Kind: Forge, Version: "47.2.0"}
	assert.Equal(t, "net.minecraftforge", forge.UID())
	assert.Equal(t, "Forge", forge.CachedName())
	assert.Equal(t, "forge 47.2.0", forge.String())

	var zero ModLoader
	assert.Empty(t, zero.UID())
	assert.Equal(t, "unknown", zero.Kind.String())
}
