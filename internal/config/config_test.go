package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bayleafwalker/rosdep-bridge/internal/distro"
	"github.com/bayleafwalker/rosdep-bridge/internal/mapping"
)

func testdataRoot(t *testing.T) string {
	t.Helper()
	root, err := filepath.Abs("testdata")
	require.NoError(t, err)
	return root
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load([]byte("distro: Humble\n"), LoadOptions{ManifestRoot: testdataRoot(t)})
	require.NoError(t, err)

	assert.Equal(t, distro.New("humble"), cfg.Distro)
	assert.True(t, cfg.Noarch)
	assert.Empty(t, cfg.Mappings)
	assert.Empty(t, cfg.Store().SourceFiles())
}

func TestLoad_Noarch(t *testing.T) {
	cfg, err := Load([]byte("distro: jazzy\nnoarch: false\n"), LoadOptions{})
	require.NoError(t, err)
	assert.False(t, cfg.Noarch)
}

func TestLoad_DistroFromChannels(t *testing.T) {
	tests := []struct {
		name     string
		channels []string
		want     string
	}{
		{"plain name", []string{"conda-forge", "robostack-kilted"}, "kilted"},
		{"url", []string{"https://prefix.dev/robostack-jazzy/"}, "jazzy"},
		{"staging skipped", []string{"robostack-staging", "robostack-noetic"}, "noetic"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(nil, LoadOptions{Channels: tt.channels})
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Distro.Name)
		})
	}
}

func TestLoad_ExplicitDistroWinsOverChannels(t *testing.T) {
	cfg, err := Load([]byte("distro: humble"), LoadOptions{Channels: []string{"robostack-jazzy"}})
	require.NoError(t, err)
	assert.Equal(t, "humble", cfg.Distro.Name)
}

func TestLoad_NoDistro(t *testing.T) {
	_, err := Load(nil, LoadOptions{Channels: []string{"conda-forge", "robostack-staging"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, distro.ErrNoDistro))
	assert.Contains(t, err.Error(), "robostack-staging")
}

func TestLoad_DistroOverride(t *testing.T) {
	cfg, err := Load([]byte("distro: humble"), LoadOptions{Distro: "jazzy"})
	require.NoError(t, err)
	assert.Equal(t, "jazzy", cfg.Distro.Name)

	cfg, err = Load(nil, LoadOptions{Distro: "noetic", Channels: []string{"conda-forge"}})
	require.NoError(t, err)
	assert.Equal(t, "noetic", cfg.Distro.Name)
}

func TestLoad_UnknownKey(t *testing.T) {
	_, err := Load([]byte("distro: jazzy\nunknown: 1\n"), LoadOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestLoad_ExtraPackageMappings(t *testing.T) {
	root := testdataRoot(t)
	doc := `
distro: jazzy
extra-package-mappings:
  - extra_map.yaml
  - file: extra_map.yaml
  - mapping:
      inline_pkg:
        conda: inline-pkg
  - other_pkg: [other-a, other-b]
`
	cfg, err := Load([]byte(doc), LoadOptions{ManifestRoot: root})
	require.NoError(t, err)
	require.Len(t, cfg.Mappings, 4)

	want := filepath.Join(root, "extra_map.yaml")
	assert.Equal(t, want, cfg.Mappings[0].File())
	assert.Equal(t, want, cfg.Mappings[1].File())
	assert.Empty(t, cfg.Mappings[2].File())

	entry, ok := mapping.Build(cfg.Mappings[2]).Get("inline_pkg")
	require.True(t, ok)
	assert.Equal(t, mapping.TargetAliases{Tag: mapping.TagConda, Packages: []string{"inline-pkg"}}, entry)

	entry, ok = mapping.Build(cfg.Mappings[3]).Get("other_pkg")
	require.True(t, ok)
	assert.Equal(t, mapping.SameFamily{Names: []string{"other-a", "other-b"}}, entry)
}

func TestLoad_MissingMappingFile(t *testing.T) {
	doc := "distro: jazzy\nextra-package-mappings: [missing.yaml]\n"
	_, err := Load([]byte(doc), LoadOptions{ManifestRoot: testdataRoot(t)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, mapping.ErrSourceNotFound))
	assert.Contains(t, err.Error(), "missing.yaml")
}

func TestLoad_InvalidMappingEntry(t *testing.T) {
	doc := "distro: jazzy\nextra-package-mappings: [42]\n"
	_, err := Load([]byte(doc), LoadOptions{})
	require.Error(t, err)
}

func TestLoad_Validation(t *testing.T) {
	doc := `
distro: jazzy
debug-dir: a
debug_dir: b
extra-input-globs: ["[unterminated"]
extra-package-mappings:
  - file: ""
`
	_, err := Load([]byte(doc), LoadOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.Contains(t, err.Error(), "debug_dir")
	assert.Contains(t, err.Error(), "extra-input-globs[0]")
	assert.Contains(t, err.Error(), "extra-package-mappings[0]")
}

func TestLoad_DebugDirDeprecated(t *testing.T) {
	var logged []string
	logger := funcr.New(func(_, args string) { logged = append(logged, args) }, funcr.Options{})

	_, err := Load([]byte("distro: jazzy\ndebug-dir: out\n"), LoadOptions{Logger: logger})
	require.NoError(t, err)
	require.Len(t, logged, 1)
	assert.Contains(t, logged[0], "deprecated")
}

func TestStorePriority(t *testing.T) {
	cfg, err := Load([]byte("distro: jazzy\nextra-package-mappings: [extra_map.yaml]\n"),
		LoadOptions{ManifestRoot: testdataRoot(t), Logger: logr.Discard()})
	require.NoError(t, err)

	defaults := mapping.NewSource(map[string]mapping.Entry{
		"zlib": mapping.TargetAliases{Tag: mapping.TagConda, Packages: []string{"zlib"}},
		"eigen": mapping.TargetAliases{Tag: mapping.TagConda, Packages: []string{"eigen"}},
	})
	store := cfg.Store(defaults)
	assert.Equal(t, []string{filepath.Join(testdataRoot(t), "extra_map.yaml")}, store.SourceFiles())

	zlib, _ := store.Get("zlib")
	assert.Equal(t, []string{"zlib-ng"}, zlib.(mapping.TargetAliases).Packages)
	_, ok := store.Get("eigen")
	assert.True(t, ok)
}
