package sidecar

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readme-gen/src/internal/inference"
)

func TestParsePolicy(t *testing.T) {
	for _, name := range []string{"trust", "ignore", "defaults"} {
		policy, err := ParsePolicy(name)
		require.NoError(t, err)
		assert.Equal(t, MergePolicy(name), policy)
	}

	_, err := ParsePolicy("whatever")
	assert.Error(t, err)
}

func TestLoad_Missing(t *testing.T) {
	meta, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, meta)
}

func TestLoad_Malformed(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte("{broken"), 0644))

	_, err := Load(root)
	assert.Error(t, err)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	root := t.TempDir()
	meta := &inference.Metadata{
		Description: "A useful tool",
		Features:    []string{"Data export", "CSV file processing"},
		License:     "Apache-2.0",
		ProjectType: "Python Project",
	}

	path, err := Save(root, meta)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, FileName), path)

	loaded, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, meta, loaded)
}

func TestMerge_Trust(t *testing.T) {
	fresh := &inference.Metadata{
		Description: "inferred description",
		RunCommand:  "python main.py",
		License:     "MIT",
	}
	stored := &inference.Metadata{
		Description: "hand-written description",
		Features:    []string{"Curated feature"},
	}

	merged := Merge(fresh, stored, MergeTrust)
	assert.Equal(t, "hand-written description", merged.Description)
	assert.Equal(t, []string{"Curated feature"}, merged.Features)
	// fields the sidecar leaves empty keep the fresh value
	assert.Equal(t, "python main.py", merged.RunCommand)
	assert.Equal(t, "MIT", merged.License)
}

func TestMerge_Trust_StoredFalseOverridesScreenshots(t *testing.T) {
	fresh := &inference.Metadata{HasScreenshots: true}
	stored := &inference.Metadata{HasScreenshots: false}

	merged := Merge(fresh, stored, MergeTrust)
	assert.False(t, merged.HasScreenshots)

	merged = Merge(&inference.Metadata{}, &inference.Metadata{HasScreenshots: true}, MergeTrust)
	assert.True(t, merged.HasScreenshots)
}

func TestMerge_Defaults(t *testing.T) {
	fresh := &inference.Metadata{Description: "inferred description"}
	stored := &inference.Metadata{
		Description: "hand-written description",
		RunCommand:  "make serve",
	}

	merged := Merge(fresh, stored, MergeDefaults)
	assert.Equal(t, "inferred description", merged.Description)
	assert.Equal(t, "make serve", merged.RunCommand)
}

func TestMerge_Defaults_ScreenshotsFillOnly(t *testing.T) {
	merged := Merge(&inference.Metadata{}, &inference.Metadata{HasScreenshots: true}, MergeDefaults)
	assert.True(t, merged.HasScreenshots)

	merged = Merge(&inference.Metadata{HasScreenshots: true}, &inference.Metadata{}, MergeDefaults)
	assert.True(t, merged.HasScreenshots)
}

func TestMerge_Ignore(t *testing.T) {
	fresh := &inference.Metadata{Description: "inferred description"}
	stored := &inference.Metadata{Description: "hand-written description"}

	merged := Merge(fresh, stored, MergeIgnore)
	assert.Equal(t, "inferred description", merged.Description)
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	fresh := &inference.Metadata{Description: "fresh"}
	stored := &inference.Metadata{Description: "stored"}

	_ = Merge(fresh, stored, MergeTrust)
	assert.Equal(t, "fresh", fresh.Description)
	assert.Equal(t, "stored", stored.Description)
}

func TestMerge_NilInputs(t *testing.T) {
	merged := Merge(nil, nil, MergeTrust)
	require.NotNil(t, merged)
	assert.Equal(t, "", merged.Description)

	merged = Merge(nil, &inference.Metadata{Description: "stored"}, MergeTrust)
	assert.Equal(t, "stored", merged.Description)
}
