package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectRoot(t *testing.T) {
	assert.Equal(t, ".", projectRoot(nil))
	assert.Equal(t, "/some/path", projectRoot([]string{"/some/path"}))
}

func TestRootCommandWiring(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{CmdAnalyze, CmdGenerate, CmdVersion} {
		assert.True(t, names[want], "expected %s command to be registered", want)
	}
}

func TestGenerateFlagDefaults(t *testing.T) {
	assert.Equal(t, "trust", generateCmd.Flags().Lookup(FlagMerge).DefValue)
	assert.Equal(t, "true", generateCmd.Flags().Lookup(FlagSamples).DefValue)
}
