package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solaceapp/solace/internal/recommend"
	"github.com/solaceapp/solace/internal/service"
	"github.com/solaceapp/solace/internal/strategy"
)

func testApp() *App {
	catalog := strategy.NewSeededCatalog()
	return &App{
		Recommender: service.NewRecommendService(catalog, recommend.NewDefaultMatcher(), nil),
		Catalog:     catalog,
	}
}

func TestNewRootCmdRegistersCommands(t *testing.T) {
	root := NewRootCmd(testApp())

	names := make(map[string]bool)
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"entry", "checkin", "recommend", "strategies", "export", "import"} {
		assert.True(t, names[want], "missing command %q", want)
	}
}

func TestRecommendCmdFlags(t *testing.T) {
	root := NewRootCmd(testApp())

	cmd, _, err := root.Find([]string{"recommend"})
	require.NoError(t, err)

	for _, flag := range []string{"text", "mood", "intensity", "scale", "trigger", "seed", "plain", "browse"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "missing flag %q", flag)
	}
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"work", "sleep"}, splitTags("work, sleep"))
	assert.Equal(t, []string{"one"}, splitTags("  one , "))
	assert.Nil(t, splitTags(""))
}

func TestValidateIntensity(t *testing.T) {
	assert.NoError(t, validateIntensity("5"))
	assert.NoError(t, validateIntensity(" 10 "))
	assert.Error(t, validateIntensity("0"))
	assert.Error(t, validateIntensity("11"))
	assert.Error(t, validateIntensity("abc"))
}
