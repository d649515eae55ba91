package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/bodiam/types/configuration"
)

func writeFile(t *testing.T, name string, content string) string {
	filePath := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0o600))

	return filePath
}

func newFlagSet() *flag.FlagSet {
	flagSet := configuration.NewUnsortedFlagSet("refine", flag.ContinueOnError)
	flagSet.String("refinement", "positive-int", "name of the refinement")
	flagSet.String("logger.level", "info", "log level")
	flagSet.Int("retries", 3, "test")
	flagSet.Bool("verbose", false, "test")
	flagSet.StringSlice("outputs", []string{"stdout"}, "test")

	return flagSet
}

func TestLoadFlagSet_Defaults(t *testing.T) {
	config := configuration.New()
	require.NoError(t, config.LoadFlagSet(newFlagSet()))

	require.Equal(t, "positive-int", config.String("refinement"))
	require.Equal(t, "info", config.String("logger.level"))
	require.Equal(t, 3, config.Int("retries"))
	require.False(t, config.Bool("verbose"))
	require.Equal(t, []string{"stdout"}, config.Strings("outputs"))
}

func TestLoadFile_JSON(t *testing.T) {
	config := configuration.New()
	require.NoError(t, config.LoadFile(writeFile(t, "config.json", `{"Refinement": "not-empty-list", "Logger": {"Level": "debug"}}`)))

	require.Equal(t, "not-empty-list", config.String("refinement"))
	require.Equal(t, "debug", config.String("logger.level"))
	require.True(t, config.Exists("LOGGER.level"))

	_, exists := config.All()["Refinement"]
	require.False(t, exists)
}

func TestLoadFile_YAML(t *testing.T) {
	config := configuration.New()
	require.NoError(t, config.LoadFile(writeFile(t, "config.yml", "logger:\n  Level: warn\n  outputPaths:\n    - stdout\n    - refine.log\n")))

	require.Equal(t, "warn", config.String("logger.level"))
	require.Equal(t, []string{"stdout", "refine.log"}, config.Strings("logger.outputpaths"))
}

func TestLoadFile_TOML(t *testing.T) {
	config := configuration.New()
	require.NoError(t, config.LoadFile(writeFile(t, "config.toml", "Refinement = \"strictly-negative-int\"\n\n[Logger]\nLevel = \"error\"\nOutputPaths = [\"stderr\"]\n")))

	require.Equal(t, "strictly-negative-int", config.String("refinement"))
	require.Equal(t, "error", config.String("logger.level"))
	require.Equal(t, []string{"stderr"}, config.Strings("logger.outputpaths"))
}

func TestLoadFile_Errors(t *testing.T) {
	config := configuration.New()

	require.ErrorIs(t, config.LoadFile(filepath.Join(t.TempDir(), "missing.json")), configuration.ErrConfigDoesNotExist)
	require.ErrorIs(t, config.LoadFile(writeFile(t, "config.ini", "a = 1")), configuration.ErrUnknownConfigFormat)
	require.Error(t, config.LoadFile(writeFile(t, "config.json", "{")))
}

func TestMergeParameters(t *testing.T) {
	flagSet := newFlagSet()
	require.NoError(t, flagSet.Parse([]string{"--logger.level=error"}))

	config := configuration.New()
	require.NoError(t, config.LoadFile(writeFile(t, "config.json", `{"refinement": "zero-int", "logger": {"level": "debug"}, "retries": 5}`)))
	require.NoError(t, config.LoadFlagSet(flagSet))

	// explicitly set flags overwrite the file, defaults do not
	require.Equal(t, "error", config.String("logger.level"))
	require.Equal(t, "zero-int", config.String("refinement"))
	require.Equal(t, 5, config.Int("retries"))

	t.Setenv("REFINE_RETRIES", "7")
	t.Setenv("REFINE_UNKNOWN", "1")
	require.NoError(t, config.LoadEnvironmentVars("REFINE"))
	require.Equal(t, 7, config.Int("retries"))
	require.False(t, config.Exists("unknown"))

	require.NoError(t, config.Set("Refinement", "not-empty-map"))
	require.Equal(t, "not-empty-map", config.String("refinement"))
	require.Equal(t, "error", config.String("logger.level"))
	require.NotNil(t, config.Koanf())
}
