// Command refine validates a JSON document against a named refinement.
//
//	refine --refinement positive-int --input value.json
//	echo '[1, 2]' | refine --refinement not-empty-list
//
// Flags override the values of the config file, REFINE_* environment variables (REFINE_LOGGER_LEVEL) override both
// for keys that are known. Accepted values are logged at info level, rejected ones at error level. The exit code is 0
// if the document was accepted, 1 if it was rejected and 2 if the command could not run.
package main

import (
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/iotaledger/hive.go/ierrors"

	"github.com/bodiam/types/checker"
	"github.com/bodiam/types/configuration"
	"github.com/bodiam/types/logger"
)

const (
	exitAccepted = 0
	exitRejected = 1
	exitFailed   = 2

	envPrefix = "REFINE"

	configurationKeyRefinement = "refinement"
	configurationKeyInput      = "input"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stderr))
}

func run(args []string, stdin io.Reader, stderr io.Writer) int {
	registry := checker.NewRegistry()

	flagSet := configuration.NewUnsortedFlagSet("refine", flag.ContinueOnError)
	flagSet.SetOutput(stderr)
	configFile := flagSet.String("config", "", "path to a JSON, YAML or TOML config file")
	flagSet.String(configurationKeyRefinement, "", "name of the refinement ("+strings.Join(registry.Names(), ", ")+")")
	flagSet.String(configurationKeyInput, "-", "path to the JSON document, - reads from stdin")
	flagSet.String(logger.ConfigurationKeyLevel, logger.DefaultCfg.Level, "minimum enabled log level")
	flagSet.String(logger.ConfigurationKeyEncoding, logger.DefaultCfg.Encoding, "log encoding (console or json)")
	flagSet.StringSlice(logger.ConfigurationKeyOutputPaths, logger.DefaultCfg.OutputPaths, "log output paths")

	if err := flagSet.Parse(args); err != nil {
		return exitFailed
	}

	config, err := loadConfiguration(*configFile, flagSet)
	if err != nil {
		_, _ = io.WriteString(stderr, err.Error()+"\n")

		return exitFailed
	}

	rootLogger, err := logger.NewRootLoggerFromConfiguration(config)
	if err != nil {
		_, _ = io.WriteString(stderr, err.Error()+"\n")

		return exitFailed
	}
	//nolint:errcheck // syncing stdout fails on some platforms
	defer rootLogger.Sync()

	refinementName := config.String(configurationKeyRefinement)
	input := config.String(configurationKeyInput)
	log := rootLogger.With(zap.String("refinement", refinementName), zap.String("input", input))

	payload, err := readInput(input, stdin)
	if err != nil {
		log.Error("failed to read input", zap.Error(err))

		return exitFailed
	}

	refined, err := registry.Check(refinementName, payload)
	switch {
	case ierrors.Is(err, checker.ErrUnknownRefinement):
		log.Error("unknown refinement", zap.Strings("known", registry.Names()))

		return exitFailed
	case err != nil:
		log.Error("rejected", zap.Error(err))

		return exitRejected
	default:
		log.Info("accepted", zap.String("value", refined))

		return exitAccepted
	}
}

func loadConfiguration(configFile string, flagSet *flag.FlagSet) (*configuration.Configuration, error) {
	config := configuration.New()

	if configFile != "" {
		if err := config.LoadFile(configFile); err != nil {
			return nil, err
		}
	}

	if err := config.LoadFlagSet(flagSet); err != nil {
		return nil, ierrors.Wrap(err, "failed to load flags")
	}

	if err := config.LoadEnvironmentVars(envPrefix); err != nil {
		return nil, ierrors.Wrap(err, "failed to load environment variables")
	}

	return config, nil
}

func readInput(input string, stdin io.Reader) ([]byte, error) {
	if input == "-" {
		return io.ReadAll(stdin)
	}

	payload, err := os.ReadFile(input)
	if err != nil {
		return nil, ierrors.Wrapf(err, "failed to read %s", input)
	}

	return payload, nil
}
