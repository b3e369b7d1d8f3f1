// Package cmd provides the root command and CLI setup for fixturegen.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"fixturegen.dev/pkg/fixturegen/internal/adapter"
	"fixturegen.dev/pkg/fixturegen/internal/controller"
	"fixturegen.dev/pkg/fixturegen/internal/domain"
	m "fixturegen.dev/pkg/fixturegen/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var parserAdapter adapter.ParserAdapter
var artifactStore adapter.ArtifactStore
var scanner domain.Scanner
var classifier domain.Classifier
var emitter domain.Emitter
var workflow domain.Workflow
var ui controller.UI

// Root-level flags shared by every command that walks the resource tree.
var (
	resourcesFlag  string
	outputFlag     string
	packageFlag    string
	suiteFlag      string
	parserFlag     string
	extensionFlag  string
	excludeFlag    []string
	parallelFlag   uint
	pruneFlag      bool
	verboseLogFlag bool
)

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	parserAdapter = adapter.NewLocalParserAdapter()
	artifactStore = adapter.NewArtifactStore(fsAdapter)
	scanner = domain.NewScanner(fsAdapter)
	classifier = domain.NewClassifier(fsAdapter, parserAdapter)
	emitter = domain.NewEmitter()
	workflow = domain.NewWorkflow(
		fsAdapter,
		artifactStore,
		ui,
		scanner,
		classifier,
		emitter,
	)
}

const layoutHelp = `Every sample under the resource directory becomes one subtest. Directories
become nested t.Run scopes. Samples that parse get a canonical snapshot
ast.<name>.json written next to them; samples that do not parse are
asserted to keep failing.`

const rootLongDescription = `Fixturegen turns a directory of sample inputs into a generated Go test
suite that checks a parser against stored snapshots.

` + layoutHelp

const generateLongDescription = `Parse every sample, write snapshots for the ones that parse and emit the
generated test file. Files whose content did not change are left untouched.

` + layoutHelp

const checkLongDescription = `Recompute every snapshot and the generated test file and compare them with
what is on disk. Nothing is written. Exits non-zero when anything is stale.`

const listLongDescription = `List the samples under the resource directory and how the parser
classifies each of them. Nothing is written.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "fixturegen",
		Short:        "Generate parser fixture tests from sample files",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			if configErr != nil {
				slog.Error("Failed to read config file", "path", viper.ConfigFileUsed(), "error", configErr)
				return configErr
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd builds a fresh root command with its persistent flags wired to config.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVarP(&resourcesFlag, resourcesFlagName, "r", viper.GetString(resourcesFlagName), "directory holding the sample files")
	bindFlagToConfig(flags.Lookup(resourcesFlagName), resourcesFlagName)

	flags.StringVarP(&outputFlag, outputFlagName, "o", viper.GetString(outputFlagName), "path of the generated test file")
	bindFlagToConfig(flags.Lookup(outputFlagName), outputFlagName)

	flags.StringVar(&packageFlag, packageFlagName, viper.GetString(packageFlagName), "package clause of the generated file (default: <output dir>_test)")
	bindFlagToConfig(flags.Lookup(packageFlagName), packageFlagName)

	flags.StringVar(&suiteFlag, suiteFlagName, viper.GetString(suiteFlagName), "suite name; the generated test function is Test<suite>")
	bindFlagToConfig(flags.Lookup(suiteFlagName), suiteFlagName)

	flags.StringVar(&parserFlag, parserFlagName, viper.GetString(parserFlagName), "parser used to classify samples (go, yaml)")
	bindFlagToConfig(flags.Lookup(parserFlagName), parserFlagName)

	flags.StringVar(&extensionFlag, extensionFlagName, viper.GetString(extensionConfigKey), "sample file extension (default: the parser's extension)")
	bindFlagToConfig(flags.Lookup(extensionFlagName), extensionConfigKey)

	flags.StringArrayVarP(&excludeFlag, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude paths matching a glob, relative to the resource directory (can be repeated)")
	bindFlagToConfig(flags.Lookup(excludeFlagName), excludeConfigKey)

	flags.UintVarP(&parallelFlag, parallelFlagName, "j", viper.GetUint(parallelConfigKey), "number of samples parsed concurrently")
	bindFlagToConfig(flags.Lookup(parallelFlagName), parallelConfigKey)

	flags.BoolVar(&pruneFlag, pruneFlagName, viper.GetBool(pruneConfigKey), "remove snapshots whose sample no longer exists or no longer parses")
	bindFlagToConfig(flags.Lookup(pruneFlagName), pruneConfigKey)

	flags.BoolVarP(&verboseLogFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// generateArgs collects the workflow arguments from flags, env and config.
func generateArgs() domain.GenerateArgs {
	return domain.GenerateArgs{
		Resources: m.Path(viper.GetString(resourcesFlagName)),
		Output:    m.Path(viper.GetString(outputFlagName)),
		Package:   viper.GetString(packageFlagName),
		Suite:     viper.GetString(suiteFlagName),
		Parser:    viper.GetString(parserFlagName),
		Extension: viper.GetString(extensionConfigKey),
		Exclude:   viper.GetStringSlice(excludeConfigKey),
		Parallel:  viper.GetUint(parallelConfigKey),
		Prune:     viper.GetBool(pruneConfigKey),
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
