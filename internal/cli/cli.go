// Package cli provides the command line interface.
package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"

	"github.com/temirov/foldertree/internal/commands"
	"github.com/temirov/foldertree/internal/config"
	"github.com/temirov/foldertree/internal/output"
	"github.com/temirov/foldertree/internal/services/clipboard"
	"github.com/temirov/foldertree/internal/types"
	"github.com/temirov/foldertree/internal/utils"
)

const (
	copyFlagName     = "copy"
	configFlagName   = "config"
	logLevelFlagName = "log-level"
	versionTemplate  = "foldertree version: {{.Version}}\n"
	rootUse          = "foldertree <path>"

	rootShortDescription = "Displays the folder structure"
	rootLongDescription  = `foldertree walks a directory and prints it as an indented tree.
Directories named node_modules, target, .next, .ssh, coverage and .git are skipped.
A path that does not exist or is not a directory prints a single line with its name.`
	rootUsageExample = `  # Show the current project
  foldertree .

  # Print the tree and copy it to the clipboard
  foldertree --copy ./src`

	copyFlagDescription     = "also copy the rendered tree to the clipboard"
	configFlagDescription   = "path to a configuration file (default ./" + utils.ConfigFileName + ")"
	logLevelFlagDescription = "diagnostic log level (debug, info, warn, error)"

	// warningClipboardFormat is logged when the rendered tree cannot be copied.
	warningClipboardFormat = "Warning: unable to copy tree to clipboard: %v"
	// warningConfigurationFormat is logged when a configuration source is skipped.
	warningConfigurationFormat = "Warning: ignoring configuration: %v"
)

// dependencies holds collaborators replaced in tests.
type dependencies struct {
	clipboard clipboard.Copier
}

// treeOptions stores values bound to the root command flags.
type treeOptions struct {
	copyToClipboard bool
	configPath      string
	logLevel        string
}

// treeSettings is the effective configuration after flags, environment and files are merged.
type treeSettings struct {
	copyToClipboard bool
	logLevel        string
}

// Execute runs the foldertree application.
func Execute() error {
	rootCommand := createRootCommand(dependencies{clipboard: clipboard.NewService()})
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command.
func createRootCommand(commandDependencies dependencies) *cobra.Command {
	var options treeOptions

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		Version:       utils.GetApplicationVersion(),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return runTree(command, arguments[0], options, commandDependencies)
		},
	}
	rootCommand.SetVersionTemplate(versionTemplate)

	flagSet := rootCommand.Flags()
	registerBooleanFlag(flagSet, &options.copyToClipboard, copyFlagName, false, copyFlagDescription)
	flagSet.StringVar(&options.configPath, configFlagName, "", configFlagDescription)
	flagSet.StringVar(&options.logLevel, logLevelFlagName, "", logLevelFlagDescription)
	return rootCommand
}

// resolveTreeSettings applies flags that were set explicitly over the loaded configuration.
func resolveTreeSettings(flagSet *pflag.FlagSet, options treeOptions, configuration config.ApplicationConfiguration) treeSettings {
	var settings treeSettings
	if configuration.Tree.Clipboard != nil {
		settings.copyToClipboard = *configuration.Tree.Clipboard
	}
	if flagSet.Changed(copyFlagName) {
		settings.copyToClipboard = options.copyToClipboard
	}
	settings.logLevel = configuration.Logging.Level
	if options.logLevel != "" {
		settings.logLevel = options.logLevel
	}
	return settings
}

// runTree builds the folder tree for rootPath and renders it to the command output.
// Configuration and traversal problems are reported on the command's error stream and
// never fail the run.
func runTree(command *cobra.Command, rootPath string, options treeOptions, commandDependencies dependencies) error {
	configuration, loadErr := config.LoadApplicationConfiguration(config.LoadOptions{ExplicitFilePath: options.configPath})
	settings := resolveTreeSettings(command.Flags(), options, configuration)

	logLevel, levelErr := utils.ParseLogLevel(settings.logLevel)
	if levelErr != nil {
		if options.logLevel != "" {
			return levelErr
		}
		logLevel = zapcore.InfoLevel
		loadErr = errors.Join(loadErr, levelErr)
	}
	logger := utils.NewConsoleLogger(command.ErrOrStderr(), logLevel)
	defer func() {
		_ = logger.Sync()
	}()
	if loadErr != nil {
		logger.Warn(fmt.Sprintf(warningConfigurationFormat, loadErr))
	}

	treeBuilder := commands.NewTreeBuilder(types.DefaultIgnoredNames(), logger)
	rootFolder := treeBuilder.BuildFolder(rootPath)

	var renderedTree bytes.Buffer
	var destination io.Writer = command.OutOrStdout()
	if settings.copyToClipboard {
		destination = io.MultiWriter(destination, &renderedTree)
	}
	output.WriteFolderTree(destination, rootFolder, 0, true)

	if settings.copyToClipboard && commandDependencies.clipboard != nil {
		if copyErr := commandDependencies.clipboard.Copy(renderedTree.String()); copyErr != nil {
			logger.Warn(fmt.Sprintf(warningClipboardFormat, copyErr))
		}
	}
	return nil
}
