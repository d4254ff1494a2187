package artifact

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/gitglance/internal/clipboard"
	"github.com/temirov/gitglance/internal/dependencies"
	"github.com/temirov/gitglance/internal/filesystem"
	"github.com/temirov/gitglance/internal/inspect"
	"github.com/temirov/gitglance/internal/render"
	"github.com/temirov/gitglance/internal/utils/flags"
	pathutils "github.com/temirov/gitglance/internal/utils/path"
)

const (
	checkCommandUseConstant                = "check <path>"
	checkCommandShortDescriptionConstant   = "Report whether a path can be rendered"
	checkCommandLongDescriptionConstant    = "check reports whether the path is a repository root, meaning a directory that holds a .git directory. No git command is run."
	renderCommandUseConstant               = "render <path>"
	renderCommandShortDescriptionConstant  = "Render a repository summary to an HTML file"
	renderCommandLongDescriptionConstant   = "render inspects the repository with read-only git commands, writes a styled HTML summary to a freshly named file, and prints its location."
	releaseCommandUseConstant              = "release <location>..."
	releaseCommandShortDescriptionConstant = "Delete rendered summaries"
	releaseCommandLongDescriptionConstant  = "release deletes previously rendered summary files. Locations that no longer exist are ignored."
	outputDirectoryFlagNameConstant        = "output-dir"
	outputDirectoryFlagDescriptionConstant = "Directory for rendered files (defaults to the system temporary directory)"
	classificationFlagNameConstant         = "classification"
	classificationFlagDescriptionConstant  = "Category chosen when a line matches several"
	copyFlagNameConstant                   = "copy"
	copyFlagDescriptionConstant            = "Copy the rendered file location to the clipboard"
	supportedMessageTemplateConstant       = "SUPPORTED: %s\n"
	unsupportedErrorTemplateConstant       = "UNSUPPORTED: %s: %w"
	locationMessageTemplateConstant        = "%s\n"
	releasedMessageTemplateConstant        = "RELEASED: %s\n"
	unsupportedPathMessageConstant         = "not a repository root"
	clipboardCopiedMessageConstant         = "artifact location copied to clipboard"
	clipboardFailedMessageConstant         = "unable to copy artifact location to clipboard"
	logFieldLocationForCommandConstant     = "location"
)

// ErrUnsupportedPath indicates a path that is not a repository root.
var ErrUnsupportedPath = errors.New(unsupportedPathMessageConstant)

// LoggerProvider yields a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandDependencies groups the collaborators shared by the artifact commands.
type CommandDependencies struct {
	LoggerProvider               LoggerProvider
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        func() CommandConfiguration
	GitExecutor                  inspect.GitExecutor
	FileSystem                   filesystem.FileSystem
	Clipboard                    clipboard.Copier
	PathResolver                 *pathutils.PathResolver
	NameGenerator                NameGenerator
}

// CheckCommandBuilder assembles the check command.
type CheckCommandBuilder struct {
	CommandDependencies
}

// Build constructs the check command.
func (builder *CheckCommandBuilder) Build() (*cobra.Command, error) {
	return &cobra.Command{
		Use:   checkCommandUseConstant,
		Short: checkCommandShortDescriptionConstant,
		Long:  checkCommandLongDescriptionConstant,
		Args:  cobra.ExactArgs(1),
		RunE:  builder.run,
	}, nil
}

func (builder *CheckCommandBuilder) run(command *cobra.Command, arguments []string) error {
	repositoryPath, resolveError := builder.resolvePathResolver().Resolve(arguments[0])
	if resolveError != nil {
		return resolveError
	}

	service, serviceError := builder.buildService(builder.resolveConfiguration())
	if serviceError != nil {
		return serviceError
	}

	if !service.CanHandle(repositoryPath) {
		return fmt.Errorf(unsupportedErrorTemplateConstant, repositoryPath, ErrUnsupportedPath)
	}

	fmt.Fprintf(command.OutOrStdout(), supportedMessageTemplateConstant, repositoryPath)
	return nil
}

// RenderCommandBuilder assembles the render command.
type RenderCommandBuilder struct {
	CommandDependencies
}

// Build constructs the render command.
func (builder *RenderCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   renderCommandUseConstant,
		Short: renderCommandShortDescriptionConstant,
		Long:  renderCommandLongDescriptionConstant,
		Args:  cobra.ExactArgs(1),
		RunE:  builder.run,
	}

	defaults := DefaultCommandConfiguration()
	command.Flags().String(outputDirectoryFlagNameConstant, defaults.OutputDirectory, outputDirectoryFlagDescriptionConstant)
	flags.AddChoiceFlag(
		command.Flags(),
		classificationFlagNameConstant,
		string(defaults.Classification),
		[]string{string(render.ClassificationLastMatch), string(render.ClassificationFirstMatch)},
		classificationFlagDescriptionConstant,
	)
	command.Flags().Bool(copyFlagNameConstant, defaults.CopyLocation, copyFlagDescriptionConstant)

	return command, nil
}

func (builder *RenderCommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration, configurationError := builder.applyFlags(command, builder.resolveConfiguration())
	if configurationError != nil {
		return configurationError
	}

	repositoryPath, resolveError := builder.resolvePathResolver().Resolve(arguments[0])
	if resolveError != nil {
		return resolveError
	}

	service, serviceError := builder.buildService(configuration)
	if serviceError != nil {
		return serviceError
	}

	if !service.CanHandle(repositoryPath) {
		return fmt.Errorf(unsupportedErrorTemplateConstant, repositoryPath, ErrUnsupportedPath)
	}

	location, produceError := service.Produce(command.Context(), repositoryPath)
	if produceError != nil {
		return produceError
	}
	fmt.Fprintf(command.OutOrStdout(), locationMessageTemplateConstant, location)

	if configuration.CopyLocation {
		logger := builder.resolveLogger()
		copier := dependencies.ResolveClipboard(builder.Clipboard)
		if copyError := copier.Copy(location); copyError != nil {
			logger.Warn(clipboardFailedMessageConstant, zap.String(logFieldLocationForCommandConstant, location), zap.Error(copyError))
		} else {
			logger.Info(clipboardCopiedMessageConstant, zap.String(logFieldLocationForCommandConstant, location))
		}
	}

	return nil
}

func (builder *RenderCommandBuilder) applyFlags(command *cobra.Command, configuration CommandConfiguration) (CommandConfiguration, error) {
	commandFlags := command.Flags()

	if commandFlags.Changed(outputDirectoryFlagNameConstant) {
		outputDirectory, flagError := commandFlags.GetString(outputDirectoryFlagNameConstant)
		if flagError != nil {
			return configuration, flagError
		}
		configuration.OutputDirectory = outputDirectory
	}

	if commandFlags.Changed(classificationFlagNameConstant) {
		classificationFlag := commandFlags.Lookup(classificationFlagNameConstant)
		policy, parseError := render.ParseClassificationPolicy(classificationFlag.Value.String())
		if parseError != nil {
			return configuration, parseError
		}
		configuration.Classification = policy
	}

	if commandFlags.Changed(copyFlagNameConstant) {
		copyLocation, flagError := commandFlags.GetBool(copyFlagNameConstant)
		if flagError != nil {
			return configuration, flagError
		}
		configuration.CopyLocation = copyLocation
	}

	return configuration, nil
}

// ReleaseCommandBuilder assembles the release command.
type ReleaseCommandBuilder struct {
	CommandDependencies
}

// Build constructs the release command.
func (builder *ReleaseCommandBuilder) Build() (*cobra.Command, error) {
	return &cobra.Command{
		Use:   releaseCommandUseConstant,
		Short: releaseCommandShortDescriptionConstant,
		Long:  releaseCommandLongDescriptionConstant,
		Args:  cobra.MinimumNArgs(1),
		RunE:  builder.run,
	}, nil
}

func (builder *ReleaseCommandBuilder) run(command *cobra.Command, arguments []string) error {
	locations, resolveError := builder.resolvePathResolver().ResolveAll(arguments)
	if resolveError != nil {
		return resolveError
	}
	if len(locations) == 0 {
		return ErrArtifactLocationRequired
	}

	service, serviceError := builder.buildService(builder.resolveConfiguration())
	if serviceError != nil {
		return serviceError
	}

	for _, location := range locations {
		if releaseError := service.Release(location); releaseError != nil {
			return releaseError
		}
		fmt.Fprintf(command.OutOrStdout(), releasedMessageTemplateConstant, location)
	}
	return nil
}

func (commandDependencies CommandDependencies) buildService(configuration CommandConfiguration) (*Service, error) {
	logger := commandDependencies.resolveLogger()
	humanReadableLogging := false
	if commandDependencies.HumanReadableLoggingProvider != nil {
		humanReadableLogging = commandDependencies.HumanReadableLoggingProvider()
	}

	inspector, inspectorError := dependencies.ResolveInspector(commandDependencies.GitExecutor, logger, humanReadableLogging)
	if inspectorError != nil {
		return nil, inspectorError
	}

	outputDirectory := strings.TrimSpace(configuration.OutputDirectory)
	if len(outputDirectory) > 0 {
		resolvedDirectory, resolveError := commandDependencies.resolvePathResolver().Resolve(outputDirectory)
		if resolveError != nil {
			return nil, resolveError
		}
		outputDirectory = resolvedDirectory
	}

	return NewService(ServiceDependencies{
		Inspector:     inspector,
		Renderer:      render.NewHTMLRenderer(configuration.Classification),
		FileSystem:    dependencies.ResolveFileSystem(commandDependencies.FileSystem),
		Logger:        logger,
		NameGenerator: commandDependencies.NameGenerator,
	}, Options{OutputDirectory: outputDirectory})
}

func (commandDependencies CommandDependencies) resolveConfiguration() CommandConfiguration {
	if commandDependencies.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return commandDependencies.ConfigurationProvider().Sanitize()
}

func (commandDependencies CommandDependencies) resolvePathResolver() *pathutils.PathResolver {
	if commandDependencies.PathResolver == nil {
		return pathutils.NewPathResolver()
	}
	return commandDependencies.PathResolver
}

func (commandDependencies CommandDependencies) resolveLogger() *zap.Logger {
	if commandDependencies.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := commandDependencies.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
