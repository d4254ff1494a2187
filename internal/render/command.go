package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/gitglance/internal/dependencies"
	"github.com/temirov/gitglance/internal/discovery"
	"github.com/temirov/gitglance/internal/filesystem"
	"github.com/temirov/gitglance/internal/inspect"
	"github.com/temirov/gitglance/internal/utils/flags"
	pathutils "github.com/temirov/gitglance/internal/utils/path"
)

const (
	showCommandUseConstant                = "show <path>"
	showCommandShortDescriptionConstant   = "Print a colored repository summary to the terminal"
	showCommandLongDescriptionConstant    = "show inspects the repository with read-only git commands and prints the summary with the same categories as the HTML document, colored for the terminal."
	colorFlagNameConstant                 = "color"
	colorFlagDescriptionConstant          = "Colorize output"
	classificationFlagNameConstant        = "classification"
	classificationFlagDescriptionConstant = "Category chosen when a line matches several"
	unsupportedErrorTemplateConstant      = "UNSUPPORTED: %s: %w"
	unsupportedPathMessageConstant        = "not a repository root"
	showRenderedMessageConstant           = "repository summary printed"
	logFieldRepositoryPathConstant        = "repository_path"
	logFieldLineCountConstant             = "line_count"
)

// ErrUnsupportedPath indicates a path that is not a repository root.
var ErrUnsupportedPath = errors.New(unsupportedPathMessageConstant)

// ShowConfiguration captures configuration values for the show command.
type ShowConfiguration struct {
	Color          ColorMode            `mapstructure:"color"`
	Classification ClassificationPolicy `mapstructure:"classification"`
}

// DefaultShowConfiguration provides baseline configuration values for the show command.
func DefaultShowConfiguration() ShowConfiguration {
	return ShowConfiguration{Color: ColorModeAuto, Classification: ClassificationLastMatch}
}

// DefaultShowConfigurationValues exposes the defaults as Viper keys under prefix.
func DefaultShowConfigurationValues(prefix string) map[string]any {
	defaults := DefaultShowConfiguration()
	return map[string]any{
		prefix + "." + colorFlagNameConstant:          string(defaults.Color),
		prefix + "." + classificationFlagNameConstant: string(defaults.Classification),
	}
}

// Sanitize restores defaults for unset values.
func (configuration ShowConfiguration) Sanitize() ShowConfiguration {
	sanitized := configuration
	if len(strings.TrimSpace(string(configuration.Color))) == 0 {
		sanitized.Color = ColorModeAuto
	}
	if len(strings.TrimSpace(string(configuration.Classification))) == 0 {
		sanitized.Classification = ClassificationLastMatch
	}
	return sanitized
}

// ShowCommandBuilder assembles the show command.
type ShowCommandBuilder struct {
	LoggerProvider               func() *zap.Logger
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        func() ShowConfiguration
	GitExecutor                  inspect.GitExecutor
	FileSystem                   filesystem.FileSystem
	PathResolver                 *pathutils.PathResolver
}

// Build constructs the show command.
func (builder *ShowCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   showCommandUseConstant,
		Short: showCommandShortDescriptionConstant,
		Long:  showCommandLongDescriptionConstant,
		Args:  cobra.ExactArgs(1),
		RunE:  builder.run,
	}

	defaults := DefaultShowConfiguration()
	flags.AddChoiceFlag(
		command.Flags(),
		colorFlagNameConstant,
		string(defaults.Color),
		[]string{string(ColorModeAuto), string(ColorModeAlways), string(ColorModeNever)},
		colorFlagDescriptionConstant,
	)
	flags.AddChoiceFlag(
		command.Flags(),
		classificationFlagNameConstant,
		string(defaults.Classification),
		[]string{string(ClassificationLastMatch), string(ClassificationFirstMatch)},
		classificationFlagDescriptionConstant,
	)

	return command, nil
}

func (builder *ShowCommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration, configurationError := builder.applyFlags(command, builder.resolveConfiguration())
	if configurationError != nil {
		return configurationError
	}

	pathResolver := builder.PathResolver
	if pathResolver == nil {
		pathResolver = pathutils.NewPathResolver()
	}
	repositoryPath, resolveError := pathResolver.Resolve(arguments[0])
	if resolveError != nil {
		return resolveError
	}

	detector := discovery.NewRepositoryDetector(dependencies.ResolveFileSystem(builder.FileSystem))
	if !detector.IsRepositoryRoot(repositoryPath) {
		return fmt.Errorf(unsupportedErrorTemplateConstant, repositoryPath, ErrUnsupportedPath)
	}

	logger := builder.resolveLogger()
	humanReadableLogging := false
	if builder.HumanReadableLoggingProvider != nil {
		humanReadableLogging = builder.HumanReadableLoggingProvider()
	}
	inspector, inspectorError := dependencies.ResolveInspector(builder.GitExecutor, logger, humanReadableLogging)
	if inspectorError != nil {
		return inspectorError
	}

	inspectionReport := inspector.Inspect(command.Context(), repositoryPath)
	renderer := NewTerminalRenderer(configuration.Classification, configuration.Color)
	lineCount, renderError := renderer.Render(command.OutOrStdout(), inspectionReport.Text())
	if renderError != nil {
		return renderError
	}

	logger.Debug(showRenderedMessageConstant, zap.String(logFieldRepositoryPathConstant, repositoryPath), zap.Int(logFieldLineCountConstant, lineCount))
	return nil
}

func (builder *ShowCommandBuilder) applyFlags(command *cobra.Command, configuration ShowConfiguration) (ShowConfiguration, error) {
	commandFlags := command.Flags()

	if commandFlags.Changed(colorFlagNameConstant) {
		colorMode, parseError := ParseColorMode(commandFlags.Lookup(colorFlagNameConstant).Value.String())
		if parseError != nil {
			return configuration, parseError
		}
		configuration.Color = colorMode
	}

	if commandFlags.Changed(classificationFlagNameConstant) {
		policy, parseError := ParseClassificationPolicy(commandFlags.Lookup(classificationFlagNameConstant).Value.String())
		if parseError != nil {
			return configuration, parseError
		}
		configuration.Classification = policy
	}

	return configuration, nil
}

func (builder *ShowCommandBuilder) resolveConfiguration() ShowConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultShowConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
}

func (builder *ShowCommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
