package report

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/gitglance/internal/dependencies"
	"github.com/temirov/gitglance/internal/discovery"
	"github.com/temirov/gitglance/internal/filesystem"
	"github.com/temirov/gitglance/internal/inspect"
	pathutils "github.com/temirov/gitglance/internal/utils/path"
)

const (
	commandUseConstant               = "report <path>"
	commandShortDescriptionConstant  = "Print the raw inspection report as YAML"
	commandLongDescriptionConstant   = "report runs the read-only git inspection commands and prints each command with its success flag and captured text as YAML."
	unsupportedErrorTemplateConstant = "UNSUPPORTED: %s: %w"
	unsupportedPathMessageConstant   = "not a repository root"
)

// ErrUnsupportedPath indicates a path that is not a repository root.
var ErrUnsupportedPath = errors.New(unsupportedPathMessageConstant)

// LoggerProvider yields a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the report command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	HumanReadableLoggingProvider func() bool
	GitExecutor                  inspect.GitExecutor
	FileSystem                   filesystem.FileSystem
	PathResolver                 *pathutils.PathResolver
}

// Build constructs the report command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	return &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.ExactArgs(1),
		RunE:  builder.run,
	}, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
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

	humanReadableLogging := false
	if builder.HumanReadableLoggingProvider != nil {
		humanReadableLogging = builder.HumanReadableLoggingProvider()
	}
	inspector, inspectorError := dependencies.ResolveInspector(builder.GitExecutor, builder.resolveLogger(), humanReadableLogging)
	if inspectorError != nil {
		return inspectorError
	}

	inspectionReport := inspector.Inspect(command.Context(), repositoryPath)
	return Encode(command.OutOrStdout(), NewDocument(inspectionReport))
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
