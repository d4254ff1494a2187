package inspect

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/gitglance/internal/execshell"
)

const (
	gitTerminalPromptEnvironmentNameConstant  = "GIT_TERMINAL_PROMPT"
	gitTerminalPromptEnvironmentDisabledValue = "0"
	inspectionStartedMessageConstant          = "inspecting repository"
	inspectionCompletedMessageConstant        = "repository inspection completed"
	inspectionSegmentFailedMessageConstant    = "inspection command failed; error text kept in report"
	logFieldRepositoryPathConstant            = "repository_path"
	logFieldCommandConstant                   = "command"
	logFieldSegmentCountConstant              = "segment_count"
	logFieldFailedSegmentCountConstant        = "failed_segment_count"
	gitExecutorMissingMessageConstant         = "git executor not configured"
	commandDisplaySeparatorConstant           = " "
	gitExecutableNameConstant                 = "git"
)

// ErrGitExecutorNotConfigured indicates the inspector was created without a git executor.
var ErrGitExecutorNotConfigured = errors.New(gitExecutorMissingMessageConstant)

// GitExecutor runs git subcommands.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// InspectionCommand is one fixed, read-only git invocation.
type InspectionCommand struct {
	Arguments []string
}

// String renders the command line as typed by a user.
func (command InspectionCommand) String() string {
	return strings.Join(append([]string{gitExecutableNameConstant}, command.Arguments...), commandDisplaySeparatorConstant)
}

var inspectionCommands = []InspectionCommand{
	{Arguments: []string{"remote", "-v"}},
	{Arguments: []string{"status"}},
	{Arguments: []string{"remote", "show", "origin"}},
	{Arguments: []string{"--no-pager", "diff", "--shortstat"}},
}

// InspectionCommands returns a copy of the ordered command sequence.
func InspectionCommands() []InspectionCommand {
	commands := make([]InspectionCommand, len(inspectionCommands))
	for commandIndex, command := range inspectionCommands {
		commands[commandIndex] = InspectionCommand{Arguments: append([]string{}, command.Arguments...)}
	}
	return commands
}

// Inspector runs the inspection command sequence against a repository.
type Inspector struct {
	executor GitExecutor
	logger   *zap.Logger
}

// NewInspector constructs an Inspector. A nil logger discards diagnostics.
func NewInspector(executor GitExecutor, logger *zap.Logger) (*Inspector, error) {
	if executor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Inspector{executor: executor, logger: logger}, nil
}

// Inspect runs every inspection command in order with repositoryPath as the working directory.
// Individual failures become the text of their segment; Inspect itself never fails.
func (inspector *Inspector) Inspect(executionContext context.Context, repositoryPath string) Report {
	inspector.logger.Debug(inspectionStartedMessageConstant, zap.String(logFieldRepositoryPathConstant, repositoryPath))

	segments := make([]Segment, 0, len(inspectionCommands))
	for _, command := range InspectionCommands() {
		segment := inspector.runCommand(executionContext, repositoryPath, command)
		if !segment.Succeeded {
			inspector.logger.Debug(
				inspectionSegmentFailedMessageConstant,
				zap.String(logFieldRepositoryPathConstant, repositoryPath),
				zap.String(logFieldCommandConstant, command.String()),
			)
		}
		segments = append(segments, segment)
	}

	report := Report{RepositoryPath: repositoryPath, Segments: segments}
	inspector.logger.Debug(
		inspectionCompletedMessageConstant,
		zap.String(logFieldRepositoryPathConstant, repositoryPath),
		zap.Int(logFieldSegmentCountConstant, len(segments)),
		zap.Int(logFieldFailedSegmentCountConstant, report.FailedSegmentCount()),
	)
	return report
}

func (inspector *Inspector) runCommand(executionContext context.Context, repositoryPath string, command InspectionCommand) Segment {
	executionResult, executionError := inspector.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:            command.Arguments,
		WorkingDirectory:     repositoryPath,
		EnvironmentVariables: map[string]string{gitTerminalPromptEnvironmentNameConstant: gitTerminalPromptEnvironmentDisabledValue},
	})
	if executionError == nil {
		return Segment{Command: command, Text: executionResult.StandardOutput, Succeeded: true}
	}
	return Segment{Command: command, Text: describeFailure(executionError), Succeeded: false}
}

// describeFailure recovers the text shown in place of a failed command's output.
func describeFailure(executionError error) string {
	var commandFailure execshell.CommandFailedError
	if errors.As(executionError, &commandFailure) {
		return commandFailure.Result.StandardError
	}

	var executionFailure execshell.CommandExecutionError
	if errors.As(executionError, &executionFailure) && executionFailure.Cause != nil {
		return executionFailure.Cause.Error()
	}

	return executionError.Error()
}
