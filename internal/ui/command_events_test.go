package ui_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/gitglance/internal/execshell"
	"github.com/temirov/gitglance/internal/ui"
)

const (
	testCommandWorkingDirectoryConstant    = "/tmp/project"
	testExecutionFailureReasonConstant     = "execution failed"
	testStandardErrorMessageConstant       = "fatal: not a git repository"
	testStartMessageExpectationConstant    = "Reviewing working tree status in /tmp/project"
	testSuccessMessageExpectationConstant  = "Collected working tree status for /tmp/project"
	testFailureMessageExpectationConstant  = "Failed to review working tree status in /tmp/project (exit code 128: " + testStandardErrorMessageConstant + ")"
	testExecutionFailureMessageExpectation = "Unable to review working tree status in /tmp/project: " + testExecutionFailureReasonConstant
	testElapsedFieldConstant               = "elapsed"
)

type steppingClock struct {
	current time.Time
	step    time.Duration
}

func (clock *steppingClock) Now() time.Time {
	observed := clock.current
	clock.current = clock.current.Add(clock.step)
	return observed
}

func TestConsoleCommandEventLoggerEmitsMessages(testInstance *testing.T) {
	command := execshell.ShellCommand{
		Name: execshell.CommandGit,
		Details: execshell.CommandDetails{
			Arguments:        []string{"status"},
			WorkingDirectory: testCommandWorkingDirectoryConstant,
		},
	}

	testCases := []struct {
		name            string
		invoke          func(logger *ui.ConsoleCommandEventLogger)
		expectedLevel   zapcore.Level
		expectedMessage string
	}{
		{
			name: "command_started",
			invoke: func(logger *ui.ConsoleCommandEventLogger) {
				logger.CommandStarted(command)
			},
			expectedLevel:   zapcore.InfoLevel,
			expectedMessage: testStartMessageExpectationConstant,
		},
		{
			name: "command_completed_success",
			invoke: func(logger *ui.ConsoleCommandEventLogger) {
				logger.CommandCompleted(command, execshell.ExecutionResult{ExitCode: 0, StandardOutput: "On branch main\n"})
			},
			expectedLevel:   zapcore.InfoLevel,
			expectedMessage: testSuccessMessageExpectationConstant,
		},
		{
			name: "command_completed_failure",
			invoke: func(logger *ui.ConsoleCommandEventLogger) {
				logger.CommandCompleted(command, execshell.ExecutionResult{ExitCode: 128, StandardError: testStandardErrorMessageConstant})
			},
			expectedLevel:   zapcore.WarnLevel,
			expectedMessage: testFailureMessageExpectationConstant,
		},
		{
			name: "command_execution_failure",
			invoke: func(logger *ui.ConsoleCommandEventLogger) {
				logger.CommandExecutionFailed(command, errors.New(testExecutionFailureReasonConstant))
			},
			expectedLevel:   zapcore.ErrorLevel,
			expectedMessage: testExecutionFailureMessageExpectation,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			observerCore, observedLogs := observer.New(zapcore.DebugLevel)
			consoleLogger := zap.New(observerCore)
			eventLogger := ui.NewConsoleCommandEventLogger(consoleLogger)

			testCase.invoke(eventLogger)

			entries := observedLogs.All()
			require.Len(testInstance, entries, 1)
			require.Equal(testInstance, testCase.expectedLevel, entries[0].Level)
			require.Equal(testInstance, testCase.expectedMessage, entries[0].Message)
		})
	}
}

func TestConsoleCommandEventLoggerReportsElapsedTime(testInstance *testing.T) {
	command := execshell.ShellCommand{
		Name:    execshell.CommandGit,
		Details: execshell.CommandDetails{Arguments: []string{"remote", "-v"}, WorkingDirectory: testCommandWorkingDirectoryConstant},
	}
	clock := &steppingClock{current: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), step: 250 * time.Millisecond}

	observerCore, observedLogs := observer.New(zapcore.DebugLevel)
	eventLogger := ui.NewConsoleCommandEventLoggerWithClock(zap.New(observerCore), clock.Now)

	eventLogger.CommandStarted(command)
	eventLogger.CommandCompleted(command, execshell.ExecutionResult{StandardOutput: "origin\thttps://example.com/repo.git (fetch)\n"})
	eventLogger.CommandCompleted(command, execshell.ExecutionResult{})

	entries := observedLogs.All()
	require.Len(testInstance, entries, 3)
	require.Equal(testInstance, "Listing remotes in /tmp/project", entries[0].Message)
	require.Equal(testInstance, "Listed remotes in /tmp/project", entries[1].Message)
	require.Equal(testInstance, 250*time.Millisecond, entries[1].ContextMap()[testElapsedFieldConstant])
	require.Equal(testInstance, time.Duration(0), entries[2].ContextMap()[testElapsedFieldConstant])
}

func TestConsoleCommandEventLoggerToleratesNilReceiver(testInstance *testing.T) {
	var eventLogger *ui.ConsoleCommandEventLogger
	command := execshell.ShellCommand{Name: execshell.CommandGit}

	require.NotPanics(testInstance, func() {
		eventLogger.CommandStarted(command)
		eventLogger.CommandCompleted(command, execshell.ExecutionResult{})
		eventLogger.CommandExecutionFailed(command, errors.New(testExecutionFailureReasonConstant))
	})
}
