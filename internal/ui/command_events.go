package ui

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/temirov/gitglance/internal/execshell"
)

const (
	logFieldElapsedConstant  = "elapsed"
	logFieldExitCodeConstant = "exit_code"
)

// Clock reports the current time.
type Clock func() time.Time

// ConsoleCommandEventLogger renders command lifecycle events using a zap logger configured for human-readable output.
// Completed commands carry the time elapsed since they started.
type ConsoleCommandEventLogger struct {
	logger     *zap.Logger
	formatter  execshell.CommandMessageFormatter
	clock      Clock
	mutex      sync.Mutex
	startTimes map[string]time.Time
}

// NewConsoleCommandEventLogger constructs a console event logger backed by the provided zap logger.
func NewConsoleCommandEventLogger(logger *zap.Logger) *ConsoleCommandEventLogger {
	return NewConsoleCommandEventLoggerWithClock(logger, time.Now)
}

// NewConsoleCommandEventLoggerWithClock constructs a console event logger that measures elapsed time with clock.
func NewConsoleCommandEventLoggerWithClock(logger *zap.Logger, clock Clock) *ConsoleCommandEventLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	if clock == nil {
		clock = time.Now
	}
	return &ConsoleCommandEventLogger{
		logger:     logger,
		formatter:  execshell.CommandMessageFormatter{},
		clock:      clock,
		startTimes: make(map[string]time.Time),
	}
}

// CommandStarted implements execshell.CommandEventObserver by logging command start notifications.
func (eventLogger *ConsoleCommandEventLogger) CommandStarted(command execshell.ShellCommand) {
	if eventLogger == nil {
		return
	}
	eventLogger.mutex.Lock()
	eventLogger.startTimes[commandKey(command)] = eventLogger.clock()
	eventLogger.mutex.Unlock()

	eventLogger.logger.Info(eventLogger.formatter.BuildStartedMessage(command))
}

// CommandCompleted implements execshell.CommandEventObserver by logging command completion notifications.
func (eventLogger *ConsoleCommandEventLogger) CommandCompleted(command execshell.ShellCommand, result execshell.ExecutionResult) {
	if eventLogger == nil {
		return
	}
	elapsedField := zap.Duration(logFieldElapsedConstant, eventLogger.elapsed(command))
	if result.ExitCode == 0 {
		eventLogger.logger.Info(eventLogger.formatter.BuildCompletionMessage(command, result), elapsedField)
		return
	}
	eventLogger.logger.Warn(eventLogger.formatter.BuildFailureMessage(command, result), elapsedField, zap.Int(logFieldExitCodeConstant, result.ExitCode))
}

// CommandExecutionFailed implements execshell.CommandEventObserver by logging unexpected execution failures.
func (eventLogger *ConsoleCommandEventLogger) CommandExecutionFailed(command execshell.ShellCommand, failure error) {
	if eventLogger == nil {
		return
	}
	eventLogger.logger.Error(eventLogger.formatter.BuildExecutionFailureMessage(command, failure), zap.Duration(logFieldElapsedConstant, eventLogger.elapsed(command)))
}

func (eventLogger *ConsoleCommandEventLogger) elapsed(command execshell.ShellCommand) time.Duration {
	key := commandKey(command)

	eventLogger.mutex.Lock()
	startTime, started := eventLogger.startTimes[key]
	delete(eventLogger.startTimes, key)
	eventLogger.mutex.Unlock()

	if !started {
		return 0
	}
	return eventLogger.clock().Sub(startTime)
}

func commandKey(command execshell.ShellCommand) string {
	return command.Details.WorkingDirectory + "\x00" + command.String()
}
