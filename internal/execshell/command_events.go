package execshell

// CommandEventObserver receives lifecycle notifications for shell command execution.
type CommandEventObserver interface {
	// CommandStarted notifies observers that command execution is beginning.
	CommandStarted(command ShellCommand)
	// CommandCompleted notifies observers that command execution finished and supplies the result.
	CommandCompleted(command ShellCommand, result ExecutionResult)
	// CommandExecutionFailed reports unexpected failures prior to receiving an execution result.
	CommandExecutionFailed(command ShellCommand, failure error)
}

// noopCommandEventObserver discards all command events.
type noopCommandEventObserver struct{}

// CommandStarted implements CommandEventObserver for the no-op observer.
func (noopCommandEventObserver) CommandStarted(ShellCommand) {}

// CommandCompleted implements CommandEventObserver for the no-op observer.
func (noopCommandEventObserver) CommandCompleted(ShellCommand, ExecutionResult) {}

// CommandExecutionFailed implements CommandEventObserver for the no-op observer.
func (noopCommandEventObserver) CommandExecutionFailed(ShellCommand, error) {}

// compositeCommandEventObserver fans events out to every registered observer in order.
type compositeCommandEventObserver struct {
	observers []CommandEventObserver
}

func newCompositeCommandEventObserver(observers []CommandEventObserver) CommandEventObserver {
	registeredObservers := make([]CommandEventObserver, 0, len(observers))
	for _, observer := range observers {
		if observer == nil {
			continue
		}
		registeredObservers = append(registeredObservers, observer)
	}
	if len(registeredObservers) == 0 {
		return noopCommandEventObserver{}
	}
	return compositeCommandEventObserver{observers: registeredObservers}
}

// CommandStarted forwards the start notification.
func (composite compositeCommandEventObserver) CommandStarted(command ShellCommand) {
	for _, observer := range composite.observers {
		observer.CommandStarted(command)
	}
}

// CommandCompleted forwards the completion notification.
func (composite compositeCommandEventObserver) CommandCompleted(command ShellCommand, result ExecutionResult) {
	for _, observer := range composite.observers {
		observer.CommandCompleted(command, result)
	}
}

// CommandExecutionFailed forwards the execution failure.
func (composite compositeCommandEventObserver) CommandExecutionFailed(command ShellCommand, failure error) {
	for _, observer := range composite.observers {
		observer.CommandExecutionFailed(command, failure)
	}
}
