package dependencies

import (
	"go.uber.org/zap"

	"github.com/temirov/gitglance/internal/clipboard"
	"github.com/temirov/gitglance/internal/execshell"
	"github.com/temirov/gitglance/internal/filesystem"
	"github.com/temirov/gitglance/internal/inspect"
	"github.com/temirov/gitglance/internal/ui"
)

// ResolveFileSystem returns the provided filesystem or an OS-backed default.
func ResolveFileSystem(existing filesystem.FileSystem) filesystem.FileSystem {
	if existing != nil {
		return existing
	}
	return filesystem.OSFileSystem{}
}

// ResolveGitExecutor returns the provided executor or constructs a shell-backed default.
// Human-readable logging attaches a console observer that reports each git command as it runs.
func ResolveGitExecutor(existing inspect.GitExecutor, logger *zap.Logger, humanReadable bool) (inspect.GitExecutor, error) {
	if existing != nil {
		return existing, nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	observers := []execshell.CommandEventObserver{}
	if humanReadable {
		observers = append(observers, ui.NewConsoleCommandEventLogger(logger))
	}

	commandRunner := execshell.NewOSCommandRunner()
	shellExecutor, creationError := execshell.NewShellExecutor(logger, commandRunner, observers...)
	if creationError != nil {
		return nil, creationError
	}
	return shellExecutor, nil
}

// ResolveInspector builds an inspector over the resolved git executor.
func ResolveInspector(existing inspect.GitExecutor, logger *zap.Logger, humanReadable bool) (*inspect.Inspector, error) {
	gitExecutor, executorError := ResolveGitExecutor(existing, logger, humanReadable)
	if executorError != nil {
		return nil, executorError
	}
	return inspect.NewInspector(gitExecutor, logger)
}

// ResolveClipboard returns the provided copier or the system clipboard.
func ResolveClipboard(existing clipboard.Copier) clipboard.Copier {
	if existing != nil {
		return existing
	}
	return clipboard.NewService()
}
