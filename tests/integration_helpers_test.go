package tests

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	integrationGitExecutableConstant = "git"
	integrationGoExecutableConstant  = "go"
)

func runIntegrationCommand(testInstance *testing.T, repositoryRoot string, environment []string, timeout time.Duration, arguments []string) string {
	testInstance.Helper()
	executionContext, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	command := exec.CommandContext(executionContext, integrationGoExecutableConstant, arguments...)
	command.Dir = repositoryRoot
	command.Env = append(append([]string{}, os.Environ()...), "GIT_TERMINAL_PROMPT=0")
	command.Env = append(command.Env, environment...)

	outputBytes, runError := command.CombinedOutput()
	outputText := string(outputBytes)
	requireNoError(testInstance, runError, outputText)
	return outputText
}

func moduleRootDirectory(testInstance *testing.T) string {
	testInstance.Helper()
	currentWorkingDirectory, workingDirectoryError := os.Getwd()
	require.NoError(testInstance, workingDirectoryError)
	return filepath.Dir(currentWorkingDirectory)
}

// initializeGitRepository creates a repository with one commit, a local bare origin,
// an https mirror remote and an untracked file. The test is skipped when git is not installed.
func initializeGitRepository(testInstance *testing.T) string {
	testInstance.Helper()
	if _, lookupError := exec.LookPath(integrationGitExecutableConstant); lookupError != nil {
		testInstance.Skip("git executable not available")
	}

	workspace := testInstance.TempDir()
	originPath := filepath.Join(workspace, "origin.git")
	repositoryPath := filepath.Join(workspace, "fixture")
	require.NoError(testInstance, os.MkdirAll(originPath, 0o755))
	require.NoError(testInstance, os.MkdirAll(repositoryPath, 0o755))
	runGit(testInstance, originPath, "init", "--quiet", "--bare")

	gitCommands := [][]string{
		{"init", "--quiet"},
		{"config", "user.email", "fixture@example.com"},
		{"config", "user.name", "Fixture"},
		{"config", "commit.gpgsign", "false"},
		{"remote", "add", "origin", originPath},
		{"remote", "add", "mirror", "https://github.com/temirov/gitglance.git"},
	}
	for _, arguments := range gitCommands {
		runGit(testInstance, repositoryPath, arguments...)
	}

	require.NoError(testInstance, os.WriteFile(filepath.Join(repositoryPath, "README.md"), []byte("fixture\n"), 0o600))
	runGit(testInstance, repositoryPath, "add", "README.md")
	runGit(testInstance, repositoryPath, "commit", "--quiet", "-m", "Initial commit")
	require.NoError(testInstance, os.WriteFile(filepath.Join(repositoryPath, "notes.txt"), []byte("draft\n"), 0o600))

	return repositoryPath
}

func runGit(testInstance *testing.T, repositoryPath string, arguments ...string) {
	testInstance.Helper()
	command := exec.Command(integrationGitExecutableConstant, arguments...)
	command.Dir = repositoryPath
	outputBytes, runError := command.CombinedOutput()
	requireNoError(testInstance, runError, string(outputBytes))
}

func filterStructuredOutput(rawOutput string) string {
	lines := strings.Split(rawOutput, "\n")
	var filtered []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) == 0 {
			continue
		}
		if strings.HasPrefix(trimmed, "{") {
			continue
		}
		filtered = append(filtered, line)
	}
	if len(filtered) == 0 {
		return ""
	}
	return strings.Join(filtered, "\n") + "\n"
}

func requireNoError(testInstance *testing.T, err error, output string) {
	testInstance.Helper()
	if err != nil {
		testInstance.Fatalf("command failed: %v\n%s", err, output)
	}
}
