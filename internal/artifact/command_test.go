package artifact_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/temirov/gitglance/internal/artifact"
	"github.com/temirov/gitglance/internal/execshell"
	"github.com/temirov/gitglance/internal/render"
	pathutils "github.com/temirov/gitglance/internal/utils/path"
)

const (
	testStatusOutputConstant = "On branch main\nYour branch is up to date with 'origin/main'.\n"
	testRemoteOutputConstant = "origin\thttps://github.com/temirov/gitglance.git (fetch)\n"
)

type recordingGitExecutor struct {
	outputs     map[string]string
	invocations []execshell.CommandDetails
}

func (executor *recordingGitExecutor) ExecuteGit(_ context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error) {
	executor.invocations = append(executor.invocations, details)
	return execshell.ExecutionResult{StandardOutput: executor.outputs[strings.Join(details.Arguments, " ")]}, nil
}

type recordingClipboard struct {
	copied []string
}

func (copier *recordingClipboard) Copy(text string) error {
	copier.copied = append(copier.copied, text)
	return nil
}

func createRepository(testInstance *testing.T) string {
	testInstance.Helper()
	repositoryPath := filepath.Join(testInstance.TempDir(), "sample")
	require.NoError(testInstance, os.MkdirAll(filepath.Join(repositoryPath, ".git"), 0o755))
	return repositoryPath
}

func executeCommand(testInstance *testing.T, command *cobra.Command, arguments ...string) (string, error) {
	testInstance.Helper()
	outputBuffer := &bytes.Buffer{}
	command.SetOut(outputBuffer)
	command.SetErr(io.Discard)
	command.SilenceUsage = true
	command.SilenceErrors = true
	if arguments == nil {
		arguments = []string{}
	}
	command.SetArgs(arguments)
	command.SetContext(context.Background())
	executionError := command.Execute()
	return outputBuffer.String(), executionError
}

func newCommandDependencies(executor *recordingGitExecutor, copier *recordingClipboard, configuration artifact.CommandConfiguration) artifact.CommandDependencies {
	return artifact.CommandDependencies{
		GitExecutor: executor,
		Clipboard:   copier,
		ConfigurationProvider: func() artifact.CommandConfiguration {
			return configuration
		},
		PathResolver: pathutils.NewPathResolver(),
	}
}

func TestCheckCommand(testInstance *testing.T) {
	repositoryPath := createRepository(testInstance)
	plainDirectory := testInstance.TempDir()

	testCases := []struct {
		name           string
		path           string
		expectedOutput string
		expectError    bool
	}{
		{name: "repository_is_supported", path: repositoryPath, expectedOutput: "SUPPORTED: " + repositoryPath + "\n"},
		{name: "plain_directory_is_unsupported", path: plainDirectory, expectError: true},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			executor := &recordingGitExecutor{}
			builder := artifact.CheckCommandBuilder{CommandDependencies: newCommandDependencies(executor, &recordingClipboard{}, artifact.DefaultCommandConfiguration())}
			command, buildError := builder.Build()
			require.NoError(testInstance, buildError)

			output, executionError := executeCommand(testInstance, command, testCase.path)

			if testCase.expectError {
				require.ErrorIs(testInstance, executionError, artifact.ErrUnsupportedPath)
				require.Contains(testInstance, executionError.Error(), "UNSUPPORTED")
				require.Empty(testInstance, output)
			} else {
				require.NoError(testInstance, executionError)
				require.Equal(testInstance, testCase.expectedOutput, output)
			}
			require.Empty(testInstance, executor.invocations)
		})
	}
}

func TestRenderCommand(testInstance *testing.T) {
	testCases := []struct {
		name                   string
		configuration          artifact.CommandConfiguration
		arguments              func(outputDirectory string) []string
		expectedStatusClass    string
		expectCopiedLocation   bool
		useConfiguredDirectory bool
	}{
		{
			name:          "flags_override_configuration",
			configuration: artifact.DefaultCommandConfiguration(),
			arguments: func(outputDirectory string) []string {
				return []string{"--output-dir", outputDirectory, "--classification", "first-match", "--copy"}
			},
			expectedStatusClass:  "<span class='branch-info'>Your branch",
			expectCopiedLocation: true,
		},
		{
			name: "configuration_applies_without_flags",
			configuration: artifact.CommandConfiguration{
				Classification: render.ClassificationLastMatch,
			},
			arguments: func(string) []string {
				return nil
			},
			expectedStatusClass:    "<span class='status-info'>Your branch",
			useConfiguredDirectory: true,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			repositoryPath := createRepository(testInstance)
			outputDirectory := filepath.Join(testInstance.TempDir(), "artifacts")
			configuration := testCase.configuration
			if testCase.useConfiguredDirectory {
				configuration.OutputDirectory = outputDirectory
			}

			executor := &recordingGitExecutor{outputs: map[string]string{
				"remote -v": testRemoteOutputConstant,
				"status":    testStatusOutputConstant,
			}}
			copier := &recordingClipboard{}
			builder := artifact.RenderCommandBuilder{CommandDependencies: newCommandDependencies(executor, copier, configuration)}
			command, buildError := builder.Build()
			require.NoError(testInstance, buildError)

			output, executionError := executeCommand(testInstance, command, append(testCase.arguments(outputDirectory), repositoryPath)...)
			require.NoError(testInstance, executionError)

			location := strings.TrimSpace(output)
			require.Equal(testInstance, outputDirectory, filepath.Dir(location))
			require.Len(testInstance, executor.invocations, 4)
			for _, invocation := range executor.invocations {
				require.Equal(testInstance, repositoryPath, invocation.WorkingDirectory)
			}

			content, readError := os.ReadFile(location)
			require.NoError(testInstance, readError)
			require.Contains(testInstance, string(content), testCase.expectedStatusClass)
			require.Contains(testInstance, string(content), "<title>sample</title>")

			if testCase.expectCopiedLocation {
				require.Equal(testInstance, []string{location}, copier.copied)
			} else {
				require.Empty(testInstance, copier.copied)
			}
		})
	}
}

func TestRenderCommandRejectsInvalidInput(testInstance *testing.T) {
	repositoryPath := createRepository(testInstance)

	testCases := []struct {
		name      string
		arguments []string
	}{
		{name: "unknown_classification", arguments: []string{"--classification", "random", repositoryPath}},
		{name: "not_a_repository", arguments: []string{testInstance.TempDir()}},
		{name: "missing_path", arguments: nil},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			executor := &recordingGitExecutor{}
			builder := artifact.RenderCommandBuilder{CommandDependencies: newCommandDependencies(executor, &recordingClipboard{}, artifact.DefaultCommandConfiguration())}
			command, buildError := builder.Build()
			require.NoError(testInstance, buildError)

			_, executionError := executeCommand(testInstance, command, testCase.arguments...)

			require.Error(testInstance, executionError)
			require.Empty(testInstance, executor.invocations)
		})
	}
}

func TestReleaseCommand(testInstance *testing.T) {
	directory := testInstance.TempDir()
	existingLocation := filepath.Join(directory, "existing.html")
	require.NoError(testInstance, os.WriteFile(existingLocation, []byte("<html></html>"), 0o600))
	missingLocation := filepath.Join(directory, "missing.html")

	builder := artifact.ReleaseCommandBuilder{CommandDependencies: newCommandDependencies(&recordingGitExecutor{}, &recordingClipboard{}, artifact.DefaultCommandConfiguration())}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	output, executionError := executeCommand(testInstance, command, existingLocation, missingLocation, existingLocation)

	require.NoError(testInstance, executionError)
	require.Equal(testInstance, "RELEASED: "+existingLocation+"\nRELEASED: "+missingLocation+"\n", output)
	require.NoFileExists(testInstance, existingLocation)
}
