package tests

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	integrationCommandTimeout                 = 120 * time.Second
	integrationLogLevelEnvKeyConstant         = "GITGLANCE_COMMON_LOG_LEVEL"
	integrationConfigFileNameConstant         = "config.yaml"
	integrationConfigTemplateConstant         = "common:\n  log_level: %s\n"
	integrationProducedMessageConstant        = "\"msg\":\"artifact produced\""
	integrationSubtestNameTemplateConstant    = "%d_%s"
	integrationHelpUsagePrefixConstant        = "Usage:"
	integrationHelpDescriptionSnippetConstant = "gitglance inspects a repository with read-only git commands"
	integrationUntrackedFileConstant          = "notes.txt"
	integrationRemoteURLConstant              = "https://github.com/temirov/gitglance.git"
)

func TestCLIIntegrationDisplaysHelpWhenNoArgumentsProvided(testInstance *testing.T) {
	outputText := runIntegrationCommand(testInstance, moduleRootDirectory(testInstance), nil, integrationCommandTimeout, []string{"run", "."})

	require.Contains(testInstance, outputText, integrationHelpUsagePrefixConstant)
	require.Contains(testInstance, outputText, integrationHelpDescriptionSnippetConstant)
}

func TestCLIIntegrationRenderAndRelease(testInstance *testing.T) {
	repositoryPath := initializeGitRepository(testInstance)
	moduleRoot := moduleRootDirectory(testInstance)

	testCases := []struct {
		name                string
		configurationLevel  string
		environmentLevel    string
		expectProducedEntry bool
	}{
		{name: "default_info", expectProducedEntry: true},
		{name: "config_error", configurationLevel: "error", expectProducedEntry: false},
		{name: "environment_error", environmentLevel: "error", expectProducedEntry: false},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(integrationSubtestNameTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			outputDirectory := filepath.Join(testInstance.TempDir(), "artifacts")
			arguments := []string{"run", "."}
			var environment []string

			if len(testCase.configurationLevel) > 0 {
				configurationPath := filepath.Join(testInstance.TempDir(), integrationConfigFileNameConstant)
				configurationContent := fmt.Sprintf(integrationConfigTemplateConstant, testCase.configurationLevel)
				require.NoError(testInstance, os.WriteFile(configurationPath, []byte(configurationContent), 0o600))
				arguments = append(arguments, "--config", configurationPath)
			}
			if len(testCase.environmentLevel) > 0 {
				environment = append(environment, integrationLogLevelEnvKeyConstant+"="+testCase.environmentLevel)
			}

			renderArguments := append(append([]string{}, arguments...), "render", "--output-dir", outputDirectory, repositoryPath)
			renderOutput := runIntegrationCommand(testInstance, moduleRoot, environment, integrationCommandTimeout, renderArguments)

			if testCase.expectProducedEntry {
				require.Contains(testInstance, renderOutput, integrationProducedMessageConstant)
			} else {
				require.NotContains(testInstance, renderOutput, integrationProducedMessageConstant)
			}

			location := strings.TrimSpace(filterStructuredOutput(renderOutput))
			require.Equal(testInstance, outputDirectory, filepath.Dir(location))

			documentBytes, readError := os.ReadFile(location)
			require.NoError(testInstance, readError)
			document := string(documentBytes)
			require.Contains(testInstance, document, "<title>fixture</title>")
			require.Contains(testInstance, document, integrationUntrackedFileConstant)
			require.Contains(testInstance, document, "data-url='"+integrationRemoteURLConstant+"'")
			require.Contains(testInstance, document, "<span class='git-command'>")

			releaseArguments := append(append([]string{}, arguments...), "release", location)
			releaseOutput := runIntegrationCommand(testInstance, moduleRoot, environment, integrationCommandTimeout, releaseArguments)
			require.Contains(testInstance, releaseOutput, "RELEASED: "+location)
			require.NoFileExists(testInstance, location)
		})
	}
}

func TestCLIIntegrationShowAndReport(testInstance *testing.T) {
	repositoryPath := initializeGitRepository(testInstance)
	moduleRoot := moduleRootDirectory(testInstance)
	environment := []string{integrationLogLevelEnvKeyConstant + "=error"}

	showOutput := runIntegrationCommand(testInstance, moduleRoot, environment, integrationCommandTimeout, []string{"run", ".", "show", "--color", "never", repositoryPath})
	require.Contains(testInstance, showOutput, integrationUntrackedFileConstant)
	require.Contains(testInstance, showOutput, integrationRemoteURLConstant)
	require.NotContains(testInstance, showOutput, "\x1b[")

	reportOutput := runIntegrationCommand(testInstance, moduleRoot, environment, integrationCommandTimeout, []string{"run", ".", "report", repositoryPath})
	require.Contains(testInstance, reportOutput, "repository: "+repositoryPath)
	require.Contains(testInstance, reportOutput, "succeeded: true")
	require.NotContains(testInstance, reportOutput, "succeeded: false")
}
