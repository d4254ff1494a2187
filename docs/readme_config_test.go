package docs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/temirov/gitglance/cmd/cli"
	"github.com/temirov/gitglance/internal/render"
	"github.com/temirov/gitglance/internal/utils"
)

const (
	readmeFileNameConstant           = "README.md"
	yamlFenceStartConstant           = "```yaml"
	yamlFenceEndConstant             = "```"
	configHeaderMarkerConstant       = "# config.yaml"
	readmeSnippetTestNameConstant    = "readme_configuration"
	readmeSnippetTemporaryPattern    = "readme-config-*.yaml"
	parentDirectoryReferenceConstant = ".."
	missingHeaderMessageConstant     = "README example missing config header marker"
	missingStartFenceMessageConstant = "README example missing yaml fence start"
	missingEndFenceMessageConstant   = "README example missing yaml fence end"
	unexpectedSectionMessageTemplate = "unexpected tools section %s"
	defaultTempDirectoryRootConstant = ""
)

var expectedToolSections = map[string]struct{}{
	"render": {},
	"show":   {},
}

type readmeApplicationConfiguration struct {
	Common map[string]any            `yaml:"common"`
	Tools  map[string]map[string]any `yaml:"tools"`
}

func TestReadmeConfigurationParses(testInstance *testing.T) {
	workingDirectory, workingDirectoryError := os.Getwd()
	require.NoError(testInstance, workingDirectoryError)

	readmePath := filepath.Join(workingDirectory, parentDirectoryReferenceConstant, readmeFileNameConstant)
	contentBytes, readError := os.ReadFile(readmePath)
	require.NoError(testInstance, readError)

	contentText := string(contentBytes)
	headerIndex := strings.Index(contentText, configHeaderMarkerConstant)
	require.NotEqual(testInstance, -1, headerIndex, missingHeaderMessageConstant)

	fenceStartIndex := strings.LastIndex(contentText[:headerIndex], yamlFenceStartConstant)
	require.NotEqual(testInstance, -1, fenceStartIndex, missingStartFenceMessageConstant)

	remainingText := contentText[headerIndex:]
	fenceEndRelativeIndex := strings.Index(remainingText, yamlFenceEndConstant)
	require.NotEqual(testInstance, -1, fenceEndRelativeIndex, missingEndFenceMessageConstant)
	fenceEndIndex := headerIndex + fenceEndRelativeIndex

	snippetContent := strings.TrimSpace(contentText[fenceStartIndex+len(yamlFenceStartConstant) : fenceEndIndex])

	testCases := []struct {
		name          string
		configuration string
	}{
		{
			name:          readmeSnippetTestNameConstant,
			configuration: snippetContent,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtest *testing.T) {
			tempFile, tempFileError := os.CreateTemp(defaultTempDirectoryRootConstant, readmeSnippetTemporaryPattern)
			require.NoError(subtest, tempFileError)
			subtest.Cleanup(func() {
				require.NoError(subtest, os.Remove(tempFile.Name()))
			})

			_, writeError := tempFile.WriteString(testCase.configuration)
			require.NoError(subtest, writeError)
			require.NoError(subtest, tempFile.Close())

			var rawConfiguration readmeApplicationConfiguration
			require.NoError(subtest, yaml.Unmarshal([]byte(testCase.configuration), &rawConfiguration))
			for sectionName := range rawConfiguration.Tools {
				_, expected := expectedToolSections[sectionName]
				require.Truef(subtest, expected, unexpectedSectionMessageTemplate, sectionName)
			}

			loader := utils.NewConfigurationLoader("config", "yaml", "GITGLANCEREADME", nil)
			loader.SetEmbeddedConfiguration(cli.EmbeddedDefaultConfiguration())

			var applicationConfiguration cli.ApplicationConfiguration
			_, loadError := loader.LoadConfiguration(tempFile.Name(), nil, &applicationConfiguration)
			require.NoError(subtest, loadError)

			require.Equal(subtest, render.ClassificationLastMatch, applicationConfiguration.Tools.Render.Classification)
			require.Equal(subtest, render.ClassificationFirstMatch, applicationConfiguration.Tools.Show.Classification)
			require.Equal(subtest, render.ColorModeAuto, applicationConfiguration.Tools.Show.Color)
			require.True(subtest, applicationConfiguration.Tools.Render.CopyLocation)
			require.Equal(subtest, "~/gitglance", applicationConfiguration.Tools.Render.OutputDirectory)
		})
	}
}
