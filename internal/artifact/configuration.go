package artifact

import (
	"strings"

	"github.com/temirov/gitglance/internal/render"
)

const (
	outputDirectoryConfigurationKeyConstant = "output_directory"
	classificationConfigurationKeyConstant  = "classification"
	copyLocationConfigurationKeyConstant    = "copy_location"
	configurationKeySeparatorConstant       = "."
)

// CommandConfiguration captures configuration values shared by the artifact commands.
type CommandConfiguration struct {
	OutputDirectory string                      `mapstructure:"output_directory"`
	Classification  render.ClassificationPolicy `mapstructure:"classification"`
	CopyLocation    bool                        `mapstructure:"copy_location"`
}

// DefaultCommandConfiguration provides baseline configuration values for artifact production.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		OutputDirectory: "",
		Classification:  render.ClassificationLastMatch,
		CopyLocation:    false,
	}
}

// DefaultConfigurationValues exposes the defaults as Viper keys under prefix.
func DefaultConfigurationValues(prefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		prefix + configurationKeySeparatorConstant + outputDirectoryConfigurationKeyConstant: defaults.OutputDirectory,
		prefix + configurationKeySeparatorConstant + classificationConfigurationKeyConstant:  string(defaults.Classification),
		prefix + configurationKeySeparatorConstant + copyLocationConfigurationKeyConstant:    defaults.CopyLocation,
	}
}

// Sanitize trims configuration values and restores the default classification when none is set.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.OutputDirectory = strings.TrimSpace(configuration.OutputDirectory)
	if len(strings.TrimSpace(string(configuration.Classification))) == 0 {
		sanitized.Classification = render.ClassificationLastMatch
	}
	return sanitized
}
