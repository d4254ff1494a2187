package flags

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestFormatChoiceUsage(t *testing.T) {
	testCases := []struct {
		name           string
		defaultChoice  string
		choices        []string
		description    string
		expectedOutput string
	}{
		{
			name:           "DefaultFirstChoice",
			defaultChoice:  "last-match",
			choices:        []string{"last-match", "first-match"},
			description:    "Category chosen when several match.",
			expectedOutput: "`<LAST-MATCH|first-match>` Category chosen when several match.",
		},
		{
			name:           "DefaultSecondChoice",
			defaultChoice:  "auto",
			choices:        []string{"always", "auto", "never"},
			description:    "Colorize terminal output.",
			expectedOutput: "`<always|AUTO|never>` Colorize terminal output.",
		},
		{
			name:           "EmptyDescription",
			defaultChoice:  "alpha",
			choices:        []string{"alpha", "beta"},
			description:    "",
			expectedOutput: "`<ALPHA|beta>`",
		},
		{
			name:           "DuplicateChoicesIgnored",
			defaultChoice:  "beta",
			choices:        []string{"beta", "beta", "alpha", "alpha"},
			description:    "Select between options.",
			expectedOutput: "`<BETA|alpha>` Select between options.",
		},
		{
			name:           "WhitespaceTrimmed",
			defaultChoice:  "primary",
			choices:        []string{" primary ", " secondary "},
			description:    "Pick a palette.",
			expectedOutput: "`<PRIMARY|secondary>` Pick a palette.",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := FormatChoiceUsage(testCase.defaultChoice, testCase.choices, testCase.description)
			require.Equal(t, testCase.expectedOutput, actual)
		})
	}
}

func TestChoiceFlagParsing(t *testing.T) {
	testCases := []struct {
		name          string
		arguments     []string
		expectedValue string
		expectError   bool
	}{
		{name: "DefaultWhenAbsent", arguments: nil, expectedValue: "auto"},
		{name: "CaseInsensitiveSelection", arguments: []string{"--color", "NEVER"}, expectedValue: "never"},
		{name: "UnknownValueRejected", arguments: []string{"--color", "rainbow"}, expectError: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			flagSet := pflag.NewFlagSet("show", pflag.ContinueOnError)
			choiceValue := AddChoiceFlag(flagSet, "color", "auto", []string{"auto", "always", "never"}, "Colorize output.")

			parseError := flagSet.Parse(testCase.arguments)
			if testCase.expectError {
				require.Error(t, parseError)
				return
			}
			require.NoError(t, parseError)
			require.Equal(t, testCase.expectedValue, choiceValue.String())
		})
	}
}
