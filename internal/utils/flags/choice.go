package flags

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

const (
	choicePlaceholderPrefix       = "<"
	choicePlaceholderSuffix       = ">"
	choiceSeparatorLiteral        = "|"
	choiceUsageEmptyTemplate      = "`%s`"
	choiceUsageFullTemplate       = "`%s` %s"
	choiceFlagTypeName            = "choice"
	unsupportedChoiceTemplate     = "unsupported value %q; expected one of %s"
	choiceListSeparatorForMessage = ", "
)

// FormatChoiceUsage builds a usage string where the default option is capitalized inside a placeholder.
func FormatChoiceUsage(defaultChoice string, choices []string, description string) string {
	placeholder := choicePlaceholderPrefix + strings.Join(highlightDefaultChoice(defaultChoice, choices), choiceSeparatorLiteral) + choicePlaceholderSuffix
	if len(strings.TrimSpace(description)) == 0 {
		return fmt.Sprintf(choiceUsageEmptyTemplate, placeholder)
	}
	return fmt.Sprintf(choiceUsageFullTemplate, placeholder, description)
}

// ChoiceValue is a pflag.Value that accepts one of a fixed, case-insensitive set of choices.
type ChoiceValue struct {
	value   string
	choices []string
}

// NewChoiceValue constructs a ChoiceValue holding defaultChoice.
func NewChoiceValue(defaultChoice string, choices []string) *ChoiceValue {
	return &ChoiceValue{
		value:   strings.ToLower(strings.TrimSpace(defaultChoice)),
		choices: normalizeChoices(choices),
	}
}

// AddChoiceFlag registers a choice flag on flagSet and returns its value holder.
func AddChoiceFlag(flagSet *pflag.FlagSet, name string, defaultChoice string, choices []string, description string) *ChoiceValue {
	choiceValue := NewChoiceValue(defaultChoice, choices)
	if flagSet == nil || len(strings.TrimSpace(name)) == 0 {
		return choiceValue
	}
	flagSet.Var(choiceValue, name, FormatChoiceUsage(defaultChoice, choices, description))
	return choiceValue
}

// String returns the selected choice.
func (choiceValue *ChoiceValue) String() string {
	if choiceValue == nil {
		return ""
	}
	return choiceValue.value
}

// Set selects candidate when it names one of the allowed choices.
func (choiceValue *ChoiceValue) Set(candidate string) error {
	normalizedCandidate := strings.ToLower(strings.TrimSpace(candidate))
	for _, choice := range choiceValue.choices {
		if choice == normalizedCandidate {
			choiceValue.value = choice
			return nil
		}
	}
	return fmt.Errorf(unsupportedChoiceTemplate, candidate, strings.Join(choiceValue.choices, choiceListSeparatorForMessage))
}

// Type reports the flag type name shown in help output.
func (choiceValue *ChoiceValue) Type() string {
	return choiceFlagTypeName
}

func normalizeChoices(choices []string) []string {
	normalized := make([]string, 0, len(choices))
	seen := make(map[string]struct{}, len(choices))
	for _, choice := range choices {
		normalizedChoice := strings.ToLower(strings.TrimSpace(choice))
		if len(normalizedChoice) == 0 {
			continue
		}
		if _, exists := seen[normalizedChoice]; exists {
			continue
		}
		seen[normalizedChoice] = struct{}{}
		normalized = append(normalized, normalizedChoice)
	}
	return normalized
}

func highlightDefaultChoice(defaultChoice string, choices []string) []string {
	normalizedDefault := strings.ToLower(strings.TrimSpace(defaultChoice))
	highlighted := make([]string, 0, len(choices))
	seen := make(map[string]struct{}, len(choices))

	for _, choice := range choices {
		trimmedChoice := strings.TrimSpace(choice)
		normalizedChoice := strings.ToLower(trimmedChoice)
		if len(normalizedChoice) == 0 {
			continue
		}
		if _, exists := seen[normalizedChoice]; exists {
			continue
		}
		seen[normalizedChoice] = struct{}{}

		if normalizedChoice == normalizedDefault {
			trimmedChoice = strings.ToUpper(trimmedChoice)
		}
		highlighted = append(highlighted, trimmedChoice)
	}

	return highlighted
}

var _ pflag.Value = (*ChoiceValue)(nil)
