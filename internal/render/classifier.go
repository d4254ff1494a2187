package render

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	lineSeparatorCharactersConstant           = "\r\n"
	unsupportedClassificationTemplateConstant = "unsupported classification policy: %s"
)

// Category is the semantic highlight applied to a report line.
type Category string

// Supported categories. CategoryNone leaves a line unstyled.
const (
	CategoryNone       Category = Category("")
	CategoryGitCommand Category = Category("git-command")
	CategoryFileChange Category = Category("file-change")
	CategoryBranchInfo Category = Category("branch-info")
	CategoryStatusInfo Category = Category("status-info")
)

// ClassificationPolicy selects which matching category wins when several predicates match a line.
type ClassificationPolicy string

// Supported policies. The last-match policy reproduces the established output.
const (
	ClassificationLastMatch  ClassificationPolicy = ClassificationPolicy("last-match")
	ClassificationFirstMatch ClassificationPolicy = ClassificationPolicy("first-match")
)

// ParseClassificationPolicy converts a configuration value into a policy. Empty selects last-match.
func ParseClassificationPolicy(value string) (ClassificationPolicy, error) {
	switch ClassificationPolicy(strings.ToLower(strings.TrimSpace(value))) {
	case ClassificationPolicy(""), ClassificationLastMatch:
		return ClassificationLastMatch, nil
	case ClassificationFirstMatch:
		return ClassificationFirstMatch, nil
	default:
		return ClassificationLastMatch, fmt.Errorf(unsupportedClassificationTemplateConstant, value)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for configuration decoding.
func (policy *ClassificationPolicy) UnmarshalText(text []byte) error {
	parsedPolicy, parseError := ParseClassificationPolicy(string(text))
	if parseError != nil {
		return parseError
	}
	*policy = parsedPolicy
	return nil
}

type categoryPredicate struct {
	category Category
	tokens   []string
}

func (predicate categoryPredicate) matches(line string) bool {
	for _, token := range predicate.tokens {
		if strings.Contains(line, token) {
			return true
		}
	}
	return false
}

// Evaluation order is part of the output contract.
var categoryPredicates = []categoryPredicate{
	{category: CategoryGitCommand, tokens: []string{"git"}},
	{category: CategoryFileChange, tokens: []string{"modified", "insertions", "deletion"}},
	{category: CategoryBranchInfo, tokens: []string{"branch"}},
	{category: CategoryStatusInfo, tokens: []string{"Your branch", "can be fast-forwarded"}},
}

var linkPattern = regexp.MustCompile(`https?://[^\s]+`)

// ClassifiedLine is one report line with its category and the URLs it contains.
type ClassifiedLine struct {
	Text     string
	Category Category
	Links    []string
}

// SplitLines splits text on every carriage return and line feed, dropping empty entries.
func SplitLines(text string) []string {
	return strings.FieldsFunc(text, func(character rune) bool {
		return strings.ContainsRune(lineSeparatorCharactersConstant, character)
	})
}

// Classify selects the category for a single line under the given policy.
func Classify(line string, policy ClassificationPolicy) Category {
	selectedCategory := CategoryNone
	for _, predicate := range categoryPredicates {
		if !predicate.matches(line) {
			continue
		}
		selectedCategory = predicate.category
		if policy == ClassificationFirstMatch {
			break
		}
	}
	return selectedCategory
}

// FindLinks returns every http or https URL in the line, each ending at the next whitespace.
func FindLinks(line string) []string {
	return linkPattern.FindAllString(line, -1)
}

// ClassifyReport splits report text into lines and classifies each of them in order.
func ClassifyReport(reportText string, policy ClassificationPolicy) []ClassifiedLine {
	lines := SplitLines(reportText)
	classifiedLines := make([]ClassifiedLine, 0, len(lines))
	for _, line := range lines {
		classifiedLines = append(classifiedLines, ClassifiedLine{
			Text:     line,
			Category: Classify(line, policy),
			Links:    FindLinks(line),
		})
	}
	return classifiedLines
}
