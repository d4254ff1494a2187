package pathutils

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

const (
	emptyPathMessageConstant          = "path must not be empty"
	absolutePathErrorTemplateConstant = "unable to resolve absolute path for %s: %w"
)

// ErrEmptyPath indicates a blank path argument.
var ErrEmptyPath = errors.New(emptyPathMessageConstant)

// AbsolutePathFunc converts a path into an absolute path.
type AbsolutePathFunc func(path string) (string, error)

// PathResolver normalizes user-supplied repository and artifact paths.
type PathResolver struct {
	homeExpander *HomeExpander
	absolutePath AbsolutePathFunc
}

// NewPathResolver constructs a PathResolver backed by the operating system.
func NewPathResolver() *PathResolver {
	return NewPathResolverWithDependencies(nil, nil)
}

// NewPathResolverWithDependencies constructs a PathResolver with custom collaborators.
func NewPathResolverWithDependencies(homeExpander *HomeExpander, absolutePath AbsolutePathFunc) *PathResolver {
	if homeExpander == nil {
		homeExpander = NewHomeExpander()
	}
	if absolutePath == nil {
		absolutePath = filepath.Abs
	}
	return &PathResolver{homeExpander: homeExpander, absolutePath: absolutePath}
}

// Resolve trims the candidate, expands a leading tilde, and returns the cleaned absolute path.
func (resolver *PathResolver) Resolve(candidatePath string) (string, error) {
	trimmedPath := strings.TrimSpace(candidatePath)
	if len(trimmedPath) == 0 {
		return "", ErrEmptyPath
	}

	expandedPath := resolver.homeExpander.Expand(trimmedPath)
	absolutePath, absoluteError := resolver.absolutePath(expandedPath)
	if absoluteError != nil {
		return "", fmt.Errorf(absolutePathErrorTemplateConstant, trimmedPath, absoluteError)
	}
	return filepath.Clean(absolutePath), nil
}

// ResolveAll resolves every candidate, skipping blanks and duplicates while keeping first-seen order.
func (resolver *PathResolver) ResolveAll(candidatePaths []string) ([]string, error) {
	resolvedPaths := make([]string, 0, len(candidatePaths))
	seenPaths := make(map[string]struct{}, len(candidatePaths))

	for _, candidatePath := range candidatePaths {
		resolvedPath, resolveError := resolver.Resolve(candidatePath)
		if errors.Is(resolveError, ErrEmptyPath) {
			continue
		}
		if resolveError != nil {
			return nil, resolveError
		}

		comparisonKey := filepath.ToSlash(resolvedPath)
		if _, seen := seenPaths[comparisonKey]; seen {
			continue
		}
		seenPaths[comparisonKey] = struct{}{}
		resolvedPaths = append(resolvedPaths, resolvedPath)
	}

	return resolvedPaths, nil
}
