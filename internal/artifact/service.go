package artifact

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/temirov/gitglance/internal/discovery"
	"github.com/temirov/gitglance/internal/inspect"
	"github.com/temirov/gitglance/internal/render"
)

const (
	artifactExtensionConstant                = ".html"
	artifactFilePermissionsConstant          = fs.FileMode(0o600)
	artifactDirectoryPermissionsConstant     = fs.FileMode(0o700)
	maximumNameAttemptsConstant              = 8
	inspectorMissingMessageConstant          = "artifact inspector not configured"
	rendererMissingMessageConstant           = "artifact renderer not configured"
	fileSystemMissingMessageConstant         = "artifact filesystem not configured"
	repositoryPathRequiredMessageConstant    = "repository path must be provided"
	artifactLocationRequiredMessageConstant  = "artifact location must be provided"
	artifactNameExhaustedMessageConstant     = "could not allocate a unique artifact name"
	artifactDirectoryErrorTemplateConstant   = "failed to prepare artifact directory %s: %w"
	artifactWriteErrorTemplateConstant       = "failed to write artifact %s: %w"
	artifactReleaseErrorTemplateConstant     = "failed to release artifact %s: %w"
	artifactProducedMessageConstant          = "artifact produced"
	artifactReleasedMessageConstant          = "artifact released"
	artifactAlreadyReleasedMessageConstant   = "artifact already absent"
	logFieldRepositoryPathConstant           = "repository_path"
	logFieldLocationConstant                 = "location"
	logFieldLineCountConstant                = "line_count"
	logFieldFailedSegmentCountConstant       = "failed_segment_count"
	defaultRepositoryTitleFallbackConstant   = ""
	repositoryTitleRootSeparatorCharacterSet = `/\`
)

// ErrInspectorNotConfigured indicates the service was created without an inspector.
var ErrInspectorNotConfigured = errors.New(inspectorMissingMessageConstant)

// ErrRendererNotConfigured indicates the service was created without a renderer.
var ErrRendererNotConfigured = errors.New(rendererMissingMessageConstant)

// ErrFileSystemNotConfigured indicates the service was created without a filesystem.
var ErrFileSystemNotConfigured = errors.New(fileSystemMissingMessageConstant)

// ErrRepositoryPathRequired indicates an empty repository path.
var ErrRepositoryPathRequired = errors.New(repositoryPathRequiredMessageConstant)

// ErrArtifactLocationRequired indicates an empty artifact location.
var ErrArtifactLocationRequired = errors.New(artifactLocationRequiredMessageConstant)

// ErrArtifactNameExhausted indicates every generated artifact name was already taken.
var ErrArtifactNameExhausted = errors.New(artifactNameExhaustedMessageConstant)

// ReportInspector gathers the raw report for a repository.
type ReportInspector interface {
	Inspect(executionContext context.Context, repositoryPath string) inspect.Report
}

// DocumentRenderer renders report text into a document.
type DocumentRenderer interface {
	Render(title string, reportText string) render.Document
}

// FileSystem exposes the storage operations used for artifacts.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	MkdirAll(path string, permissions fs.FileMode) error
	CreateExclusive(path string, data []byte, permissions fs.FileMode) error
	Remove(path string) error
	TempDir() string
}

// NameGenerator yields candidate artifact file names without extension.
type NameGenerator func() string

// ServiceDependencies enumerates collaborators required by the service.
type ServiceDependencies struct {
	Inspector     ReportInspector
	Renderer      DocumentRenderer
	FileSystem    FileSystem
	Logger        *zap.Logger
	NameGenerator NameGenerator
}

// Options configure where artifacts are written.
type Options struct {
	OutputDirectory string
}

// Service is the collaborator surface offered to viewer hosts.
type Service struct {
	inspector     ReportInspector
	renderer      DocumentRenderer
	fileSystem    FileSystem
	detector      *discovery.RepositoryDetector
	logger        *zap.Logger
	nameGenerator NameGenerator
	options       Options
}

// NewService constructs a Service from the provided dependencies.
func NewService(dependencies ServiceDependencies, options Options) (*Service, error) {
	if dependencies.Inspector == nil {
		return nil, ErrInspectorNotConfigured
	}
	if dependencies.Renderer == nil {
		return nil, ErrRendererNotConfigured
	}
	if dependencies.FileSystem == nil {
		return nil, ErrFileSystemNotConfigured
	}

	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	nameGenerator := dependencies.NameGenerator
	if nameGenerator == nil {
		nameGenerator = uuid.NewString
	}

	return &Service{
		inspector:     dependencies.Inspector,
		renderer:      dependencies.Renderer,
		fileSystem:    dependencies.FileSystem,
		detector:      discovery.NewRepositoryDetector(dependencies.FileSystem),
		logger:        logger,
		nameGenerator: nameGenerator,
		options:       Options{OutputDirectory: strings.TrimSpace(options.OutputDirectory)},
	}, nil
}

// CanHandle reports whether path is a repository root this service can render.
func (service *Service) CanHandle(path string) bool {
	return service.detector.IsRepositoryRoot(path)
}

// Produce inspects the repository, renders the report, and stores it under a fresh name.
// It returns the location of the stored document, which the caller must later Release.
func (service *Service) Produce(executionContext context.Context, repositoryPath string) (string, error) {
	trimmedRepositoryPath := strings.TrimSpace(repositoryPath)
	if len(trimmedRepositoryPath) == 0 {
		return "", ErrRepositoryPathRequired
	}

	report := service.inspector.Inspect(executionContext, trimmedRepositoryPath)
	document := service.renderer.Render(repositoryTitle(trimmedRepositoryPath), report.Text())

	outputDirectory, directoryError := service.prepareOutputDirectory()
	if directoryError != nil {
		return "", directoryError
	}

	location, storeError := service.store(outputDirectory, []byte(document.Content))
	if storeError != nil {
		return "", storeError
	}

	service.logger.Info(
		artifactProducedMessageConstant,
		zap.String(logFieldRepositoryPathConstant, trimmedRepositoryPath),
		zap.String(logFieldLocationConstant, location),
		zap.Int(logFieldLineCountConstant, len(document.Lines)),
		zap.Int(logFieldFailedSegmentCountConstant, report.FailedSegmentCount()),
	)
	return location, nil
}

// Release deletes the artifact at location. A location that no longer exists is not an error.
func (service *Service) Release(location string) error {
	trimmedLocation := strings.TrimSpace(location)
	if len(trimmedLocation) == 0 {
		return ErrArtifactLocationRequired
	}

	removeError := service.fileSystem.Remove(trimmedLocation)
	if removeError != nil {
		if errors.Is(removeError, fs.ErrNotExist) {
			service.logger.Debug(artifactAlreadyReleasedMessageConstant, zap.String(logFieldLocationConstant, trimmedLocation))
			return nil
		}
		return fmt.Errorf(artifactReleaseErrorTemplateConstant, trimmedLocation, removeError)
	}

	service.logger.Info(artifactReleasedMessageConstant, zap.String(logFieldLocationConstant, trimmedLocation))
	return nil
}

func (service *Service) prepareOutputDirectory() (string, error) {
	if len(service.options.OutputDirectory) == 0 {
		return service.fileSystem.TempDir(), nil
	}
	if mkdirError := service.fileSystem.MkdirAll(service.options.OutputDirectory, artifactDirectoryPermissionsConstant); mkdirError != nil {
		return "", fmt.Errorf(artifactDirectoryErrorTemplateConstant, service.options.OutputDirectory, mkdirError)
	}
	return service.options.OutputDirectory, nil
}

// store never overwrites an existing file, so every call yields a distinct location.
func (service *Service) store(outputDirectory string, content []byte) (string, error) {
	for attempt := 0; attempt < maximumNameAttemptsConstant; attempt++ {
		location := filepath.Join(outputDirectory, service.nameGenerator()+artifactExtensionConstant)
		createError := service.fileSystem.CreateExclusive(location, content, artifactFilePermissionsConstant)
		if createError == nil {
			return location, nil
		}
		if errors.Is(createError, fs.ErrExist) {
			continue
		}
		return "", fmt.Errorf(artifactWriteErrorTemplateConstant, location, createError)
	}
	return "", ErrArtifactNameExhausted
}

func repositoryTitle(repositoryPath string) string {
	trimmedPath := strings.TrimRight(repositoryPath, repositoryTitleRootSeparatorCharacterSet)
	if len(trimmedPath) == 0 {
		return defaultRepositoryTitleFallbackConstant
	}
	return filepath.Base(trimmedPath)
}
