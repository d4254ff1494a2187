package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/temirov/gitglance/internal/inspect"
)

const (
	yamlIndentationConstant             = 2
	documentEncodeErrorTemplateConstant = "failed to encode inspection report: %w"
)

// SegmentDocument is the serialized form of one inspection command outcome.
type SegmentDocument struct {
	Command   string `yaml:"command"`
	Succeeded bool   `yaml:"succeeded"`
	Text      string `yaml:"text"`
}

// Document is the serialized form of an inspection report.
type Document struct {
	Repository string            `yaml:"repository"`
	Segments   []SegmentDocument `yaml:"segments"`
}

// NewDocument converts an inspection report into its serialized form.
func NewDocument(inspectionReport inspect.Report) Document {
	segments := make([]SegmentDocument, 0, len(inspectionReport.Segments))
	for _, segment := range inspectionReport.Segments {
		segments = append(segments, SegmentDocument{
			Command:   segment.Command.String(),
			Succeeded: segment.Succeeded,
			Text:      segment.Text,
		})
	}
	return Document{Repository: inspectionReport.RepositoryPath, Segments: segments}
}

// Encode writes document to writer as YAML.
func Encode(writer io.Writer, document Document) error {
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(yamlIndentationConstant)
	if encodeError := encoder.Encode(document); encodeError != nil {
		return fmt.Errorf(documentEncodeErrorTemplateConstant, encodeError)
	}
	if closeError := encoder.Close(); closeError != nil {
		return fmt.Errorf(documentEncodeErrorTemplateConstant, closeError)
	}
	return nil
}
