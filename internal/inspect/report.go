package inspect

import "strings"

// Segment is the captured text of one inspection command.
// Text holds standard output when Succeeded is true and the error text otherwise.
type Segment struct {
	Command   InspectionCommand
	Text      string
	Succeeded bool
}

// Report is the ordered list of segments gathered for one repository.
type Report struct {
	RepositoryPath string
	Segments       []Segment
}

// Text concatenates every segment in command order without adding separators.
func (report Report) Text() string {
	var builder strings.Builder
	for _, segment := range report.Segments {
		builder.WriteString(segment.Text)
	}
	return builder.String()
}

// FailedSegmentCount reports how many commands contributed error text.
func (report Report) FailedSegmentCount() int {
	failedSegmentCount := 0
	for _, segment := range report.Segments {
		if !segment.Succeeded {
			failedSegmentCount++
		}
	}
	return failedSegmentCount
}
