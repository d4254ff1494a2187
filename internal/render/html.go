package render

import (
	"fmt"
	"html"
	"strings"
)

const (
	defaultDocumentTitleConstant = "gitglance"
	documentHeaderTemplate       = "<!DOCTYPE html>\n<html>\n<head>\n<meta charset='utf-8'>\n<title>%s</title>\n%s%s\n</head>\n<body>\n<pre>"
	documentFooterConstant       = "</pre>\n</body>\n</html>"
	categoryWrapperTemplate      = "<span class='%s'>%s</span>"
	linkAnnotationTemplate       = "<a class='url' href='%[1]s'>%[1]s</a> <span class='copy-btn' data-url='%[1]s' onclick=\"copyToClipboard(this.dataset.url)\">📋</span>"
	lineTerminatorConstant       = "\n"
)

const documentStyleBlock = `
<style>
    body { font-family: monospace; background-color: #f4f4f4; padding: 20px; }
    .git-command { color: #005cc5; font-weight: bold; font-size: 1.2em; }
    .file-change { color: #d73a49; font-size: 1.5em; }
    .branch-info { color: #6f42c1; font-size: 1.2em; }
    .status-info { color: #22863a; font-size: 1.2em; }
    a.url { color: #032b6b; text-decoration: underline; font-size: 1.3em; }
    .copy-btn {
        margin-left: 5px;
        cursor: pointer;
        color: #005cc5;
        font-size: 0.9em;
        text-decoration: none;
    }
    .copy-btn:hover {
        text-decoration: underline;
    }
</style>`

const documentScriptBlock = `
<script>
    function copyToClipboard(text) {
        navigator.clipboard.writeText(text).then(() => {
            alert('Copied to clipboard: ' + text);
        }).catch(err => {
            console.error('Failed to copy text: ', err);
        });
    }
</script>`

// Document is a rendered, self-contained artifact. It is never mutated after rendering.
type Document struct {
	Title   string
	Lines   []ClassifiedLine
	Content string
}

// HTMLRenderer turns report text into a styled HTML page with copyable links.
type HTMLRenderer struct {
	policy ClassificationPolicy
}

// NewHTMLRenderer constructs a renderer applying the supplied classification policy.
func NewHTMLRenderer(policy ClassificationPolicy) *HTMLRenderer {
	if policy != ClassificationFirstMatch {
		policy = ClassificationLastMatch
	}
	return &HTMLRenderer{policy: policy}
}

// Render builds the document for reportText. An empty title falls back to the application name.
func (renderer *HTMLRenderer) Render(title string, reportText string) Document {
	documentTitle := strings.TrimSpace(title)
	if len(documentTitle) == 0 {
		documentTitle = defaultDocumentTitleConstant
	}

	classifiedLines := ClassifyReport(reportText, renderer.policy)

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf(documentHeaderTemplate, html.EscapeString(documentTitle), documentStyleBlock, documentScriptBlock))
	for _, classifiedLine := range classifiedLines {
		builder.WriteString(renderHTMLLine(classifiedLine))
		builder.WriteString(lineTerminatorConstant)
	}
	builder.WriteString(documentFooterConstant)

	return Document{Title: documentTitle, Lines: classifiedLines, Content: builder.String()}
}

// renderHTMLLine annotates links inside the escaped text and then applies the category wrapper,
// so the URL pattern never consumes the wrapper's closing tag.
func renderHTMLLine(classifiedLine ClassifiedLine) string {
	escapedLine := html.EscapeString(classifiedLine.Text)
	annotatedLine := linkPattern.ReplaceAllStringFunc(escapedLine, func(matchedURL string) string {
		return fmt.Sprintf(linkAnnotationTemplate, matchedURL)
	})
	if classifiedLine.Category == CategoryNone {
		return annotatedLine
	}
	return fmt.Sprintf(categoryWrapperTemplate, classifiedLine.Category, annotatedLine)
}
