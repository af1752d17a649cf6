package web

import (
	"bytes"
	"html/template"

	"github.com/gomarkdown/markdown"
	"github.com/microcosm-cc/bluemonday"

	"github.com/rios0rios0/repomonitor/internal/domain/entities"
)

// RenderReadme converts README content to HTML. Markdown files and the
// generated placeholder go through the Markdown renderer and are sanitized;
// plain text is escaped into a <pre> block.
func RenderReadme(readme entities.Readme) template.HTML {
	if !readme.IsMarkdown() {
		return template.HTML("<pre>" + template.HTMLEscapeString(string(readme.Content)) + "</pre>") //nolint:gosec // escaped above
	}

	unsafe := markdown.ToHTML(bytes.Clone(readme.Content), nil, nil)
	safe := bluemonday.UGCPolicy().SanitizeBytes(unsafe)
	return template.HTML(safe) //nolint:gosec // sanitized by bluemonday
}
