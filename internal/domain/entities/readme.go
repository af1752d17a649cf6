package entities

import (
	"fmt"
	"path"
	"strings"
)

// ReadmeCandidates are tried in order against the default branch; the first
// one found wins.
var ReadmeCandidates = []string{"README.md", "README.txt", "README"} //nolint:gochecknoglobals // fixed order

// ReadmeSource tells whether README content came from the repository or was generated.
type ReadmeSource int

const (
	ReadmeSynthesized ReadmeSource = iota
	ReadmeRetrieved
)

func (s ReadmeSource) String() string {
	if s == ReadmeRetrieved {
		return "retrieved"
	}
	return "synthesized"
}

// Readme is the resolved README of a repository.
type Readme struct {
	Repository RepositoryName
	Content    []byte
	Source     ReadmeSource
	// Path is the candidate file that was found; empty when synthesized.
	Path   string
	Branch Branch
}

// NewRetrievedReadme wraps content read from path at branch.
func NewRetrievedReadme(name RepositoryName, branch Branch, filePath string, content []byte) Readme {
	return Readme{
		Repository: name,
		Content:    content,
		Source:     ReadmeRetrieved,
		Path:       filePath,
		Branch:     branch,
	}
}

// NewPlaceholderReadme generates the README shown for repositories without one.
func NewPlaceholderReadme(name RepositoryName, branch Branch) Readme {
	return Readme{
		Repository: name,
		Content:    []byte(fmt.Sprintf("# %s\n\n_No README for this repository._\n", name)),
		Source:     ReadmeSynthesized,
		Branch:     branch,
	}
}

// IsRetrieved reports whether the content was read from the repository.
func (r Readme) IsRetrieved() bool {
	return r.Source == ReadmeRetrieved
}

// IsMarkdown reports whether the content should be rendered as Markdown.
// The placeholder is Markdown as well.
func (r Readme) IsMarkdown() bool {
	if !r.IsRetrieved() {
		return true
	}
	return strings.EqualFold(path.Ext(r.Path), ".md")
}

func (r Readme) String() string {
	return string(r.Content)
}
