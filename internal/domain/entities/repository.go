package entities

// RepositoryName identifies a repository by its entry under the repositories root.
type RepositoryName string

func (n RepositoryName) String() string { return string(n) }

// CloneDescriptor pairs a repository with the command used to clone it and
// the remote URL pushes go to.
type CloneDescriptor struct {
	Name         RepositoryName
	CloneCommand string
	PushTarget   string
}

// RepositorySummary is one row of the catalog overview.
type RepositorySummary struct {
	CloneDescriptor
	Readme Readme
}
