package entities

// Branch is the branch a repository's HEAD points to. The zero value means
// the branch is absent: the repository has no commits, HEAD is detached, or
// it could not be resolved.
type Branch struct {
	Name string
}

// AbsentBranch is the unresolved branch.
var AbsentBranch = Branch{} //nolint:gochecknoglobals // sentinel value

// NewBranch returns a present branch, or AbsentBranch for an empty name.
func NewBranch(name string) Branch {
	return Branch{Name: name}
}

// IsAbsent reports whether no branch could be determined.
func (b Branch) IsAbsent() bool {
	return b.Name == ""
}

func (b Branch) String() string {
	if b.IsAbsent() {
		return "<absent>"
	}
	return b.Name
}
