package entities

import "fmt"

// BuildCloneCommand returns the ssh clone command for a repository served at
// host:port. The name is used verbatim; callers pass names taken from the
// repository listing only.
func BuildCloneCommand(name RepositoryName, host string, port int) string {
	return "git clone " + BuildRemoteURL(name, host, port)
}

// BuildRemoteURL returns the ssh URL of a repository, used both to clone and
// as the push target.
func BuildRemoteURL(name RepositoryName, host string, port int) string {
	return fmt.Sprintf("ssh://%s:%d/%s", host, port, name)
}

// NewCloneDescriptor builds the descriptor of a repository for the given settings.
func NewCloneDescriptor(name RepositoryName, settings *Settings) CloneDescriptor {
	return CloneDescriptor{
		Name:         name,
		CloneCommand: BuildCloneCommand(name, settings.ServerHost, settings.ServerPort),
		PushTarget:   BuildRemoteURL(name, settings.ServerHost, settings.ServerPort),
	}
}
