package messages

// External collaborator messages.
const (
	CollabPackagesUpdateFmt  = "refresh package index: %w"
	CollabPackagesInstallFmt = "install packages %s: %w"
	CollabCloneFmt           = "clone %s into %s: %w"
	CollabVenvCreateFmt      = "create virtualenv %s: %w"
	CollabPipUpgradeFmt      = "upgrade pip in %s: %w"
	CollabPipInstallFmt      = "install python requirements %s: %w"
	CollabDockerClientFmt    = "connect to docker: %w"
	CollabImagePullFmt       = "pull image %s: %w"
	CollabImageTagFmt        = "tag image %s as %s: %w"
)
