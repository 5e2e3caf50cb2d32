package collab

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-logr/logr"

	"github.com/edgeswarm/swarmprov/internal/messages"
)

// Owner hands a directory tree to the operator. privilege.Operator satisfies it.
type Owner interface {
	Chown(root string) error
}

// Repository fetches the swarm code base with go-git.
type Repository struct {
	URL  string
	Ref  string
	Path string
	// Owner may be nil when nothing needs re-owning.
	Owner    Owner
	Progress io.Writer
	Log      logr.Logger

	clone func(ctx context.Context, path string, isBare bool, o *git.CloneOptions) (*git.Repository, error)
}

// Fetch clones the repository into Path. A repository already at Path is
// kept as is.
func (r Repository) Fetch(ctx context.Context) error {
	clone := r.clone
	if clone == nil {
		clone = git.PlainCloneContext
	}
	opts := &git.CloneOptions{
		URL:          r.URL,
		SingleBranch: true,
		Depth:        1,
		Progress:     r.Progress,
	}
	if r.Ref != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(r.Ref)
	}
	_, err := clone(ctx, r.Path, false, opts)
	switch {
	case errors.Is(err, git.ErrRepositoryAlreadyExists):
		r.Log.Info("repository already present", "path", r.Path)
	case err != nil:
		return fmt.Errorf(messages.CollabCloneFmt, r.URL, r.Path, err)
	default:
		r.Log.Info("repository cloned", "url", r.URL, "ref", r.Ref, "path", r.Path)
	}
	if r.Owner == nil {
		return nil
	}
	return r.Owner.Chown(r.Path)
}
