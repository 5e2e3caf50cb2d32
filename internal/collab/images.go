package collab

import (
	"context"
	"fmt"
	"io"

	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/jsonmessage"
	"github.com/go-logr/logr"

	"github.com/edgeswarm/swarmprov/internal/config"
	"github.com/edgeswarm/swarmprov/internal/messages"
)

// ImageAPI is the part of the Docker Engine client used here.
type ImageAPI interface {
	ImagePull(ctx context.Context, ref string, options image.PullOptions) (io.ReadCloser, error)
	ImageTag(ctx context.Context, source, target string) error
}

// NewDockerClient connects to the engine named by the DOCKER_* environment.
func NewDockerClient() (*client.Client, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf(messages.CollabDockerClientFmt, err)
	}
	return cli, nil
}

// Images pulls the swarm's service images and tags them locally.
type Images struct {
	API    ImageAPI
	Images []config.ImageConfig
	// Progress receives the rendered pull progress; nil discards it.
	Progress io.Writer
	Log      logr.Logger
}

// PullAndTag pulls every image and applies its local tag, in order.
func (i Images) PullAndTag(ctx context.Context) error {
	for _, img := range i.Images {
		if err := i.pull(ctx, img.Source); err != nil {
			return err
		}
		if err := i.API.ImageTag(ctx, img.Source, img.Tag); err != nil {
			return fmt.Errorf(messages.CollabImageTagFmt, img.Source, img.Tag, err)
		}
		i.Log.Info("image ready", "source", img.Source, "tag", img.Tag)
	}
	return nil
}

// pull waits for the pull stream to finish. Errors reported inside the
// stream fail the pull.
func (i Images) pull(ctx context.Context, ref string) error {
	stream, err := i.API.ImagePull(ctx, ref, image.PullOptions{})
	if err != nil {
		return fmt.Errorf(messages.CollabImagePullFmt, ref, err)
	}
	defer func() { _ = stream.Close() }()
	progress := i.Progress
	if progress == nil {
		progress = io.Discard
	}
	if err := jsonmessage.DisplayJSONMessagesStream(stream, progress, 0, false, nil); err != nil {
		return fmt.Errorf(messages.CollabImagePullFmt, ref, err)
	}
	return nil
}
