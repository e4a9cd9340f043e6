package uci

import (
	"context"
	"os/exec"

	"github.com/lgbarn/chesscore/internal/errors"
)

// Start launches the engine binary at path and performs the handshake.
// The process is killed if ctx is cancelled before Close.
func Start(ctx context.Context, path string, args []string, opts ...Option) (*Client, error) {
	cmd := exec.CommandContext(ctx, path, args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, errors.Wrapf(err, "engine %s", path)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, errors.Wrapf(err, "engine %s", path)
	}
	if err := cmd.Start(); err != nil {
		return nil, errors.Wrapf(err, "starting engine %s", path)
	}

	c := NewClient(stdout, stdin, opts...)
	c.closer = func() error {
		stdin.Close()
		if err := cmd.Wait(); err != nil {
			return errors.Wrapf(err, "engine %s", path)
		}
		return nil
	}

	if err := c.Handshake(ctx); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}
