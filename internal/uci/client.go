// Package uci talks to an external search engine over the UCI text protocol.
//
// The engine only proposes moves. Every proposal is replayed through
// engine.Position.MakeMove, so a stale or malformed reply is rejected rather
// than trusted.
package uci

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/lgbarn/chesscore/internal/errors"
)

// NoMove is what engines send as the best move when the side to move has none.
const NoMove = "(none)"

// Proposal is the reply to one BestMove request.
type Proposal struct {
	Move   string // UCI move string, or NoMove
	Ponder string // Expected reply, if the engine sent one
	Err    error
}

// Proposer is anything that can suggest a move for a FEN position.
type Proposer interface {
	BestMove(ctx context.Context, fen string, moveTime time.Duration) (<-chan Proposal, error)
}

// Client drives one engine. It allows a single request in flight; a second
// request while one is pending fails with ErrEngineBusy.
type Client struct {
	w          io.Writer
	transcript io.Writer
	options    [][2]string

	lines   chan string
	readErr error         // set before lines is closed
	done    chan struct{} // closed by Close

	mu     sync.Mutex // guards busy, closed, broken and writes to w
	busy   bool
	closed bool
	broken bool // a cancelled search never answered "stop"

	closer func() error
}

// Option configures a Client.
type Option func(*Client)

// WithTranscript records every line sent ("> ") and received ("< ") on w.
func WithTranscript(w io.Writer) Option {
	return func(c *Client) {
		c.transcript = w
	}
}

// WithOption sends "setoption name <name> value <value>" during Handshake.
func WithOption(name, value string) Option {
	return func(c *Client) {
		c.options = append(c.options, [2]string{name, value})
	}
}

// NewClient starts reading engine output from r. Commands are written to w.
func NewClient(r io.Reader, w io.Writer, opts ...Option) *Client {
	c := &Client{
		w:     w,
		lines: make(chan string, 64),
		done:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	go c.read(r)
	return c
}

func (c *Client) read(r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		c.log("<", line)
		// After Close, lines are dropped so the engine never blocks on output.
		select {
		case c.lines <- line:
		case <-c.done:
		}
	}
	c.readErr = scanner.Err()
	close(c.lines)
}

func (c *Client) log(dir, line string) {
	if c.transcript != nil {
		fmt.Fprintf(c.transcript, "%s %s\n", dir, line)
	}
}

func (c *Client) send(cmd string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sendLocked(cmd)
}

func (c *Client) sendLocked(cmd string) error {
	if c.closed {
		return &errors.EngineError{Command: cmd, Err: errors.ErrEngineClosed}
	}
	c.log(">", cmd)
	if _, err := io.WriteString(c.w, cmd+"\n"); err != nil {
		return &errors.EngineError{Command: cmd, Err: err}
	}
	return nil
}

// acquire marks the client busy for one request.
func (c *Client) acquire() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.broken {
		return errors.ErrEngineClosed
	}
	if c.busy {
		return errors.ErrEngineBusy
	}
	c.busy = true
	return nil
}

func (c *Client) release() {
	c.mu.Lock()
	c.busy = false
	c.mu.Unlock()
}

// waitFor reads lines until one starts with token, returning that line.
func (c *Client) waitFor(ctx context.Context, cmd, token string) (string, error) {
	for {
		select {
		case <-ctx.Done():
			return "", &errors.EngineError{Command: cmd, Err: ctx.Err()}
		case line, ok := <-c.lines:
			if !ok {
				err := c.readErr
				if err == nil {
					err = errors.ErrEngineClosed
				}
				return "", &errors.EngineError{Command: cmd, Err: err}
			}
			if firstField(line) == token {
				return line, nil
			}
		}
	}
}

// Handshake switches the engine to UCI mode, applies configured options and
// waits until it is ready.
func (c *Client) Handshake(ctx context.Context) error {
	if err := c.acquire(); err != nil {
		return err
	}
	defer c.release()

	if err := c.send("uci"); err != nil {
		return err
	}
	if _, err := c.waitFor(ctx, "uci", "uciok"); err != nil {
		return err
	}
	for _, opt := range c.options {
		if err := c.send(fmt.Sprintf("setoption name %s value %s", opt[0], opt[1])); err != nil {
			return err
		}
	}
	return c.ready(ctx)
}

func (c *Client) ready(ctx context.Context) error {
	if err := c.send("isready"); err != nil {
		return err
	}
	_, err := c.waitFor(ctx, "isready", "readyok")
	return err
}

// NewGame tells the engine the next position starts an unrelated game.
func (c *Client) NewGame(ctx context.Context) error {
	if err := c.acquire(); err != nil {
		return err
	}
	defer c.release()

	if err := c.send("ucinewgame"); err != nil {
		return err
	}
	return c.ready(ctx)
}

// BestMove asks the engine to think about fen for moveTime. The returned
// channel receives exactly one Proposal and is then closed.
//
// Cancelling ctx sends "stop"; the engine's reply is still drained so the
// next request starts clean, and the Proposal carries ctx's error. If the
// reply does not arrive within stopGrace the client refuses further requests
// with ErrEngineClosed.
func (c *Client) BestMove(ctx context.Context, fen string, moveTime time.Duration) (<-chan Proposal, error) {
	if err := c.acquire(); err != nil {
		return nil, err
	}

	goCmd := "go movetime " + strconv.FormatInt(moveTime.Milliseconds(), 10)
	for _, cmd := range []string{"position fen " + fen, goCmd} {
		if err := c.send(cmd); err != nil {
			c.release()
			return nil, err
		}
	}

	out := make(chan Proposal, 1)
	go func() {
		prop := c.awaitBestMove(ctx, goCmd)
		c.release()
		out <- prop
		close(out)
	}()
	return out, nil
}

func (c *Client) awaitBestMove(ctx context.Context, goCmd string) Proposal {
	line, err := c.waitFor(ctx, goCmd, "bestmove")
	if err != nil && ctx.Err() != nil {
		if serr := c.send("stop"); serr != nil {
			return Proposal{Err: ctx.Err()}
		}
		drain, cancel := context.WithTimeout(context.Background(), stopGrace)
		defer cancel()
		if _, derr := c.waitFor(drain, "stop", "bestmove"); derr != nil {
			// A late bestmove would answer the next request.
			c.mu.Lock()
			c.broken = true
			c.mu.Unlock()
		}
		return Proposal{Err: ctx.Err()}
	}
	if err != nil {
		return Proposal{Err: err}
	}
	return parseBestMove(line)
}

// stopGrace is how long a cancelled request waits for the engine's reply
// to "stop".
var stopGrace = 2 * time.Second

// parseBestMove parses "bestmove <move> [ponder <move>]".
func parseBestMove(line string) Proposal {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Proposal{Err: &errors.EngineError{Line: line, Err: errors.ErrEngineProtocol}}
	}
	p := Proposal{Move: fields[1]}
	if len(fields) >= 4 && fields[2] == "ponder" {
		p.Ponder = fields[3]
	}
	return p
}

// Close sends "quit" and releases the underlying process, if any. It is safe
// to call more than once.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	err := c.sendLocked("quit")
	c.closed = true
	close(c.done)
	c.mu.Unlock()

	if c.closer != nil {
		if cerr := c.closer(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

func firstField(line string) string {
	if i := strings.IndexByte(line, ' '); i >= 0 {
		return line[:i]
	}
	return line
}
