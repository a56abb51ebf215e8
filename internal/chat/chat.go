// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

// Package chat maintains the websocket session with the support relay.
// Incoming frames append to the message list in arrival order; outgoing
// frames carry the session token for server-side attribution.
package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vibedeck/vibedeck/internal/config"
	"github.com/vibedeck/vibedeck/internal/logging"
	"github.com/vibedeck/vibedeck/internal/models"
)

// chatPath is appended to the configured websocket base URL.
const chatPath = "/ws/chat"

// State is the connection lifecycle phase.
type State int32

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
	StateBackoff
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateBackoff:
		return "backoff"
	default:
		return "unknown"
	}
}

var (
	// ErrNotConnected is returned by Send while the socket is down.
	ErrNotConnected = errors.New("chat: not connected")

	// ErrEmptyMessage is returned by Send for blank text.
	ErrEmptyMessage = errors.New("chat: empty message")
)

// TokenSource supplies the current session token for outgoing frames.
type TokenSource interface {
	Token() string
}

// Client is the relay connection. A single pump goroutine owns the
// socket: it dials, reads until failure, and either backs off and
// re-dials or parks in StateDisconnected per the reconnect setting.
type Client struct {
	cfg    config.ChatConfig
	tokens TokenSource
	dialer *websocket.Dialer

	state atomic.Int32

	mu       sync.Mutex
	conn     *websocket.Conn
	messages []models.ChatMessage
	onFrame  func(models.ChatMessage)

	closed    chan struct{}
	closeOnce sync.Once
	done      chan struct{}
}

// New returns an unopened client.
func New(cfg config.ChatConfig, tokens TokenSource) *Client {
	return &Client{
		cfg:    cfg,
		tokens: tokens,
		dialer: websocket.DefaultDialer,
		closed: make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// State reports the current lifecycle phase.
func (c *Client) State() State {
	return State(c.state.Load())
}

// OnFrame registers a callback invoked for every appended message,
// incoming and locally sent alike. Set it before Open.
func (c *Client) OnFrame(fn func(models.ChatMessage)) {
	c.mu.Lock()
	c.onFrame = fn
	c.mu.Unlock()
}

// Preload seeds the list with server-side history, oldest first. Call
// before Open so live frames land after the backlog.
func (c *Client) Preload(history []models.ChatMessage) {
	c.mu.Lock()
	c.messages = append(c.messages, history...)
	c.mu.Unlock()
}

// Messages returns a snapshot of the message list.
func (c *Client) Messages() []models.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.ChatMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

// Open starts the pump goroutine. The context cancels dialing and
// backoff waits; Close stops everything.
func (c *Client) Open(ctx context.Context) {
	go c.run(ctx)
}

func (c *Client) run(ctx context.Context) {
	defer close(c.done)
	defer c.state.Store(int32(StateDisconnected))

	delay := c.cfg.ReconnectInitialDelay
	if delay <= 0 {
		delay = time.Second
	}

	for {
		if c.isClosed() || ctx.Err() != nil {
			return
		}
		c.state.Store(int32(StateConnecting))
		url := c.cfg.WSURL + chatPath
		conn, _, err := c.dialer.DialContext(ctx, url, nil)
		if err != nil {
			logging.Warn().Err(err).Str("url", url).Msg("chat dial failed")
			if !c.backoff(ctx, &delay) {
				return
			}
			continue
		}

		c.setConn(conn)
		c.state.Store(int32(StateConnected))
		delay = c.cfg.ReconnectInitialDelay
		if delay <= 0 {
			delay = time.Second
		}
		logging.Info().Str("url", url).Msg("chat connected")

		c.readLoop(conn)
		c.setConn(nil)
		conn.Close()

		if !c.backoff(ctx, &delay) {
			return
		}
	}
}

// backoff waits out the current delay and doubles it up to the cap.
// It reports false when the pump should stop instead of re-dialing.
func (c *Client) backoff(ctx context.Context, delay *time.Duration) bool {
	if !c.cfg.Reconnect || c.isClosed() || ctx.Err() != nil {
		return false
	}
	c.state.Store(int32(StateBackoff))
	logging.Debug().Dur("delay", *delay).Msg("chat reconnect backoff")
	select {
	case <-time.After(*delay):
	case <-c.closed:
		return false
	case <-ctx.Done():
		return false
	}
	next := *delay * 2
	if limit := c.cfg.ReconnectMaxDelay; limit > 0 && next > limit {
		next = limit
	}
	*delay = next
	return true
}

func (c *Client) readLoop(conn *websocket.Conn) {
	for {
		var msg models.ChatMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if !c.isClosed() {
				logging.Warn().Err(err).Msg("chat read failed")
			}
			return
		}
		c.append(msg)
	}
}

func (c *Client) append(msg models.ChatMessage) {
	c.mu.Lock()
	c.messages = append(c.messages, msg)
	fn := c.onFrame
	c.mu.Unlock()
	if fn != nil {
		fn(msg)
	}
}

// Send writes one outgoing frame. Blank text is refused locally, and
// sending is only possible while connected. The sent message is
// appended to the local list immediately.
func (c *Client) Send(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyMessage
	}
	if c.State() != StateConnected {
		return ErrNotConnected
	}

	now := time.Now().Format(time.RFC3339)
	frame := models.ChatOutgoing{Text: text, Timestamp: now, Token: c.tokens.Token()}

	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return ErrNotConnected
	}
	if err := conn.WriteJSON(frame); err != nil {
		return err
	}
	c.append(models.ChatMessage{Text: text, Sender: models.ChatSenderUser, Timestamp: now})
	return nil
}

// Close tears the connection down and stops the pump. Safe to call
// more than once.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.closed)
		c.mu.Lock()
		conn := c.conn
		c.mu.Unlock()
		if conn != nil {
			conn.Close()
		}
	})
}

// Wait blocks until the pump goroutine exits. Mainly for teardown in
// callers that need a clean shutdown order.
func (c *Client) Wait() {
	<-c.done
}

func (c *Client) setConn(conn *websocket.Conn) {
	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()
}

func (c *Client) isClosed() bool {
	select {
	case <-c.closed:
		return true
	default:
		return false
	}
}
