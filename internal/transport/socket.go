// Package transport carries bridge messages between the panel and the host
// process.
package transport

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/lumen/internal/bridge"
	"github.com/alexisbeaulieu97/lumen/internal/logger"
	apperrors "github.com/alexisbeaulieu97/lumen/pkg/errors"
)

const (
	dialTimeout  = 3 * time.Second
	writeTimeout = 2 * time.Second
	maxLineBytes = 1 << 20
)

// HostDisconnectedMsg is delivered once when the host closes the channel.
type HostDisconnectedMsg struct {
	Err error
}

// ParseAddress splits a host address of the form unix:///path or
// tcp://host:port into a network and an address for net.Dial.
func ParseAddress(raw string) (network, address string, err error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", "", apperrors.NewValidationError("host", "invalid host address", err)
	}
	switch u.Scheme {
	case "unix":
		path := u.Path
		if path == "" {
			path = u.Opaque
		}
		if path == "" {
			return "", "", apperrors.NewValidationError("host", "unix address needs a socket path", nil)
		}
		return "unix", path, nil
	case "tcp":
		if u.Host == "" || u.Port() == "" {
			return "", "", apperrors.NewValidationError("host", "tcp address needs host:port", nil)
		}
		return "tcp", u.Host, nil
	default:
		return "", "", apperrors.NewValidationError("host", fmt.Sprintf("unsupported scheme %q", u.Scheme), nil)
	}
}

// Conn is a newline-delimited JSON channel to the host. Writes are
// serialized; reads run on one goroutine that feeds the event loop.
type Conn struct {
	addr string
	conn net.Conn
	log  *logger.Logger

	writeMu sync.Mutex
	msgs    chan tea.Msg
	once    sync.Once
}

// Dial connects to the host at raw and starts reading.
func Dial(ctx context.Context, raw string, log *logger.Logger) (*Conn, error) {
	network, address, err := ParseAddress(raw)
	if err != nil {
		return nil, err
	}
	dialer := net.Dialer{Timeout: dialTimeout}
	nc, err := dialer.DialContext(ctx, network, address)
	if err != nil {
		return nil, apperrors.NewTransportError("dial", raw, err)
	}
	return newConn(nc, raw, log), nil
}

func newConn(nc net.Conn, addr string, log *logger.Logger) *Conn {
	if log == nil {
		log = logger.Nop()
	}
	c := &Conn{
		addr: addr,
		conn: nc,
		log:  log.With("transport"),
		msgs: make(chan tea.Msg, 32),
	}
	go c.readLoop()
	return c
}

// Send implements bridge.Sender.
func (c *Conn) Send(ctx context.Context, out bridge.Outbound) error {
	line, err := bridge.Encode(out)
	if err != nil {
		return err
	}
	line = append(line, '\n')

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	deadline := time.Now().Add(writeTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := c.conn.SetWriteDeadline(deadline); err != nil {
		return apperrors.NewTransportError("write", c.addr, err)
	}
	if _, err := c.conn.Write(line); err != nil {
		return apperrors.NewTransportError("write", c.addr, err)
	}
	c.log.Debug("sent host message", "kind", out.Kind.String())
	return nil
}

func (c *Conn) readLoop() {
	defer close(c.msgs)

	scanner := bufio.NewScanner(c.conn)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		in, err := bridge.Decode(line)
		if err != nil {
			c.msgs <- bridge.InboundErrorMsg{Err: err}
			continue
		}
		c.log.Debug("received host message", "kind", in.Kind().String())
		c.msgs <- bridge.InboundMsg{Message: in}
	}

	var err error
	if scanErr := scanner.Err(); scanErr != nil {
		err = apperrors.NewTransportError("read", c.addr, scanErr)
	}
	c.msgs <- HostDisconnectedMsg{Err: err}
}

// Listen returns a command that waits for the next host message. Reissue it
// after every message it delivers.
func (c *Conn) Listen() tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-c.msgs
		if !ok {
			return nil
		}
		return msg
	}
}

// Close shuts the connection down. It is safe to call more than once.
func (c *Conn) Close() error {
	var err error
	c.once.Do(func() {
		err = c.conn.Close()
	})
	return err
}
