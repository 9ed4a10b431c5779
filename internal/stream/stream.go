package stream

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/QuadTriangle/wsintegration/internal/auth"
	"github.com/QuadTriangle/wsintegration/internal/config"
	"github.com/QuadTriangle/wsintegration/internal/hooks"
	"github.com/QuadTriangle/wsintegration/internal/types"
	"github.com/gorilla/websocket"
)

var (
	ErrRequest = errors.New("invalid websocket request")
	ErrConnect = errors.New("error connecting to the websocket endpoint")
	ErrRead    = errors.New("error reading from websocket")
	ErrDecode  = errors.New("invalid message")
)

// Session is an open websocket together with the handshake's HTTP status.
// It is owned by a single reader and never re-established.
type Session struct {
	URL    string
	Status int

	conn     *websocket.Conn
	pipeline *hooks.Pipeline
}

// TargetURL joins base and application into the websocket URL.
// http and https bases are mapped to ws and wss.
func TargetURL(base, application string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRequest, err)
	}
	switch u.Scheme {
	case "ws", "wss":
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("%w: unsupported scheme %q", ErrRequest, u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: missing host in %q", ErrRequest, base)
	}
	application = strings.Trim(application, "/")
	if application == "" {
		return "", fmt.Errorf("%w: missing application", ErrRequest)
	}
	u.Path = path.Join("/", u.Path, application)
	u.RawPath = ""
	return u.String(), nil
}

// Connect performs the authenticated handshake against ep. A nil dialer
// uses websocket.DefaultDialer. The handshake status is reported as is.
func Connect(dialer *websocket.Dialer, ep config.Endpoint, pipeline *hooks.Pipeline) (*Session, error) {
	if dialer == nil {
		dialer = websocket.DefaultDialer
	}

	wsURL, err := TargetURL(ep.BaseURL, ep.Application)
	if err != nil {
		return nil, err
	}
	header, err := auth.Header(ep.Username, ep.APIKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequest, err)
	}

	c, resp, err := dialer.Dial(wsURL, header)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("%w: %w (HTTP %s)", ErrConnect, err, resp.Status)
		}
		return nil, fmt.Errorf("%w: %w", ErrConnect, err)
	}

	s := &Session{
		URL:      wsURL,
		Status:   resp.StatusCode,
		conn:     c,
		pipeline: pipeline,
	}
	s.observeControlFrames()
	pipeline.NotifyConnect(wsURL, s.Status)
	return s, nil
}

// observeControlFrames reports ping, pong and close frames to the pipeline
// while keeping gorilla's default replies.
func (s *Session) observeControlFrames() {
	ping := s.conn.PingHandler()
	s.conn.SetPingHandler(func(appData string) error {
		s.pipeline.NotifyFrame(types.KindPing, len(appData))
		return ping(appData)
	})
	pong := s.conn.PongHandler()
	s.conn.SetPongHandler(func(appData string) error {
		s.pipeline.NotifyFrame(types.KindPong, len(appData))
		return pong(appData)
	})
	closeHandler := s.conn.CloseHandler()
	s.conn.SetCloseHandler(func(code int, text string) error {
		s.pipeline.NotifyFrame(types.KindClose, len(text))
		return closeHandler(code, text)
	})
}

// ReadLoop blocks on the session until a read fails, writing every text
// frame to out on its own line. Other frames produce no output.
// It always returns a non-nil error.
func (s *Session) ReadLoop(out io.Writer) error {
	err := s.readLoop(out)
	s.pipeline.NotifyDisconnect(err)
	return err
}

func (s *Session) readLoop(out io.Writer) error {
	for {
		mt, data, err := s.conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrRead, err)
		}
		kind := types.KindOf(mt)
		s.pipeline.NotifyFrame(kind, len(data))
		if kind != types.KindText {
			continue
		}
		if !utf8.Valid(data) {
			return fmt.Errorf("%w: text frame is not valid UTF-8", ErrDecode)
		}
		// One write per line keeps earlier lines intact if a later read fails.
		line := make([]byte, 0, len(data)+1)
		line = append(append(line, data...), '\n')
		if _, err := out.Write(line); err != nil {
			return fmt.Errorf("error writing message: %w", err)
		}
	}
}

// Close releases the underlying socket.
func (s *Session) Close() error {
	return s.conn.Close()
}

// Run connects, announces the session on out and prints text frames until
// the first error, which it returns.
func Run(out io.Writer, dialer *websocket.Dialer, ep config.Endpoint, pipeline *hooks.Pipeline) error {
	s, err := Connect(dialer, ep, pipeline)
	if err != nil {
		return err
	}
	defer s.Close()

	if _, err := fmt.Fprintln(out, "Connected to websocket"); err != nil {
		return fmt.Errorf("error writing message: %w", err)
	}
	if _, err := fmt.Fprintf(out, "HTTP response code: %d %s\n", s.Status, http.StatusText(s.Status)); err != nil {
		return fmt.Errorf("error writing message: %w", err)
	}

	return s.ReadLoop(out)
}
