// Package shell speaks the newline-delimited JSON message protocol between an
// orchestration shell and the application.
package shell

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"

	"go.trai.ch/varcss/internal/core/domain"
	"go.trai.ch/varcss/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/semaphore"
)

const maxMessageSize = 16 << 20

// Handler executes the requests a shell can send.
type Handler interface {
	Export(ctx context.Context, req domain.ExportRequest) (domain.ExportResponse, error)
	Import(ctx context.Context, req domain.ImportRequest) (domain.ImportResponse, error)
	Snapshot(ctx context.Context) (*domain.Snapshot, error)
}

// Server runs shell sessions. Requests from every session share one slot, so
// only one touches the host at a time.
type Server struct {
	logger ports.Logger
	slot   *semaphore.Weighted
}

// NewServer creates a Server.
func NewServer(logger ports.Logger) *Server {
	return &Server{
		logger: logger,
		slot:   semaphore.NewWeighted(1),
	}
}

type session struct {
	server  *Server
	handler Handler
	mu      sync.Mutex
	enc     *json.Encoder
}

// Serve reads requests from in and writes responses to out until in is
// exhausted or ctx is done. A snapshot is pushed first, after every import,
// and whenever refresh fires.
func (s *Server) Serve(ctx context.Context, h Handler, in io.Reader, out io.Writer, refresh <-chan struct{}) error {
	sess := &session{server: s, handler: h, enc: json.NewEncoder(out)}

	lines := make(chan []byte)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 64*1024), maxMessageSize)
		for scanner.Scan() {
			line := append([]byte(nil), scanner.Bytes()...)
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	if err := sess.pushSnapshot(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-refresh:
			if err := sess.pushSnapshot(ctx); err != nil {
				return err
			}
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					if err != nil {
						return zerr.Wrap(err, domain.ErrInputReadFailed.Error())
					}
				default:
				}
				return nil
			}
			if len(line) == 0 {
				continue
			}
			if err := sess.dispatch(ctx, line); err != nil {
				return err
			}
		}
	}
}

// dispatch handles one inbound line. Only failures to write to the shell are
// returned; request failures are reported as error messages.
func (sess *session) dispatch(ctx context.Context, line []byte) error {
	var hdr header
	if err := json.Unmarshal(line, &hdr); err != nil {
		return sess.fail("", zerr.Wrap(err, domain.ErrMalformedMessage.Error()))
	}

	switch hdr.Type {
	case TypeExportCSS:
		var msg exportMessage
		if err := json.Unmarshal(line, &msg); err != nil {
			return sess.fail(hdr.Type, zerr.Wrap(err, domain.ErrMalformedMessage.Error()))
		}
		var resp domain.ExportResponse
		err := sess.exclusive(ctx, func() (err error) {
			resp, err = sess.handler.Export(ctx, msg.ExportRequest)
			return err
		})
		if err != nil {
			return sess.fail(hdr.Type, err)
		}
		return sess.send(cssOutputMessage{Type: TypeCSSOutput, ExportResponse: resp})

	case TypeImportCSS:
		var msg importMessage
		if err := json.Unmarshal(line, &msg); err != nil {
			return sess.fail(hdr.Type, zerr.Wrap(err, domain.ErrMalformedMessage.Error()))
		}
		var resp domain.ImportResponse
		err := sess.exclusive(ctx, func() (err error) {
			resp, err = sess.handler.Import(ctx, msg.ImportRequest)
			return err
		})
		if err != nil {
			sess.server.logger.Error(err)
		}
		if resp.Status == "" {
			resp = domain.ImportResponse{Status: domain.ImportError, Message: errorText(err)}
		}
		if err := sess.send(importStatusMessage{Type: TypeImportStatus, ImportResponse: resp}); err != nil {
			return err
		}
		return sess.pushSnapshot(ctx)

	case TypeRefresh:
		return sess.pushSnapshot(ctx)

	default:
		return sess.fail(hdr.Type, zerr.With(domain.ErrUnknownMessage, "type", hdr.Type))
	}
}

func (sess *session) pushSnapshot(ctx context.Context) error {
	var snap *domain.Snapshot
	err := sess.exclusive(ctx, func() (err error) {
		snap, err = sess.handler.Snapshot(ctx)
		return err
	})
	if err != nil {
		return sess.fail(TypeRefresh, err)
	}
	return sess.send(snapshotMessage{Type: TypeSnapshot, Snapshot: snap})
}

func (sess *session) exclusive(ctx context.Context, fn func() error) error {
	if err := sess.server.slot.Acquire(ctx, 1); err != nil {
		return err
	}
	defer sess.server.slot.Release(1)
	return fn()
}

func (sess *session) fail(request string, err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	sess.server.logger.Error(err)
	return sess.send(errorMessage{Type: TypeError, Request: request, Message: errorText(err)})
}

func (sess *session) send(v any) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err := sess.enc.Encode(v); err != nil {
		return zerr.Wrap(err, domain.ErrOutputWriteFailed.Error())
	}
	return nil
}

// errorText is the message shown to the shell for err: the outermost
// message without metadata.
func errorText(err error) string {
	if err == nil {
		return domain.ErrImportFailed.Error()
	}
	var m interface{ Message() string }
	if errors.As(err, &m) {
		return m.Message()
	}
	return err.Error()
}
