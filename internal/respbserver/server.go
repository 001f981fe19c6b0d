// Package respbserver hosts a small demonstration TCP frontend for the RESPB
// protocol, built the way the example pack's own netpoll servers are built:
// an event loop keyed by connection, a per-connection accumulation buffer for
// partial frames, and pooled goroutines for the actual request handling.
//
// It is intentionally not a full data-store backend — it exists to give the
// respb package's ParseOne/WriteCommand pair a live consumer, exercising the
// streaming-safety contract (ParseOne never advances offset on ErrIncomplete)
// against a real, byte-at-a-time-capable transport.
package respbserver

import (
	"context"
	"fmt"
	"sync"

	"github.com/bytedance/gopkg/util/gopool"
	"github.com/cloudwego/netpoll"
	"github.com/google/uuid"
	"go.uber.org/zap"

	respb "github.com/maxpert/respb-protocol"
)

// Server wraps a netpoll event loop that speaks RESPB over raw TCP.
type Server struct {
	log   *zap.Logger
	store *store

	mu    sync.RWMutex
	conns map[netpoll.Connection]*connState
}

// connState tracks the leftover, not-yet-parsed bytes for one connection and
// the identifier used to correlate its log lines.
type connState struct {
	id  string
	buf []byte
}

// New builds a Server. Logging uses log; nil is not accepted, callers should
// pass zap.NewNop() in tests that don't care about log output.
func New(log *zap.Logger) *Server {
	return &Server{
		log:   log,
		store: newStore(),
		conns: make(map[netpoll.Connection]*connState),
	}
}

// Serve binds addr and runs the event loop until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, addr string, reuseport bool) error {
	listener, err := netpoll.CreateListener("tcp", addr)
	if err != nil {
		return fmt.Errorf("respbserver: listen %s: %w", addr, err)
	}

	eventLoop, err := netpoll.NewEventLoop(
		s.onRequest,
		netpoll.WithOnConnect(s.onConnect),
		netpoll.WithOnDisconnect(s.onDisconnect),
	)
	if err != nil {
		return fmt.Errorf("respbserver: new event loop: %w", err)
	}

	go func() {
		<-ctx.Done()
		_ = eventLoop.Shutdown(context.Background())
	}()

	s.log.Info("respbserver listening", zap.String("addr", addr))
	return eventLoop.Serve(listener)
}

func (s *Server) onConnect(ctx context.Context, conn netpoll.Connection) context.Context {
	id := uuid.NewString()
	s.mu.Lock()
	s.conns[conn] = &connState{id: id}
	s.mu.Unlock()
	s.log.Info("connection accepted", zap.String("conn_id", id), zap.String("remote", conn.RemoteAddr().String()))
	return ctx
}

func (s *Server) onDisconnect(ctx context.Context, conn netpoll.Connection) {
	s.mu.Lock()
	st := s.conns[conn]
	delete(s.conns, conn)
	s.mu.Unlock()
	if st != nil {
		s.log.Info("connection closed", zap.String("conn_id", st.id))
	}
}

// onRequest is invoked by netpoll whenever new bytes are available. It hands
// the actual frame decoding and dispatch off to the shared gopool so a slow
// handler on one connection cannot stall the event loop.
func (s *Server) onRequest(ctx context.Context, conn netpoll.Connection) error {
	reader := conn.Reader()
	n := reader.Len()
	if n == 0 {
		return nil
	}
	chunk, err := reader.Next(n)
	if err != nil {
		return err
	}

	s.mu.RLock()
	st := s.conns[conn]
	s.mu.RUnlock()
	if st == nil {
		return fmt.Errorf("respbserver: no state for connection")
	}

	done := make(chan error, 1)
	gopool.Go(func() {
		done <- s.handleChunk(conn, st, chunk)
	})
	return <-done
}

// handleChunk appends chunk to the connection's carry-over buffer and drains
// as many complete frames as it can, replying to each and shrinking the
// buffer down to the tail of any incomplete frame. This is the loop shape
// ParseOne's contract (never advance offset on ErrIncomplete) is designed for.
func (s *Server) handleChunk(conn netpoll.Connection, st *connState, chunk []byte) error {
	st.buf = append(st.buf, chunk...)

	offset := 0
	for {
		cmd, next, err := respb.ParseOne(st.buf, offset)
		if err != nil {
			if respb.IsIncomplete(err) {
				break
			}
			s.log.Warn("frame parse failed", zap.String("conn_id", st.id), zap.Error(err))
			st.buf = st.buf[offset:]
			return nil
		}
		offset = next

		reply, err := s.dispatch(cmd)
		if err != nil {
			s.log.Warn("dispatch failed", zap.String("conn_id", st.id), zap.Error(err))
			continue
		}
		if reply == nil {
			continue
		}
		out := make([]byte, respbserverEncodedLen(reply))
		written, err := respb.WriteCommand(out, reply)
		if err != nil {
			s.log.Error("encode reply failed", zap.String("conn_id", st.id), zap.Error(err))
			continue
		}
		if _, err := conn.Writer().WriteBinary(out[:written]); err != nil {
			return err
		}
		if err := conn.Writer().Flush(); err != nil {
			return err
		}
	}

	remaining := len(st.buf) - offset
	tail := make([]byte, remaining)
	copy(tail, st.buf[offset:])
	st.buf = tail
	return nil
}

// respbserverEncodedLen sizes an output buffer generously for cmd: header plus
// every argument length-prefixed twice over, which safely bounds every
// grammar the demo store speaks (GET/SET/PING).
func respbserverEncodedLen(cmd *respb.ParsedCommand) int {
	size := 16
	for _, a := range cmd.Args {
		size += len(a) + 8
	}
	for _, o := range cmd.Opaque {
		size += len(o) + 8
	}
	return size
}
