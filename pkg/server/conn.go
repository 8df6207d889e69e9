package server

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/gofiber/websocket/v2"

	"github.com/sameersinha-collab/echoproj/internal/log"
	"github.com/sameersinha-collab/echoproj/pkg/protocol"
	"github.com/sameersinha-collab/echoproj/pkg/session"
)

var errSinkClosed = errors.New("server: connection closed")

type outFrame struct {
	binary bool
	data   []byte
}

// wsSink serializes all writes to one WebSocket through a single pump
// goroutine. The session's relays and the control loop can all send
// without coordinating on the socket.
type wsSink struct {
	conn *websocket.Conn
	out  chan outFrame
	done chan struct{}
	once sync.Once
}

func newSink(conn *websocket.Conn) *wsSink {
	s := &wsSink{
		conn: conn,
		out:  make(chan outFrame, 128),
		done: make(chan struct{}),
	}
	go s.pump()
	return s
}

func (s *wsSink) pump() {
	for {
		select {
		case <-s.done:
			return
		case f := <-s.out:
			mt := websocket.TextMessage
			if f.binary {
				mt = websocket.BinaryMessage
			}
			if err := s.conn.WriteMessage(mt, f.data); err != nil {
				s.close()
				return
			}
		}
	}
}

func (s *wsSink) close() {
	s.once.Do(func() { close(s.done) })
}

func (s *wsSink) send(f outFrame) error {
	select {
	case s.out <- f:
		return nil
	case <-s.done:
		return errSinkClosed
	}
}

func (s *wsSink) SendAudio(chunk []byte) error {
	return s.send(outFrame{binary: true, data: chunk})
}

func (s *wsSink) SendJSON(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.send(outFrame{data: data})
}

// paramsFromQuery builds the session parameters from the connection URL.
// Absent values keep the defaults.
func paramsFromQuery(c *websocket.Conn) session.Params {
	p := session.DefaultParams()
	if v := c.Query("agent"); v != "" {
		p.Agent = v
	}
	if v := c.Query("voice_profile"); v != "" {
		p.VoiceProfile = v
	}
	if v := c.Query("child_name"); v != "" {
		p.ChildName = v
	}
	if v := c.Query("story_id"); v != "" {
		p.StoryID = v
	}
	if v := c.Query("chapter_id"); v != "" {
		p.ChapterID = v
	}
	if v := c.Query("trigger"); v != "" {
		p.Trigger = v
	}
	if v := c.Query("is_last_chapter"); v == "true" || v == "1" {
		p.IsLastChapter = true
	}
	return p
}

// handleSession owns one client connection for its whole life: it starts
// the session control loop, then reads frames until the transport drops.
func (s *Server) handleSession(c *websocket.Conn) {
	s.active.Add(1)
	defer s.active.Add(-1)

	params := paramsFromQuery(c)

	initial := session.ModeIdle
	if v := c.Query("mode"); v != "" {
		mode, err := session.ParseMode(v)
		if err != nil {
			log.Warn("bad connect mode, starting idle", "mode", v)
		} else {
			initial = mode
		}
	}

	sink := newSink(c)
	defer sink.close()

	mgr := session.NewManager(s.deps, sink, params, initial)
	logger := log.With("session", mgr.ID(), "device", c.Query("device_id"))
	logger.Info("client connected", "mode", initial, "remote", c.RemoteAddr().String())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runDone := make(chan struct{})
	go func() {
		defer close(runDone)
		mgr.Run(ctx)
	}()

	for {
		mt, data, err := c.ReadMessage()
		if err != nil {
			break
		}
		switch mt {
		case websocket.BinaryMessage:
			mgr.PushAudio(data)
		case websocket.TextMessage:
			cmd, err := protocol.ParseCommand(data)
			if err != nil {
				// Malformed control frames are dropped, never fatal.
				logger.Warn("bad command frame", "error", err)
				continue
			}
			mgr.HandleControl(cmd)
		}
	}

	mgr.Exit()
	cancel()
	<-runDone
	logger.Info("client disconnected")
}
