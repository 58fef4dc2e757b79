// Package wsapi serves the search over a websocket: each text message on
// /solve is a JSON SolveRequest and gets one JSON SolveResponse back.
package wsapi

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

const (
	readLimit    = 1 << 20
	writeTimeout = 5 * time.Second
)

type Server struct {
	logger *log.Logger
	mux    *http.ServeMux
}

func NewServer(logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{logger: logger, mux: http.NewServeMux()}
	s.mux.HandleFunc("/solve", s.handleSolve)

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		s.logger.Printf("solve: accept failed: %v", err)
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "")
	conn.SetReadLimit(readLimit)

	ctx := r.Context()
	for {
		typ, data, err := conn.Read(ctx)
		if err != nil {
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
			default:
				if ctx.Err() == nil {
					s.logger.Printf("solve: read: %v", err)
				}
			}
			return
		}

		var resp SolveResponse
		var req SolveRequest
		switch {
		case typ != websocket.MessageText:
			resp.Error = "expected a text message"
		default:
			if err := json.Unmarshal(data, &req); err != nil {
				resp.Error = "invalid request: " + err.Error()
				break
			}
			start := time.Now()
			resp = Solve(req)
			s.logger.Printf("solve: %s found=%v cost=%d settled=%d in %s",
				resp.Policy, resp.Found, resp.Cost, resp.Settled, time.Since(start))
		}

		wctx, cancel := context.WithTimeout(ctx, writeTimeout)
		err = wsjson.Write(wctx, conn, resp)
		cancel()
		if err != nil {
			s.logger.Printf("solve: write: %v", err)
			return
		}
	}
}

// ListenAndServe blocks serving /solve on addr until ctx is done.
func ListenAndServe(ctx context.Context, addr string, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}
	srv := &http.Server{Addr: addr, Handler: NewServer(logger)}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Printf("listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
