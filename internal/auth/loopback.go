package auth

import (
	"context"
	"fmt"
	"html"
	"net"
	"net/http"
	"time"
)

// loopbackServer receives the OAuth2 redirect on a locally bound listener
// during the interactive consent flow.
type loopbackServer struct {
	port          int
	expectedState string
	codeChan      chan string
	errChan       chan error
	server        *http.Server
	listener      net.Listener
}

func newLoopbackServer(port int, expectedState string) *loopbackServer {
	return &loopbackServer{
		port:          port,
		expectedState: expectedState,
		codeChan:      make(chan string, 1),
		errChan:       make(chan error, 1),
	}
}

// Start binds the listener on 127.0.0.1 and begins serving the callback
// endpoint. If port is 0 an ephemeral port is chosen.
func (s *loopbackServer) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/callback", s.handleCallback)

	s.server = &http.Server{
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	addr := fmt.Sprintf("127.0.0.1:%d", s.port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.listener = listener

	if tcpAddr, ok := listener.Addr().(*net.TCPAddr); ok {
		s.port = tcpAddr.Port
	}

	go func() {
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			select {
			case s.errChan <- err:
			default:
			}
		}
	}()

	return nil
}

func (s *loopbackServer) handleCallback(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")

	if errParam := r.URL.Query().Get("error"); errParam != "" {
		errDesc := r.URL.Query().Get("error_description")
		s.fail(fmt.Errorf("authorization server returned %s: %s", errParam, errDesc))
		fmt.Fprint(w, resultHTML("Authorization failed", html.EscapeString(errDesc)))
		return
	}

	if state := r.URL.Query().Get("state"); state != s.expectedState {
		s.fail(fmt.Errorf("state parameter mismatch"))
		fmt.Fprint(w, resultHTML("Authorization failed", "Invalid state parameter."))
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		s.fail(fmt.Errorf("no authorization code received"))
		fmt.Fprint(w, resultHTML("Authorization failed", "No authorization code received."))
		return
	}

	select {
	case s.codeChan <- code:
	default:
	}

	fmt.Fprint(w, resultHTML("Authorization successful", "You can close this window and return to the application."))
}

func (s *loopbackServer) fail(err error) {
	select {
	case s.errChan <- err:
	default:
	}
}

// WaitForCode blocks until the authorization code arrives, the flow fails,
// or ctx is cancelled.
func (s *loopbackServer) WaitForCode(ctx context.Context) (string, error) {
	select {
	case code := <-s.codeChan:
		return code, nil
	case err := <-s.errChan:
		return "", err
	case <-ctx.Done():
		return "", fmt.Errorf("waiting for authorization callback: %w", ctx.Err())
	}
}

// Stop shuts down the callback server.
func (s *loopbackServer) Stop() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Port returns the port the listener is bound to.
func (s *loopbackServer) Port() int {
	return s.port
}

// RedirectURI returns the redirect URI registered with the authorization
// request. It names 127.0.0.1 rather than localhost so the browser reaches
// the listener even where localhost resolves to ::1 first.
func (s *loopbackServer) RedirectURI() string {
	return fmt.Sprintf("http://127.0.0.1:%d/callback", s.port)
}

func resultHTML(title, message string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><title>gsuite - OAuth Callback</title></head>
<body style="font-family: sans-serif; text-align: center; margin-top: 15%%">
<h1>%s</h1>
<p>%s</p>
</body>
</html>`, title, message)
}
