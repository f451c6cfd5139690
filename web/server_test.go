package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/gbrlmtts/terminal-card-shell/game"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	NewServer(nil).RegisterRoutes(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, v any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s: status %d", url, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode %s: %v", url, err)
	}
}

func TestCommands_ListsRegistry(t *testing.T) {
	srv := newTestServer(t)

	var cmds []CommandInfo
	getJSON(t, srv.URL+"/api/commands", &cmds)

	names := make(map[string]bool, len(cmds))
	for _, c := range cmds {
		names[c.Name] = true
	}
	for _, want := range []string{"help", "about", "snake", "exit"} {
		if !names[want] {
			t.Errorf("registry missing %q: %v", want, cmds)
		}
	}
}

func TestRun_GetAndPost(t *testing.T) {
	srv := newTestServer(t)

	var res RunResponse
	getJSON(t, srv.URL+"/api/run?cmd=about", &res)
	if !strings.Contains(res.Output, "Gabriel") || res.Action != "none" {
		t.Fatalf("GET run: %+v", res)
	}

	resp, err := http.Post(srv.URL+"/api/run", "application/json", strings.NewReader(`{"cmd":"snake"}`))
	if err != nil {
		t.Fatalf("POST run: %v", err)
	}
	defer resp.Body.Close()
	var post RunResponse
	if err := json.NewDecoder(resp.Body).Decode(&post); err != nil {
		t.Fatalf("decode POST run: %v", err)
	}
	if post.Action != "snake" {
		t.Fatalf("POST run action=%q want snake", post.Action)
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	srv := newTestServer(t)

	var res RunResponse
	getJSON(t, srv.URL+"/api/run?cmd=doom", &res)
	if !strings.Contains(res.Output, "command not found") {
		t.Fatalf("unknown command output: %q", res.Output)
	}
}

func TestRun_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/api/run?cmd=about", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("status=%d want 405", resp.StatusCode)
	}
}

func TestLinks(t *testing.T) {
	srv := newTestServer(t)

	var links map[string]string
	getJSON(t, srv.URL+"/api/links", &links)
	if links["github"] == "" {
		t.Fatalf("links missing github: %v", links)
	}
}

func TestIndex_ServesTerminalPage(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Fatalf("content-type=%q want html", ct)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "/ws/snake") {
		t.Fatal("page does not reference the snake websocket")
	}

	notFound, err := http.Get(srv.URL + "/nope")
	if err != nil {
		t.Fatal(err)
	}
	defer notFound.Body.Close()
	if notFound.StatusCode != http.StatusNotFound {
		t.Fatalf("status=%d want 404 for unknown path", notFound.StatusCode)
	}
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d want 200", resp.StatusCode)
	}
}

func TestSnakeWS_FramesAndOps(t *testing.T) {
	srv := newTestServer(t)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/snake"

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var first frame
	if err := conn.ReadJSON(&first); err != nil {
		t.Fatalf("read initial frame: %v", err)
	}
	if len(first.Rows) != game.GridHeight || len(first.Rows[0]) != game.GridWidth {
		t.Fatalf("frame rows %dx%d want %dx%d", len(first.Rows), len(first.Rows[0]), game.GridHeight, game.GridWidth)
	}
	joined := strings.Join(first.Rows, "\n")
	if !strings.Contains(joined, "@") || !strings.Contains(joined, "*") {
		t.Fatalf("initial frame missing head/food:\n%s", joined)
	}
	if first.IntervalMs != game.InitialInterval.Milliseconds() {
		t.Fatalf("interval=%dms want %dms", first.IntervalMs, game.InitialInterval.Milliseconds())
	}

	if err := conn.WriteJSON(clientOp{Op: "pause"}); err != nil {
		t.Fatalf("write pause: %v", err)
	}

	// Frames keep streaming; within a few ticks one must report paused.
	paused := false
	for i := 0; i < 20; i++ {
		var f frame
		if err := conn.ReadJSON(&f); err != nil {
			t.Fatalf("read frame: %v", err)
		}
		if f.Paused {
			paused = true
			break
		}
	}
	if !paused {
		t.Fatal("pause op never reflected in frames")
	}
}
