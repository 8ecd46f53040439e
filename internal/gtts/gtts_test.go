package gtts

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteToRequestParams(t *testing.T) {
	var query map[string][]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte("mp3-bytes"))
	}))
	defer ts.Close()

	c := NewClient(WithBaseURL(ts.URL))
	var buf bytes.Buffer
	err := c.WriteTo(context.Background(), Speech{Text: "こんにちは", Lang: "ja", Slow: true}, &buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	if got := query["q"]; len(got) != 1 || got[0] != "こんにちは" {
		t.Errorf("q = %v", got)
	}
	if got := query["tl"]; len(got) != 1 || got[0] != "ja" {
		t.Errorf("tl = %v", got)
	}
	if got := query["ttsspeed"]; len(got) != 1 || got[0] != speedSlow {
		t.Errorf("ttsspeed = %v, want %s", got, speedSlow)
	}
	// textlen counts runes, not bytes.
	if got := query["textlen"]; len(got) != 1 || got[0] != "5" {
		t.Errorf("textlen = %v, want 5", got)
	}
	if buf.String() != "mp3-bytes" {
		t.Errorf("audio = %q", buf.String())
	}
}

func TestWriteToNormalSpeed(t *testing.T) {
	var speed string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		speed = r.URL.Query().Get("ttsspeed")
	}))
	defer ts.Close()

	c := NewClient(WithBaseURL(ts.URL))
	var buf bytes.Buffer
	if err := c.WriteTo(context.Background(), Speech{Text: "hi", Lang: "en-us"}, &buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if speed != speedNormal {
		t.Errorf("ttsspeed = %q, want %q", speed, speedNormal)
	}
}

func TestWriteToServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	c := NewClient(WithBaseURL(ts.URL))
	var buf bytes.Buffer
	if err := c.WriteTo(context.Background(), Speech{Text: "hi", Lang: "en-us"}, &buf); err == nil {
		t.Fatal("expected error on 503")
	}
}

func TestLangCheckRejectsUnknown(t *testing.T) {
	c := NewClient(WithBaseURL("http://unreachable.invalid"))
	var buf bytes.Buffer
	err := c.WriteTo(context.Background(), Speech{Text: "hi", Lang: "xx", LangCheck: true}, &buf)
	if err == nil {
		t.Fatal("expected unsupported language error")
	}
}

func TestLangCheckAcceptsKnown(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer ts.Close()

	c := NewClient(WithBaseURL(ts.URL))
	var buf bytes.Buffer
	if err := c.WriteTo(context.Background(), Speech{Text: "hi", Lang: "en-us", LangCheck: true}, &buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
}

func TestSaveWritesFile(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("audio"))
	}))
	defer ts.Close()

	path := filepath.Join(t.TempDir(), "out.mp3")
	c := NewClient(WithBaseURL(ts.URL))
	if err := c.Save(context.Background(), Speech{Text: "hi", Lang: "en-us"}, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(data) != "audio" {
		t.Errorf("file contents = %q", string(data))
	}
}

func TestSaveRemovesFileOnFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusTooManyRequests)
	}))
	defer ts.Close()

	path := filepath.Join(t.TempDir(), "out.mp3")
	c := NewClient(WithBaseURL(ts.URL))
	if err := c.Save(context.Background(), Speech{Text: "hi", Lang: "en-us"}, path); err == nil {
		t.Fatal("expected error")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("partial file left behind: %v", err)
	}
}

func TestLangsIsACopy(t *testing.T) {
	m := Langs()
	if m["ja"] != "Japanese" {
		t.Errorf("Langs()[ja] = %q", m["ja"])
	}
	m["ja"] = "mutated"
	if langs["ja"] != "Japanese" {
		t.Error("Langs() exposed internal table")
	}
}
