package browser

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHTTPNavigatorNavigate(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(`<html><body><h1 class="headliners">Night Owls</h1></body></html>`))
	}))
	defer srv.Close()

	nav := NewHTTPNavigator()
	page, err := nav.Navigate(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Navigate: %v", err)
	}

	if gotUA != userAgent {
		t.Errorf("User-Agent = %q, want %q", gotUA, userAgent)
	}
	if got := page.Doc.Find("h1.headliners").Text(); got != "Night Owls" {
		t.Errorf("parsed document text = %q", got)
	}
	if page.InnerText != "Night Owls" {
		t.Errorf("InnerText = %q", page.InnerText)
	}
}

func TestHTTPNavigatorStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	nav := NewHTTPNavigator()
	if _, err := nav.Navigate(context.Background(), srv.URL); err == nil {
		t.Fatal("Navigate should fail on a non-200 response")
	} else if !strings.Contains(err.Error(), "404") {
		t.Errorf("err = %v, want status code in message", err)
	}
}
