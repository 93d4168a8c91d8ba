package ui

import (
	"net/url"
	"testing"
)

func TestMailtoURL(t *testing.T) {
	got := MailtoURL("a@b.dev", "Hello World", "Hi there")
	want := "mailto:a@b.dev?body=Hi%20there&subject=Hello%20World"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestMailtoURLNoQuery(t *testing.T) {
	got := MailtoURL("a@b.dev", "", "")
	if got != "mailto:a@b.dev" {
		t.Errorf("expected bare mailto, got %q", got)
	}
}

func TestMailtoURLParses(t *testing.T) {
	raw := MailtoURL("a@b.dev", "Subject with spaces", "")
	parsed, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("generated mailto does not parse: %v", err)
	}
	if parsed.Scheme != "mailto" {
		t.Errorf("expected mailto scheme, got %q", parsed.Scheme)
	}
	if parsed.Opaque != "a@b.dev" {
		t.Errorf("expected opaque address, got %q", parsed.Opaque)
	}
	if got := parsed.Query().Get("subject"); got != "Subject with spaces" {
		t.Errorf("expected subject round-trip, got %q", got)
	}
}
