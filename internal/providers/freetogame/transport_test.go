package freetogame

import (
	"testing"
	"time"
)

func TestIsLoopbackHost(t *testing.T) {
	loopback := []string{"localhost", "localhost:3000", "127.0.0.1", "127.0.0.1:5502", "[::1]:8080", "::1"}
	for _, host := range loopback {
		if !IsLoopbackHost(host) {
			t.Fatalf("expected %q to be loopback", host)
		}
	}

	public := []string{"gamerstore.example", "gamerstore.example:443", "10.0.0.5", ""}
	for _, host := range public {
		if IsLoopbackHost(host) {
			t.Fatalf("expected %q to not be loopback", host)
		}
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	if got := normalizeBaseURL("", defaultBaseURL); got != "https://www.freetogame.com" {
		t.Fatalf("unexpected default %q", got)
	}
	if got := normalizeBaseURL("https://example.test/", defaultBaseURL); got != "https://example.test" {
		t.Fatalf("expected trailing slash trimmed, got %q", got)
	}
}

func TestResolveTimeout(t *testing.T) {
	if got := resolveTimeout(0); got != defaultTimeout {
		t.Fatalf("expected default timeout, got %v", got)
	}
	if got := resolveTimeout(3 * time.Second); got != 3*time.Second {
		t.Fatalf("expected override, got %v", got)
	}
}

func TestResolveHTTPClientDefault(t *testing.T) {
	if resolveHTTPClient(nil) == nil {
		t.Fatal("expected a default client")
	}
}
