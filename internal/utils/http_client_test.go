package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient(HTTPClientConfig{})

	if client == nil {
		t.Fatal("expected non-nil *HTTPClient, got nil")
	}

	if client.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil, got nil")
	}
}

func TestNewHTTPClient_Type(t *testing.T) {
	client := NewHTTPClient(HTTPClientConfig{})

	// Ensure the embedded client is actually a *resty.Client
	if _, ok := interface{}(client.Client).(*resty.Client); !ok {
		t.Fatalf("expected embedded client to be *resty.Client, got %T", client.Client)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient(HTTPClientConfig{})
	client2 := NewHTTPClient(HTTPClientConfig{})

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func TestNewHTTPClient_AppliesConfig(t *testing.T) {
	client := NewHTTPClient(HTTPClientConfig{
		BaseURL: "https://api.example.com/v1/",
		Timeout: 3 * time.Second,
	})

	if client.BaseURL != "https://api.example.com/v1" {
		t.Errorf("expected trimmed base url, got %q", client.BaseURL)
	}
	if client.GetClient().Timeout != 3*time.Second {
		t.Errorf("expected 3s timeout, got %s", client.GetClient().Timeout)
	}
}

func TestNewHTTPClient_SendsBasicAuthAndUserAgent(t *testing.T) {
	var gotUser, gotPass, gotUA string
	var gotAuth bool

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, gotPass, gotAuth = r.BasicAuth()
		gotUA = r.UserAgent()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewHTTPClient(HTTPClientConfig{
		BaseURL:   srv.URL,
		Username:  "id",
		Password:  "secret",
		UserAgent: "stormcfg/test",
	})

	if _, err := client.R().Get("/"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !gotAuth || gotUser != "id" || gotPass != "secret" {
		t.Errorf("expected basic auth id/secret, got %q/%q (ok=%v)", gotUser, gotPass, gotAuth)
	}
	if gotUA != "stormcfg/test" {
		t.Errorf("expected user agent stormcfg/test, got %q", gotUA)
	}
}
