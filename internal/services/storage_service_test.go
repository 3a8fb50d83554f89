package services_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Bhavik9112/Stallion-Air-Con/internal/services"
)

func TestStorageUpload_ReturnsPublicURL(t *testing.T) {
	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	svc := services.NewStorageService(srv.URL, "secret-key", "images")

	url, err := svc.Upload("products/1-fan.png", []byte("png-bytes"), "image/png")
	if err != nil {
		t.Fatal(err)
	}

	if gotPath != "/object/images/products/1-fan.png" {
		t.Fatalf("unexpected upload path %q", gotPath)
	}
	if gotAuth != "Bearer secret-key" {
		t.Fatalf("unexpected auth header %q", gotAuth)
	}
	if want := srv.URL + "/object/public/images/products/1-fan.png"; url != want {
		t.Fatalf("want %q, got %q", want, url)
	}
}

func TestStorageUpload_MissingBucketFallsBackToDataURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Bucket not found"}`))
	}))
	defer srv.Close()

	svc := services.NewStorageService(srv.URL, "key", "missing")

	url, err := svc.Upload("products/1-fan.png", []byte("png-bytes"), "image/png")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(url, "data:image/png;base64,") {
		t.Fatalf("want data URL fallback, got %q", url)
	}
}

func TestStorageUpload_OtherErrorsSurface(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := services.NewStorageService(srv.URL, "key", "images")

	if _, err := svc.Upload("products/1-fan.png", []byte("png-bytes"), "image/png"); err == nil {
		t.Fatal("want error for non-bucket failure")
	}
}

func TestStorageUpload_UnconfiguredEmbeds(t *testing.T) {
	svc := services.NewStorageService("", "", "images")

	url, err := svc.Upload("products/1-fan.png", []byte("png-bytes"), "image/png")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(url, "data:image/png;base64,") {
		t.Fatalf("want data URL, got %q", url)
	}
}
