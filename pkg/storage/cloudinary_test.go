package storage

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSign_SortsParamsAndSkipsEmpty(t *testing.T) {
	a := Sign(map[string]string{"timestamp": "1315060510", "folder": "logos", "public_id": ""}, "secret")
	b := Sign(map[string]string{"folder": "logos", "timestamp": "1315060510"}, "secret")
	assert.Equal(t, a, b)
	assert.Len(t, a, 40)
	assert.NotEqual(t, a, Sign(map[string]string{"folder": "logos", "timestamp": "1315060510"}, "other"))
}

func TestCloudinary_Upload(t *testing.T) {
	var gotFolder, gotSignature, gotFile string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/demo/image/upload", r.URL.Path)
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		gotFolder = r.FormValue("folder")
		gotSignature = r.FormValue("signature")
		if _, header, err := r.FormFile("file"); assert.NoError(t, err) {
			gotFile = header.Filename
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"secure_url": "https://res.cloudinary.com/demo/image/upload/v1/compare-audius/logos/spotify.png",
			"public_id":  "compare-audius/logos/spotify",
			"width":      200,
			"height":     200,
			"format":     "png",
		})
	}))
	defer srv.Close()

	c := NewCloudinary(CloudinaryConfig{
		CloudName: "demo",
		APIKey:    "key",
		APISecret: "secret",
		Folder:    "compare-audius/logos",
		APIBase:   srv.URL,
	})
	c.now = func() time.Time { return time.Unix(1700000000, 0) }

	img, err := c.Upload(context.Background(), "spotify.png", []byte("png-bytes"))
	require.NoError(t, err)

	assert.Equal(t, "compare-audius/logos", gotFolder)
	assert.Equal(t, "spotify.png", gotFile)
	assert.Equal(t, Sign(map[string]string{
		"folder":         "compare-audius/logos",
		"timestamp":      "1700000000",
		"transformation": LogoTransformation,
	}, "secret"), gotSignature)
	assert.Equal(t, "compare-audius/logos/spotify", img.PublicId)
	assert.Equal(t, 200, img.Width)
	assert.Equal(t, "png", img.Format)
}

func TestCloudinary_UploadRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid Signature"}}`))
	}))
	defer srv.Close()

	c := NewCloudinary(CloudinaryConfig{CloudName: "demo", APIKey: "key", APISecret: "secret", APIBase: srv.URL})
	_, err := c.Upload(context.Background(), "x.png", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid Signature")
}

func TestCloudinary_NotConfigured(t *testing.T) {
	_, err := NewCloudinary(CloudinaryConfig{}).Upload(context.Background(), "x.png", nil)
	assert.Error(t, err)
}
