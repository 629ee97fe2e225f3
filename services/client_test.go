package services

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadersOmitAuthorizationWithoutToken(t *testing.T) {
	c := NewClient("http://backend", NewMemoryCredentials(""), nil)

	h, err := c.Headers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "application/json", h.Get("Content-Type"))
	assert.Empty(t, h.Get("Authorization"))
}

func TestCredentialChangeTakesEffectOnNextCall(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	creds := NewMemoryCredentials("first")
	c := NewClient(srv.URL, creds, nil)
	ctx := context.Background()

	require.NoError(t, c.Get(ctx, "/admin/users", nil))
	require.NoError(t, creds.SetToken(ctx, "second"))
	require.NoError(t, c.Get(ctx, "/admin/users", nil))
	require.NoError(t, creds.ClearToken(ctx))
	require.NoError(t, c.Get(ctx, "/admin/users", nil))

	assert.Equal(t, []string{"Bearer first", "Bearer second", ""}, seen)
}

func TestGetPublicNeverSendsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"MAX_BOTS_PER_GAME":2}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, NewMemoryCredentials("secret"), nil)
	var out map[string]int
	require.NoError(t, c.GetPublic(context.Background(), "/settings", &out))
	assert.Equal(t, 2, out["MAX_BOTS_PER_GAME"])
}

func TestHTTPErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/json" {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"message":"Admin access required"}`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<html>oops</html>`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil, nil)

	err := c.Get(context.Background(), "/json", nil)
	require.Error(t, err)
	assert.Equal(t, "Admin access required", err.Error())
	assert.Equal(t, KindHTTP, KindOf(err))
	assert.Equal(t, http.StatusForbidden, StatusOf(err))

	err = c.Get(context.Background(), "/html", nil)
	require.Error(t, err)
	assert.Equal(t, "HTTP error! status: 500", err.Error())
}

func TestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := NewClient(url, nil, nil).Get(context.Background(), "/admin/games", nil)

	var ne *NetworkError
	require.True(t, errors.As(err, &ne))
	assert.Equal(t, KindNetwork, KindOf(err))
	assert.Equal(t, "/admin/games", ne.Path)
}

func TestKindOfValidation(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validationf("GAME_CUT_PERCENTAGE", "must be between 0 and 100")))
	assert.Equal(t, KindValidation, KindOf(ErrNoCredential))
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
	assert.Equal(t, "validation", KindValidation.String())
}

func TestUploadSendsMultipartWithoutJSONContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		assert.Equal(t, "adcode_1", r.FormValue("adType"))
		files := r.MultipartForm.File["images"]
		if !assert.Len(t, files, 2) {
			return
		}
		f, err := files[1].Open()
		if !assert.NoError(t, err) {
			return
		}
		body, _ := io.ReadAll(f)
		assert.Equal(t, "second", string(body))
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, NewMemoryCredentials("tok"), nil)
	err := c.Upload(context.Background(), "/admin/ads/upload-multiple", map[string]string{"adType": "adcode_1"}, "images", []UploadFile{
		{Name: "a.png", Content: strings.NewReader("first")},
		{Name: "b.png", Content: strings.NewReader("second")},
	}, nil)
	require.NoError(t, err)

	err = c.Upload(context.Background(), "/admin/ads/upload", nil, "image", nil, nil)
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestDecodeIdentity(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       "admin-1",
		"username": "ops",
		"role":     "admin",
		"exp":      4102444800,
	})
	signed, err := token.SignedString([]byte("not-checked"))
	require.NoError(t, err)

	id, err := DecodeIdentity(signed)

	require.NoError(t, err)
	assert.Equal(t, "admin-1", id.Subject)
	assert.Equal(t, "ops", id.Username)
	assert.Equal(t, "admin", id.Role)
	require.NotNil(t, id.ExpiresAt)

	_, err = DecodeIdentity("opaque-token")
	assert.Error(t, err)
}
