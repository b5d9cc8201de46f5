package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("empty directory", func(t *testing.T) {
		count, err := CountUsers(ctx, &FakeDirectory{})
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("walks every page", func(t *testing.T) {
		users := make([]User, 2500)
		for i := range users {
			users[i] = User{UID: fmt.Sprintf("uid-%d", i)}
		}

		count, err := CountUsers(ctx, &FakeDirectory{Users: users})
		require.NoError(t, err)
		assert.Equal(t, 2500, count)
	})

	t.Run("propagates directory errors", func(t *testing.T) {
		_, err := CountUsers(ctx, &FakeDirectory{Err: errors.New("provider down")})
		assert.Error(t, err)
	})
}

func TestRESTDirectoryListUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("pages through the user list", func(t *testing.T) {
		var auth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth = r.Header.Get("Authorization")
			switch r.URL.Query().Get("page_token") {
			case "":
				json.NewEncoder(w).Encode(map[string]any{
					"users": []map[string]string{
						{"uid": "u1", "email": "one@example.com", "last_sign_in": "2026-08-01T10:00:00Z"},
						{"uid": "u2", "email": "two@example.com"},
					},
					"next_page_token": "page2",
				})
			case "page2":
				json.NewEncoder(w).Encode(map[string]any{
					"users": []map[string]string{
						{"uid": "u3", "email": "three@example.com"},
					},
				})
			default:
				w.WriteHeader(http.StatusBadRequest)
			}
		}))
		defer server.Close()

		dir := NewRESTDirectory(RESTDirectoryConfig{BaseURL: server.URL, APIToken: "token-123"})

		page, err := dir.ListUsers(ctx, 1000, "")
		require.NoError(t, err)
		assert.Equal(t, "Bearer token-123", auth)
		require.Len(t, page.Users, 2)
		assert.Equal(t, "u1", page.Users[0].UID)
		require.NotNil(t, page.Users[0].LastSignIn)
		assert.Nil(t, page.Users[1].LastSignIn)
		assert.Equal(t, "page2", page.NextPageToken)

		count, err := CountUsers(ctx, dir)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		dir := NewRESTDirectory(RESTDirectoryConfig{BaseURL: server.URL})
		_, err := dir.ListUsers(ctx, 1000, "")
		assert.Error(t, err)
	})
}
