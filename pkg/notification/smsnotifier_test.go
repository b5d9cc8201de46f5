package notification

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMSNotifierSend(t *testing.T) {
	t.Run("posts a plain message with bearer auth", func(t *testing.T) {
		var got philSMSRequest
		var auth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		notifier := NewSMSNotifier(PhilSMSConfig{
			APIToken: "token-123",
			SenderID: "WanderTours",
			Endpoint: server.URL,
		})

		err := notifier.Send(BookingUpdateNoticeSms, NotificationData{
			To:   "+639171234567",
			Data: map[string]string{"FullName": "Juan", "Destination": "Palawan", "Status": "Completed"},
		}, NoticeTemplate{Text: "Hi {{.FullName}}, your booking for {{.Destination}} is now {{.Status}}."})
		require.NoError(t, err)

		assert.Equal(t, "Bearer token-123", auth)
		assert.Equal(t, "+639171234567", got.Recipient)
		assert.Equal(t, "WanderTours", got.SenderID)
		assert.Equal(t, "plain", got.Type)
		assert.Equal(t, "Hi Juan, your booking for Palawan is now Completed.", got.Message)
	})

	t.Run("body overrides the template", func(t *testing.T) {
		var got philSMSRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		}))
		defer server.Close()

		notifier := NewSMSNotifier(PhilSMSConfig{Endpoint: server.URL})

		err := notifier.Send(BookingUpdateNoticeSms, NotificationData{
			To:   "+639171234567",
			Body: "Ad-hoc message",
		}, NoticeTemplate{Text: "ignored"})
		require.NoError(t, err)
		assert.Equal(t, "Ad-hoc message", got.Message)
	})

	t.Run("provider rejection", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
		}))
		defer server.Close()

		notifier := NewSMSNotifier(PhilSMSConfig{Endpoint: server.URL})

		err := notifier.Send(BookingUpdateNoticeSms, NotificationData{To: "+639171234567", Body: "x"}, NoticeTemplate{})
		assert.Error(t, err)
	})

	t.Run("missing recipient", func(t *testing.T) {
		notifier := NewSMSNotifier(PhilSMSConfig{})
		err := notifier.Send(BookingUpdateNoticeSms, NotificationData{Body: "x"}, NoticeTemplate{})
		assert.Error(t, err)
	})
}
