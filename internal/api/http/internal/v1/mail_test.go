package v1

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/vibe-gaming/profile-service/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSendMail(t *testing.T) {
	tests := []struct {
		name    string
		mode    service.DispatchMode
		message string
	}{
		{"sent", service.DispatchSent, "email has been sent"},
		{"queued", service.DispatchQueued, "email has been queued"},
		{"disabled", service.DispatchSkipped, "email sending is disabled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifications := new(notificationsMock)
			notifications.On("SendInvitation", mock.Anything, []string{"a@example.com", "b@example.com"}).
				Return(tt.mode, nil).Once()

			w := doRequest(newTestRouter(nil, notifications), http.MethodPost, "/send_mail", `{"email":["a@example.com","b@example.com"]}`)

			require.Equal(t, http.StatusOK, w.Code)
			var out sendMailResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
			assert.Equal(t, tt.message, out.Message)
			notifications.AssertExpectations(t)
		})
	}
}

func TestSendMail_InvalidRecipients(t *testing.T) {
	bodies := []string{`{}`, `{"email":[]}`, `{"email":["not-an-email"]}`}

	for _, body := range bodies {
		notifications := new(notificationsMock)

		w := doRequest(newTestRouter(nil, notifications), http.MethodPost, "/send_mail", body)

		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		notifications.AssertNotCalled(t, "SendInvitation", mock.Anything, mock.Anything)
	}
}

func TestSendMail_DispatchFailure(t *testing.T) {
	notifications := new(notificationsMock)
	notifications.On("SendInvitation", mock.Anything, mock.Anything).
		Return(service.DispatchMode(""), errors.New("smtp down")).Once()

	w := doRequest(newTestRouter(nil, notifications), http.MethodPost, "/send_mail", `{"email":["a@example.com"]}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, ErrorCode(SendMailFailedCode), decodeError(t, w).ErrorCode)
}
