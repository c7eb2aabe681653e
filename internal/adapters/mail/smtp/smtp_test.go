package smtp

import (
	"context"
	"net/smtp"
	"testing"
	"time"

	"pawfam-api/internal/ports/mail"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSender_BuildsMessage(t *testing.T) {
	s, err := New(Config{Host: "smtp.example.com", User: "bot@pawfam.app", Password: "pw"})
	require.NoError(t, err)
	s.now = func() time.Time { return time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC) }

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	s.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		assert.NotNil(t, a)
		return nil
	}

	err = s.Send(context.Background(), mail.Message{To: "ana@mail.com", Subject: "Reset", HTML: "<b>AB12CD</b>"})
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "bot@pawfam.app", gotFrom)
	assert.Equal(t, []string{"ana@mail.com"}, gotTo)
	assert.Contains(t, string(gotMsg), "Subject: Reset\r\n")
	assert.Contains(t, string(gotMsg), "text/html")
	assert.Contains(t, string(gotMsg), "<b>AB12CD</b>")
}

func TestNew_RequiresHost(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}
