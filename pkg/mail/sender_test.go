package mail

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/mail.v2"
)

type fakeDialer struct {
	sent []*mail.Message
	err  error
}

func (d *fakeDialer) DialAndSend(m ...*mail.Message) error {
	if d.err != nil {
		return d.err
	}
	d.sent = append(d.sent, m...)
	return nil
}

func TestSender_Send(t *testing.T) {
	dialErr := errors.New("connection refused")

	testCases := []struct {
		name         string
		msg          Message
		dialErr      error
		expectErr    error
		bodyContains []string
	}{
		{
			name: "Success with html, text and attachment",
			msg: Message{
				To:       []string{"admin@example.com"},
				Subject:  "Daily services report",
				HTMLBody: "<h1>3 services</h1>",
				TextBody: "3 services",
				Attachments: []Attachment{
					{Name: "services.xlsx", Content: strings.NewReader("xlsx")},
					{Name: "", Content: strings.NewReader("skipped")},
				},
			},
			bodyContains: []string{
				"Content-Type: text/plain",
				"Content-Type: text/html",
				"<h1>3 services</h1>",
				`Content-Disposition: attachment; filename="services.xlsx"`,
			},
		},
		{
			name: "Success text only",
			msg: Message{
				To:       []string{"admin@example.com"},
				Subject:  "plain",
				TextBody: "hello",
			},
			bodyContains: []string{"Content-Type: text/plain", "hello"},
		},
		{
			name:      "No recipients",
			msg:       Message{Subject: "nobody"},
			expectErr: ErrNoRecipients,
		},
		{
			name:      "Dialer error",
			msg:       Message{To: []string{"admin@example.com"}, TextBody: "x"},
			dialErr:   dialErr,
			expectErr: dialErr,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := &fakeDialer{err: tc.dialErr}
			s := &sender{from: "dashboard@example.com", dialer: d}

			err := s.Send(tc.msg)

			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, d.sent, 1)
			sent := d.sent[0]
			assert.Equal(t, "dashboard@example.com", sent.GetHeader("From")[0])
			assert.Equal(t, tc.msg.To, sent.GetHeader("To"))
			assert.Equal(t, tc.msg.Subject, sent.GetHeader("Subject")[0])

			var body bytes.Buffer
			_, err = sent.WriteTo(&body)
			require.NoError(t, err)
			for _, s := range tc.bodyContains {
				assert.Contains(t, body.String(), s)
			}
			assert.NotContains(t, body.String(), "skipped")
		})
	}
}

func TestNewMailSender(t *testing.T) {
	s := NewMailSender(Config{Email: "dashboard@example.com", Host: "smtp.example.com", Port: 587})
	require.NotNil(t, s)
	assert.Equal(t, "dashboard@example.com", s.(*sender).from)
}
