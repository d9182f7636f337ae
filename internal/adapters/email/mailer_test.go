package email

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeSES struct {
	input *ses.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(ctx context.Context, in *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.input = in
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func TestNewMailer(t *testing.T) {
	tests := []struct {
		name     string
		config   MailerConfig
		wantErr  bool
		wantNoop bool
	}{
		{name: "default is noop", config: MailerConfig{}, wantNoop: true},
		{name: "explicit noop", config: MailerConfig{Provider: "noop"}, wantNoop: true},
		{name: "unknown falls back to noop", config: MailerConfig{Provider: "carrier-pigeon"}, wantNoop: true},
		{name: "ses without from address", config: MailerConfig{Provider: "ses"}, wantErr: true},
		{name: "ses", config: MailerConfig{Provider: "ses", FromAddress: "planner@example.com", SES: SESConfig{Region: "us-east-1"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMailer(tt.config, discardLogger)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			_, isNoop := m.(*noopMailer)
			assert.Equal(t, tt.wantNoop, isNoop)
		})
	}
}

func TestSESMailer_Send(t *testing.T) {
	client := &fakeSES{}
	m := newSESMailer(client, "planner@example.com", "Event Planner", discardLogger)

	require.NoError(t, m.Send(context.Background(), "host@example.com", "Hi", "<p>hi</p>", "hi"))
	in := client.input
	require.NotNil(t, in)
	assert.Equal(t, "Event Planner <planner@example.com>", aws.ToString(in.Source))
	assert.Equal(t, []string{"host@example.com"}, in.Destination.ToAddresses)
	assert.Equal(t, "Hi", aws.ToString(in.Message.Subject.Data))
	assert.Equal(t, "<p>hi</p>", aws.ToString(in.Message.Body.Html.Data))
	assert.Equal(t, "hi", aws.ToString(in.Message.Body.Text.Data))
}

func TestSESMailer_SendTextOnly(t *testing.T) {
	client := &fakeSES{}
	m := newSESMailer(client, "planner@example.com", "", discardLogger)

	require.NoError(t, m.Send(context.Background(), "host@example.com", "Hi", "", "hi"))
	assert.Equal(t, "planner@example.com", aws.ToString(client.input.Source))
	assert.Nil(t, client.input.Message.Body.Html)
	require.NotNil(t, client.input.Message.Body.Text)
}

func TestSESMailer_SendError(t *testing.T) {
	m := newSESMailer(&fakeSES{err: errors.New("throttled")}, "planner@example.com", "", discardLogger)

	err := m.Send(context.Background(), "host@example.com", "Hi", "", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send email via SES")
}

func TestNoopMailer_Send(t *testing.T) {
	m := &noopMailer{logger: discardLogger}
	assert.NoError(t, m.Send(context.Background(), "host@example.com", "Hi", "", ""))
}
