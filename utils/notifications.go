package utils

import (
	"context"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"google.golang.org/api/option"
)

var ErrChannelDisabled = errors.New("notification channel not configured")

// TwilioSMSSender sends SMS through the Twilio REST API.
type TwilioSMSSender struct {
	client     *twilio.RestClient
	fromNumber string
}

func NewTwilioSMSSender(accountSID, authToken, fromNumber string) *TwilioSMSSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioSMSSender{client: client, fromNumber: fromNumber}
}

func (s *TwilioSMSSender) SendSMS(_ context.Context, to, body string) error {
	if to == "" {
		return errors.New("missing recipient phone number")
	}
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.fromNumber)
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("twilio send to %s: %w", MaskPhoneNumber(to), err)
	}
	return nil
}

// FirebasePushSender sends push notifications through Firebase Cloud Messaging.
type FirebasePushSender struct {
	client *messaging.Client
}

func NewFirebasePushSender(ctx context.Context, credentialsFile string) (*FirebasePushSender, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize FCM client: %w", err)
	}
	return &FirebasePushSender{client: client}, nil
}

func (s *FirebasePushSender) SendPush(ctx context.Context, deviceToken, title, body string, data map[string]string) error {
	if deviceToken == "" {
		return errors.New("missing device token")
	}
	message := &messaging.Message{
		Token: deviceToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				Icon:  "ic_alert",
				Color: "#D32F2F",
			},
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Alert: &messaging.ApsAlert{
						Title: title,
						Body:  body,
					},
					Sound: "default",
				},
			},
		},
	}

	_, err := s.client.Send(ctx, message)
	return err
}
