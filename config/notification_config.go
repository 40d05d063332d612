package config

import (
	"alertsystem/interfaces"
	"alertsystem/utils"
	"context"

	"github.com/sirupsen/logrus"
)

// NotificationChannels holds the configured delivery channels. A nil channel is disabled.
type NotificationChannels struct {
	SMS  interfaces.SMSSender
	Push interfaces.PushSender
}

// InitNotificationChannels builds the Twilio and Firebase senders that have credentials.
func InitNotificationChannels(ctx context.Context, cfg *Config) NotificationChannels {
	var channels NotificationChannels

	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" && cfg.TwilioPhoneNumber != "" {
		channels.SMS = utils.NewTwilioSMSSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioPhoneNumber)
		logrus.Info("Twilio SMS channel enabled")
	} else {
		logrus.Warn("Twilio credentials not configured, SMS notifications disabled")
	}

	if cfg.FirebaseCredentials != "" {
		push, err := utils.NewFirebasePushSender(ctx, cfg.FirebaseCredentials)
		if err != nil {
			logrus.Errorf("Failed to initialize Firebase: %v", err)
		} else {
			channels.Push = push
			logrus.Info("Firebase push channel enabled")
		}
	} else {
		logrus.Warn("Firebase credentials not configured, push notifications disabled")
	}

	return channels
}
