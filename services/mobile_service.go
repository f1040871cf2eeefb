package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Goutam363/ewabeyapi/apperrors"
	"github.com/Goutam363/ewabeyapi/config"
)

const fast2smsURL = "https://www.fast2sms.com/dev/bulkV2"

// MobileService sends OTP codes over SMS through the Fast2SMS bulk API.
type MobileService struct {
	client *http.Client
	apiURL string
}

func NewMobileService() *MobileService {
	return &MobileService{
		client: &http.Client{Timeout: 15 * time.Second},
		apiURL: fast2smsURL,
	}
}

// SendOTP generates a 6-digit OTP, dispatches it to the phone number and
// returns it to the caller for verification.
func (s *MobileService) SendOTP(ctx context.Context, phoneNumber string) (string, error) {
	otp := generateOTP()

	payload, err := json.Marshal(map[string]string{
		"route":            "otp",
		"variables_values": otp,
		"numbers":          phoneNumber,
	})
	if err != nil {
		return "", apperrors.Internal("Failed to send OTP", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", apperrors.Internal("Failed to send OTP", err)
	}
	req.Header.Set("Authorization", config.AppConfig.F2SAPIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", apperrors.Internal("Failed to send OTP", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", apperrors.Internal("Failed to send OTP", fmt.Errorf("fast2sms responded with status %d", resp.StatusCode))
	}
	return otp, nil
}
