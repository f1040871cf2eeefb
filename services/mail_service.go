package services

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"

	"gopkg.in/gomail.v2"

	"github.com/Goutam363/ewabeyapi/apperrors"
	"github.com/Goutam363/ewabeyapi/config"
	"github.com/Goutam363/ewabeyapi/models"
	"github.com/Goutam363/ewabeyapi/repositories"
)

// MailSender abstracts the SMTP dialer for tests.
type MailSender interface {
	Send(to, subject, htmlBody string) error
}

type smtpSender struct {
	dialer *gomail.Dialer
	from   string
}

func (s *smtpSender) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)
	return s.dialer.DialAndSend(m)
}

// MailService dispatches OTP, recovery and notification mail. OTP values are
// generated and transmitted here; verifying a submitted OTP is the caller's
// concern.
type MailService struct {
	sender   MailSender
	auth     *AuthService
	contacts ContactStore
}

func NewMailService(auth *AuthService) (*MailService, error) {
	cfg := config.AppConfig
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}
	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		port = 587
	}
	dialer := gomail.NewDialer(cfg.SMTPHost, port, cfg.SMTPUser, cfg.SMTPPass)
	return &MailService{
		sender:   &smtpSender{dialer: dialer, from: cfg.SMTPFrom},
		auth:     auth,
		contacts: repositories.NewContactRepository(),
	}, nil
}

func NewMailServiceWithSender(sender MailSender, auth *AuthService, contacts ContactStore) *MailService {
	return &MailService{sender: sender, auth: auth, contacts: contacts}
}

func generateOTP() string {
	return strconv.Itoa(100000 + rand.Intn(900000))
}

func otpBody(heading, otp string) string {
	return fmt.Sprintf(`
<html>
<body style="font-family: Arial, sans-serif;">
	<h2>%s</h2>
	<p>Please use the following One-Time Password to proceed:</p>
	<p style="font-size: 32px; font-weight: bold; letter-spacing: 8px;">%s</p>
	<p><strong>This code will expire in 5 minutes.</strong></p>
	<p>If you did not request this, please ignore this email.</p>
	<p>Best regards,<br>Ewabey Team</p>
</body>
</html>`, heading, otp)
}

// SendNewContactUsForm persists the submission and forwards it to the support
// inbox.
func (s *MailService) SendNewContactUsForm(ctx context.Context, req models.ContactUsRequest) error {
	contact := &models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Mobile:  req.Mobile,
		Message: req.Message,
	}
	if err := s.contacts.Insert(ctx, contact); err != nil {
		return apperrors.Internal("Can not send the form!", err)
	}

	body := fmt.Sprintf(`
<html>
<body style="font-family: Arial, sans-serif;">
	<h2>New Contact Us Submission</h2>
	<p><strong>Name:</strong> %s</p>
	<p><strong>Email:</strong> %s</p>
	<p><strong>Mobile:</strong> %s</p>
	<p><strong>Message:</strong></p>
	<p>%s</p>
</body>
</html>`, req.Name, req.Email, req.Mobile, req.Message)

	if err := s.sender.Send(config.AppConfig.ContactTo, "New Contact Us Form - Ewabey", body); err != nil {
		return apperrors.Internal("Can not send the form!", err)
	}
	return nil
}

func (s *MailService) SendOtp(email string) (string, error) {
	otp := generateOTP()
	if err := s.sender.Send(email, "Email Verification OTP - Ewabey", otpBody("Email Verification", otp)); err != nil {
		return "", apperrors.Internal("Can not send otp!", err)
	}
	return otp, nil
}

func (s *MailService) SendOtpFgUsr(email string) (string, error) {
	otp := generateOTP()
	if err := s.sender.Send(email, "Username Recovery OTP - Ewabey", otpBody("Username Recovery", otp)); err != nil {
		return "", apperrors.Internal("Can not send otp!", err)
	}
	return otp, nil
}

func (s *MailService) SendOtpFgPsw(email string) (string, error) {
	otp := generateOTP()
	if err := s.sender.Send(email, "Password Reset OTP - Ewabey", otpBody("Password Reset", otp)); err != nil {
		return "", apperrors.Internal("Can not send otp!", err)
	}
	return otp, nil
}

func (s *MailService) GetUsernames(ctx context.Context, email string) (string, error) {
	return s.auth.GetUsernamesByEmail(ctx, email)
}

// SendUsernames mails every username registered under the email to it.
func (s *MailService) SendUsernames(ctx context.Context, email string) error {
	usernames, err := s.auth.GetUsernamesByEmail(ctx, email)
	if err != nil {
		return err
	}
	if usernames == "" {
		return apperrors.NotFound("No account registered under this email")
	}

	body := fmt.Sprintf(`
<html>
<body style="font-family: Arial, sans-serif;">
	<h2>Username Recovery</h2>
	<p>The following usernames are registered under this email:</p>
	<p style="font-weight: bold;">%s</p>
	<p>Best regards,<br>Ewabey Team</p>
</body>
</html>`, usernames)

	if err := s.sender.Send(email, "Your Usernames - Ewabey", body); err != nil {
		return apperrors.Internal("Can not send usernames!", err)
	}
	return nil
}

func (s *MailService) SendNotificationOfCreateNewStaff(username, password string) error {
	return s.sendCredentialsNotice("New Staff Account Created - Ewabey", "staff", username, password)
}

func (s *MailService) SendNotificationOfCreateNewAdmin(username, password string) error {
	return s.sendCredentialsNotice("New Admin Account Created - Ewabey", "admin", username, password)
}

func (s *MailService) sendCredentialsNotice(subject, kind, username, password string) error {
	body := fmt.Sprintf(`
<html>
<body style="font-family: Arial, sans-serif;">
	<h2>A new %s account has been created</h2>
	<p><strong>Username:</strong> %s</p>
	<p><strong>Password:</strong> %s</p>
	<p>Please sign in and change the password immediately.</p>
</body>
</html>`, kind, username, password)

	if err := s.sender.Send(config.AppConfig.ContactTo, subject, body); err != nil {
		return apperrors.Internal("Can not send notification!", err)
	}
	return nil
}
