package adapter

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"github.com/wneessen/go-mail"

	"github.com/MKhiriev/buy-from-me/internal/app"
	"github.com/MKhiriev/buy-from-me/internal/config"
	"github.com/MKhiriev/buy-from-me/internal/logger"
	"github.com/MKhiriev/buy-from-me/models"
)

const (
	verificationSubject = app.Name + " Account Verification Mail"
	verificationPath    = "/verification"
)

//go:embed templates/*.html
var templatesFS embed.FS

var verificationTemplate = template.Must(template.ParseFS(templatesFS, "templates/verification_mail.html"))

// mailSender is the part of *mail.Client the notifier needs.
type mailSender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

type smtpNotifier struct {
	sender  mailSender
	from    string
	baseURL string
	logger  *logger.Logger
}

// NewSMTPNotifier builds a [Notifier] delivering through the SMTP server of
// cfg. Links in mails point at baseURL. SMTP authentication is only enabled
// when a username is configured.
func NewSMTPNotifier(cfg config.Mail, baseURL string, logger *logger.Logger) (Notifier, error) {
	opts := []mail.Option{mail.WithPort(cfg.Port)}
	if cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(cfg.Timeout))
	}
	if cfg.InsecureSkipTLS {
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("error creating smtp client: %w", err)
	}

	from := cfg.From
	if from == "" {
		from = cfg.Username
	}

	logger.Debug().Str("host", cfg.Host).Int("port", cfg.Port).Msg("creating smtp notifier")
	return newSMTPNotifier(client, from, baseURL, logger), nil
}

func newSMTPNotifier(sender mailSender, from, baseURL string, logger *logger.Logger) *smtpNotifier {
	return &smtpNotifier{
		sender:  sender,
		from:    from,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

func (n *smtpNotifier) SendVerification(ctx context.Context, user models.User, token models.Token) error {
	log := logger.FromContext(ctx)

	msg, err := n.verificationMessage(user, token)
	if err != nil {
		log.Err(err).Str("func", "*smtpNotifier.SendVerification").Msg("error building verification mail")
		return fmt.Errorf("%w: %w", ErrBuildingMessage, err)
	}

	if err = n.sender.DialAndSendWithContext(ctx, msg); err != nil {
		log.Err(err).Str("func", "*smtpNotifier.SendVerification").Int64("user_id", user.ID).Msg("error sending verification mail")
		return fmt.Errorf("%w: %w", ErrSendingMail, err)
	}

	log.Info().Int64("user_id", user.ID).Msg("verification mail sent")
	return nil
}

func (n *smtpNotifier) verificationMessage(user models.User, token models.Token) (*mail.Msg, error) {
	var body bytes.Buffer
	err := verificationTemplate.Execute(&body, map[string]string{
		"AppName":  app.Name,
		"Username": user.Username,
		"Link":     n.verificationLink(token),
	})
	if err != nil {
		return nil, err
	}

	msg := mail.NewMsg()
	if err = msg.From(n.from); err != nil {
		return nil, err
	}
	if err = msg.To(user.Email); err != nil {
		return nil, err
	}
	msg.Subject(verificationSubject)
	msg.SetBodyString(mail.TypeTextHTML, body.String())

	return msg, nil
}

func (n *smtpNotifier) verificationLink(token models.Token) string {
	return n.baseURL + verificationPath + "?" + url.Values{"token": {token.SignedString}}.Encode()
}
