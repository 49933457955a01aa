// services/mail_service.go
package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"
)

type IMailService interface {
	SendCertificateIssued(to string, data CertificateEmailData) error
	// Send delivers a prerendered message; used when content management
	// supplies its own template.
	Send(to, subject, htmlBody, textBody string) error
}

// SMTPConfig holds SMTP + branding config.
type SMTPConfig struct {
	Host       string // e.g. "smtp.gmail.com"
	Port       int    // 587 (STARTTLS) or 465 (SMTPS)
	Username   string
	Password   string
	From       string
	FromName   string
	UseSSL     bool // true for SMTPS 465, false for STARTTLS 587
	RequireTLS bool // fail if STARTTLS not offered

	AppName string
}

type CertificateEmailData struct {
	RecipientName  string
	LocationName   string
	PointsEarned   int
	CertificateURL string
	IsMaster       bool
}

type smtpMailService struct {
	cfg     SMTPConfig
	htmlTpl *template.Template
	textTpl *template.Template
}

func NewSMTPMailService(cfg SMTPConfig) (IMailService, error) {
	return &smtpMailService{
		cfg:     cfg,
		htmlTpl: template.Must(template.New("certificateHTML").Parse(certificateHTMLTemplate)),
		textTpl: template.Must(template.New("certificateText").Parse(certificateTextTemplate)),
	}, nil
}

func (s *smtpMailService) SendCertificateIssued(to string, data CertificateEmailData) error {
	subject := fmt.Sprintf("Your %s certificate is ready", s.cfg.AppName)
	if data.IsMaster {
		subject = fmt.Sprintf("Your %s master explorer certificate is ready", s.cfg.AppName)
	}

	payload := struct {
		CertificateEmailData
		Subject string
		AppName string
		Year    int
	}{
		CertificateEmailData: data,
		Subject:              subject,
		AppName:              s.cfg.AppName,
		Year:                 time.Now().Year(),
	}

	var htmlBody, textBody bytes.Buffer
	if err := s.htmlTpl.Execute(&htmlBody, payload); err != nil {
		return err
	}
	if err := s.textTpl.Execute(&textBody, payload); err != nil {
		return err
	}
	return s.send(to, subject, htmlBody.String(), textBody.String())
}

const certificateHTMLTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <title>{{.Subject}}</title>
</head>
<body style="margin:0;padding:24px;background:#f1f5f9;font-family:-apple-system,'Segoe UI',Roboto,Helvetica,Arial,sans-serif;color:#0f172a;">
  <div style="max-width:560px;margin:0 auto;background:#ffffff;border-radius:12px;padding:32px;">
    <h1 style="margin:0 0 16px;font-size:24px;">Congratulations{{if .RecipientName}}, {{.RecipientName}}{{end}}!</h1>
    {{if .IsMaster}}
    <p style="line-height:1.6;">You have completed every mission across the whole collection and earned the master explorer certificate with {{.PointsEarned}} points.</p>
    {{else}}
    <p style="line-height:1.6;">You have completed all missions at {{.LocationName}} and earned {{.PointsEarned}} points.</p>
    {{end}}
    <p style="margin:28px 0;">
      <a href="{{.CertificateURL}}" style="display:inline-block;padding:14px 28px;background:#2563eb;color:#ffffff;text-decoration:none;border-radius:8px;font-weight:600;">View your certificate</a>
    </p>
    <p style="color:#64748b;font-size:13px;line-height:1.6;">If the button doesn't work, copy this link into your browser:<br>
      <a href="{{.CertificateURL}}" style="color:#2563eb;word-break:break-all;">{{.CertificateURL}}</a>
    </p>
    <p style="color:#94a3b8;font-size:12px;margin-top:32px;">&copy; {{.Year}} {{.AppName}}</p>
  </div>
</body>
</html>`

const certificateTextTemplate = `{{.Subject}}

Congratulations{{if .RecipientName}}, {{.RecipientName}}{{end}}!
{{if .IsMaster}}You completed every mission across the whole collection and earned {{.PointsEarned}} points.{{else}}You completed all missions at {{.LocationName}} and earned {{.PointsEarned}} points.{{end}}

Your certificate:
{{.CertificateURL}}

— {{.AppName}} (c) {{.Year}}
`

func (s *smtpMailService) Send(to, subject, htmlBody, textBody string) error {
	return s.send(to, subject, htmlBody, textBody)
}

func (s *smtpMailService) send(to, subject, htmlBody, textBody string) error {
	boundary := fmt.Sprintf("alt_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	write("From: %s\r\n", s.formatFromHeader())
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", subject))
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	write("\r\n")

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 7bit\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 7bit\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	write("--%s--\r\n", boundary)

	client, err := s.connect()
	if err != nil {
		return err
	}
	defer client.Quit()

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	if err = client.Auth(auth); err != nil {
		return err
	}
	if err = client.Mail(s.cfg.From); err != nil {
		return err
	}
	if err = client.Rcpt(to); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg.Bytes()); err != nil {
		return err
	}
	return w.Close()
}

func (s *smtpMailService) connect() (*smtp.Client, error) {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}

	if s.cfg.UseSSL {
		// SMTPS, implicit TLS (usually port 465)
		conn, err := tls.Dial("tcp", addr, tlsCfg)
		if err != nil {
			return nil, err
		}
		return smtp.NewClient(conn, s.cfg.Host)
	}

	// STARTTLS path (typically port 587)
	dialer := &net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		conn.Close()
		return nil, err
	}

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err = client.StartTLS(tlsCfg); err != nil {
			client.Close()
			return nil, err
		}
	} else if s.cfg.RequireTLS {
		client.Close()
		return nil, fmt.Errorf("server does not support STARTTLS and RequireTLS=true")
	}
	return client, nil
}

func (s *smtpMailService) formatFromHeader() string {
	name := strings.TrimSpace(s.cfg.FromName)
	if name == "" {
		return s.cfg.From
	}
	return fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("UTF-8", name), s.cfg.From)
}
