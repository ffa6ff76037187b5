package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"os"
	"strconv"
	"time"
)

type IMailService interface {
	SendWelcomeMail(to, name string) error
	SendMailToResetPassword(to, otp string) error
}

// SMTPConfig holds the SMTP and branding config.
type SMTPConfig struct {
	Host     string // e.g. "smtp.gmail.com"
	Port     int    // 587 (STARTTLS) or 465 (SMTPS)
	Username string
	Password string
	From     string // e.g. "no-reply@izybotanic.com"
	UseSSL   bool   // true for SMTPS 465, false for STARTTLS 587
	AppName  string
}

func SMTPConfigFromEnv() SMTPConfig {
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if port == 0 {
		port = 587
	}
	return SMTPConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
		UseSSL:   port == 465,
		AppName:  "IzyBotanic",
	}
}

type smtpMailService struct {
	cfg SMTPConfig
	tpl *template.Template
}

func NewSMTPMailService(cfg SMTPConfig) (IMailService, error) {
	tpl := template.Must(template.New("mail").Parse(mailHTMLTemplate))
	return &smtpMailService{
		cfg: cfg,
		tpl: tpl,
	}, nil
}

type mailData struct {
	Title   string
	Intro   string
	Code    string
	AppName string
	Year    int
}

const mailHTMLTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
  <style>
    body { margin: 0; padding: 24px; background: #f0f7f0; color: #1f2d1f; font-family: -apple-system, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; }
    .card { max-width: 560px; margin: 0 auto; background: #ffffff; border-radius: 12px; padding: 32px; border: 1px solid #d7e6d7; }
    .brand { font-weight: 700; font-size: 20px; color: #2e7d32; }
    h1 { font-size: 24px; margin: 16px 0; }
    p { line-height: 1.6; color: #3c4a3c; }
    .code { font-size: 28px; letter-spacing: 6px; font-weight: 700; color: #2e7d32; margin: 16px 0; }
    .footer { margin-top: 24px; color: #7a8a7a; font-size: 12px; }
  </style>
</head>
<body>
  <div class="card">
    <div class="brand">{{.AppName}}</div>
    <h1>{{.Title}}</h1>
    <p>{{.Intro}}</p>
    {{if .Code}}<div class="code">{{.Code}}</div>{{end}}
    <div class="footer">© {{.Year}} {{.AppName}}</div>
  </div>
</body>
</html>`

func (s *smtpMailService) SendWelcomeMail(to, name string) error {
	return s.send(to, "Bem-vindo ao IzyBotanic", mailData{
		Title:   "Bem-vindo, " + name + "!",
		Intro:   "Sua conta foi criada. Adicione sua primeira planta e deixe a Izy cuidar do resto.",
		AppName: s.cfg.AppName,
		Year:    time.Now().Year(),
	})
}

func (s *smtpMailService) SendMailToResetPassword(to, otp string) error {
	return s.send(to, "Redefinição de senha", mailData{
		Title:   "Redefinição de senha",
		Intro:   "Recebemos um pedido para redefinir sua senha. Use o código abaixo. Se você não pediu isso, ignore este email.",
		Code:    otp,
		AppName: s.cfg.AppName,
		Year:    time.Now().Year(),
	})
}

func (s *smtpMailService) send(to, subject string, data mailData) error {
	var body bytes.Buffer
	if err := s.tpl.Execute(&body, data); err != nil {
		return err
	}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", s.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	fmt.Fprintf(&msg, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	fmt.Fprintf(&msg, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&msg, "Content-Type: text/html; charset=UTF-8\r\n\r\n")
	msg.Write(body.Bytes())

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}

	if s.cfg.UseSSL {
		// SMTPS (implicit TLS, usually port 465)
		conn, err := tls.Dial("tcp", addr, tlsCfg)
		if err != nil {
			return err
		}
		defer conn.Close()

		c, err := smtp.NewClient(conn, s.cfg.Host)
		if err != nil {
			return err
		}
		defer c.Quit()

		return s.deliver(c, auth, to, msg.Bytes())
	}

	// STARTTLS path (typically port 587)
	dialer := &net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err = c.StartTLS(tlsCfg); err != nil {
			return err
		}
	}

	return s.deliver(c, auth, to, msg.Bytes())
}

func (s *smtpMailService) deliver(c *smtp.Client, auth smtp.Auth, to string, msg []byte) error {
	if err := c.Auth(auth); err != nil {
		return err
	}
	if err := c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}
