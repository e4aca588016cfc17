package notify

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"strings"

	"dealerorders/internal/core/domain/model/basket"
	"dealerorders/internal/core/domain/model/order"
)

//go:embed templates/*.html
var templateFS embed.FS

var mailTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

var subjects = map[order.EventKind]string{
	order.EventOrderPlaced:     "Order received",
	order.EventAutoApproved:    "Order approved automatically",
	order.EventApproved:        "Order approved",
	order.EventOrderDispatched: "Order dispatched",
	order.EventCompleted:       "Order completed",
}

var ErrNoMailRecipients = errors.New("no mail recipients configured")

// SendMailFunc matches smtp.SendMail.
type SendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type MailConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	To       []string
}

// MailNotifier sends one HTML mail per event to the configured recipients.
type MailNotifier struct {
	cfg  MailConfig
	auth smtp.Auth
	send SendMailFunc
}

func NewMailNotifier(cfg MailConfig, send SendMailFunc) (*MailNotifier, error) {
	if len(cfg.To) == 0 {
		return nil, ErrNoMailRecipients
	}
	if send == nil {
		send = smtp.SendMail
	}

	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return &MailNotifier{cfg: cfg, auth: auth, send: send}, nil
}

func (n *MailNotifier) Notify(_ context.Context, event order.Event, o *order.Order, lines []*basket.BasketItem) error {
	subject, ok := subjects[event.Kind]
	if !ok {
		return fmt.Errorf("no mail for event %s", event.Kind)
	}

	msg := NewMessage(event, o, lines)

	var body bytes.Buffer
	if err := mailTemplates.ExecuteTemplate(&body, "event.html", struct {
		Subject string
		Message
	}{subject, msg}); err != nil {
		return fmt.Errorf("render %s mail: %w", msg.Event, err)
	}

	var raw bytes.Buffer
	raw.WriteString("MIME-Version: 1.0\r\n")
	raw.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	fmt.Fprintf(&raw, "From: %s\r\n", n.cfg.From)
	fmt.Fprintf(&raw, "To: %s\r\n", strings.Join(n.cfg.To, ","))
	fmt.Fprintf(&raw, "Subject: %s\r\n\r\n", subject)
	raw.Write(body.Bytes())

	addr := net.JoinHostPort(n.cfg.Host, n.cfg.Port)
	if err := n.send(addr, n.auth, n.cfg.From, n.cfg.To, raw.Bytes()); err != nil {
		return fmt.Errorf("send %s mail: %w", msg.Event, err)
	}
	return nil
}
