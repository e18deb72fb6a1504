package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Config конфигурация SMTP-клиента
type Config struct {
	Enabled  bool
	Host     string
	Port     int
	Username string
	Password string
	From     string
	SiteURL  string
}

// Client SMTP-клиент рассылки
// Когда SMTP не сконфигурирован, клиент логирует письма вместо отправки
// и возвращает ErrDisabled - вызывающая сторона считает такие отправки
// не доставленными, но не фатальными
type Client struct {
	dialer  *gomail.Dialer
	from    string
	siteURL string
	log     Logger
}

// NewClient создает новый SMTP-клиент
// При выключенной или неполной конфигурации возвращает клиента в режиме no-op
func NewClient(cfg Config, log Logger) *Client {
	c := &Client{
		from:    cfg.From,
		siteURL: cfg.SiteURL,
		log:     log,
	}

	if !cfg.Enabled || cfg.Host == "" {
		log.Warn("Mailer: SMTP is not configured, emails will be logged but not sent")
		return c
	}

	c.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return c
}

// Enabled возвращает true, если клиент реально отправляет письма
func (c *Client) Enabled() bool {
	return c.dialer != nil
}

// SiteURL возвращает базовый URL сайта для ссылок в письмах
func (c *Client) SiteURL() string {
	return c.siteURL
}

// Send отправляет HTML-письмо одному получателю
func (c *Client) Send(to, subject, htmlBody string) error {
	if c.dialer == nil {
		c.log.Info("Mailer: [EMAIL-LOG] to=%s subject=%q", to, subject)
		return ErrDisabled
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", c.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := c.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("%w: to=%s: %v", ErrSendFailed, to, err)
	}

	return nil
}
