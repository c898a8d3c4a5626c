// Package mail sends shop notification email over SMTP.
package mail

import (
	"context"
	"fmt"
	"html"
	"strings"

	"streesilk/config"
	"streesilk/internal/domain/entity"
	"streesilk/internal/domain/service"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"
)

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
	shopTo string
}

// NewMailer builds an SMTP mailer from configuration.
func NewMailer(cfg *config.Config) (service.Mailer, error) {
	if cfg.SMTP == nil || cfg.SMTP.Host == "" {
		return nil, errors.New("smtp configuration is missing")
	}

	port := cfg.SMTP.Port
	if port == 0 {
		port = 587
	}

	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.SMTP.Host, port, cfg.SMTP.Username, cfg.SMTP.Password),
		from:   cfg.SMTP.From,
		shopTo: cfg.SMTP.ShopTo,
	}, nil
}

func (s *smtpMailer) SendOrderNotification(_ context.Context, order *entity.Order) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", s.shopTo)
	m.SetHeader("Subject", fmt.Sprintf("New Order Received - %s", order.ID))
	m.SetBody("text/html", orderBody(order))

	if err := s.dialer.DialAndSend(m); err != nil {
		return errors.Wrap(err, "failed to send order notification")
	}

	return nil
}

func (s *smtpMailer) SendContactNotification(_ context.Context, message *entity.ContactMessage) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", s.shopTo)
	m.SetHeader("Subject", fmt.Sprintf("New Contact Message from %s", message.Name))
	m.SetBody("text/html", contactBody(message))

	if err := s.dialer.DialAndSend(m); err != nil {
		return errors.Wrap(err, "failed to send contact notification")
	}

	return nil
}

// formatPrice renders a minor-unit amount as rupees.
func formatPrice(paise int64) string {
	return fmt.Sprintf("₹%.2f", float64(paise)/100)
}

func orderBody(order *entity.Order) string {
	var rows strings.Builder
	for _, item := range order.Items {
		variant := ""
		if item.Size != "" || item.Color != "" {
			variant = fmt.Sprintf(" (%s)", strings.TrimSpace(strings.Trim(item.Size+" "+item.Color, " ")))
		}
		rows.WriteString(fmt.Sprintf(
			`<tr><td style="padding:8px;border-bottom:1px solid #eee;">%s%s</td><td style="padding:8px;border-bottom:1px solid #eee;text-align:center;">%d</td><td style="padding:8px;border-bottom:1px solid #eee;text-align:right;">%s</td></tr>`,
			html.EscapeString(item.Name), html.EscapeString(variant), item.Quantity, formatPrice(item.Price*int64(item.Quantity))))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #faf7f2; padding: 20px;">
    <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px;">
        <h2 style="color: #7c2d12;">New Order Received</h2>
        <p><strong>Order ID:</strong> %s</p>
        <p><strong>Payment:</strong> %s</p>
        <h3 style="color: #333;">Customer</h3>
        <p>%s<br>%s</p>
        <h3 style="color: #333;">Items</h3>
        <table style="width:100%%;border-collapse:collapse;">
            <tr><th style="text-align:left;padding:8px;">Product</th><th style="padding:8px;">Qty</th><th style="text-align:right;padding:8px;">Amount</th></tr>
            %s
        </table>
        <p style="text-align:right;font-size:18px;"><strong>Total: %s</strong></p>
        <p style="color:#666;font-size:12px;margin-top:30px;">This is an automated notification.</p>
    </div>
</body>
</html>`,
		html.EscapeString(order.ID),
		html.EscapeString(order.PaymentMode),
		html.EscapeString(order.Customer.Name),
		html.EscapeString(order.Customer.Email),
		rows.String(),
		formatPrice(order.Total))
}

func contactBody(message *entity.ContactMessage) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #faf7f2; padding: 20px;">
    <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px;">
        <h2 style="color: #7c2d12;">New Contact Message</h2>
        <p><strong>From:</strong> %s &lt;%s&gt;</p>
        <p><strong>Subject:</strong> %s</p>
        <div style="background-color:#faf7f2;padding:16px;border-radius:8px;white-space:pre-wrap;">%s</div>
        <p style="color:#666;font-size:12px;margin-top:30px;">This is an automated notification.</p>
    </div>
</body>
</html>`,
		html.EscapeString(message.Name),
		html.EscapeString(message.Email),
		html.EscapeString(message.Subject),
		html.EscapeString(message.Message))
}
