package ses

import (
	"context"
	"fmt"
	"html"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"invoicedesk/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(ctx context.Context, region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	return &sesSender{
		client:      sesv2.NewFromConfig(cfg),
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendInvoiceEmail(ctx context.Context, msg port.InvoiceEmail) error {
	subject := BuildSubject(msg, s.fromName)
	htmlBody := BuildInvoiceHTML(msg, s.fromName)
	textBody := BuildInvoiceText(msg, s.fromName)

	from := s.fromAddress
	if s.fromName != "" {
		from = fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)
	}

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{msg.ToEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

// BuildSubject returns the subject line for an invoice email.
func BuildSubject(msg port.InvoiceEmail, sender string) string {
	if sender == "" {
		return fmt.Sprintf("Invoice %s", msg.InvoiceNumber)
	}
	return fmt.Sprintf("Invoice %s from %s", msg.InvoiceNumber, sender)
}

// BuildInvoiceText returns the plain text body for an invoice email.
func BuildInvoiceText(msg port.InvoiceEmail, sender string) string {
	return fmt.Sprintf(
		"Hi %s,\n\nPlease find invoice %s at the link below.\n%s\n\nAmount due: Rs %s\n\nThe link expires in 7 days.\n\n%s",
		greetingName(msg), msg.InvoiceNumber, msg.DocumentURL, msg.AmountDue, sender,
	)
}

// BuildInvoiceHTML returns the HTML body for an invoice email. All
// interpolated values are escaped.
func BuildInvoiceHTML(msg port.InvoiceEmail, sender string) string {
	link := html.EscapeString(msg.DocumentURL)
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Invoice %s</h2>
  <p>Hi %s,</p>
  <p>Your invoice is ready. Amount due: <strong>Rs %s</strong></p>
  <p style="text-align: center; margin: 30px 0;">
    <a href="%s" style="background-color: #4F46E5; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">View Invoice</a>
  </p>
  <p>Or copy and paste this link into your browser:</p>
  <p style="word-break: break-all; color: #666;">%s</p>
  <p style="color: #999; font-size: 12px;">This link expires in 7 days.</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">%s</p>
</body>
</html>`,
		html.EscapeString(msg.InvoiceNumber),
		html.EscapeString(greetingName(msg)),
		html.EscapeString(msg.AmountDue),
		link, link,
		html.EscapeString(sender),
	)
}

func greetingName(msg port.InvoiceEmail) string {
	if msg.ToName != "" {
		return msg.ToName
	}
	return "there"
}
