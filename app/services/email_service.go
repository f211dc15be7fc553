package services

import (
	"bytes"
	"fmt"
	"log"

	"github.com/TungTV17/HostelFinder-sub000/app/config"
	"github.com/TungTV17/HostelFinder-sub000/app/models"
	"github.com/gofiber/template/html/v2"
	"gopkg.in/gomail.v2"
)

var emailTemplates *html.Engine

// InitEmailTemplates loads the HTML email templates once at startup.
func InitEmailTemplates(dir string) error {
	engine := html.New(dir, ".html")
	if err := engine.Load(); err != nil {
		return err
	}
	emailTemplates = engine
	return nil
}

// SendEmail delivers one HTML email through the configured SMTP server.
func SendEmail(to, subject, htmlBody string) error {
	smtp := config.AppConfig.SMTP

	m := gomail.NewMessage()
	m.SetHeader("From", smtp.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(smtp.Host, smtp.Port, smtp.Username, smtp.Password)
	if err := d.DialAndSend(m); err != nil {
		log.Printf("Failed to send email to %s: %v", to, err)
		return err
	}
	return nil
}

// SendInvoiceEmail renders the invoice template and mails it to the tenant.
// Callers must not treat a send failure as an invoice failure.
func SendInvoiceEmail(to, roomName string, invoice *models.Invoice) error {
	if emailTemplates == nil {
		return fmt.Errorf("email templates not initialized")
	}

	var buf bytes.Buffer
	err := emailTemplates.Render(&buf, "invoice", map[string]interface{}{
		"RoomName":     roomName,
		"BillingMonth": invoice.BillingMonth,
		"BillingYear":  invoice.BillingYear,
		"Details":      invoice.Details,
		"TotalAmount":  invoice.TotalAmount,
	})
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Invoice for %s - %02d/%d", roomName, invoice.BillingMonth, invoice.BillingYear)
	return SendEmail(to, subject, buf.String())
}
