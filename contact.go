package main

import (
	"fmt"
	"log"
	"net/http"
	"net/smtp"
	"strings"

	"github.com/gin-gonic/gin"
)

type mailer func(cfg SMTPConfig, name, email, message string) error

// Handle contact form submission with HTMX
func setupContactRoutes(r *gin.Engine, cfg SMTPConfig, send mailer) {
	r.POST("/contact", func(c *gin.Context) {
		name := strings.TrimSpace(c.PostForm("fullName"))
		email := strings.TrimSpace(c.PostForm("email"))
		message := strings.TrimSpace(c.PostForm("message"))

		if name == "" || email == "" || message == "" {
			c.HTML(http.StatusOK, "contact-error.html", gin.H{
				"error": "Please fill in your name, email and message.",
			})
			return
		}

		if err := send(cfg, name, email, message); err != nil {
			log.Printf("Error sending email: %v", err)
			c.HTML(http.StatusOK, "contact-error.html", gin.H{
				"error": "Sorry, there was an error sending your message. Please try again later.",
			})
			return
		}

		c.HTML(http.StatusOK, "contact-success.html", gin.H{
			"success": "Thank you for your message! I'll get back to you soon.",
		})
	})
}

func sendContactEmail(cfg SMTPConfig, name, email, message string) error {
	if cfg.User == "" || cfg.Pass == "" {
		return fmt.Errorf("SMTP credentials not configured")
	}
	to := cfg.To
	if to == "" {
		to = cfg.User
	}
	// header injection through the reply-to or subject
	if strings.ContainsAny(name+email, "\r\n") {
		return fmt.Errorf("invalid header value")
	}

	subject := fmt.Sprintf("Portfolio Contact: %s", name)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, name, email, message)

	msg := []byte("To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + cfg.User + "\r\n" +
		"Reply-To: " + email + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", cfg.User, cfg.Pass, cfg.Host)
	if err := smtp.SendMail(cfg.Host+":"+cfg.Port, auth, cfg.User, []string{to}, msg); err != nil {
		return err
	}

	log.Printf("Email sent successfully from %s", name)
	return nil
}
