// Package deliver sends the rendered report by email. The HTML goes out
// as a file attachment with a short plain-text body, so the report's CSS
// is rendered by a browser instead of an email client.
package deliver

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"

	"github.com/wneessen/go-mail"

	"github.com/bleacherbot/bleacherbot/config"
	"github.com/bleacherbot/bleacherbot/models"
)

// Deliverer sends one rendered report per run.
type Deliverer struct {
	cfg     config.EmailConfig
	general config.GeneralConfig
	logger  *log.Logger
}

func New(cfg config.EmailConfig, general config.GeneralConfig, logger *log.Logger) *Deliverer {
	if logger == nil {
		logger = log.New(log.Writer(), "[DELIVER] ", log.LstdFlags)
	}
	return &Deliverer{cfg: cfg, general: general, logger: logger}
}

// Deliver emails the report, or writes it to the preview path in
// dry-run mode.
func (d *Deliverer) Deliver(ctx context.Context, report *models.Report, html []byte) error {
	if d.general.DryRun {
		path := d.general.PreviewPath
		d.logger.Printf("dry run: writing HTML preview to %s", path)
		if err := os.WriteFile(path, html, 0o644); err != nil {
			return fmt.Errorf("writing preview file: %w", err)
		}
		return nil
	}

	subject := fmt.Sprintf("%s Weekly Brief - %s", report.TeamName, report.GeneratedAt.Format("January 2, 2006"))
	filename := fmt.Sprintf("bleacherbot-%s.html", report.GeneratedAt.Format("2006-01-02"))

	msg := mail.NewMsg()
	if err := msg.From(d.cfg.Username); err != nil {
		return fmt.Errorf("setting sender: %w", err)
	}
	if err := msg.To(d.cfg.Recipient); err != nil {
		return fmt.Errorf("setting recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, plainTextIntro(subject, report.TeamName))
	if err := msg.AttachReader(filename, bytes.NewReader(html)); err != nil {
		return fmt.Errorf("attaching report: %w", err)
	}

	client, err := mail.NewClient(d.cfg.SMTPHost,
		mail.WithPort(d.cfg.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(d.cfg.Username),
		mail.WithPassword(d.cfg.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("creating SMTP client: %w", err)
	}

	d.logger.Printf("sending report to %s via %s:%d", d.cfg.Recipient, d.cfg.SMTPHost, d.cfg.SMTPPort)
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("sending report email: %w", err)
	}
	d.logger.Printf("report sent (attachment: %s)", filename)
	return nil
}

func plainTextIntro(subject, teamName string) string {
	return fmt.Sprintf(
		"%s\n\nYour %s weekly brief is attached.\n\nOpen the HTML file in any browser to read the full report.\n\n- Bleacher Bot",
		subject, teamName,
	)
}
