package templates

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/hirestack/jobboard-api/pkg/mailer"
)

// Transactional email templates rendered by the worker. Kept deliberately
// plain: a heading, a message and an optional action link.

var base = template.Must(template.New("base").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #1c1e21; margin: 0; padding: 24px;">
  <div style="max-width: 560px; margin: 0 auto;">
    <h2 style="margin-bottom: 8px;">{{.Heading}}</h2>
    <p>Hi {{.Name}},</p>
    <p>{{.Message}}</p>
    {{if .ActionURL}}
    <p style="margin: 24px 0;">
      <a href="{{.ActionURL}}" style="background: #2563eb; color: #ffffff; padding: 10px 18px; border-radius: 6px; text-decoration: none;">{{.ActionLabel}}</a>
    </p>
    <p style="color: #65676b; font-size: 13px;">If the button does not work, copy this link: {{.ActionURL}}</p>
    {{end}}
    <p style="color: #65676b; font-size: 13px;">If you did not expect this email you can safely ignore it.</p>
  </div>
</body>
</html>`))

type vars struct {
	Heading     string
	Name        string
	Message     string
	ActionURL   string
	ActionLabel string
}

func str(data map[string]any, key string) string {
	if v, ok := data[key]; ok {
		return fmt.Sprintf("%v", v)
	}
	return ""
}

// Render produces the subject and bodies for a named template.
func Render(name string, data map[string]any) (mailer.Rendered, error) {
	recipient := str(data, "Name")
	if recipient == "" {
		recipient = "there"
	}

	var subject string
	var v vars
	switch name {
	case "welcome":
		subject = "Welcome to the job board"
		v = vars{
			Heading: "Welcome aboard",
			Name:    recipient,
			Message: "Your account is ready. Browse open roles or post your first job whenever you like.",
		}
	case "reset_password":
		subject = "Reset your password"
		v = vars{
			Heading:     "Password reset requested",
			Name:        recipient,
			Message:     "Someone asked to reset the password for your account. The link below expires in " + str(data, "ExpiresIn") + ".",
			ActionURL:   str(data, "ResetURL"),
			ActionLabel: "Reset password",
		}
	case "password_changed":
		subject = "Your password was changed"
		v = vars{
			Heading: "Password changed",
			Name:    recipient,
			Message: "The password for your account was just changed. If this was not you, reset your password immediately.",
		}
	default:
		return mailer.Rendered{}, fmt.Errorf("unknown template %q", name)
	}

	var buf bytes.Buffer
	if err := base.Execute(&buf, v); err != nil {
		return mailer.Rendered{}, err
	}
	return mailer.Rendered{Subject: subject, Text: v.Message, HTML: buf.String()}, nil
}
