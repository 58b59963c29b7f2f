package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

const welcomeTpl = `
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>Welcome to Repairo</title></head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
  <div style="max-width: 600px; margin: auto; background: #fff; padding: 20px; border-radius: 8px;">
    <h2 style="color: #2E86C1;">Welcome to Repairo</h2>
    <p>Hello {{.Name}},</p>
    <p>Your account has been created. You can now log in and start using Repairo.</p>
    <br>
    <p>Regards,<br><strong>The Repairo Team</strong></p>
  </div>
</body>
</html>
`

const resetTpl = `
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>Reset your password</title></head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
  <div style="max-width: 600px; margin: auto; background: #fff; padding: 20px; border-radius: 8px;">
    <h2 style="color: #2E86C1;">Password reset requested</h2>
    <p>Hello,</p>
    <p>We received a request to reset your password. The link below is valid for one hour:</p>
    <p><a href="{{.ResetURL}}">{{.ResetURL}}</a></p>
    <p>If you did not request this, you can ignore this email.</p>
    <br>
    <p>Regards,<br><strong>The Repairo Team</strong></p>
  </div>
</body>
</html>
`

var (
	welcomeTemplate = template.Must(template.New("welcome").Parse(welcomeTpl))
	resetTemplate   = template.Must(template.New("reset").Parse(resetTpl))
)

type welcomeData struct {
	Name string
}

type resetData struct {
	ResetURL string
}

func renderWelcome(name string) (string, error) {
	var body bytes.Buffer
	if err := welcomeTemplate.Execute(&body, welcomeData{Name: name}); err != nil {
		return "", fmt.Errorf("mailer: render welcome template: %w", err)
	}
	return body.String(), nil
}

func renderReset(resetURL string) (string, error) {
	var body bytes.Buffer
	if err := resetTemplate.Execute(&body, resetData{ResetURL: resetURL}); err != nil {
		return "", fmt.Errorf("mailer: render reset template: %w", err)
	}
	return body.String(), nil
}
