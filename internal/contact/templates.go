package contact

import (
	"bytes"
	"fmt"
	"html/template"
)

var notificationTmpl = template.Must(template.New("notification").Parse(`<html>
<body style="font-family: sans-serif; color: #222;">
<h2>New contact form submission</h2>
<table cellpadding="6">
<tr><td><b>Name</b></td><td>{{.Name}}</td></tr>
<tr><td><b>Email</b></td><td>{{.Email}}</td></tr>
{{if .Phone}}<tr><td><b>Phone</b></td><td>{{.Phone}}</td></tr>{{end}}
{{if .Company}}<tr><td><b>Company</b></td><td>{{.Company}}</td></tr>{{end}}
{{if .Service}}<tr><td><b>Service</b></td><td>{{.Service}}</td></tr>{{end}}
{{if .Budget}}<tr><td><b>Budget</b></td><td>{{.Budget}}</td></tr>{{end}}
</table>
<h3>Message</h3>
<p style="white-space: pre-wrap;">{{.Message}}</p>
</body>
</html>`))

var autoReplyTmpl = template.Must(template.New("autoreply").Parse(`<html>
<body style="font-family: sans-serif; color: #222;">
<p>Hi {{.Name}},</p>
<p>Thanks for reaching out. We received your message and will get back to you
within one business day.</p>
<p>Your message:</p>
<blockquote style="white-space: pre-wrap; color: #555;">{{.Message}}</blockquote>
<p>Best regards,<br>The team</p>
</body>
</html>`))

func renderNotification(sub *Submission) (string, error) {
	var buf bytes.Buffer
	if err := notificationTmpl.Execute(&buf, sub); err != nil {
		return "", fmt.Errorf("failed to render notification email: %w", err)
	}
	return buf.String(), nil
}

func renderAutoReply(sub *Submission) (string, error) {
	var buf bytes.Buffer
	if err := autoReplyTmpl.Execute(&buf, sub); err != nil {
		return "", fmt.Errorf("failed to render auto-reply email: %w", err)
	}
	return buf.String(), nil
}
