package services

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/adampresley/adamgokit/email"
	"github.com/adampresley/residencias/pkg/models"
)

type EmailSender interface {
	SendContactNotification(toName, toEmail, fromName, fromEmail string, request *models.ContactRequest) error
}

type ResendEmailSender struct {
	apiKey string
}

func NewResendEmailSender(apiKey string) ResendEmailSender {
	return ResendEmailSender{
		apiKey: apiKey,
	}
}

var contactTemplate = template.Must(template.New("contact").Parse(`
<h1>New contact request</h1>
<p><strong>{{.Name}}</strong> ({{.Email}}{{if .Phone}}, {{.Phone}}{{end}}) wrote:</p>
<p>{{.Message}}</p>
{{if .ResidenceSlug}}<p>Residence: {{.ResidenceSlug}}</p>{{end}}
`))

func RenderContactNotification(request *models.ContactRequest) (string, error) {
	parsedTemplate := strings.Builder{}

	if err := contactTemplate.Execute(&parsedTemplate, request); err != nil {
		return "", fmt.Errorf("error rendering contact notification: %w", err)
	}

	return parsedTemplate.String(), nil
}

func (s ResendEmailSender) SendContactNotification(toName, toEmail, fromName, fromEmail string, request *models.ContactRequest) error {
	body, err := RenderContactNotification(request)

	if err != nil {
		return err
	}

	service := email.NewResendService(&email.Config{
		ApiKey: s.apiKey,
	})

	return service.Send(email.Mail{
		Body:       body,
		BodyIsHtml: true,
		From: email.EmailAddress{
			Email: fromEmail,
			Name:  fromName,
		},
		Subject: fmt.Sprintf("New contact request from %s", request.Name),
		To: []email.EmailAddress{
			{Name: toName, Email: toEmail},
		},
	})
}
