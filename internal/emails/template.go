package emails

import (
	"bytes"
	"html/template"
)

// ConfirmationSubject is the fixed subject for RSVP confirmation emails. The
// template does not vary by eventual approval outcome; guests get a second
// email once their attendance is confirmed.
const ConfirmationSubject = "RSVP Confirmation - Fifty Years of Grace"

var confirmationTmpl = template.Must(template.New("rsvp_confirmation").Parse(`<html>
<body style="background-color:#ffffff;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,sans-serif;">
  <div style="margin:0 auto;padding:20px 0 48px;max-width:560px;">
    <h1 style="font-size:24px;font-weight:bold;color:#D4AF37;font-family:serif;text-align:center;">Fifty Years of Grace</h1>
    <p>Dear {{.FullName}},</p>
    <p>Thank you for responding to our invitation. We have received your RSVP for the celebration.</p>
    <div style="padding:16px;background-color:#faf8f3;border-radius:8px;">
      <p><strong>Status:</strong> Pending Confirmation<br/>
      <strong>Guests:</strong> {{.TotalGuests}}</p>
    </div>
    <p>We verify the details pending approval. You will receive another email once your attendance is confirmed.</p>
    <hr style="border-color:#e6e6e6;margin:20px 0;"/>
    <p style="color:#8898aa;font-size:12px;">If you have any questions, please contact us.</p>
  </div>
</body>
</html>`))

type confirmationData struct {
	FullName    string
	TotalGuests int
}

// RenderConfirmation renders the pending-confirmation email body. The guest
// total includes the respondent themself, so guests_count 1 reads as 2.
func RenderConfirmation(fullName string, guestsCount int) (string, error) {
	if fullName == "" {
		fullName = "Guest"
	}
	total := guestsCount + 1
	if total < 1 {
		total = 1
	}
	var buf bytes.Buffer
	err := confirmationTmpl.Execute(&buf, confirmationData{FullName: fullName, TotalGuests: total})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
