package mailer

import (
	"fmt"
	"html"

	"github.com/weblior/contact-api/internal/contact/domain"
)

// OwnerAlert builds the notification sent to the business owner for an
// accepted submission.
func OwnerAlert(from, to string, sub *domain.Submission, submissionID string) Message {
	esc := func(s string) string {
		if s == "" {
			return "-"
		}
		return html.EscapeString(s)
	}

	body := fmt.Sprintf(`<h2>New contact form submission</h2>
<p><strong>ID:</strong> %s</p>
<table cellpadding="4">
<tr><td><strong>Name</strong></td><td>%s</td></tr>
<tr><td><strong>Email</strong></td><td>%s</td></tr>
<tr><td><strong>Phone</strong></td><td>%s</td></tr>
<tr><td><strong>Package</strong></td><td>%s</td></tr>
<tr><td><strong>Budget</strong></td><td>%s</td></tr>
<tr><td><strong>Timeline</strong></td><td>%s</td></tr>
</table>
<h3>Project purpose</h3>
<p>%s</p>
<h3>Additional info</h3>
<p>%s</p>`,
		esc(submissionID),
		esc(sub.FullName),
		esc(sub.Email),
		esc(sub.Phone),
		domain.PackageLabel(sub.Package),
		esc(sub.Budget),
		esc(sub.Timeline),
		esc(sub.ProjectPurpose),
		esc(sub.AdditionalInfo),
	)

	return Message{
		From:    from,
		To:      to,
		Subject: fmt.Sprintf("New project inquiry from %s", sub.FullName),
		HTML:    body,
	}
}

// CustomerReply builds the bilingual auto-reply sent back to the
// prospective client. The Hebrew block is rendered right-to-left.
func CustomerReply(from string, sub *domain.Submission) Message {
	name := html.EscapeString(sub.FullName)

	body := fmt.Sprintf(`<div dir="rtl" style="text-align:right">
<h2>תודה שפנית אלינו, %s!</h2>
<p>קיבלנו את הפנייה שלך ונחזור אליך תוך יום עסקים אחד.</p>
</div>
<hr>
<div dir="ltr">
<h2>Thank you for reaching out, %s!</h2>
<p>We received your inquiry and will get back to you within one business day.</p>
</div>`, name, name)

	return Message{
		From:    from,
		To:      sub.Email,
		Subject: "תודה על פנייתך | Thank you for your inquiry",
		HTML:    body,
	}
}
