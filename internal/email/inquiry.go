package email

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"

	"salonweb/internal/model"
)

// InquiryMessage builds the notification the salon receives for an inquiry.
// Replies go straight to the visitor.
func InquiryMessage(ctx context.Context, inq model.Inquiry, from, to string) (Message, error) {
	var html strings.Builder
	if err := inquiryHTML(inq).Render(ctx, &html); err != nil {
		return Message{}, fmt.Errorf("render inquiry html: %w", err)
	}
	return Message{
		From:    from,
		To:      []string{to},
		ReplyTo: inq.Email,
		Subject: inquirySubject(inq),
		Text:    inquiryText(inq),
		HTML:    html.String(),
	}, nil
}

func inquirySubject(inq model.Inquiry) string {
	if inq.Service != "" {
		return fmt.Sprintf("New inquiry from %s: %s", inq.Name, inq.Service)
	}
	return "New inquiry from " + inq.Name
}

func inquiryText(inq model.Inquiry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", inq.Name)
	fmt.Fprintf(&b, "Email: %s\n", inq.Email)
	if inq.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", inq.Phone)
	}
	if inq.Service != "" {
		fmt.Fprintf(&b, "Service: %s\n", inq.Service)
	}
	fmt.Fprintf(&b, "\n%s\n", inq.Message)
	fmt.Fprintf(&b, "\n--\nReference %s", inq.ID)
	return b.String()
}

func inquiryHTML(inq model.Inquiry) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		row := func(label, value string) string {
			if value == "" {
				return ""
			}
			return "<tr><th align=\"left\">" + label + "</th><td>" + templ.EscapeString(value) + "</td></tr>"
		}
		var b strings.Builder
		b.WriteString("<h2>New website inquiry</h2><table>")
		b.WriteString(row("Name", inq.Name))
		b.WriteString(row("Email", inq.Email))
		b.WriteString(row("Phone", inq.Phone))
		b.WriteString(row("Service", inq.Service))
		b.WriteString("</table><p style=\"white-space:pre-wrap\">")
		b.WriteString(templ.EscapeString(inq.Message))
		b.WriteString("</p><p><small>Reference ")
		b.WriteString(templ.EscapeString(inq.ID))
		b.WriteString("</small></p>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Mailto builds a mailto: link prefilled with the visitor's message, offered
// when the provider cannot be reached.
func Mailto(to string, f model.Inquiry) string {
	q := url.Values{}
	subject := "Inquiry from " + f.Name
	if f.Service != "" {
		subject += ": " + f.Service
	}
	q.Set("subject", subject)
	body := f.Message
	if f.Phone != "" {
		body += "\n\nPhone: " + f.Phone
	}
	q.Set("body", body)
	// mailto bodies must use %20 rather than + for spaces.
	return "mailto:" + to + "?" + strings.ReplaceAll(q.Encode(), "+", "%20")
}
