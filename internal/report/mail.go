package report

// Mail is an outgoing message.
type Mail struct {
	To          []string
	Subject     string
	Body        string
	Attachments []Attachment
}

// Attachment is a file carried by a Mail.
type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}

// WorkReportMail builds the message that delivers a rendered work report.
func WorkReportMail(to string, day string, w WorkReport, pdf []byte) Mail {
	return Mail{
		To:      []string{to},
		Subject: w.EmailSubject(),
		Body:    w.EmailText(),
		Attachments: []Attachment{{
			Name:        WorkReportFilename(day),
			ContentType: "application/pdf",
			Data:        pdf,
		}},
	}
}
