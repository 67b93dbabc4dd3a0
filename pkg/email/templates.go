package email

// emailTemplates holds every notification body. Optional fields are wrapped in
// {{with}} so an absent value drops its whole line.
const emailTemplates = `
{{define "head"}}<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #E53935; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0; }
        .content { background: #f9f9f9; padding: 20px; border-radius: 0 0 8px 8px; }
        .details { background: white; padding: 15px; border-radius: 8px; margin: 15px 0; }
        .footer { text-align: center; margin-top: 20px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
<div class="container">{{end}}

{{define "foot"}}</div>
</body>
</html>{{end}}

{{define "signature"}}
        <p>Best regards,<br>{{.Brand.Name}} Team</p>
    </div>
    <div class="footer">
        <p>{{.Brand.Tagline}}</p>
    </div>{{end}}

{{define "appointment_customer"}}{{template "head" .}}
    <div class="header">
        <h1>Appointment Booking Confirmed!</h1>
    </div>
    <div class="content">
        <p>Dear {{.Name}},</p>
        <p>Thank you for booking an appointment with {{.Brand.Name}}. We have received your request and will confirm your appointment shortly.</p>
        <div class="details">
            <h3>Appointment Details:</h3>
            <p><strong>Service:</strong> {{.Service}}</p>
            <p><strong>Date:</strong> {{.PreferredDate}}</p>
            <p><strong>Time:</strong> {{.PreferredTime}}</p>
            {{- with .Company}}
            <p><strong>Company:</strong> {{.}}</p>{{end}}
            {{- with .Description}}
            <p><strong>Description:</strong> {{.}}</p>{{end}}
        </div>
        {{- with .Phone}}
        <p>Our team will contact you at <strong>{{.}}</strong> to confirm the appointment.</p>{{end}}
        <p>If you have any questions, please call us at <strong>{{.Brand.Phone}}</strong>.</p>
{{template "signature" .}}
{{template "foot"}}{{end}}

{{define "appointment_admin"}}{{template "head" .}}
    <div class="header">
        <h1>New Appointment Booking</h1>
    </div>
    <div class="content">
        <div class="details">
            <h3>Customer Details:</h3>
            <p><strong>Name:</strong> {{.Name}}</p>
            <p><strong>Email:</strong> {{.Email}}</p>
            {{- with .Phone}}
            <p><strong>Phone:</strong> {{.}}</p>{{end}}
            {{- with .Company}}
            <p><strong>Company:</strong> {{.}}</p>{{end}}
        </div>
        <div class="details">
            <h3>Appointment Details:</h3>
            <p><strong>Service:</strong> {{.Service}}</p>
            <p><strong>Date:</strong> {{.PreferredDate}}</p>
            <p><strong>Time:</strong> {{.PreferredTime}}</p>
            {{- with .Description}}
            <p><strong>Description:</strong> {{.}}</p>{{end}}
        </div>
    </div>
{{template "foot"}}{{end}}

{{define "contact_customer"}}{{template "head" .}}
    <div class="header">
        <h1>Message Received!</h1>
    </div>
    <div class="content">
        <p>Dear {{.Name}},</p>
        <p>Thank you for contacting {{.Brand.Name}}. We have received your message and will get back to you as soon as possible.</p>
        <p>If you have urgent queries, please call us at <strong>{{.Brand.Phone}}</strong>.</p>
{{template "signature" .}}
{{template "foot"}}{{end}}

{{define "contact_admin"}}{{template "head" .}}
    <div class="header">
        <h1>New Contact Message</h1>
    </div>
    <div class="content">
        <div class="details">
            <p><strong>From:</strong> {{.Name}}</p>
            <p><strong>Email:</strong> {{.Email}}</p>
            {{- with .Phone}}
            <p><strong>Phone:</strong> {{.}}</p>{{end}}
            <p><strong>Subject:</strong> {{.Subject}}</p>
        </div>
        <div class="details">
            <h3>Message:</h3>
            <p>{{.Message}}</p>
        </div>
    </div>
{{template "foot"}}{{end}}
`
