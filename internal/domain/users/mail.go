package users

import (
	"fmt"
	"html"

	mailport "pawfam-api/internal/ports/mail"
)

func resetCodeMessage(u User, code string) mailport.Message {
	return mailport.Message{
		To:      u.Email,
		Subject: "PawFam password reset code",
		Text: fmt.Sprintf("Hi %s,\n\nYour password reset code is %s. It expires in 10 minutes.\n"+
			"If you did not request a reset you can ignore this email.\n", u.Username, code),
		HTML: fmt.Sprintf("<p>Hi %s,</p><p>Your password reset code is <strong>%s</strong>. It expires in 10 minutes.</p>"+
			"<p>If you did not request a reset you can ignore this email.</p>", html.EscapeString(u.Username), code),
	}
}

func passwordChangedMessage(u User) mailport.Message {
	return mailport.Message{
		To:      u.Email,
		Subject: "Your PawFam password was changed",
		Text:    fmt.Sprintf("Hi %s,\n\nYour password was reset successfully.\n", u.Username),
		HTML:    fmt.Sprintf("<p>Hi %s,</p><p>Your password was reset successfully.</p>", html.EscapeString(u.Username)),
	}
}
