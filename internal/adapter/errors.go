package adapter

import "errors"

var (
	ErrBuildingMessage = errors.New("error building mail message")
	ErrSendingMail     = errors.New("error sending mail")
)
