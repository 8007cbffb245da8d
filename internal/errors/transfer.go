package errors

var (
	ErrSenderNotFound = &DomainError{
		Code:    "SENDER_NOT_FOUND",
		Message: "sender not found",
	}
	ErrRecipientNotFound = &DomainError{
		Code:    "RECIPIENT_NOT_FOUND",
		Message: "recipient not found",
	}
	ErrSelfTransfer = &DomainError{
		Code:    "SELF_TRANSFER",
		Message: "cannot transfer to yourself",
	}
)
