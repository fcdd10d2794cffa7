package ports

import "context"

// MailMessage is one outbound email.
type MailMessage struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Mailer performs a single blocking delivery attempt.
type Mailer interface {
	Send(ctx context.Context, msg MailMessage) error
}

// MailDispatcher accepts messages for asynchronous delivery. Enqueue never
// blocks the caller on the mail provider; delivery failures are retried and
// eventually logged, not surfaced to the originating request.
type MailDispatcher interface {
	Enqueue(msg MailMessage)
}

// ResendLimiter throttles OTP re-issuance per email address. Reserve returns
// false when a reservation is already held for the address; Release gives a
// held reservation back so a failed resend does not burn the window.
type ResendLimiter interface {
	Reserve(ctx context.Context, email string) (bool, error)
	Release(ctx context.Context, email string) error
}
