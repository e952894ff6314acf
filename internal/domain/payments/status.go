package payments

const (
	StatusPending = "pending"
	StatusPaid    = "paid"
	StatusExpired = "expired"
	StatusFailed  = "failed"
)

// Terminal reports whether a status can never change again. Webhook replays
// and out-of-order deliveries must not move a payment out of a terminal state.
func Terminal(status string) bool {
	switch status {
	case StatusPaid, StatusExpired, StatusFailed:
		return true
	}
	return false
}

// NextStatus decides whether a reconciliation may transition a payment from
// current to mapped. Allowed transitions are pending -> pending (refresh of
// transaction metadata) and pending -> terminal. Anything arriving after a
// terminal state is a no-op.
func NextStatus(current, mapped string) (string, bool) {
	if Terminal(current) {
		return current, false
	}
	return mapped, true
}
