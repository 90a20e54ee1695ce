package entity

import "testing"

func TestPaymentCanTransitionTo(t *testing.T) {
	all := []PaymentStatus{PaymentPending, PaymentPaid, PaymentRefunded, PaymentFailed}

	allowed := map[PaymentStatus]map[PaymentStatus]bool{
		PaymentPending: {
			PaymentPaid:   true,
			PaymentFailed: true,
		},
		PaymentPaid: {
			PaymentRefunded: true,
		},
	}

	for _, from := range all {
		for _, to := range all {
			p := Payment{Status: from}
			got := p.CanTransitionTo(to)
			if got != allowed[from][to] {
				t.Errorf("%s -> %s: got %v, want %v", from, to, got, allowed[from][to])
			}
		}
	}
}
