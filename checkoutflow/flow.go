// Package checkoutflow models the client-side checkout flow as an explicit
// state machine so any frontend (browser, CLI, SSR) can drive the same
// transitions the storefront uses.
package checkoutflow

import (
	"errors"
	"fmt"

	"github.com/hasselmann007-dev/pink-store-v2/models"
)

// State is a checkout UI state.
type State string

const (
	StateIdle       State = "idle"
	StateProcessing State = "processing"
	StatePix        State = "pix"
	StateSuccess    State = "success"
	StateError      State = "error"
)

// ErrInvalidTransition is returned when an event does not apply to the
// current state.
var ErrInvalidTransition = errors.New("invalid checkout flow transition")

// Flow drives a single checkout attempt. The pix state is suspended: it is
// never advanced automatically, only by explicit user action.
type Flow struct {
	state   State
	pix     models.PixInfo
	lastErr string
}

// New returns a flow in the idle state.
func New() *Flow {
	return &Flow{state: StateIdle}
}

func (f *Flow) State() State { return f.state }

// Pix returns the issued PIX charge. Only meaningful in the pix state.
func (f *Flow) Pix() models.PixInfo { return f.pix }

// LastError returns the failure message shown in the error state.
func (f *Flow) LastError() string { return f.lastErr }

// Submit starts a checkout: idle -> processing.
func (f *Flow) Submit() error {
	if f.state != StateIdle {
		return f.invalid("submit")
	}
	f.state = StateProcessing
	f.lastErr = ""
	return nil
}

// PixIssued records a gateway-issued PIX charge: processing -> pix.
func (f *Flow) PixIssued(pix models.PixInfo) error {
	if f.state != StateProcessing {
		return f.invalid("pix issued")
	}
	f.state = StatePix
	f.pix = pix
	return nil
}

// Succeed completes a checkout that did not suspend on PIX:
// processing -> success.
func (f *Flow) Succeed() error {
	if f.state != StateProcessing {
		return f.invalid("succeed")
	}
	f.state = StateSuccess
	return nil
}

// Fail records a checkout failure: processing -> error.
func (f *Flow) Fail(message string) error {
	if f.state != StateProcessing {
		return f.invalid("fail")
	}
	f.state = StateError
	f.lastErr = message
	return nil
}

// CopyCode returns the PIX copy-paste string. Valid only while suspended in
// the pix state.
func (f *Flow) CopyCode() (string, error) {
	if f.state != StatePix {
		return "", f.invalid("copy code")
	}
	return f.pix.Qrcode, nil
}

// ShouldWarnOnLeave reports whether navigating away needs a confirmation
// prompt. Only the pix state warns; browsers may ignore the message text.
func (f *Flow) ShouldWarnOnLeave() bool {
	return f.state == StatePix
}

// ConfirmLeave abandons the pending PIX charge: pix -> idle.
func (f *Flow) ConfirmLeave() error {
	if f.state != StatePix {
		return f.invalid("confirm leave")
	}
	f.state = StateIdle
	f.pix = models.PixInfo{}
	return nil
}

// Reset returns a finished flow to idle: success/error -> idle.
func (f *Flow) Reset() error {
	if f.state != StateSuccess && f.state != StateError {
		return f.invalid("reset")
	}
	f.state = StateIdle
	f.lastErr = ""
	f.pix = models.PixInfo{}
	return nil
}

func (f *Flow) invalid(event string) error {
	return fmt.Errorf("%w: %s in state %s", ErrInvalidTransition, event, f.state)
}
