package checkoutflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasselmann007-dev/pink-store-v2/checkoutflow"
	"github.com/hasselmann007-dev/pink-store-v2/models"
)

func pixCharge() models.PixInfo {
	return models.PixInfo{
		Qrcode:         "000201pix",
		ExpirationDate: "2026-09-02T00:00:00Z",
		Amount:         10190,
	}
}

func TestFlow_HappyPathToPix(t *testing.T) {
	flow := checkoutflow.New()
	assert.Equal(t, checkoutflow.StateIdle, flow.State())

	assert.NoError(t, flow.Submit())
	assert.Equal(t, checkoutflow.StateProcessing, flow.State())

	assert.NoError(t, flow.PixIssued(pixCharge()))
	assert.Equal(t, checkoutflow.StatePix, flow.State())
	assert.Equal(t, "000201pix", flow.Pix().Qrcode)
}

func TestFlow_PixIsSuspendedUntilUserActs(t *testing.T) {
	flow := checkoutflow.New()
	_ = flow.Submit()
	_ = flow.PixIssued(pixCharge())

	// No automatic advancement out of pix.
	assert.ErrorIs(t, flow.Succeed(), checkoutflow.ErrInvalidTransition)
	assert.ErrorIs(t, flow.Reset(), checkoutflow.ErrInvalidTransition)
	assert.Equal(t, checkoutflow.StatePix, flow.State())

	code, err := flow.CopyCode()
	assert.NoError(t, err)
	assert.Equal(t, "000201pix", code)

	assert.True(t, flow.ShouldWarnOnLeave())
	assert.NoError(t, flow.ConfirmLeave())
	assert.Equal(t, checkoutflow.StateIdle, flow.State())
	assert.False(t, flow.ShouldWarnOnLeave())
}

func TestFlow_FailureAndReset(t *testing.T) {
	flow := checkoutflow.New()
	_ = flow.Submit()

	assert.NoError(t, flow.Fail("gateway indisponível"))
	assert.Equal(t, checkoutflow.StateError, flow.State())
	assert.Equal(t, "gateway indisponível", flow.LastError())

	assert.NoError(t, flow.Reset())
	assert.Equal(t, checkoutflow.StateIdle, flow.State())
	assert.Empty(t, flow.LastError())
}

func TestFlow_SuccessWithoutPix(t *testing.T) {
	flow := checkoutflow.New()
	_ = flow.Submit()

	assert.NoError(t, flow.Succeed())
	assert.Equal(t, checkoutflow.StateSuccess, flow.State())

	assert.NoError(t, flow.Reset())
	assert.Equal(t, checkoutflow.StateIdle, flow.State())
}

func TestFlow_InvalidTransitions(t *testing.T) {
	flow := checkoutflow.New()

	assert.ErrorIs(t, flow.PixIssued(pixCharge()), checkoutflow.ErrInvalidTransition)
	assert.ErrorIs(t, flow.Fail("x"), checkoutflow.ErrInvalidTransition)
	assert.ErrorIs(t, flow.ConfirmLeave(), checkoutflow.ErrInvalidTransition)

	_, err := flow.CopyCode()
	assert.ErrorIs(t, err, checkoutflow.ErrInvalidTransition)

	_ = flow.Submit()
	assert.ErrorIs(t, flow.Submit(), checkoutflow.ErrInvalidTransition)
}
