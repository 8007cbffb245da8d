package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Is(t *testing.T) {
	wrapped := fmt.Errorf("transfer failed: %w", ErrInsufficientBalance)

	assert.ErrorIs(t, wrapped, ErrInsufficientBalance)
	assert.NotErrorIs(t, wrapped, ErrInvalidAmount)

	var de *DomainError
	assert.True(t, errors.As(wrapped, &de))
	assert.Equal(t, "INSUFFICIENT_BALANCE", de.Code)
}

func TestDomainError_Message(t *testing.T) {
	assert.Equal(t, "cannot transfer to yourself", ErrSelfTransfer.Error())
	assert.Equal(t, "amount must be greater than zero", ErrInvalidAmount.Error())
}
