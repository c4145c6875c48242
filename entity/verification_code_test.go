package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVerificationCodeLifecycle(t *testing.T) {
	now := time.Now()
	code := VerificationCode{ExpiresAt: now.Add(10 * time.Minute)}

	assert.False(t, code.Expired(now))
	assert.False(t, code.Expired(now.Add(10*time.Minute)))
	assert.True(t, code.Expired(now.Add(10*time.Minute+time.Second)))

	assert.False(t, code.Consumed())
	code.ConsumedAt = &now
	assert.True(t, code.Consumed())
}
