package usecase

import (
	"errors"
	"strings"
)

const maxMessageLength = 1000

// ValidateMessageContent trims the draft and rejects it before any write:
// empty or whitespace-only content and content over 1000 characters never
// reach the database.
func ValidateMessageContent(content string) (string, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "", errors.New("message content is empty")
	}
	if len([]rune(trimmed)) > maxMessageLength {
		return "", errors.New("message content exceeds 1000 characters")
	}
	return trimmed, nil
}
