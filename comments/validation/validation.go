package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/clipstream/api/comments/models"
)

// MaxCommentLength is the maximum comment length in characters
const MaxCommentLength = 1000

// ValidateCreateCommentRequest validates the create comment request
func ValidateCreateCommentRequest(req *models.CreateCommentRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}

	if req.Text == "" {
		return fmt.Errorf("text is required")
	}

	if len(strings.TrimSpace(req.Text)) < 1 {
		return fmt.Errorf("text cannot be empty or whitespace only")
	}

	if utf8.RuneCountInString(req.Text) > MaxCommentLength {
		return fmt.Errorf("text must be at most %d characters", MaxCommentLength)
	}

	return nil
}
