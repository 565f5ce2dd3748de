package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clipstream/api/comments/models"
)

func TestValidateCreateCommentRequest(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		err := ValidateCreateCommentRequest(&models.CreateCommentRequest{Text: "Great video!"})
		assert.NoError(t, err)
	})

	t.Run("nil request", func(t *testing.T) {
		err := ValidateCreateCommentRequest(nil)
		assert.Error(t, err)
	})

	t.Run("empty text", func(t *testing.T) {
		err := ValidateCreateCommentRequest(&models.CreateCommentRequest{Text: ""})
		assert.Error(t, err)
	})

	t.Run("whitespace only", func(t *testing.T) {
		err := ValidateCreateCommentRequest(&models.CreateCommentRequest{Text: " \t\n "})
		assert.Error(t, err)
	})

	t.Run("at the length limit", func(t *testing.T) {
		err := ValidateCreateCommentRequest(&models.CreateCommentRequest{Text: strings.Repeat("a", MaxCommentLength)})
		assert.NoError(t, err)
	})

	t.Run("over the length limit", func(t *testing.T) {
		err := ValidateCreateCommentRequest(&models.CreateCommentRequest{Text: strings.Repeat("a", MaxCommentLength+1)})
		assert.Error(t, err)
	})

	t.Run("multibyte characters count as single characters", func(t *testing.T) {
		err := ValidateCreateCommentRequest(&models.CreateCommentRequest{Text: strings.Repeat("é", MaxCommentLength)})
		assert.NoError(t, err)
	})
}
