package sitebot_test

import (
	"errors"
	"testing"

	"github.com/sitewise/sitebot"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := sitebot.Errorf(sitebot.EEMPTY, "no usable content from %d URLs", 3)

	assert.Equal(t, sitebot.EEMPTY, sitebot.ErrorCode(err))
	assert.Equal(t, "no usable content from 3 URLs", sitebot.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, sitebot.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, sitebot.EINTERNAL, sitebot.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, sitebot.ErrorMessage(nil))
}
