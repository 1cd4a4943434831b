package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateParserResponse_MinimalValid(t *testing.T) {
	err := ValidateParserResponse([]byte(`{"parsed":{"name":"Jane Doe"}}`))
	assert.NoError(t, err)
}

func TestValidateParserResponse_UnknownFieldsPass(t *testing.T) {
	doc := []byte(`{"parsed":{"name":"Jane","newField":42},"meta":{"version":"2"}}`)
	assert.NoError(t, ValidateParserResponse(doc))
}

func TestValidateParserResponse_MissingParsed(t *testing.T) {
	err := ValidateParserResponse([]byte(`{"name":"Jane Doe"}`))

	require.Error(t, err)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateParserResponse_WrongSkillsType(t *testing.T) {
	err := ValidateParserResponse([]byte(`{"parsed":{"skills":"Go"}}`))

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
}

func TestValidateParserResponse_NotAnObject(t *testing.T) {
	err := ValidateParserResponse([]byte(`[]`))

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
}

func TestValidateParserResponse_InvalidJSON(t *testing.T) {
	err := ValidateParserResponse([]byte(`{`))
	require.Error(t, err)
}
