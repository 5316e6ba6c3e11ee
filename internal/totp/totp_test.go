package totp

import (
	"testing"
	"time"

	"github.com/pquerna/otp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RFC 6238 appendix B SHA1 secret "12345678901234567890" encoded in base32.
const rfcSecret = "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"

func Test_Generator_Code(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		secret     string
		time       time.Time
		code       string
		errWrapped error
		errMessage string
	}{
		"rfc_vector_59": {
			secret: rfcSecret,
			time:   time.Unix(59, 0),
			code:   "287082",
		},
		"rfc_vector_1111111109": {
			secret: rfcSecret,
			time:   time.Unix(1111111109, 0),
			code:   "081804",
		},
		"lowercase_secret": {
			secret: "gezdgnbvgy3tqojqgezdgnbvgy3tqojq",
			time:   time.Unix(59, 0),
			code:   "287082",
		},
		"invalid_base32_secret": {
			secret:     "not base32!",
			time:       time.Unix(59, 0),
			errWrapped: otp.ErrValidateSecretInvalidBase32,
			errMessage: "generating code: Decoding of secret as base32 failed.",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			timeNow := func() time.Time { return testCase.time }
			generator := New(testCase.secret, timeNow)

			code, err := generator.Code()

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
			assert.Equal(t, testCase.code, code)
		})
	}
}

func Test_Validate(t *testing.T) {
	t.Parallel()

	err := Validate(rfcSecret)
	require.NoError(t, err)

	err = Validate("1nv@lid")
	assert.ErrorIs(t, err, otp.ErrValidateSecretInvalidBase32)
}
