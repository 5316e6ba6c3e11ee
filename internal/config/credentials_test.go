package config

import (
	"testing"

	"github.com/qdm12/gosettings/reader"
	"github.com/stretchr/testify/assert"
)

func Test_Credentials_read(t *testing.T) {
	testCases := map[string]struct {
		environ        map[string]string
		username       string
		deprecatedKeys []string
	}{
		"username_unset": {
			environ: map[string]string{},
		},
		"noip_username": {
			environ: map[string]string{
				"NOIP_USERNAME": "User@example.com",
				"USERNAME":      "localuser",
			},
			username: "User@example.com",
		},
		"deprecated_username": {
			environ: map[string]string{
				"USERNAME": "User@example.com",
			},
			username:       "User@example.com",
			deprecatedKeys: []string{"USERNAME"},
		},
	}

	for name, testCase := range testCases {
		t.Run(name, func(t *testing.T) {
			for _, key := range []string{"NOIP_USERNAME", "USERNAME", "PASSWORD", "TOTP_SECRET"} {
				t.Setenv(key, testCase.environ[key])
			}

			var deprecatedKeys []string
			r := reader.New(reader.Settings{
				HandleDeprecatedKey: func(_, oldKey, newKey string) {
					assert.Equal(t, "NOIP_USERNAME", newKey)
					deprecatedKeys = append(deprecatedKeys, oldKey)
				},
			})

			var credentials Credentials
			credentials.read(r)

			assert.Equal(t, testCase.username, credentials.Username)
			assert.Equal(t, testCase.deprecatedKeys, deprecatedKeys)
		})
	}
}
