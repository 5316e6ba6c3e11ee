package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_allocatorOptions(t *testing.T) {
	t.Parallel()

	defaultsCount := len(allocatorOptions(Settings{}))

	testCases := map[string]struct {
		settings   Settings
		extraCount int
	}{
		"no_proxy_no_exec_path": {
			settings: Settings{UserAgent: "agent"},
		},
		"proxy": {
			settings:   Settings{Proxy: "http://proxy:8888"},
			extraCount: 1,
		},
		"proxy_and_exec_path": {
			settings: Settings{
				Proxy:    "http://proxy:8888",
				ExecPath: "/usr/bin/chromium",
			},
			extraCount: 2,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			options := allocatorOptions(testCase.settings)

			assert.Len(t, options, defaultsCount+testCase.extraCount)
		})
	}
}
