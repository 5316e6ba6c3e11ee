package browser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_screenshotPath(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		dir  string
		name string
		path string
	}{
		"checkpoint": {
			dir:  "screenshots",
			name: "debug1",
			path: filepath.Join("screenshots", "debug1.png"),
		},
		"host_results": {
			dir:  "/data",
			name: "myhost.ddns.net-results",
			path: filepath.Join("/data", "myhost.ddns.net-results.png"),
		},
		"path_separators": {
			dir:  "screenshots",
			name: "../etc/passwd",
			path: filepath.Join("screenshots", ".._etc_passwd.png"),
		},
		"surrounding_spaces": {
			dir:  "screenshots",
			name: " host_success ",
			path: filepath.Join("screenshots", "host_success.png"),
		},
		"empty": {
			dir:  "screenshots",
			name: "",
			path: filepath.Join("screenshots", "unnamed.png"),
		},
		"parent_directory": {
			dir:  "screenshots",
			name: "..",
			path: filepath.Join("screenshots", "unnamed.png"),
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := screenshotPath(testCase.dir, testCase.name)

			assert.Equal(t, testCase.path, path)
		})
	}
}
