package readme

import (
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/mod/modfile"
)

func parseGoMod(t *testing.T) *modfile.File {
	t.Helper()

	goModBytes, err := os.ReadFile("../go.mod")
	require.NoError(t, err)

	goMod, err := modfile.Parse("../go.mod", goModBytes, nil)
	require.NoError(t, err)
	return goMod
}

func readReadme(t *testing.T) string {
	t.Helper()

	readmeBytes, err := os.ReadFile("../README.md")
	require.NoError(t, err)
	return string(readmeBytes)
}

var regexShoutrrrURL = regexp.MustCompile(`https://containrrr.dev/shoutrrr/v[0-9.]+/services/overview/`)

func Test_Readme_Shoutrrr_Version(t *testing.T) {
	t.Parallel()

	goMod := parseGoMod(t)

	shoutrrrVersion := ""
	for _, require := range goMod.Require {
		if require.Mod.Path == "github.com/containrrr/shoutrrr" {
			shoutrrrVersion = require.Mod.Version
		}
	}
	require.NotEmpty(t, shoutrrrVersion)

	// Remove bugfix suffix from version
	lastDot := strings.LastIndex(shoutrrrVersion, ".")
	require.GreaterOrEqual(t, lastDot, 0)
	expectedShoutrrrURL := "https://containrrr.dev/shoutrrr/" +
		shoutrrrVersion[:lastDot] + "/services/overview/"

	readmeShoutrrrURLs := regexShoutrrrURL.FindAllString(readReadme(t), -1)
	require.NotEmpty(t, readmeShoutrrrURLs)

	for _, readmeShoutrrrURL := range readmeShoutrrrURLs {
		assert.Equal(t, expectedShoutrrrURL, readmeShoutrrrURL,
			"README.md contains an outdated shoutrrr URL")
	}
}

var regexGoBadge = regexp.MustCompile(`badge/go-([0-9.]+)-blue`)

func Test_Readme_Go_Version(t *testing.T) {
	t.Parallel()

	goMod := parseGoMod(t)
	require.NotNil(t, goMod.Go)

	match := regexGoBadge.FindStringSubmatch(readReadme(t))
	require.Len(t, match, 2)

	assert.Equal(t, goMod.Go.Version, match[1])
}
