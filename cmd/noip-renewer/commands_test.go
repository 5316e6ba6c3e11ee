package main

import (
	"bytes"
	"testing"

	"github.com/qdm12/noip-renewer/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_newVersionCommand(t *testing.T) {
	t.Parallel()

	buildInfo := models.BuildInformation{
		Version: "latest",
		Commit:  "0123456789abcdef",
		Date:    "2024-03-01",
	}
	command := newVersionCommand(buildInfo)
	output := bytes.NewBuffer(nil)
	command.SetOut(output)
	command.SetArgs(nil)

	err := command.Execute()

	require.NoError(t, err)
	assert.Equal(t, "latest-0123456\n", output.String())
}
