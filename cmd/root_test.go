package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestSkipsClientInit(t *testing.T) {
	completion := &cobra.Command{Use: "completion"}
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		completion.AddCommand(&cobra.Command{Use: shell})
	}

	root := &cobra.Command{Use: "yadirect"}
	version := &cobra.Command{Use: "version"}
	upgrade := &cobra.Command{Use: "upgrade"}
	campaigns := &cobra.Command{Use: "campaigns"}
	bids := &cobra.Command{Use: "bids"}
	bidsGet := &cobra.Command{Use: "get"}
	bids.AddCommand(bidsGet)
	root.AddCommand(completion, version, upgrade, campaigns, bids)

	// commands that run without config or credentials
	assert.True(t, skipsClientInit(version))
	assert.True(t, skipsClientInit(upgrade))
	assert.True(t, skipsClientInit(completion))
	for _, shell := range completion.Commands() {
		assert.True(t, skipsClientInit(shell), shell.Name())
	}

	// commands that talk to the API
	assert.False(t, skipsClientInit(campaigns))
	assert.False(t, skipsClientInit(bidsGet))
}
