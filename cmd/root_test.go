package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootRegistersAllCommands(t *testing.T) {
	names := make([]string, 0, len(rootCmd.Commands()))
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"auth", "orgs", "repos", "stale", "issues", "stats", "overview"} {
		assert.Contains(t, names, want)
	}
}

func TestFlagDefaults(t *testing.T) {
	testCases := []struct {
		command string
		flag    string
		want    string
	}{
		{command: "repos", flag: "sort", want: "activity"},
		{command: "repos", flag: "org", want: ""},
		{command: "stale", flag: "days", want: "90"},
		{command: "overview", flag: "days", want: "90"},
		{command: "auth", flag: "token", want: ""},
		{command: "auth", flag: "web", want: "false"},
	}

	for _, tc := range testCases {
		t.Run(tc.command+"_"+tc.flag, func(t *testing.T) {
			c, _, err := rootCmd.Find([]string{tc.command})
			require.NoError(t, err)
			f := c.Flags().Lookup(tc.flag)
			require.NotNil(t, f, "flag %q not registered on %q", tc.flag, tc.command)
			assert.Equal(t, tc.want, f.DefValue)
		})
	}
}

func TestGlobalFlagDefaults(t *testing.T) {
	flags := rootCmd.PersistentFlags()

	json := flags.Lookup("json")
	require.NotNil(t, json)
	assert.Equal(t, "false", json.DefValue)

	verbose := flags.Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "false", verbose.DefValue)

	concurrency := flags.Lookup("concurrency")
	require.NotNil(t, concurrency)
	assert.Equal(t, "4", concurrency.DefValue)
}

// executeRoot runs the root command with the given arguments and returns
// its output. The help and version flags stick between parses on the
// package-level command, so they get reset afterwards.
func executeRoot(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		for _, name := range []string{"help", "version"} {
			if f := rootCmd.Flags().Lookup(name); f != nil {
				_ = f.Value.Set("false")
			}
		}
	})
	require.NoError(t, rootCmd.Execute())
	return buf.String()
}

func TestRootHelpListsCommands(t *testing.T) {
	out := executeRoot(t, "--help")

	assert.Contains(t, out, "Manage and monitor multiple GitHub organizations")
	for _, want := range []string{"auth", "orgs", "repos", "stale", "issues", "stats", "overview"} {
		assert.Contains(t, out, want)
	}
}

func TestVersionFlag(t *testing.T) {
	out := executeRoot(t, "--version")

	assert.Contains(t, out, "gitorg")
	assert.Contains(t, out, "0.1.0")
}
