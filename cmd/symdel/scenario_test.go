// Copyright 2017, Kerby Shedden and the Muscato contributors.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario is one end-to-end CLI case loaded from
// testdata/scenarios.toml: the flag set, the input lines for each side,
// and the exact expected output stream.
type Scenario struct {
	Name  string
	Opts  []string
	Stdin string
	FileA string
	FileB string
	Want  string
}

func getScenarios(t *testing.T) []Scenario {

	s, err := os.ReadFile(filepath.Join("testdata", "scenarios.toml"))
	require.NoError(t, err)

	type vd struct {
		Scenario []Scenario
	}

	var v vd
	_, err = toml.Decode(string(s), &v)
	require.NoError(t, err)
	require.NotEmpty(t, v.Scenario)

	return v.Scenario
}

func TestScenarios(t *testing.T) {

	for _, sc := range getScenarios(t) {
		t.Run(sc.Name, func(t *testing.T) {
			args := append([]string(nil), sc.Opts...)

			dir := t.TempDir()
			if sc.FileA != "" {
				fa := filepath.Join(dir, "a.txt")
				require.NoError(t, os.WriteFile(fa, []byte(sc.FileA), 0o600))
				args = append(args, fa)
			}
			if sc.FileB != "" {
				fb := filepath.Join(dir, "b.txt")
				require.NoError(t, os.WriteFile(fb, []byte(sc.FileB), 0o600))
				args = append(args, fb)
			}

			var out, errOut bytes.Buffer
			code := run(args, strings.NewReader(sc.Stdin), &out, &errOut)

			assert.Equal(t, 0, code, errOut.String())
			assert.Equal(t, sc.Want, out.String())
		})
	}
}
