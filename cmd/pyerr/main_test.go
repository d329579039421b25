/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"dirpx.dev/pyerr"
	"dirpx.dev/pyerr/apis"
	"dirpx.dev/pyerr/code"
	"dirpx.dev/pyerr/kind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestExplain_Args(t *testing.T) {
	out, err := run(t, "", "explain", "AssertionError:", "4", "!=", "8")
	require.NoError(t, err)
	assert.Equal(t,
		"Al realizar una comparación, se esperaba obtener el valor `8`, pero se obtuvo el valor `4`\n\n"+
			"Revisá tus cálculos y algoritmos y asegurate de que devuelvan los valores correctos\n",
		out)
}

func TestExplain_Stdin(t *testing.T) {
	out, err := run(t, "NameError: name 'true' is not defined\n", "explain", "--locale", "en")
	require.NoError(t, err)
	assert.Contains(t, out, "`true`")
	assert.Contains(t, out, "`True`")
}

func TestExplain_NoMatch(t *testing.T) {
	out, err := run(t, "", "explain", "KeyError: 'x'")
	require.NoError(t, err)
	assert.Equal(t, noExplanation+"\n", out)
}

func TestExplain_JSON(t *testing.T) {
	out, err := run(t, "", "explain", "--json", "ValueError: invalid literal for int() with base 10: 'hello'")
	require.NoError(t, err)

	var v apis.ExplanationView
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.True(t, v.Explained)
	assert.Equal(t, string(kind.IntConversion), v.Kind)
	assert.Equal(t, map[string]string{"value": "hello"}, v.Fields)
}

func TestExplain_Malformed(t *testing.T) {
	_, err := run(t, "", "explain", "TypeError: 'int' object is not callable")
	require.Error(t, err)
	assert.Equal(t, code.MalformedInput, pyerr.CodeOf(err))
}

func TestRoot_BadLocale(t *testing.T) {
	_, err := run(t, "", "--locale", "fr", "explain", "KeyError: 'x'")
	require.Error(t, err)

	_, err = run(t, "", "--locale", "!!", "kinds")
	require.Error(t, err)
}

func TestRoot_LocalesDir(t *testing.T) {
	dir := t.TempDir()
	var b strings.Builder
	b.WriteString("locale: pt\nkinds:\n")
	for _, k := range kind.All() {
		b.WriteString("  " + string(k) + ":\n    header: \"pt " + string(k) + "\"\n")
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pt.yaml"), []byte(b.String()), 0o644))

	out, err := run(t, "", "--locales-dir", dir, "--locale", "pt", "explain", "IndexError: list index out of range")
	require.NoError(t, err)
	assert.Equal(t, "pt indexOutOfRange\n\n\n", out)

	_, err = run(t, "", "--locales-dir", filepath.Join(dir, "missing"), "kinds")
	require.Error(t, err)
}

func TestKinds(t *testing.T) {
	out, err := run(t, "", "kinds")
	require.NoError(t, err)
	for _, k := range kind.All() {
		assert.Contains(t, out, string(k))
	}
	assert.Contains(t, out, "missingReference")
	assert.Contains(t, out, "locales: [en es]")
}

func TestServe_StopsOnCancel(t *testing.T) {
	a := &app{locale: "es"}
	require.NoError(t, a.setup())

	httpLis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	grpcLis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.serve(ctx, httpLis, grpcLis, time.Second) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop")
	}
}
