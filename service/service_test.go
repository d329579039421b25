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

package service_test

import (
	"testing"

	"dirpx.dev/pyerr"
	"dirpx.dev/pyerr/apis"
	"dirpx.dev/pyerr/catalog"
	"dirpx.dev/pyerr/code"
	"dirpx.dev/pyerr/explain"
	"dirpx.dev/pyerr/locale"
	"dirpx.dev/pyerr/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestExplain_Matched(t *testing.T) {
	s := service.New(nil, nil, service.WithLogger(zaptest.NewLogger(t)))

	res, err := s.Explain("TypeError: foo() takes 2 positional arguments but 3 were given", "")
	require.NoError(t, err)
	assert.True(t, res.Explained)
	assert.Equal(t, locale.Spanish, res.Locale)
	assert.Equal(t, explain.Arguments{Reference: "foo", ActualParametersCount: 2, ExpectedArgumentsCount: 3}, res.Record)
	assert.Equal(t, "Se está intentando invocar a `foo` con `3` argumento(s), pero fue definida con `2` parámetro(s)", res.Rendered.Header)
}

func TestExplain_SameAsLibrary(t *testing.T) {
	s := service.New(explain.New(), catalog.Default())
	msg := "NameError: name 'false' is not defined"

	res, err := s.Explain(msg, "en")
	require.NoError(t, err)

	rec, ok, err := explain.Classify(msg)
	require.NoError(t, err)
	require.True(t, ok)
	want, err := catalog.Default().Render(rec, locale.English)
	require.NoError(t, err)
	assert.Equal(t, want, res.Rendered)
}

func TestExplain_NoMatch(t *testing.T) {
	s := service.New(nil, nil, service.WithDefaultLocale(locale.English))
	res, err := s.Explain("IndexError: pop from empty list", "")
	require.NoError(t, err)
	assert.False(t, res.Explained)
	assert.Nil(t, res.Record)
	assert.Equal(t, apis.Rendered{}, res.Rendered)
	assert.Equal(t, locale.English, res.Locale)
}

func TestExplain_LocaleNormalized(t *testing.T) {
	s := service.New(nil, nil)
	res, err := s.Explain("IndexError: list index out of range", " en ")
	require.NoError(t, err)
	assert.Equal(t, locale.English, res.Locale)
}

func TestExplain_Errors(t *testing.T) {
	s := service.New(nil, nil)
	tests := []struct {
		name   string
		msg    string
		locale string
		want   code.Code
	}{
		{"invalid locale", "IndexError: list index out of range", "!!", code.InvalidLocale},
		{"unknown locale", "IndexError: list index out of range", "fr", code.UnknownLocale},
		{"malformed", "TypeError: 'int' object is not callable", "es", code.MalformedInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := s.Explain(tt.msg, tt.locale)
			require.Error(t, err)
			assert.Equal(t, tt.want, pyerr.CodeOf(err))
			assert.False(t, res.Explained)
		})
	}
}

// The catalog decides the locale before classification, so an unknown
// locale fails the same way for recognized and unrecognized messages.
func TestExplain_UnknownLocaleRegardlessOfMatch(t *testing.T) {
	s := service.New(nil, nil)
	for _, msg := range []string{
		"KeyError: 'x'",
		"IndexError: list index out of range",
	} {
		t.Run(msg, func(t *testing.T) {
			res, err := s.Explain(msg, "fr")
			require.Error(t, err)
			assert.Equal(t, code.UnknownLocale, pyerr.CodeOf(err))
			assert.False(t, res.Explained)
		})
	}
}
