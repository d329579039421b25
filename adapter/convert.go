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

// Package adapter converts between pyerr values and their wire shapes:
// apis views and protobuf structs shared by the HTTP and gRPC surfaces.
package adapter

import (
	"fmt"
	"maps"
	"slices"

	"dirpx.dev/pyerr"
	"dirpx.dev/pyerr/apis"
	"dirpx.dev/pyerr/code"
	"dirpx.dev/pyerr/service"
	"google.golang.org/protobuf/types/known/structpb"
)

// Request field names.
const (
	FieldMessage = "message"
	FieldLocale  = "locale"
)

// ToView converts a failure into a public ErrorView. It performs no
// redaction: detail values are stringified with fmt and copied as-is.
func ToView(e *pyerr.Error) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	v := apis.ErrorView{
		Code:    string(e.Code),
		Kind:    string(e.Kind),
		Locale:  string(e.Locale),
		Message: e.Message,
	}
	if len(e.Details) > 0 {
		v.Details = make(map[string]string, len(e.Details))
		for k, d := range e.Details {
			v.Details[k] = fmt.Sprint(d)
		}
	}
	return v
}

// ToExplanation converts a service result into its public view.
func ToExplanation(r service.Result) apis.ExplanationView {
	v := apis.ExplanationView{
		Explained: r.Explained,
		Locale:    string(r.Locale),
	}
	if !r.Explained || r.Record == nil {
		return v
	}
	v.Kind = string(r.Record.Kind())
	if fs := r.Record.Fields(); len(fs) > 0 {
		v.Fields = make(map[string]string, len(fs))
		for _, f := range fs {
			v.Fields[f.Name] = f.Value
		}
	}
	v.Header = r.Rendered.Header
	v.Details = r.Rendered.Details
	return v
}

// ViewToStruct encodes an ErrorView as a protobuf Struct.
func ViewToStruct(v apis.ErrorView) (*structpb.Struct, error) {
	m := map[string]any{"code": v.Code}
	if v.Kind != "" {
		m["kind"] = v.Kind
	}
	if v.Locale != "" {
		m["locale"] = v.Locale
	}
	if v.Message != "" {
		m["message"] = v.Message
	}
	if len(v.Details) > 0 {
		m["details"] = stringMap(v.Details)
	}
	return structpb.NewStruct(m)
}

// ExplanationToStruct encodes an ExplanationView as a protobuf Struct.
func ExplanationToStruct(v apis.ExplanationView) (*structpb.Struct, error) {
	m := map[string]any{"explained": v.Explained}
	if v.Locale != "" {
		m["locale"] = v.Locale
	}
	if v.Explained {
		m["kind"] = v.Kind
		m["fields"] = stringMap(v.Fields)
		m["header"] = v.Header
		m["details"] = v.Details
	}
	return structpb.NewStruct(m)
}

// ExplanationFromStruct decodes a Struct produced by ExplanationToStruct.
// Fields of the wrong type are reported with code.Invalid.
func ExplanationFromStruct(s *structpb.Struct) (apis.ExplanationView, error) {
	var v apis.ExplanationView
	if s == nil {
		return v, pyerr.E(code.Invalid, "empty explanation")
	}
	f := s.GetFields()
	if b, ok := f["explained"]; ok {
		if _, isBool := b.GetKind().(*structpb.Value_BoolValue); !isBool {
			return v, pyerr.E(code.Invalid, "explained must be a boolean")
		}
		v.Explained = b.GetBoolValue()
	}
	var err error
	if v.Kind, err = optionalString(f, "kind"); err != nil {
		return v, err
	}
	if v.Locale, err = optionalString(f, "locale"); err != nil {
		return v, err
	}
	if v.Header, err = optionalString(f, "header"); err != nil {
		return v, err
	}
	if v.Details, err = optionalString(f, "details"); err != nil {
		return v, err
	}
	if fs := f["fields"].GetStructValue(); fs != nil {
		v.Fields = make(map[string]string, len(fs.GetFields()))
		for _, k := range slices.Sorted(maps.Keys(fs.GetFields())) {
			val, err := optionalString(fs.GetFields(), k)
			if err != nil {
				return v, err
			}
			v.Fields[k] = val
		}
	}
	return v, nil
}

// RequestToStruct builds an explain request.
func RequestToStruct(message, locale string) *structpb.Struct {
	f := map[string]*structpb.Value{FieldMessage: structpb.NewStringValue(message)}
	if locale != "" {
		f[FieldLocale] = structpb.NewStringValue(locale)
	}
	return &structpb.Struct{Fields: f}
}

// RequestFromStruct reads an explain request. The message field is
// required (it may be empty); the locale field is optional. Anything else
// of the wrong shape is reported with code.Invalid.
func RequestFromStruct(s *structpb.Struct) (message, locale string, err error) {
	if s == nil {
		return "", "", pyerr.E(code.Invalid, "empty request")
	}
	f := s.GetFields()
	if _, ok := f[FieldMessage]; !ok {
		return "", "", pyerr.E(code.Invalid, "missing field",
			pyerr.WithDetailOption("field", FieldMessage))
	}
	if message, err = optionalString(f, FieldMessage); err != nil {
		return "", "", err
	}
	if locale, err = optionalString(f, FieldLocale); err != nil {
		return "", "", err
	}
	return message, locale, nil
}

func optionalString(f map[string]*structpb.Value, name string) (string, error) {
	v, ok := f[name]
	if !ok {
		return "", nil
	}
	if _, isString := v.GetKind().(*structpb.Value_StringValue); !isString {
		return "", pyerr.E(code.Invalid, name+" must be a string",
			pyerr.WithDetailOption("field", name))
	}
	return v.GetStringValue(), nil
}

func stringMap(in map[string]string) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
