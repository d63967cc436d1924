// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		format string
		want   Format
		ok     bool
	}{
		{"json", JsonFormat, true},
		{"text", TextFormat, true},
		{"none", NoneFormat, true},
		{"yaml", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			formatter, err := NewFormatter(tt.format)
			if !tt.ok {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, formatter.Kind())
		})
	}
}

func TestJsonFormatter(t *testing.T) {
	var buf bytes.Buffer
	err := (&JsonFormatter{}).Format(map[string]string{"framework": "react"}, &buf, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"framework": "react"}`, buf.String())
}

func TestNoneFormatterWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	err := (&NoneFormatter{}).Format(map[string]string{"framework": "react"}, &buf, nil)
	require.NoError(t, err)
	assert.Zero(t, buf.Len())
}
