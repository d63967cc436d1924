// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package output

import (
	"fmt"
	"io"
)

// TextFormatter writes the value's string form. Commands that need richer
// text rendering branch on Kind() and write directly instead.
type TextFormatter struct {
}

func (f *TextFormatter) Kind() Format {
	return TextFormat
}

func (f *TextFormatter) Format(obj interface{}, writer io.Writer, opts interface{}) error {
	if s, ok := obj.(fmt.Stringer); ok {
		_, err := fmt.Fprintln(writer, s.String())
		return err
	}

	_, err := fmt.Fprintf(writer, "%+v\n", obj)
	return err
}

var _ Formatter = (*TextFormatter)(nil)
