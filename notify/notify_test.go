/*
   Copyright 2025 The DIRPX Authors.

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

package notify_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/facet/notify"
)

func TestDefault_IsLogger(t *testing.T) {
	_, ok := notify.Default().(notify.Logger)
	assert.True(t, ok)
}

func TestSetDefault_RoutesPackageFunctions(t *testing.T) {
	rec := &notify.Recorder{}
	prev := notify.SetDefault(rec)
	defer notify.SetDefault(prev)

	notify.Notify("Hello", "world")
	notify.Error("Exception", "boom")

	assert.Equal(t, []notify.Message{
		{Level: notify.LevelInfo, Title: "Hello", Body: "world"},
		{Level: notify.LevelError, Title: "Exception", Body: "boom"},
	}, rec.Messages())

	back := notify.SetDefault(nil)
	assert.Same(t, rec, back.(*notify.Recorder))
	_, ok := notify.Default().(notify.Logger)
	assert.True(t, ok)
}

func TestLogger_WritesThroughSlog(t *testing.T) {
	var buf bytes.Buffer
	l := notify.Logger{L: slog.New(slog.NewTextHandler(&buf, nil))}

	l.Error("InvalidObject", "style: incompatible")
	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "title=InvalidObject")
	assert.Contains(t, out, "style: incompatible")

	buf.Reset()
	l.Notify("Info", "hi")
	assert.Contains(t, buf.String(), "level=INFO")
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "info", notify.LevelInfo.String())
	assert.Equal(t, "error", notify.LevelError.String())
}
