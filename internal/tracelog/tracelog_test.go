package tracelog_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nodesketch/dotlayout/internal/tracelog"
	"github.com/stretchr/testify/assert"
)

func TestLogger_DropsBelowMinLevel(t *testing.T) {
	var buf bytes.Buffer
	l := tracelog.New(&buf)
	l.SetLevel(tracelog.LevelWarn)

	l.Debugln("should not appear")
	l.Infoln("also should not appear")
	l.Warnln("this one should appear")

	out := buf.String()
	assert.NotContains(t, out, "should not appear")
	assert.Contains(t, out, "WARN: this one should appear")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, tracelog.LevelDebug, tracelog.ParseLevel("debug"))
	assert.Equal(t, tracelog.LevelWarn, tracelog.ParseLevel("WARN"))
	assert.Equal(t, tracelog.LevelInfo, tracelog.ParseLevel("bogus"))
}

func TestLogger_FormatsWithArgs(t *testing.T) {
	var buf bytes.Buffer
	l := tracelog.New(&buf)
	l.Infof("parsed %d nodes", 5)
	assert.True(t, strings.Contains(buf.String(), "parsed 5 nodes"))
}
