package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestProgress_Step(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 3)

	p.Step("fetching foo")
	p.Step("fetching bar")
	p.Step("fetching baz")

	out := buf.String()
	if !strings.Contains(out, "[1/3] fetching foo") {
		t.Errorf("missing progress line for foo: %s", out)
	}
	if !strings.Contains(out, "[2/3] fetching bar") {
		t.Errorf("missing progress line for bar: %s", out)
	}
	if !strings.Contains(out, "[3/3] fetching baz") {
		t.Errorf("missing progress line for baz: %s", out)
	}
}

func TestProgress_Log(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 1)

	p.Log("hello %s", "world")

	if !strings.Contains(buf.String(), "hello world") {
		t.Errorf("missing log message: %s", buf.String())
	}
}
