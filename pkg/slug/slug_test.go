package slug_test

import (
	"testing"

	"github.com/go-to-sky/onelife/pkg/slug"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Hello World", "hello-world"},
		{"collapses runs", "a   ---  b", "a-b"},
		{"trims edges", "!!hello!!", "hello"},
		{"keeps digits", "Day 42", "day-42"},
		{"keeps cjk", "测试", "测试"},
		{"mixed cjk and latin", "第一次Solo旅行", "第一次solo旅行"},
		{"punctuation between cjk", "妈妈的手写食谱：回忆", "妈妈的手写食谱-回忆"},
		{"only symbols", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, slug.Make(tc.in))
		})
	}
}
