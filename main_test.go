package main

import (
	"strings"
	"testing"
)

func TestReadKeysForwardsEnter(t *testing.T) {
	keys := make(chan rune, 8)
	readKeys(strings.NewReader("p\nq"), keys)
	close(keys)
	var got []rune
	for key := range keys {
		got = append(got, key)
	}
	if string(got) != "p\nq" {
		t.Errorf("keys = %q, want %q", string(got), "p\nq")
	}
}
