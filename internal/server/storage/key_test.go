package storage

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewStorageKey(t *testing.T) {
	now := time.Date(2026, 2, 3, 23, 0, 0, 0, time.UTC)
	k1 := NewStorageKey(now, "u1")
	k2 := NewStorageKey(now, "u1")

	re := regexp.MustCompile(`^users/u1/2026/02/03/[0-9a-f-]{36}$`)
	assert.Regexp(t, re, k1)
	assert.NotEqual(t, k1, k2)
}

func TestNewStorageKey_UsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	now := time.Date(2026, 2, 4, 2, 0, 0, 0, loc)
	assert.Regexp(t, `^users/u1/2026/02/03/`, NewStorageKey(now, "u1"))
}
