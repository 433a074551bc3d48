package schedule

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewClientRef(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	ref := NewClientRef(now)
	assert.True(t, IsClientRef(ref))
	assert.Contains(t, ref, fmt.Sprintf("temp-%d-", now.UnixMilli()))

	// Sufixo aleatório: duas chamadas nunca colidem
	assert.NotEqual(t, ref, NewClientRef(now))
}

func TestIsClientRef(t *testing.T) {
	assert.True(t, IsClientRef("temp-1700000000000-abcd1234"))
	assert.False(t, IsClientRef("abcd1234"))
	assert.False(t, IsClientRef(""))
	assert.False(t, IsClientRef("42"))
}
