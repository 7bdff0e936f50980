package cla_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cla/internal/cla"
)

func TestCleanEmail(t *testing.T) {
	require.Equal(t, "dev@ubuntu.com", cla.CleanEmail("  Dev@Ubuntu.COM "))
	require.Equal(t, "dev@ubuntu.com", cla.CleanEmail("dev@ubuntu.com"))
	require.Equal(t, "", cla.CleanEmail("   "))
}

func TestEmailDomain(t *testing.T) {
	require.Equal(t, "ubuntu.com", cla.EmailDomain("dev@ubuntu.com"))
	require.Equal(t, "ubuntu.com", cla.EmailDomain("Dev@Ubuntu.COM"))
	// quoted local parts may contain an @, the domain is after the last one
	require.Equal(t, "example.com", cla.EmailDomain(`"odd@local"@example.com`))
}
