package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAddressCSVWithHeader(t *testing.T) {
	csv := "id,address,city\n1,123 Main St,Victoria\n2,45 Oak Ave,Nanaimo\n"
	addresses, err := ReadAddressCSV(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, []string{"123 Main St", "45 Oak Ave"}, addresses)
}

func TestReadAddressCSVWithoutHeader(t *testing.T) {
	csv := "123 Main St\n45 Oak Ave\n"
	addresses, err := ReadAddressCSV(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, []string{"123 Main St", "45 Oak Ave"}, addresses)
}

func TestReadAddressCSVEmpty(t *testing.T) {
	addresses, err := ReadAddressCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, addresses)
}
