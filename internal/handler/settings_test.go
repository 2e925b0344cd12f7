package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleLabel(t *testing.T) {
	assert.Equal(t, "General", roleLabel(""))
	assert.Equal(t, "Sales", roleLabel("sales"))
	assert.Equal(t, "Finance", roleLabel("finance"))
}

func TestProfessionLabel(t *testing.T) {
	assert.Equal(t, "All professions", professionLabel(""))
	assert.Equal(t, "Locum/Tenens", professionLabel("Locum/Tenens"))
}

func TestSelectorCodes(t *testing.T) {
	// The default codes map to empty values so they serialize as null.
	assert.Equal(t, "", roleByCode["general"])
	assert.Equal(t, "", professionByCode["all"])

	assert.Equal(t, "Locum/Tenens", professionByCode["locum"])
	assert.Equal(t, "operations", roleByCode["operations"])
}
