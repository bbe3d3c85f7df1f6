package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayNameDecoratesBranchLocation(t *testing.T) {
	company := &CompanyModel{Name: "AgriCorp", Taluk: "Maddur", District: "Mandya"}
	assert.Equal(t, "AgriCorp (Maddur, Mandya)", company.DisplayName())
}

func TestDisplayNameWithDistrictOnly(t *testing.T) {
	company := &CompanyModel{Name: "AgriCorp", District: "Mandya"}
	assert.Equal(t, "AgriCorp (Mandya)", company.DisplayName())
}

func TestDisplayNameWithoutLocation(t *testing.T) {
	company := &CompanyModel{Name: "AgriCorp"}
	assert.Equal(t, "AgriCorp", company.DisplayName())
}
