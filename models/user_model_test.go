package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetMetaValuePreservesOtherEntries(t *testing.T) {
	user := &UserModel{Meta: []MetaEntry{
		{Key: "source", Value: "field-visit"},
		{Key: "isActive", Value: "false"},
	}}

	user.SetMetaValue("isActive", "true")

	assert.Equal(t, "true", user.MetaValue("isActive"))
	assert.Equal(t, "field-visit", user.MetaValue("source"))
	assert.Len(t, user.Meta, 2)
}

func TestSetMetaValueAppendsNewKey(t *testing.T) {
	user := &UserModel{Meta: []MetaEntry{{Key: "source", Value: "field-visit"}}}

	user.SetMetaValue("isActive", "true")

	assert.Len(t, user.Meta, 2)
	assert.Equal(t, "true", user.MetaValue("isActive"))
}

func TestMetaValueMissingKeyIsEmpty(t *testing.T) {
	user := &UserModel{}
	assert.Empty(t, user.MetaValue("isActive"))
}

func TestAddressIsEmpty(t *testing.T) {
	assert.True(t, (Address{}).IsEmpty())
	assert.False(t, (Address{State: "Karnataka"}).IsEmpty())
}
