package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMaterialType(t *testing.T) {
	tests := []struct {
		input    string
		expected MaterialType
		wantErr  bool
	}{
		{input: "binder", expected: MaterialTypeBinder},
		{input: "Cheat Sheet", expected: MaterialTypeCheatSheet},
		{input: " None ", expected: MaterialTypeNone},
		{input: "notes", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMaterialType(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseDivision(t *testing.T) {
	d, err := ParseDivision("C")
	require.NoError(t, err)
	assert.Equal(t, DivisionC, d)

	_, err = ParseDivision("d")
	assert.Error(t, err)
}

func TestBinderBeforeSaveCopiesEvent(t *testing.T) {
	b := &Binder{
		Event: Event{ID: 3, Name: "Anatomy", MaterialType: MaterialTypeCheatSheet, Division: DivisionB},
	}
	require.NoError(t, b.BeforeSave(nil))
	assert.Equal(t, MaterialTypeCheatSheet, b.MaterialType)
	assert.Equal(t, DivisionB, b.Division)
}

func TestBinderBeforeSaveWithoutEvent(t *testing.T) {
	b := &Binder{MaterialType: MaterialTypeBinder, Division: DivisionA}
	require.NoError(t, b.BeforeSave(nil))
	assert.Equal(t, MaterialTypeBinder, b.MaterialType)
	assert.Equal(t, DivisionA, b.Division)
}

func TestBinderBeforeCreateAssignsSlug(t *testing.T) {
	b := &Binder{}
	require.NoError(t, b.BeforeCreate(nil))
	assert.Len(t, b.Slug, 36)
	assert.False(t, b.Date.IsZero())

	kept := &Binder{Slug: "abc123"}
	require.NoError(t, kept.BeforeCreate(nil))
	assert.Equal(t, "abc123", kept.Slug)
}

func TestBinderLabel(t *testing.T) {
	b := Binder{Event: Event{Name: "Anatomy"}, Owner: User{Username: "alice"}}
	assert.Equal(t, "Anatomy Binder - alice", b.Label())
}

func TestUserBeforeCreateDefaultsPicture(t *testing.T) {
	u := &User{}
	require.NoError(t, u.BeforeCreate(nil))
	assert.Equal(t, DefaultProfilePicture, u.ProfilePicture)
}
