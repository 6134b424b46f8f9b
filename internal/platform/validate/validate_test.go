// Copyright (c) 2026 Hondana. All rights reserved.

package validate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hondana-dev/hondana/internal/platform/apperr"
	"github.com/hondana-dev/hondana/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "name", "Hondana", false},
		{"empty_string", "name", "", true},
		{"whitespace_only", "name", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_PastDate checks the strictly-before-today date rule.
*/
func TestValidator_PastDate(t *testing.T) {
	tests := []struct {
		name    string
		value   time.Time
		isValid bool
	}{
		{"yesterday", time.Now().AddDate(0, 0, -1), true},
		{"long_ago", time.Date(1867, 2, 9, 0, 0, 0, 0, time.UTC), true},
		{"today", time.Now(), false},
		{"tomorrow", time.Now().AddDate(0, 0, 1), false},
		{"next_year", time.Now().AddDate(1, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.PastDate("birth_date", tt.value)

			if tt.isValid {
				assert.False(t, v.HasErrors())
			} else {
				assert.True(t, v.HasErrors())
			}
		})
	}
}

/*
TestValidator_Min tests the integer lower-bound rule.
*/
func TestValidator_Min(t *testing.T) {
	v := &validate.Validator{}
	v.Min("price", 0, 0)
	assert.False(t, v.HasErrors())

	v.Min("price", -1, 0)
	assert.True(t, v.HasErrors())
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	// Multi-rule validation
	err := v.
		Required("title", "Kokoro").
		MaxLen("title", "Kokoro", 255).
		Min("price", 1000, 0).
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("title", "").                        // Fails
		Min("price", -1, 0).                          // Fails
		PastDate("birth_date", time.Now().AddDate(1, 0, 0)). // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors
	assert.Len(t, ae.Details, 3)
}
