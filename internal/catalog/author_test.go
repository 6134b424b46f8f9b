package catalog

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hondana-dev/hondana/internal/platform/apperr"
)

func birthDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

/*
TestNewAuthor verifies construction with a trimmed name and a past birth date.
*/
func TestNewAuthor(t *testing.T) {
	author, err := NewAuthor("  Natsume Soseki  ", birthDate(1867, time.February, 9))
	require.NoError(t, err)

	assert.Equal(t, "Natsume Soseki", author.Name)
	assert.Zero(t, author.ID)
	assert.Equal(t, birthDate(1867, time.February, 9), author.BirthDate)
}

/*
TestNewAuthor_InvalidFields verifies the field validation failures.
*/
func TestNewAuthor_InvalidFields(t *testing.T) {
	valid := birthDate(1980, time.June, 1)

	cases := []struct {
		name      string
		authorName string
		birth     time.Time
	}{
		{"empty_name", "", valid},
		{"blank_name", "   ", valid},
		{"name_too_long", strings.Repeat("a", 256), valid},
		{"birth_date_today", "Soseki", time.Now()},
		{"birth_date_future", "Soseki", time.Now().AddDate(1, 0, 0)},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := NewAuthor(testCase.authorName, testCase.birth)
			require.Error(t, err)

			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, "VALIDATION_ERROR", appError.Code)
		})
	}
}

/*
TestNewAuthor_BirthDateYesterday verifies that strictly-before-today accepts
the most recent possible date.
*/
func TestNewAuthor_BirthDateYesterday(t *testing.T) {
	_, err := NewAuthor("Soseki", time.Now().AddDate(0, 0, -1))
	assert.NoError(t, err)
}

/*
TestAuthorUpdate verifies that updates re-validate fields and preserve the
identifier.
*/
func TestAuthorUpdate(t *testing.T) {
	author, err := NewAuthor("Soseki", birthDate(1867, time.February, 9))
	require.NoError(t, err)
	author.ID = 42

	updated, err := author.Update("  Mori Ogai ", birthDate(1862, time.February, 17))
	require.NoError(t, err)

	assert.Equal(t, int64(42), updated.ID)
	assert.Equal(t, "Mori Ogai", updated.Name)
	assert.Equal(t, birthDate(1862, time.February, 17), updated.BirthDate)

	// Invalid replacement fields fail and leave the original untouched.
	_, err = author.Update("", birthDate(1862, time.February, 17))
	require.Error(t, err)
	assert.Equal(t, "Soseki", author.Name)
}

/*
TestSameIdentity verifies the (name, birth date) business key comparison.
*/
func TestSameIdentity(t *testing.T) {
	author, err := NewAuthor("Soseki", birthDate(1867, time.February, 9))
	require.NoError(t, err)

	assert.True(t, author.SameIdentity("Soseki", birthDate(1867, time.February, 9)))
	assert.True(t, author.SameIdentity("  Soseki ", birthDate(1867, time.February, 9)))
	assert.False(t, author.SameIdentity("Soseki", birthDate(1867, time.February, 10)))
	assert.False(t, author.SameIdentity("Ogai", birthDate(1867, time.February, 9)))
}
