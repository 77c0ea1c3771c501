package tagesschau_test

import (
	"testing"
	"time"

	tagesschau "github.com/Kaschi14/TagesschauScraper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveID(t *testing.T) {
	t.Parallel()

	link := "https://www.tagesschau.de/wirtschaft/finanzen/marktberichte/marktbericht-dax-dow-jones-213.html"
	publishedAt := time.Date(2022, 3, 1, 22, 23, 0, 0, time.UTC)

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		a := tagesschau.DeriveID(link, publishedAt)
		b := tagesschau.DeriveID(link, publishedAt)

		assert.Equal(t, a, b)
	})

	t.Run("has fixed length and is lowercase hex", func(t *testing.T) {
		t.Parallel()

		id := tagesschau.DeriveID(link, publishedAt)

		require.Len(t, id, tagesschau.IDLength)
		assert.Regexp(t, "^[0-9a-f]+$", id)
	})

	t.Run("differs when the link differs", func(t *testing.T) {
		t.Parallel()

		other := tagesschau.DeriveID(link+"x", publishedAt)

		assert.NotEqual(t, tagesschau.DeriveID(link, publishedAt), other)
	})

	t.Run("differs when the timestamp differs", func(t *testing.T) {
		t.Parallel()

		other := tagesschau.DeriveID(link, publishedAt.Add(time.Minute))

		assert.NotEqual(t, tagesschau.DeriveID(link, publishedAt), other)
	})

	t.Run("is not fooled by shifted field boundaries", func(t *testing.T) {
		t.Parallel()

		// Same concatenated bytes, different field split.
		a := tagesschau.DeriveID("https://example.com/a", publishedAt)
		b := tagesschau.DeriveID("https://example.com/a2", publishedAt)

		assert.NotEqual(t, a, b)
	})
}

func TestTeaser_Validate(t *testing.T) {
	t.Parallel()

	valid := func() *tagesschau.Teaser {
		return &tagesschau.Teaser{
			PublishedAt: time.Date(2022, 3, 1, 18, 54, 0, 0, time.UTC),
			Headline:    "Nordstream-Betreiber offenbar insolvent",
			Link:        "https://www.tagesschau.de/wirtschaft/unternehmen/nord-stream-insolvenz-gazrom-gas-pipeline-russland-ukraine-103.html",
		}
	}

	t.Run("accepts a complete teaser", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, valid().Validate())
	})

	t.Run("requires a timestamp", func(t *testing.T) {
		t.Parallel()

		teaser := valid()
		teaser.PublishedAt = time.Time{}

		err := teaser.Validate()
		require.Error(t, err)
		assert.Equal(t, tagesschau.EINVALID, tagesschau.ErrorCode(err))
	})

	t.Run("requires a headline", func(t *testing.T) {
		t.Parallel()

		teaser := valid()
		teaser.Headline = ""

		err := teaser.Validate()
		require.Error(t, err)
		assert.Equal(t, tagesschau.EINVALID, tagesschau.ErrorCode(err))
	})

	t.Run("requires a link", func(t *testing.T) {
		t.Parallel()

		teaser := valid()
		teaser.Link = ""

		err := teaser.Validate()
		require.Error(t, err)
		assert.Equal(t, tagesschau.EINVALID, tagesschau.ErrorCode(err))
	})
}

func TestTeaser_Record(t *testing.T) {
	t.Parallel()

	teaser := &tagesschau.Teaser{
		ID:          "0123456789abcdef0123456789abcdef01234567",
		PublishedAt: time.Date(2022, 3, 1, 22, 23, 0, 0, time.UTC),
		Topline:     "Marktbericht",
		Headline:    "Der Krieg lastet auf der Wall Street",
		Shorttext:   "Die Kurse geben nach.",
		Link:        "https://www.tagesschau.de/wirtschaft/finanzen/marktberichte/marktbericht-dax-dow-jones-213.html",
		Tags:        []string{"Börse", "DAX", "Dow Jones", "Marktbericht"},
	}

	record := teaser.Record()

	assert.Equal(t, "2022-03-01 22:23:00", record.Date)
	assert.Equal(t, "Börse,DAX,Dow Jones,Marktbericht", record.Tags)
	assert.Equal(t, teaser.ID, record.ID)
	assert.Equal(t, teaser.Headline, record.Headline)
	assert.Equal(t, teaser.Link, record.Link)
}
