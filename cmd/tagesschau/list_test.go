package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	tagesschau "github.com/Kaschi14/TagesschauScraper"
	main "github.com/Kaschi14/TagesschauScraper/cmd/tagesschau"
	"github.com/Kaschi14/TagesschauScraper/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists stored teasers", func(t *testing.T) {
		t.Parallel()

		teasers := &mock.TeaserService{
			FindTeasersFn: func(_ context.Context, filter tagesschau.TeaserFilter) ([]*tagesschau.Teaser, error) {
				require.NotNil(t, filter.Day)
				assert.Equal(t, "2022-03-01", filter.Day.Format("2006-01-02"))
				return []*tagesschau.Teaser{{
					ID:          "abc123",
					PublishedAt: time.Date(2022, 3, 1, 22, 23, 0, 0, time.UTC),
					Headline:    "Der Krieg lastet auf der Wall Street",
					Link:        "https://www.tagesschau.de/wirtschaft/marktbericht-213.html",
				}}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Teasers: teasers,
		}

		err := (&main.ListCmd{Date: "2022-03-01"}).Run(deps)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "abc123")
		assert.Contains(t, output, "2022-03-01 22:23:00")
		assert.Contains(t, output, "Der Krieg lastet auf der Wall Street")
	})

	t.Run("shows helpful message when empty", func(t *testing.T) {
		t.Parallel()

		teasers := &mock.TeaserService{
			FindTeasersFn: func(_ context.Context, _ tagesschau.TeaserFilter) ([]*tagesschau.Teaser, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Teasers: teasers,
		}

		err := (&main.ListCmd{}).Run(deps)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No teasers found")
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
		}

		err := (&main.ListCmd{Date: "01.03.2022"}).Run(deps)
		require.Error(t, err)
		assert.Contains(t, stderr.String(), "invalid date")
	})
}
