package cmd

import (
	"io"
	"log"
	"testing"

	"github.com/naka-gawa/devsalary/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSurveys(t *testing.T) {
	testCases := []struct {
		name          string
		sources       []string
		expectedNames []string
		expectedTitle []string
		expectError   bool
	}{
		{
			name:          "default order",
			sources:       []string{"headhunter", "superjob"},
			expectedNames: []string{"headhunter", "superjob"},
			expectedTitle: []string{"HeadHunter Moscow", "SuperJob Moscow"},
		},
		{
			name:          "short names and custom order",
			sources:       []string{"SJ", " hh "},
			expectedNames: []string{"superjob", "headhunter"},
			expectedTitle: []string{"SuperJob Moscow", "HeadHunter Moscow"},
		},
		{
			name:        "unknown source",
			sources:     []string{"headhunter", "linkedin"},
			expectError: true,
		},
		{
			name:        "nothing selected",
			sources:     nil,
			expectError: true,
		},
	}

	cfg := config.Load(config.MapProvider{"HH_ACCESS_TOKEN": "token"})
	logger := log.New(io.Discard, "", 0)

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			surveys, err := buildSurveys(cfg, tc.sources, "Программист", logger)
			if tc.expectError {
				assert.Error(t, err)
				assert.Nil(t, surveys)
				return
			}
			require.NoError(t, err)
			var names, titles []string
			for _, s := range surveys {
				names = append(names, s.Name())
				titles = append(titles, s.Title())
			}
			assert.Equal(t, tc.expectedNames, names)
			assert.Equal(t, tc.expectedTitle, titles)
		})
	}
}
