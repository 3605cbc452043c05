package present

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nutritrack/cli/domain"
)

func TestRenderTrend_EmptyWeek(t *testing.T) {
	var buf bytes.Buffer
	RenderTrend(&buf, nil)

	out := buf.String()
	assert.Contains(t, out, "No data for this week yet.")
	assert.NotContains(t, out, "██")
}

func TestRenderTrend_AnnotatesCalories(t *testing.T) {
	var buf bytes.Buffer
	RenderTrend(&buf, []domain.DailySample{
		{Day: "Mon", Calories: 3000},
		{Day: "Tue", Calories: 1000},
	})

	out := buf.String()
	assert.Contains(t, out, "3000 kcal")
	assert.Contains(t, out, "1000 kcal")
	assert.Less(t, strings.Index(out, "Mon"), strings.Index(out, "Tue"), "columns keep input order")
}

func TestRenderHistory_Empty(t *testing.T) {
	var buf bytes.Buffer
	RenderHistory(&buf, nil)
	assert.Contains(t, buf.String(), "No food logs yet. Start logging your meals!")
}

func TestRenderHistory_EntryFields(t *testing.T) {
	var buf bytes.Buffer
	RenderHistory(&buf, []domain.FoodLogEntry{{
		MessageText: "2 idlis with sambar",
		Calories:    350,
		Rating:      8,
		Note:        "Good fiber intake",
	}})

	out := buf.String()
	assert.Contains(t, out, "2 idlis with sambar")
	assert.Contains(t, out, "8/10 - Excellent")
	assert.Contains(t, out, "Note: Good fiber intake")
}

func TestRenderScore_ShowsTierMessage(t *testing.T) {
	var buf bytes.Buffer
	RenderScore(&buf, 85)

	out := buf.String()
	assert.Contains(t, out, "85% Adherence")
	assert.Contains(t, out, "Excellent work! Keep it up!")
}

func TestRenderUsers_Actions(t *testing.T) {
	var buf bytes.Buffer
	RenderUsers(&buf, []domain.UserProfile{
		{ID: "u1", Name: "Asha", Email: "asha@example.com", Role: domain.RoleUser, Status: domain.StatusActive},
		{ID: "u2", Name: "Ravi", Email: "ravi@example.com", Role: domain.RoleAdmin, Status: domain.StatusInactive},
	})

	out := buf.String()
	assert.Contains(t, out, "Deactivate")
	assert.Contains(t, out, "Make Admin")
	assert.Contains(t, out, "Activate")
	assert.Contains(t, out, "Remove Admin")
}
