package planner

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/and161185/fitplan/internal/workout"
)

// Profile is what the user told us about themselves.
type Profile struct {
	Name         string   `json:"name,omitempty"`
	Age          int      `json:"age,omitempty"`
	Sex          string   `json:"sex,omitempty"`
	HeightCm     float64  `json:"heightCm,omitempty"`
	WeightKg     float64  `json:"weightKg,omitempty"`
	FitnessLevel string   `json:"fitnessLevel,omitempty"`
	Goals        []string `json:"goals,omitempty"`
	Injuries     []string `json:"injuries,omitempty"`
	Equipment    []string `json:"equipment,omitempty"`
}

// Question is questionnaire metadata shown to the model next to the answer.
type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options,omitempty"`
}

// DefaultDays is the plan length used when the caller does not choose one.
const DefaultDays = 14

// PlanRequest carries everything needed to generate a plan.
type PlanRequest struct {
	Profile   Profile           `json:"profile"`
	Questions []Question        `json:"questions"`
	Answers   map[string]string `json:"answers"`
	StartDate string            `json:"startDate"`
	Days      int               `json:"days"`
}

const planShape = `{
  "id": "string",
  "weeklyStructure": ["7 entries, Monday first, e.g. \"strength\" or \"rest\""],
  "dailyWorkouts": [
    {
      "date": "YYYY-MM-DD",
      "types": ["1 to 4 of: strength, cardio, hiit, flexibility, mobility, yoga, mixed, rest (rest must be alone)"],
      "workouts": [
        {
          "name": "string",
          "description": "string",
          "difficulty": "beginner | intermediate | advanced",
          "duration": "e.g. 30 min",
          "reps": "e.g. 10-12",
          "muscleGroups": ["string"],
          "equipment": ["string"],
          "sets": 3,
          "rest": "e.g. 60s"
        }
      ],
      "alternativeWorkouts": ["same shape as workouts"]
    }
  ]
}`

const dayShape = `{
  "date": "YYYY-MM-DD",
  "types": ["1 to 4 workout types; rest must be alone"],
  "workouts": [{"name": "string", "description": "string", "difficulty": "string", "duration": "string", "reps": "string", "muscleGroups": ["string"], "equipment": ["string"], "sets": 3, "rest": "string"}],
  "alternativeWorkouts": []
}`

// strictSuffix is appended on the retry after a parse failure.
const strictSuffix = "\n\nIMPORTANT: Your previous answer could not be parsed. Return ONLY the JSON object. " +
	"No markdown, no code fences, no comments, no text before or after it."

// BuildPlanPrompt renders the plan generation prompt.
func BuildPlanPrompt(req PlanRequest) string {
	var b strings.Builder
	b.WriteString("You are a certified personal trainer. Build a personalised workout plan.\n\n")
	fmt.Fprintf(&b, "Plan length: %d days starting %s. Use one entry per calendar date.\n", req.Days, req.StartDate)
	b.WriteString("Include rest days where recovery needs them, at most 2 per week.\n\n")

	b.WriteString("User profile:\n")
	b.WriteString(mustJSON(req.Profile))
	b.WriteString("\n\nQuestionnaire:\n")
	for _, q := range req.Questions {
		ans, ok := req.Answers[q.ID]
		if !ok || strings.TrimSpace(ans) == "" {
			ans = "(no answer)"
		}
		fmt.Fprintf(&b, "- %s\n  Answer: %s\n", q.Text, ans)
	}

	b.WriteString("\nReturn ONE JSON object with exactly this shape:\n")
	b.WriteString(planShape)
	b.WriteString("\n")
	return b.String()
}

// BuildDayPrompt renders the prompt regenerating a single date. The other days
// are passed as context the model should not repeat.
func BuildDayPrompt(plan workout.Plan, date string, profile Profile) string {
	var b strings.Builder
	b.WriteString("You are a certified personal trainer. Replace one day of an existing workout plan.\n\n")
	fmt.Fprintf(&b, "Date to regenerate: %s\n", date)
	if d, ok := plan.Day(date); ok {
		fmt.Fprintf(&b, "Keep the focus compatible with: %s\n", joinTypes(d.Types))
	}
	b.WriteString("\nUser profile:\n")
	b.WriteString(mustJSON(profile))

	b.WriteString("\n\nOther days in the plan (avoid repeating these exercises):\n")
	for _, d := range plan.DailyWorkouts {
		if d.Date == date {
			continue
		}
		names := make([]string, 0, len(d.Workouts))
		for _, e := range d.Workouts {
			names = append(names, e.Name)
		}
		fmt.Fprintf(&b, "- %s [%s]: %s\n", d.Date, joinTypes(d.Types), strings.Join(names, ", "))
	}

	b.WriteString("\nReturn ONE JSON object with exactly this shape:\n")
	b.WriteString(dayShape)
	b.WriteString("\n")
	return b.String()
}

func joinTypes(ts []workout.Type) string {
	ss := make([]string, len(ts))
	for i, t := range ts {
		ss[i] = string(t)
	}
	return strings.Join(ss, "+")
}

func mustJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}
