package planner_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"fitcoach/internal/models"
	"fitcoach/internal/planner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMeal() models.Meal {
	return models.Meal{
		Name:        "Oatmeal",
		Description: "Oats with berries",
		Calories:    "300",
		Protein:     "10g",
		Carbs:       "50g",
		Fats:        "5g",
	}
}

func validPlanDocument() models.PlanDocument {
	doc := models.PlanDocument{
		Tips:       []string{"Drink water"},
		Motivation: "Go!",
	}
	for i := 1; i <= 7; i++ {
		doc.WorkoutPlan = append(doc.WorkoutPlan, models.DailyWorkout{
			Day:   fmt.Sprintf("Day %d", i),
			Focus: "Full Body",
			Exercises: []models.Exercise{
				{Name: "Push-ups", Sets: "3", Reps: "12", Rest: "60s", Notes: "Keep back straight"},
			},
		})
		doc.DietPlan = append(doc.DietPlan, models.DailyDiet{
			Day:       fmt.Sprintf("Day %d", i),
			Breakfast: sampleMeal(),
			Lunch:     sampleMeal(),
			Dinner:    sampleMeal(),
			Snacks:    []models.Meal{sampleMeal()},
		})
	}
	return doc
}

func marshalPlan(t *testing.T, doc models.PlanDocument) string {
	t.Helper()
	b, err := json.Marshal(doc)
	require.NoError(t, err)
	return string(b)
}

// mutatePlan round-trips the document through a generic map so individual
// fields can be broken for failure cases.
func mutatePlan(t *testing.T, doc models.PlanDocument, mutate func(map[string]interface{})) string {
	t.Helper()
	var tree map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(marshalPlan(t, doc)), &tree))
	mutate(tree)
	b, err := json.Marshal(tree)
	require.NoError(t, err)
	return string(b)
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no fences", `{"a":1}`, `{"a":1}`},
		{"json fence with newlines", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"single line fence", "```json{\"a\":1}```", `{"a":1}`},
		{"surrounding whitespace", "  \n```json\n{\"a\":1}\n```\n  ", `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, planner.StripFences(tt.input))
		})
	}
}

func TestStripFencesIdempotent(t *testing.T) {
	input := "```json\n{\"a\": \"text with ``` inside\"}\n```"
	once := planner.StripFences(input)
	assert.Equal(t, once, planner.StripFences(once))
}

func TestParsePlanRoundTrip(t *testing.T) {
	doc := validPlanDocument()

	parsed, err := planner.ParsePlan(marshalPlan(t, doc))
	require.NoError(t, err)
	assert.Equal(t, doc, *parsed)

	// Re-serializing and re-parsing loses nothing.
	again, err := planner.ParsePlan(marshalPlan(t, *parsed))
	require.NoError(t, err)
	assert.Equal(t, *parsed, *again)
}

func TestParsePlanFencedResponse(t *testing.T) {
	doc := validPlanDocument()
	raw := "```json\n" + marshalPlan(t, doc) + "\n```"

	parsed, err := planner.ParsePlan(raw)
	require.NoError(t, err)
	assert.Len(t, parsed.Tips, 1)
	assert.Equal(t, "Go!", parsed.Motivation)
	assert.Len(t, parsed.WorkoutPlan, 7)
	assert.Len(t, parsed.DietPlan, 7)
}

func TestParsePlanMalformedJSON(t *testing.T) {
	for _, raw := range []string{
		"not json at all",
		"```json\n{ broken\n```",
		`{"workoutPlan": [}`,
		`[1, 2, 3]`,
		`{"a":1} trailing`,
	} {
		_, err := planner.ParsePlan(raw)
		var perr *planner.ParseError
		require.ErrorAs(t, err, &perr, "input %q", raw)
		assert.Equal(t, planner.MalformedJSON, perr.Kind, "input %q", raw)
	}
}

func TestParsePlanIncompleteWorkoutSchedule(t *testing.T) {
	doc := validPlanDocument()
	doc.WorkoutPlan = doc.WorkoutPlan[:6]

	_, err := planner.ParsePlan(marshalPlan(t, doc))
	var perr *planner.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, planner.IncompleteSchedule, perr.Kind)
	assert.Equal(t, "workoutPlan", perr.Path)
}

func TestParsePlanIncompleteDietSchedule(t *testing.T) {
	doc := validPlanDocument()
	doc.DietPlan = doc.DietPlan[:5]

	_, err := planner.ParsePlan(marshalPlan(t, doc))
	var perr *planner.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, planner.IncompleteSchedule, perr.Kind)
	assert.Equal(t, "dietPlan", perr.Path)
}

func TestParsePlanNeverPadsShortSchedules(t *testing.T) {
	doc := validPlanDocument()
	doc.WorkoutPlan = doc.WorkoutPlan[:1]

	parsed, err := planner.ParsePlan(marshalPlan(t, doc))
	assert.Error(t, err)
	assert.Nil(t, parsed)
}

func TestParsePlanMissingOptionalFieldsRepaired(t *testing.T) {
	doc := validPlanDocument()
	// omitempty drops notes/videoUrl/recipeUrl when empty, so clearing them
	// produces JSON without those keys at all.
	for i := range doc.WorkoutPlan {
		doc.WorkoutPlan[i].Exercises[0].Notes = ""
		doc.WorkoutPlan[i].Exercises[0].VideoURL = ""
	}

	parsed, err := planner.ParsePlan(marshalPlan(t, doc))
	require.NoError(t, err)
	assert.Empty(t, parsed.WorkoutPlan[0].Exercises[0].Notes)
	assert.Empty(t, parsed.WorkoutPlan[0].Exercises[0].VideoURL)
	assert.Empty(t, parsed.DietPlan[0].Breakfast.RecipeURL)
}

func TestParsePlanMissingRequiredExerciseField(t *testing.T) {
	raw := mutatePlan(t, validPlanDocument(), func(tree map[string]interface{}) {
		day := tree["workoutPlan"].([]interface{})[2].(map[string]interface{})
		exercise := day["exercises"].([]interface{})[0].(map[string]interface{})
		delete(exercise, "rest")
	})

	_, err := planner.ParsePlan(raw)
	var perr *planner.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, planner.MissingField, perr.Kind)
	assert.Equal(t, "workoutPlan[2].exercises[0].rest", perr.Path)
}

func TestParsePlanNonNumericMacroRejected(t *testing.T) {
	raw := mutatePlan(t, validPlanDocument(), func(tree map[string]interface{}) {
		day := tree["dietPlan"].([]interface{})[0].(map[string]interface{})
		breakfast := day["breakfast"].(map[string]interface{})
		breakfast["calories"] = "lots"
	})

	_, err := planner.ParsePlan(raw)
	var perr *planner.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, planner.InvalidField, perr.Kind)
	assert.Equal(t, "dietPlan[0].breakfast.calories", perr.Path)
}

func TestParsePlanNumericMacroVariantsAccepted(t *testing.T) {
	raw := mutatePlan(t, validPlanDocument(), func(tree map[string]interface{}) {
		day := tree["dietPlan"].([]interface{})[0].(map[string]interface{})
		breakfast := day["breakfast"].(map[string]interface{})
		breakfast["calories"] = float64(300)
		breakfast["protein"] = "10 g"
		breakfast["carbs"] = "50.5g"
		breakfast["fats"] = "5"
	})

	parsed, err := planner.ParsePlan(raw)
	require.NoError(t, err)
	assert.Equal(t, "300", parsed.DietPlan[0].Breakfast.Calories)
	assert.Equal(t, "10 g", parsed.DietPlan[0].Breakfast.Protein)
}

func TestParsePlanNumericSetsAccepted(t *testing.T) {
	raw := mutatePlan(t, validPlanDocument(), func(tree map[string]interface{}) {
		day := tree["workoutPlan"].([]interface{})[0].(map[string]interface{})
		exercise := day["exercises"].([]interface{})[0].(map[string]interface{})
		exercise["sets"] = float64(3)
		exercise["reps"] = "10-12"
	})

	parsed, err := planner.ParsePlan(raw)
	require.NoError(t, err)
	assert.Equal(t, "3", parsed.WorkoutPlan[0].Exercises[0].Sets)
	assert.Equal(t, "10-12", parsed.WorkoutPlan[0].Exercises[0].Reps)
}

func TestParsePlanMissingMotivation(t *testing.T) {
	raw := mutatePlan(t, validPlanDocument(), func(tree map[string]interface{}) {
		delete(tree, "motivation")
	})

	_, err := planner.ParsePlan(raw)
	var perr *planner.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, planner.MissingField, perr.Kind)
	assert.Equal(t, "motivation", perr.Path)
}

func TestParsePlanMissingMealInDay(t *testing.T) {
	raw := mutatePlan(t, validPlanDocument(), func(tree map[string]interface{}) {
		day := tree["dietPlan"].([]interface{})[3].(map[string]interface{})
		delete(day, "dinner")
	})

	_, err := planner.ParsePlan(raw)
	var perr *planner.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, planner.MissingField, perr.Kind)
	assert.Equal(t, "dietPlan[3].dinner", perr.Path)
}

func TestParsePlanExcerptIsBounded(t *testing.T) {
	long := make([]byte, 5000)
	for i := range long {
		long[i] = 'x'
	}

	_, err := planner.ParsePlan(string(long))
	var perr *planner.ParseError
	require.ErrorAs(t, err, &perr)
	assert.LessOrEqual(t, len(perr.Excerpt), 200)
}

func TestParsePlanFreeTextDayLabelsAccepted(t *testing.T) {
	raw := mutatePlan(t, validPlanDocument(), func(tree map[string]interface{}) {
		day := tree["workoutPlan"].([]interface{})[0].(map[string]interface{})
		day["day"] = "Monday - Push Day"
	})

	parsed, err := planner.ParsePlan(raw)
	require.NoError(t, err)
	assert.Equal(t, "Monday - Push Day", parsed.WorkoutPlan[0].Day)
}
