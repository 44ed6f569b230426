package planner

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"fitcoach/internal/models"
)

// StripFences removes leading/trailing markdown code-fence markers and
// surrounding whitespace. It is purely textual: content between the fences is
// returned untouched, and running it on already-unfenced text is a no-op.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		if i := strings.IndexByte(s, '\n'); i >= 0 && i < len(s) && !strings.Contains(s[:i], "{") {
			s = s[i+1:]
		} else {
			s = strings.TrimPrefix(s, "```json")
			s = strings.TrimPrefix(s, "```")
		}
	}
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}

// Macro fields must look numeric: a number, optionally followed by a unit.
var numericValue = regexp.MustCompile(`^[0-9]+(?:\.[0-9]+)?\s*(?:kcal|cal|g|mg|%)?$`)

// ParsePlan converts raw completion text into a validated PlanDocument.
// Steps: de-fence, strict JSON parse, shape walk against the schema in
// prompt.go, then a repair pass limited to the optional notes/videoUrl/
// recipeUrl fields. Every other violation surfaces as a typed ParseError.
func ParsePlan(raw string) (*models.PlanDocument, error) {
	text := StripFences(raw)

	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	var rootValue interface{}
	if err := dec.Decode(&rootValue); err != nil || dec.More() {
		return nil, newParseError(MalformedJSON, "", raw)
	}
	root, ok := rootValue.(map[string]interface{})
	if !ok {
		return nil, newParseError(MalformedJSON, "", raw)
	}

	w := &walker{raw: raw}

	workoutDays, perr := w.requiredArray(root, "workoutPlan", "workoutPlan")
	if perr != nil {
		return nil, perr
	}
	if len(workoutDays) != 7 {
		return nil, newParseError(IncompleteSchedule, "workoutPlan", raw)
	}

	dietDays, perr := w.requiredArray(root, "dietPlan", "dietPlan")
	if perr != nil {
		return nil, perr
	}
	if len(dietDays) != 7 {
		return nil, newParseError(IncompleteSchedule, "dietPlan", raw)
	}

	doc := &models.PlanDocument{}

	for i, dayValue := range workoutDays {
		path := fmt.Sprintf("workoutPlan[%d]", i)
		day, perr := w.object(dayValue, path)
		if perr != nil {
			return nil, perr
		}
		workout := models.DailyWorkout{}
		if workout.Day, perr = w.requiredString(day, "day", path); perr != nil {
			return nil, perr
		}
		if workout.Focus, perr = w.requiredString(day, "focus", path); perr != nil {
			return nil, perr
		}
		exercises, perr := w.requiredArray(day, "exercises", path)
		if perr != nil {
			return nil, perr
		}
		workout.Exercises = make([]models.Exercise, 0, len(exercises))
		for j, exValue := range exercises {
			exPath := fmt.Sprintf("%s.exercises[%d]", path, j)
			ex, perr := w.parseExercise(exValue, exPath)
			if perr != nil {
				return nil, perr
			}
			workout.Exercises = append(workout.Exercises, ex)
		}
		doc.WorkoutPlan = append(doc.WorkoutPlan, workout)
	}

	for i, dayValue := range dietDays {
		path := fmt.Sprintf("dietPlan[%d]", i)
		day, perr := w.object(dayValue, path)
		if perr != nil {
			return nil, perr
		}
		diet := models.DailyDiet{}
		if diet.Day, perr = w.requiredString(day, "day", path); perr != nil {
			return nil, perr
		}
		if diet.Breakfast, perr = w.requiredMeal(day, "breakfast", path); perr != nil {
			return nil, perr
		}
		if diet.Lunch, perr = w.requiredMeal(day, "lunch", path); perr != nil {
			return nil, perr
		}
		if diet.Dinner, perr = w.requiredMeal(day, "dinner", path); perr != nil {
			return nil, perr
		}
		snacks, perr := w.requiredArray(day, "snacks", path)
		if perr != nil {
			return nil, perr
		}
		diet.Snacks = make([]models.Meal, 0, len(snacks))
		for j, snackValue := range snacks {
			snackPath := fmt.Sprintf("%s.snacks[%d]", path, j)
			meal, perr := w.parseMeal(snackValue, snackPath)
			if perr != nil {
				return nil, perr
			}
			diet.Snacks = append(diet.Snacks, meal)
		}
		doc.DietPlan = append(doc.DietPlan, diet)
	}

	tips, perr := w.requiredArray(root, "tips", "tips")
	if perr != nil {
		return nil, perr
	}
	doc.Tips = make([]string, 0, len(tips))
	for i, tipValue := range tips {
		tip, ok := tipValue.(string)
		if !ok {
			return nil, newParseError(InvalidField, fmt.Sprintf("tips[%d]", i), raw)
		}
		doc.Tips = append(doc.Tips, tip)
	}

	if doc.Motivation, perr = w.requiredString(root, "motivation", ""); perr != nil {
		return nil, perr
	}

	return doc, nil
}

type walker struct {
	raw string
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func (w *walker) object(v interface{}, path string) (map[string]interface{}, *ParseError) {
	obj, ok := v.(map[string]interface{})
	if !ok {
		return nil, newParseError(InvalidField, path, w.raw)
	}
	return obj, nil
}

func (w *walker) requiredArray(obj map[string]interface{}, key, path string) ([]interface{}, *ParseError) {
	v, ok := obj[key]
	if !ok || v == nil {
		return nil, newParseError(MissingField, joinPath(path, key), w.raw)
	}
	arr, ok := v.([]interface{})
	if !ok {
		return nil, newParseError(InvalidField, joinPath(path, key), w.raw)
	}
	return arr, nil
}

func (w *walker) requiredString(obj map[string]interface{}, key, path string) (string, *ParseError) {
	v, ok := obj[key]
	if !ok || v == nil {
		return "", newParseError(MissingField, joinPath(path, key), w.raw)
	}
	switch s := v.(type) {
	case string:
		return s, nil
	case json.Number:
		// The model sometimes emits bare numbers for string-encoded counts.
		return s.String(), nil
	default:
		return "", newParseError(InvalidField, joinPath(path, key), w.raw)
	}
}

func (w *walker) optionalString(obj map[string]interface{}, key string) string {
	v, ok := obj[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func (w *walker) numericString(obj map[string]interface{}, key, path string) (string, *ParseError) {
	s, perr := w.requiredString(obj, key, path)
	if perr != nil {
		return "", perr
	}
	if !numericValue.MatchString(strings.TrimSpace(s)) {
		return "", newParseError(InvalidField, joinPath(path, key), w.raw)
	}
	return s, nil
}

func (w *walker) parseExercise(v interface{}, path string) (models.Exercise, *ParseError) {
	obj, perr := w.object(v, path)
	if perr != nil {
		return models.Exercise{}, perr
	}
	ex := models.Exercise{}
	if ex.Name, perr = w.requiredString(obj, "name", path); perr != nil {
		return models.Exercise{}, perr
	}
	if ex.Sets, perr = w.requiredString(obj, "sets", path); perr != nil {
		return models.Exercise{}, perr
	}
	if ex.Reps, perr = w.requiredString(obj, "reps", path); perr != nil {
		return models.Exercise{}, perr
	}
	if ex.Rest, perr = w.requiredString(obj, "rest", path); perr != nil {
		return models.Exercise{}, perr
	}
	ex.Notes = w.optionalString(obj, "notes")
	ex.VideoURL = w.optionalString(obj, "videoUrl")
	return ex, nil
}

func (w *walker) requiredMeal(obj map[string]interface{}, key, path string) (models.Meal, *ParseError) {
	v, ok := obj[key]
	if !ok || v == nil {
		return models.Meal{}, newParseError(MissingField, joinPath(path, key), w.raw)
	}
	return w.parseMeal(v, joinPath(path, key))
}

func (w *walker) parseMeal(v interface{}, path string) (models.Meal, *ParseError) {
	obj, perr := w.object(v, path)
	if perr != nil {
		return models.Meal{}, perr
	}
	meal := models.Meal{}
	if meal.Name, perr = w.requiredString(obj, "name", path); perr != nil {
		return models.Meal{}, perr
	}
	if meal.Description, perr = w.requiredString(obj, "description", path); perr != nil {
		return models.Meal{}, perr
	}
	if meal.Calories, perr = w.numericString(obj, "calories", path); perr != nil {
		return models.Meal{}, perr
	}
	if meal.Protein, perr = w.numericString(obj, "protein", path); perr != nil {
		return models.Meal{}, perr
	}
	if meal.Carbs, perr = w.numericString(obj, "carbs", path); perr != nil {
		return models.Meal{}, perr
	}
	if meal.Fats, perr = w.numericString(obj, "fats", path); perr != nil {
		return models.Meal{}, perr
	}
	meal.RecipeURL = w.optionalString(obj, "recipeUrl")
	return meal, nil
}
