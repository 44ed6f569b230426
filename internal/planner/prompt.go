package planner

import (
	"fmt"
	"strings"
)

// StyleConfig tunes the coaching brief without touching the output schema.
type StyleConfig struct {
	// CuisineStyle is "generic" or "regional".
	CuisineStyle string
	// VarietyStrictness is "low" or "high".
	VarietyStrictness string
	// IncludeMediaLinks asks the model for a tutorial/recipe URL per item.
	IncludeMediaLinks bool
}

const (
	CuisineGeneric  = "generic"
	CuisineRegional = "regional"
	VarietyLow      = "low"
	VarietyHigh     = "high"
)

func DefaultStyleConfig() StyleConfig {
	return StyleConfig{CuisineStyle: CuisineGeneric, VarietyStrictness: VarietyLow}
}

// planSchema is the literal JSON contract the model must honor. The parser in
// parser.go enforces exactly this shape; keep the two in lockstep.
const planSchema = `{
  "workoutPlan": [
    {
      "day": "Day 1",
      "focus": "Chest and Triceps",
      "exercises": [
        { "name": "Push-ups", "sets": "3", "reps": "12", "rest": "60s", "notes": "Keep back straight" }
      ]
    }
  ],
  "dietPlan": [
    {
      "day": "Day 1",
      "breakfast": { "name": "Oatmeal", "description": "Oats with berries", "calories": "300", "protein": "10g", "carbs": "50g", "fats": "5g" },
      "lunch": { "name": "Grilled Chicken", "description": "Chicken breast with rice", "calories": "500", "protein": "40g", "carbs": "40g", "fats": "10g" },
      "dinner": { "name": "Salad", "description": "Mixed greens", "calories": "200", "protein": "5g", "carbs": "10g", "fats": "5g" },
      "snacks": [
        { "name": "Almonds", "description": "Handful of almonds", "calories": "150", "protein": "6g", "carbs": "5g", "fats": "14g" }
      ]
    }
  ],
  "tips": ["Drink water", "Sleep 8 hours"],
  "motivation": "You can do it!"
}`

// BuildPrompt renders a validated profile into the coaching brief sent to the
// completion endpoint. It is a pure function: identical inputs always produce
// byte-identical output.
func BuildPrompt(p Profile, style StyleConfig) string {
	var b strings.Builder

	b.WriteString("Act as an expert fitness coach and nutritionist. Generate a personalized 7-day workout and diet plan for the following user:\n\n")
	b.WriteString(fmt.Sprintf("Name: %s\n", p.Name))
	b.WriteString(fmt.Sprintf("Age: %d\n", p.Age))
	b.WriteString(fmt.Sprintf("Gender: %s\n", p.Gender))
	b.WriteString(fmt.Sprintf("Height: %gcm\n", p.Height))
	b.WriteString(fmt.Sprintf("Weight: %gkg\n", p.Weight))
	b.WriteString(fmt.Sprintf("Goal: %s\n", p.Goal))
	b.WriteString(fmt.Sprintf("Fitness Level: %s\n", p.Level))
	b.WriteString(fmt.Sprintf("Location: %s\n", p.Location))
	b.WriteString(fmt.Sprintf("Dietary Preferences: %s\n", p.DietaryPreference))
	b.WriteString(fmt.Sprintf("Medical History: %s\n\n", p.MedicalHistory))

	b.WriteString("Return the response strictly in the following JSON format:\n")
	b.WriteString(planSchema)
	b.WriteString("\n\n")

	if style.CuisineStyle == CuisineRegional {
		b.WriteString("REGIONAL CUISINE RULES:\n")
		b.WriteString("- Draw meals from named regional substyles (for example North Indian, South Indian, Coastal, Continental) and name the substyle in each meal description.\n")
		b.WriteString("- Follow regional meal-timing norms: breakfast before 9am, lunch as the largest meal, a light dinner before 8pm.\n")
		b.WriteString("- Balance daily calories roughly 30% breakfast, 40% lunch, 20% dinner, 10% snacks.\n\n")
	}

	if style.VarietyStrictness == VarietyHigh {
		b.WriteString("VARIETY RULES:\n")
		b.WriteString("- Do not repeat the same meal name or the same exercise name on more than one of the 7 days.\n\n")
	}

	if style.IncludeMediaLinks {
		b.WriteString("MEDIA LINKS:\n")
		b.WriteString("- Include a \"videoUrl\" with a tutorial link for every exercise and a \"recipeUrl\" with a recipe link for every meal.\n\n")
	}

	b.WriteString("Ensure the plan is detailed and appropriate for the user's level and goal. Provide 7 days of workouts and diets.\n")
	b.WriteString("Do not include any markdown formatting like ```json. Just return the raw JSON string.\n")

	return b.String()
}
