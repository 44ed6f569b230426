package planner

import "strings"

// Profile is the user-submitted fitness questionnaire. It only lives for the
// duration of one generation request and is never persisted.
type Profile struct {
	Name              string  `json:"name" example:"Jane Doe"`
	Age               int     `json:"age" example:"28"`
	Gender            string  `json:"gender" example:"Female"`
	Height            float64 `json:"height" example:"168"`
	Weight            float64 `json:"weight" example:"62"`
	Goal              string  `json:"goal" example:"Muscle Gain"`
	Level             string  `json:"level" example:"Beginner"`
	Location          string  `json:"location" example:"Gym"`
	DietaryPreference string  `json:"dietaryPreferences" example:"Veg"`
	MedicalHistory    string  `json:"medicalHistory,omitempty"`
}

// NoMedicalHistory is injected verbatim into the prompt when the user leaves
// the medical history field empty, so the model still accounts for it.
const NoMedicalHistory = "None"

var (
	validGenders   = []string{"Male", "Female", "Other"}
	validGoals     = []string{"Weight Loss", "Muscle Gain", "Maintenance", "Endurance"}
	validLevels    = []string{"Beginner", "Intermediate", "Advanced"}
	validLocations = []string{"Home", "Gym", "Outdoor"}
	validDiets     = []string{"Veg", "Non-Veg", "Vegan", "Keto", "None"}
)

func oneOf(value string, allowed []string) bool {
	for _, v := range allowed {
		if v == value {
			return true
		}
	}
	return false
}

// ValidateProfile normalizes and checks a submitted profile. Every offending
// field is reported; unknown enum values are rejected, never coerced.
func ValidateProfile(p Profile) (Profile, error) {
	var fields []FieldError

	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		fields = append(fields, FieldError{Field: "name", Message: "name is required"})
	}
	if p.Age <= 0 || p.Age > 120 {
		fields = append(fields, FieldError{Field: "age", Message: "age must be a plausible positive number of years"})
	}
	if !oneOf(p.Gender, validGenders) {
		fields = append(fields, FieldError{Field: "gender", Message: "gender must be one of " + strings.Join(validGenders, ", ")})
	}
	if p.Height <= 0 {
		fields = append(fields, FieldError{Field: "height", Message: "height must be a positive number of centimeters"})
	}
	if p.Weight <= 0 {
		fields = append(fields, FieldError{Field: "weight", Message: "weight must be a positive number of kilograms"})
	}
	if !oneOf(p.Goal, validGoals) {
		fields = append(fields, FieldError{Field: "goal", Message: "goal must be one of " + strings.Join(validGoals, ", ")})
	}
	if !oneOf(p.Level, validLevels) {
		fields = append(fields, FieldError{Field: "level", Message: "level must be one of " + strings.Join(validLevels, ", ")})
	}
	if !oneOf(p.Location, validLocations) {
		fields = append(fields, FieldError{Field: "location", Message: "location must be one of " + strings.Join(validLocations, ", ")})
	}
	if !oneOf(p.DietaryPreference, validDiets) {
		fields = append(fields, FieldError{Field: "dietaryPreferences", Message: "dietaryPreferences must be one of " + strings.Join(validDiets, ", ")})
	}

	if strings.TrimSpace(p.MedicalHistory) == "" {
		p.MedicalHistory = NoMedicalHistory
	} else {
		p.MedicalHistory = strings.TrimSpace(p.MedicalHistory)
	}

	if len(fields) > 0 {
		return Profile{}, &ValidationError{Fields: fields}
	}
	return p, nil
}
