package planner_test

import (
	"testing"

	"fitcoach/internal/planner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProfileValid(t *testing.T) {
	validated, err := planner.ValidateProfile(sampleProfile())
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", validated.Name)
	assert.Equal(t, "Asthma", validated.MedicalHistory)
}

func TestValidateProfileDefaultsMedicalHistory(t *testing.T) {
	profile := sampleProfile()
	profile.MedicalHistory = "   "

	validated, err := planner.ValidateProfile(profile)
	require.NoError(t, err)
	assert.Equal(t, planner.NoMedicalHistory, validated.MedicalHistory)
}

func TestValidateProfileReportsEveryOffendingField(t *testing.T) {
	profile := planner.Profile{
		Name:              "  ",
		Age:               -5,
		Gender:            "Robot",
		Height:            0,
		Weight:            -1,
		Goal:              "Get Swole",
		Level:             "Expert",
		Location:          "Moon",
		DietaryPreference: "Carnivore",
	}

	_, err := planner.ValidateProfile(profile)
	var verr *planner.ValidationError
	require.ErrorAs(t, err, &verr)

	fields := make(map[string]bool)
	for _, f := range verr.Fields {
		fields[f.Field] = true
	}
	for _, want := range []string{
		"name", "age", "gender", "height", "weight",
		"goal", "level", "location", "dietaryPreferences",
	} {
		assert.True(t, fields[want], "expected error for field %s", want)
	}
}

func TestValidateProfileRejectsUnknownEnumValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*planner.Profile)
		field  string
	}{
		{"lowercase gender", func(p *planner.Profile) { p.Gender = "female" }, "gender"},
		{"unknown goal", func(p *planner.Profile) { p.Goal = "Bulk" }, "goal"},
		{"unknown level", func(p *planner.Profile) { p.Level = "Pro" }, "level"},
		{"unknown location", func(p *planner.Profile) { p.Location = "Office" }, "location"},
		{"unknown diet", func(p *planner.Profile) { p.DietaryPreference = "Paleo" }, "dietaryPreferences"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := sampleProfile()
			tt.mutate(&profile)

			_, err := planner.ValidateProfile(profile)
			var verr *planner.ValidationError
			require.ErrorAs(t, err, &verr)
			require.Len(t, verr.Fields, 1)
			assert.Equal(t, tt.field, verr.Fields[0].Field)
		})
	}
}

func TestValidateProfileImplausibleAge(t *testing.T) {
	profile := sampleProfile()
	profile.Age = 200

	_, err := planner.ValidateProfile(profile)
	var verr *planner.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "age", verr.Fields[0].Field)
}

func TestValidateProfileTrimsName(t *testing.T) {
	profile := sampleProfile()
	profile.Name = "  Jane Doe  "

	validated, err := planner.ValidateProfile(profile)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", validated.Name)
}
