package scheduling

import (
	"testing"

	"ironhorse/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateOperatingHours(t *testing.T) {
	tests := []struct {
		name    string
		hours   models.OperatingHours
		wantErr bool
	}{
		{
			name:  "default schedule is valid",
			hours: models.DefaultOperatingHours(),
		},
		{
			name:  "all closed is valid",
			hours: models.OperatingHours{},
		},
		{
			name: "open after close",
			hours: models.OperatingHours{
				Monday: &models.DayHours{Open: "17:00", Close: "09:00"},
			},
			wantErr: true,
		},
		{
			name: "zero-width window",
			hours: models.OperatingHours{
				Tuesday: &models.DayHours{Open: "09:00", Close: "09:00"},
			},
			wantErr: true,
		},
		{
			name: "malformed open time",
			hours: models.OperatingHours{
				Friday: &models.DayHours{Open: "9am", Close: "17:00"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOperatingHours(tt.hours)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
