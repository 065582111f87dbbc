package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kelvin-Wepo/Rafiki.ai/internal/common/logger"
	"github.com/Kelvin-Wepo/Rafiki.ai/internal/models"
)

func newTestExtractor(t *testing.T) *Extractor {
	return NewExtractor(logger.NewTestLogger(t))
}

func TestExtractor_Extract_PhoneNumber(t *testing.T) {
	e := newTestExtractor(t)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"local 07 prefix", "my number is 0712345678", "0712345678"},
		{"local 01 prefix", "call 0112345678 please", "0112345678"},
		{"international prefix", "reach me on +254712345678", "+254712345678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entities := e.Extract(tt.text, models.IntentUnknown)
			require.NotNil(t, entities.PhoneNumber)
			assert.Equal(t, tt.want, *entities.PhoneNumber)
		})
	}
}

func TestExtractor_Extract_KRAPINNeverLeaksIntoNationalID(t *testing.T) {
	e := newTestExtractor(t)

	entities := e.Extract("my KRA pin is 1234567890", models.IntentKRANilReturns)

	require.NotNil(t, entities.KRAPIN)
	assert.Equal(t, "1234567890", *entities.KRAPIN)
	assert.Nil(t, entities.NationalID, "a 10-digit literal must not populate national_id")
}

func TestExtractor_Extract_NationalID(t *testing.T) {
	e := newTestExtractor(t)

	t.Run("8 consecutive digits", func(t *testing.T) {
		entities := e.Extract("my id number is 12345678", models.IntentKRAPINRecovery)
		require.NotNil(t, entities.NationalID)
		assert.Equal(t, "12345678", *entities.NationalID)
	})

	t.Run("grouped digits have whitespace stripped", func(t *testing.T) {
		entities := e.Extract("id ni 12 34 56 78 tafadhali", models.IntentKRAPINRecovery)
		require.NotNil(t, entities.NationalID)
		assert.Equal(t, "12345678", *entities.NationalID)
	})
}

func TestExtractor_Extract_EmailAndName(t *testing.T) {
	e := newTestExtractor(t)

	entities := e.Extract("I am Jane Wanjiku, email jane.wanjiku@example.co.ke", models.IntentUnknown)

	require.NotNil(t, entities.Email)
	assert.Equal(t, "jane.wanjiku@example.co.ke", *entities.Email)

	require.NotNil(t, entities.UserName)
	assert.Equal(t, "Jane Wanjiku", *entities.UserName)
}

func TestExtractor_Extract_BookingFields(t *testing.T) {
	e := newTestExtractor(t)

	t.Run("date and morning slot", func(t *testing.T) {
		entities := e.Extract("book me for 12/05/2025 in the morning", models.IntentBooking)

		require.NotNil(t, entities.Date)
		assert.Equal(t, "12/05/2025", *entities.Date)

		require.NotNil(t, entities.TimeSlot)
		assert.Equal(t, "morning", *entities.TimeSlot)
	})

	t.Run("afternoon slot", func(t *testing.T) {
		entities := e.Extract("schedule it for the afternoon on 3-11-25", models.IntentBooking)

		require.NotNil(t, entities.Date)
		assert.Equal(t, "3-11-25", *entities.Date)

		require.NotNil(t, entities.TimeSlot)
		assert.Equal(t, "afternoon", *entities.TimeSlot)
	})

	t.Run("morning wins over afternoon", func(t *testing.T) {
		entities := e.Extract("either morning or afternoon works", models.IntentBooking)

		require.NotNil(t, entities.TimeSlot)
		assert.Equal(t, "morning", *entities.TimeSlot)
	})

	t.Run("date ignored outside booking intent", func(t *testing.T) {
		entities := e.Extract("i filed on 12/05/2025", models.IntentKRANilReturns)
		assert.Nil(t, entities.Date)
		assert.Nil(t, entities.TimeSlot)
	})
}

func TestExtractor_Extract_DerivedFlags(t *testing.T) {
	e := newTestExtractor(t)

	tests := []struct {
		name            string
		text            string
		intent          models.Intent
		wantServiceType string
		check           func(t *testing.T, entities models.Entities)
	}{
		{
			name:            "nil returns with pin present",
			text:            "file nil returns, pin 1234567890",
			intent:          models.IntentKRANilReturns,
			wantServiceType: "nil_returns",
			check: func(t *testing.T, entities models.Entities) {
				require.NotNil(t, entities.RequiresPIN)
				assert.False(t, *entities.RequiresPIN)
			},
		},
		{
			name:            "nil returns without pin",
			text:            "i want to file nil returns",
			intent:          models.IntentKRANilReturns,
			wantServiceType: "nil_returns",
			check: func(t *testing.T, entities models.Entities) {
				require.NotNil(t, entities.RequiresPIN)
				assert.True(t, *entities.RequiresPIN)
			},
		},
		{
			name:            "pin recovery without id",
			text:            "help me recover pin",
			intent:          models.IntentKRAPINRecovery,
			wantServiceType: "pin_recovery",
			check: func(t *testing.T, entities models.Entities) {
				require.NotNil(t, entities.RequiresIdentification)
				assert.True(t, *entities.RequiresIdentification)
			},
		},
		{
			name:            "pin generation with id",
			text:            "apply for pin, id 12345678",
			intent:          models.IntentKRAPINGeneration,
			wantServiceType: "pin_generation",
			check: func(t *testing.T, entities models.Entities) {
				require.NotNil(t, entities.RequiresIdentification)
				assert.False(t, *entities.RequiresIdentification)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entities := e.Extract(tt.text, tt.intent)
			require.NotNil(t, entities.ServiceType)
			assert.Equal(t, tt.wantServiceType, *entities.ServiceType)
			tt.check(t, entities)
		})
	}
}

func TestExtractor_Extract_NoDerivedFlagsForOtherIntents(t *testing.T) {
	e := newTestExtractor(t)

	entities := e.Extract("hello there", models.IntentGreeting)
	assert.Nil(t, entities.ServiceType)
	assert.Nil(t, entities.RequiresPIN)
	assert.Nil(t, entities.RequiresIdentification)
}

func TestExtractor_Extract_Idempotent(t *testing.T) {
	e := newTestExtractor(t)

	text := "I am John Kamau, id 12345678, phone 0712345678, file nil returns"
	first := e.Extract(text, models.IntentKRANilReturns)
	second := e.Extract(text, models.IntentKRANilReturns)

	assert.Equal(t, first, second)
}
