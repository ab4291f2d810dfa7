package validation_test

import (
	"reflect"
	"testing"

	"github.com/hazelsoft/userdir/internal/platform/validation"
	"github.com/hazelsoft/userdir/internal/user"
)

func TestGoPlaygroundValidator_ValidateStruct(t *testing.T) {
	t.Parallel()

	validator := validation.NewGoPlaygroundValidator()

	tests := []struct {
		name  string
		input any
		want  map[string]string
	}{
		{
			name: "valid create request",
			input: user.CreateRequest{
				Name:        "Farhanxxx",
				Email:       "a1@test.com",
				PhoneNumber: "01234567890",
			},
			want: nil,
		},
		{
			name: "missing fields report json names",
			input: user.CreateRequest{
				Name: "Farhanxxx",
			},
			want: map[string]string{
				"email":       "email is required",
				"phoneNumber": "phoneNumber is required",
			},
		},
		{
			name: "name too short",
			input: user.CreateRequest{
				Name:        "Short",
				Email:       "a1@test.com",
				PhoneNumber: "01234567890",
			},
			want: map[string]string{
				"name": "name must be at least 8 characters long",
			},
		},
		{
			name: "name too long",
			input: user.CreateRequest{
				Name:        "WayTooLongAName",
				Email:       "a1@test.com",
				PhoneNumber: "01234567890",
			},
			want: map[string]string{
				"name": "name must be at most 12 characters long",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := validator.ValidateStruct(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("validator.ValidateStruct(input) = %v, want: %v", got, tt.want)
			}
		})
	}
}
