package validation

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerForm struct {
	FullName        string `json:"fullName" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type notesForm struct {
	Notes string `json:"notes" validate:"maxrunes=500"`
}

func TestValidate_OK(t *testing.T) {
	v := New()
	err := v.Validate(registerForm{FullName: "Ana", Email: "ana@example.com", Password: "secret1", ConfirmPassword: "secret1"})
	assert.NoError(t, err)
}

func TestValidate_Priority(t *testing.T) {
	v := New()

	tests := []struct {
		name string
		form registerForm
		want string
	}{
		{
			name: "mismatch wins over short password",
			form: registerForm{FullName: "Ana", Email: "ana@example.com", Password: "123", ConfirmPassword: "124"},
			want: MsgPasswordMismatch,
		},
		{
			name: "short password",
			form: registerForm{FullName: "Ana", Email: "ana@example.com", Password: "123", ConfirmPassword: "123"},
			want: MsgPasswordTooShort,
		},
		{
			name: "missing field",
			form: registerForm{Email: "ana@example.com", Password: "123", ConfirmPassword: "124"},
			want: MsgRequired,
		},
		{
			name: "bad email",
			form: registerForm{FullName: "Ana", Email: "ana", Password: "secret1", ConfirmPassword: "secret1"},
			want: MsgInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.form)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, tt.want, Message(err))
		})
	}
}

func TestValidate_NotesCountRunes(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(notesForm{Notes: strings.Repeat("ç", 500)}))

	err := v.Validate(notesForm{Notes: strings.Repeat("a", 501)})
	assert.Equal(t, MsgNotesTooLong, Message(err))
}

func TestNew_RegistersMaxRunes(t *testing.T) {
	assert.NotPanics(t, func() { New() })

	type badLimit struct {
		Notes string `json:"notes" validate:"maxrunes=abc"`
	}
	assert.ErrorIs(t, New().Validate(badLimit{Notes: "ok"}), ErrValidation)
}

func TestMustRegister_PanicsOnError(t *testing.T) {
	v := validator.New()

	assert.PanicsWithValue(t, `validation: register "": function Key cannot be empty`, func() {
		mustRegister(v, "", maxRunes)
	})
	assert.NotPanics(t, func() { mustRegister(v, "maxrunes", maxRunes) })
}
