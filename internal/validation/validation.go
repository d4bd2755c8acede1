// Package validation checks submitted forms with go-playground/validator and
// turns the first failure into a user-facing message.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Сообщения, показываемые пользователю
const (
	MsgRequired         = "Preencha todos os campos obrigatórios"
	MsgInvalidEmail     = "Informe um email válido"
	MsgPasswordMismatch = "As senhas não coincidem"
	MsgPasswordTooShort = "A senha deve ter pelo menos 6 caracteres"
	MsgNotesTooLong     = "As observações devem ter no máximo 500 caracteres"
)

// ErrValidation базовая ошибка валидации формы
var ErrValidation = errors.New("validation: invalid form")

// Error первая (по приоритету) ошибка валидации формы
type Error struct {
	Field   string
	Tag     string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s (%s): %s", ErrValidation, e.Field, e.Tag, e.Message)
}

func (e *Error) Unwrap() error {
	return ErrValidation
}

// tagPriority порядок проверки: сначала пропуски, затем формат, затем
// совпадение паролей и только потом длина
var tagPriority = map[string]int{
	"required": 0,
	"email":    1,
	"eqfield":  2,
	"min":      3,
	"max":      4,
}

// fieldMessages сообщения для конкретных полей (ключ: field.tag)
var fieldMessages = map[string]string{
	"password.min":            MsgPasswordTooShort,
	"confirmPassword.eqfield": MsgPasswordMismatch,
	"notes.max":               MsgNotesTooLong,
}

// Validator обертка над go-playground/validator
type Validator struct {
	v *validator.Validate
}

// New создает валидатор; имена полей берутся из тега json
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	// max для строк считается в символах, а не в байтах
	mustRegister(v, "maxrunes", maxRunes)
	return &Validator{v: v}
}

// mustRegister регистрирует правило; ошибка здесь означает ошибку в коде, поэтому panic
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

func maxRunes(fl validator.FieldLevel) bool {
	var limit int
	if _, err := fmt.Sscanf(fl.Param(), "%d", &limit); err != nil {
		return false
	}
	return utf8.RuneCountInString(fl.Field().String()) <= limit
}

// Validate проверяет структуру и возвращает *Error или nil
func (v *Validator) Validate(form interface{}) error {
	err := v.v.Struct(form)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	best := ve[0]
	for _, fe := range ve[1:] {
		if rank(fe.Tag()) < rank(best.Tag()) {
			best = fe
		}
	}

	return &Error{
		Field:   best.Field(),
		Tag:     best.Tag(),
		Message: message(best),
	}
}

// Message возвращает текст ошибки валидации или пустую строку
func Message(err error) string {
	var ve *Error
	if errors.As(err, &ve) {
		return ve.Message
	}
	return ""
}

func rank(tag string) int {
	if tag == "maxrunes" {
		tag = "max"
	}
	if r, ok := tagPriority[tag]; ok {
		return r
	}
	return len(tagPriority)
}

func message(fe validator.FieldError) string {
	tag := fe.Tag()
	if tag == "maxrunes" {
		tag = "max"
	}
	if msg, ok := fieldMessages[fe.Field()+"."+tag]; ok {
		return msg
	}

	switch tag {
	case "required":
		return MsgRequired
	case "email":
		return MsgInvalidEmail
	case "min":
		return fmt.Sprintf("O campo %s deve ter pelo menos %s caracteres", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("O campo %s deve ter no máximo %s caracteres", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("O campo %s é inválido", fe.Field())
	}
}
