// Package handlers holds the response helpers shared by the view handlers.
// Every view answers with a JSON view model; errors are rendered inline as
// {"error": "..."} together with the submitted form.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const (
	maxBodyBytes = 1 << 20

	msgInternalError = "Erro interno. Tente novamente."
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error string      `json:"error"`
	Form  interface{} `json:"form,omitempty"`
}

// MessageResponse тело ответа с сообщением об успехе.
// Redirect страница, на которую клиент переходит после показа сообщения.
type MessageResponse struct {
	Message  string      `json:"message"`
	Redirect string      `json:"redirect,omitempty"`
	Data     interface{} `json:"data,omitempty"`
}

// DecodeJSON читает тело запроса в dst. Неизвестные поля и лишние данные отклоняются.
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	if dec.More() {
		return errors.New("decode body: unexpected trailing data")
	}
	return nil
}

// RespondJSON пишет ответ в формате JSON
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondMessage пишет сообщение об успехе, следующую страницу и данные
func RespondMessage(w http.ResponseWriter, status int, message, redirect string, data interface{}) {
	RespondJSON(w, status, MessageResponse{Message: message, Redirect: redirect, Data: data})
}

// RespondError пишет ошибку
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

// RespondFormError пишет ошибку и возвращает отправленную форму,
// чтобы пользователь не потерял введенные данные
func RespondFormError(w http.ResponseWriter, status int, message string, form interface{}) {
	RespondJSON(w, status, ErrorResponse{Error: message, Form: form})
}

// RespondBadRequest 400
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondNotFound 404
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondForbidden 403
func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

// RespondConflict 409
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondInternalError 500 без подробностей
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// Redirect перенаправляет на другую страницу (303 See Other)
func Redirect(w http.ResponseWriter, r *http.Request, location string) {
	http.Redirect(w, r, location, http.StatusSeeOther)
}

// MessageOr возвращает message или fallback, если message пустой
func MessageOr(message, fallback string) string {
	if message == "" {
		return fallback
	}
	return message
}
